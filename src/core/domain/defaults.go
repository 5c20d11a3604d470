package domain

import "time"

// PasswordHashCost is the bcrypt work factor used when registering users.
const PasswordHashCost = 10

// SessionLifetime is how long a session stays valid after login or registration.
const SessionLifetime = 30 * 24 * time.Hour

// DefaultRedirect is where users land after login when no acceptable target was requested.
const DefaultRedirect = "/jokes"

// HomepageURL is the external homepage users may be sent back to after login.
const HomepageURL = "https://remix.run"

// Field minimums, counted in characters.
const (
	MinUsernameLength    = 3
	MinPasswordLength    = 6
	MinJokeNameLength    = 3
	MinJokeContentLength = 10
)
