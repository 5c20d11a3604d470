package domain

import "time"

// User is a registered jokester. PasswordHash never leaves the auth layer.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Summary returns the minimal descriptor handed out by login, registration and session lookups.
func (u *User) Summary() *UserSummary {
	return &UserSummary{ID: u.ID, Username: u.Username}
}

// UserSummary is the {id, username} view of a user.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Joke is a short text joke owned by the jokester who posted it.
// Jokes are never edited; only the owner may delete one.
type Joke struct {
	ID         string
	JokesterID string
	Name       string
	Content    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OwnedBy reports whether userID is the jokester of j.
func (j *Joke) OwnedBy(userID string) bool {
	return userID != "" && j.JokesterID == userID
}

// NewJoke holds the fields needed to create a joke.
type NewJoke struct {
	JokesterID string
	Name       string
	Content    string
}

// Session is the payload carried inside the signed session cookie.
type Session struct {
	UserID string
}
