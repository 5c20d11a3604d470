// Package domain holds the jokeshare model: users (jokesters), jokes, the
// form validators and the categorised errors the HTTP layer maps to statuses.
//
// It imports only the standard library and knows nothing about databases,
// cookies or HTTP. Validators are pure: they return a user-facing message,
// or "" when the value is acceptable.
package domain
