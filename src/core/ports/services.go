package ports

import (
	"jokeshare/src/core/domain"
)

// PasswordHasher hashes plaintext passwords and compares them against stored hashes.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Compare returns (false, nil) on a mismatch and an error only for a malformed hash.
	Compare(plaintext, hash string) (bool, error)
}

// SessionCodec turns a session payload into an opaque signed cookie value and back.
type SessionCodec interface {
	Encode(session domain.Session) (string, error)
	// Decode fails for tampered, expired or otherwise unreadable values.
	Decode(value string) (domain.Session, error)
}
