// Package passwordtest provides a password hasher for tests that should not
// pay bcrypt's cost.
package passwordtest

import "strings"

const fakePrefix = "$fake$"

// FakeInsecureHasher implements ports.PasswordHasher without any crypto.
// Hashes are "$fake$<plaintext>" and Compare is a string comparison.
type FakeInsecureHasher struct{}

func (FakeInsecureHasher) Hash(plaintext string) (string, error) {
	return fakePrefix + plaintext, nil
}

func (FakeInsecureHasher) Compare(plaintext, hash string) (bool, error) {
	stored, ok := strings.CutPrefix(hash, fakePrefix)
	return ok && stored == plaintext, nil
}
