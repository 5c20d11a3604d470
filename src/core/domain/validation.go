package domain

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// redirectAllowList is the closed set of post-login destinations.
// It is an exact-match list, not an origin check.
var redirectAllowList = []string{DefaultRedirect, "/", HomepageURL}

// NormalizeWhitespace collapses every run of whitespace into a single space.
// Leading and trailing runs are collapsed too, not trimmed.
func NormalizeWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inRun := false
	for _, r := range s {
		if unicode.IsSpace(r) || r == '\uFEFF' {
			if !inRun {
				b.WriteByte(' ')
				inRun = true
			}
			continue
		}
		inRun = false
		b.WriteRune(r)
	}
	return b.String()
}

// ValidateUsername returns a user-facing message, or "" when username is acceptable.
func ValidateUsername(username string) string {
	if utf8.RuneCountInString(username) < MinUsernameLength {
		return "Usernames must be at least 3 characters long"
	}
	return ""
}

// ValidatePassword returns a user-facing message, or "" when password is acceptable.
func ValidatePassword(password string) string {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return "Passwords must be at least 6 characters long"
	}
	return ""
}

// ValidateJokeName returns a user-facing message, or "" when name is acceptable.
func ValidateJokeName(name string) string {
	if utf8.RuneCountInString(name) < MinJokeNameLength {
		return "That joke's name is too short"
	}
	return ""
}

// ValidateJokeContent returns a user-facing message, or "" when content is acceptable.
func ValidateJokeContent(content string) string {
	if utf8.RuneCountInString(content) < MinJokeContentLength {
		return "That joke is too short"
	}
	return ""
}

// ValidateRedirect returns target when it is on the allow-list and DefaultRedirect otherwise.
func ValidateRedirect(target string) string {
	if slices.Contains(redirectAllowList, target) {
		return target
	}
	return DefaultRedirect
}
