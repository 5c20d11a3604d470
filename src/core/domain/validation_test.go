package domain

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestValidateUsername(t *testing.T) {
	assert.Equal(t, "Usernames must be at least 3 characters long", ValidateUsername("ab"))
	assert.Equal(t, "Usernames must be at least 3 characters long", ValidateUsername(""))
	assert.Empty(t, ValidateUsername("abc"))
	assert.Empty(t, ValidateUsername("kody"))
}

func TestValidatePassword(t *testing.T) {
	assert.Equal(t, "Passwords must be at least 6 characters long", ValidatePassword("12345"))
	assert.Empty(t, ValidatePassword("123456"))
}

func TestValidateJokeName(t *testing.T) {
	assert.Equal(t, "That joke's name is too short", ValidateJokeName("ab"))
	assert.Empty(t, ValidateJokeName("abc"))
}

func TestValidateJokeContent(t *testing.T) {
	assert.Equal(t, "That joke is too short", ValidateJokeContent("too short"))
	assert.Empty(t, ValidateJokeContent("just right"))
}

func TestValidators_CountCharactersNotBytes(t *testing.T) {
	// Two runes, six bytes.
	assert.NotEmpty(t, ValidateUsername("日本"))
	assert.Empty(t, ValidateUsername("日本語"))
}

func TestValidateRedirect(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"/jokes", "/jokes"},
		{"/", "/"},
		{"https://remix.run", "https://remix.run"},
		{"", "/jokes"},
		{"https://evil.example", "/jokes"},
		{"/jokes/new", "/jokes"},
		{"//evil.example", "/jokes"},
		{"https://remix.run/", "/jokes"},
		{"/JOKES", "/jokes"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidateRedirect(tt.in), "input %q", tt.in)
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"a  b", "a b"},
		{"a\t\nb", "a b"},
		{"  a b  ", " a b "},
		{"a\u00a0\u2003b", "a b"},
		{"a\uFEFFb", "a b"},
		{"", ""},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeWhitespace(tt.in), "input %q", tt.in)
	}
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

func TestNormalizeWhitespace_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "s")
		got := NormalizeWhitespace(s)

		assert.Equal(t, got, NormalizeWhitespace(got), "idempotent")
		assert.NotContains(t, got, "  ")
		for _, r := range got {
			if isSpace(r) {
				assert.Equal(t, ' ', r)
			}
		}
		assert.Equal(t,
			strings.Join(strings.FieldsFunc(s, isSpace), ""),
			strings.Join(strings.FieldsFunc(got, isSpace), ""),
			"non-space content is preserved")
	})
}

func TestValidateUsername_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "username")
		msg := ValidateUsername(s)
		if utf8.RuneCountInString(s) >= MinUsernameLength {
			assert.Empty(t, msg)
		} else {
			assert.NotEmpty(t, msg)
		}
	})
}

func TestValidateRedirect_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "target")
		got := ValidateRedirect(s)
		assert.Contains(t, []string{"/jokes", "/", "https://remix.run"}, got)
		if got != DefaultRedirect {
			assert.Equal(t, s, got)
		}
	})
}

func TestJoke_OwnedBy(t *testing.T) {
	j := &Joke{JokesterID: "u1"}
	assert.True(t, j.OwnedBy("u1"))
	assert.False(t, j.OwnedBy("u2"))
	assert.False(t, (&Joke{}).OwnedBy(""))
}

func TestErrInvalidCredentials_IsUnauthorized(t *testing.T) {
	assert.True(t, IsUnauthorized(ErrInvalidCredentials))
	assert.False(t, IsNotFound(ErrInvalidCredentials))
}
