package session

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jokeshare/src/core/domain"
)

func newCodec(t *testing.T, secret string) *JWTCodec {
	t.Helper()
	c, err := NewJWTCodec(secret, domain.SessionLifetime)
	require.NoError(t, err)
	return c
}

func TestJWTCodec_RoundTrip(t *testing.T) {
	c := newCodec(t, "s3cr3t")

	v, err := c.Encode(domain.Session{UserID: "user-1"})
	require.NoError(t, err)

	got, err := c.Decode(v)
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.UserID)
}

func TestJWTCodec_RejectsTamperedValue(t *testing.T) {
	c := newCodec(t, "s3cr3t")

	v, err := c.Encode(domain.Session{UserID: "user-1"})
	require.NoError(t, err)

	sig := strings.LastIndex(v, ".") + 1
	flipped := byte('A')
	if v[sig] == 'A' {
		flipped = 'B'
	}
	tampered := v[:sig] + string(flipped) + v[sig+1:]
	_, err = c.Decode(tampered)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestJWTCodec_RejectsOtherSecret(t *testing.T) {
	v, err := newCodec(t, "s3cr3t").Encode(domain.Session{UserID: "user-1"})
	require.NoError(t, err)

	_, err = newCodec(t, "other").Decode(v)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestJWTCodec_RejectsExpired(t *testing.T) {
	c := newCodec(t, "s3cr3t")
	issued := time.Now()
	c.now = func() time.Time { return issued }

	v, err := c.Encode(domain.Session{UserID: "user-1"})
	require.NoError(t, err)

	c.now = func() time.Time { return issued.Add(domain.SessionLifetime + time.Minute) }
	_, err = c.Decode(v)
	assert.ErrorIs(t, err, ErrInvalidSession)

	c.now = func() time.Time { return issued.Add(domain.SessionLifetime - time.Minute) }
	_, err = c.Decode(v)
	assert.NoError(t, err)
}

func TestJWTCodec_RejectsMissingUserID(t *testing.T) {
	c := newCodec(t, "s3cr3t")

	v, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("s3cr3t"))
	require.NoError(t, err)

	_, err = c.Decode(v)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestJWTCodec_RejectsNonStringUserID(t *testing.T) {
	c := newCodec(t, "s3cr3t")

	v, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": 42,
		"exp":    time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("s3cr3t"))
	require.NoError(t, err)

	_, err = c.Decode(v)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestJWTCodec_RejectsNoneAlgorithm(t *testing.T) {
	c := newCodec(t, "s3cr3t")

	v, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"userId": "user-1",
		"exp":    time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = c.Decode(v)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestJWTCodec_Garbage(t *testing.T) {
	c := newCodec(t, "s3cr3t")

	for _, v := range []string{"", "garbage", "a.b.c"} {
		_, err := c.Decode(v)
		assert.ErrorIs(t, err, ErrInvalidSession, v)
	}
}

func TestNewJWTCodec_EmptySecret(t *testing.T) {
	_, err := NewJWTCodec("", time.Hour)
	assert.Error(t, err)
}
