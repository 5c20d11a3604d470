// Package session encodes session payloads into signed cookie values.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"jokeshare/src/core/domain"
)

// ErrInvalidSession is returned for any value that does not decode to a live session.
var ErrInvalidSession = errors.New("invalid session")

type claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// JWTCodec implements ports.SessionCodec with HS256-signed JWTs.
// The token carries its own expiry in addition to the cookie Max-Age.
type JWTCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTCodec creates a codec signing with secret. An empty secret is refused.
func NewJWTCodec(secret string, ttl time.Duration) (*JWTCodec, error) {
	if secret == "" {
		return nil, errors.New("session secret must not be empty")
	}
	return &JWTCodec{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Encode signs s into a compact token.
func (c *JWTCodec) Encode(s domain.Session) (string, error) {
	now := c.now()
	cl := claims{
		UserID: s.UserID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	v, err := jwt.NewWithClaims(jwt.SigningMethodHS256, cl).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return v, nil
}

// Decode verifies the signature and expiry of value and returns its payload.
// A userId that is missing or not a string makes the whole value invalid.
func (c *JWTCodec) Decode(value string) (domain.Session, error) {
	tok, err := jwt.ParseWithClaims(value, &claims{}, func(*jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	cl, ok := tok.Claims.(*claims)
	if !ok || !tok.Valid || cl.UserID == "" {
		return domain.Session{}, ErrInvalidSession
	}
	return domain.Session{UserID: cl.UserID}, nil
}
