// Package auth manages the session cookie: issuing it after login or
// registration, reading it on every request, and destroying it on logout.
//
// Handlers that need a signed-in user call RequireUserID and branch on the
// returned Decision. A RedirectRequired result means the handler must stop and
// send the redirect; it is not an error.
package auth

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"jokeshare/src/core/domain"
	"jokeshare/src/core/ports"
)

const (
	// CookieName is the name of the session cookie.
	CookieName = "RJ_session"

	// LoginPath is where unauthenticated users are sent.
	LoginPath = "/login"

	// cookieMaxAge is domain.SessionLifetime in seconds.
	cookieMaxAge = int(domain.SessionLifetime / time.Second)
)

// Decision is the outcome of RequireUserID: either Authorized or RedirectRequired.
type Decision interface {
	decision()
}

// Authorized carries the id of the signed-in user.
type Authorized struct {
	UserID string
}

// RedirectRequired tells the handler to stop and redirect to Location.
// ClearSession additionally expires the session cookie.
type RedirectRequired struct {
	Location     string
	ClearSession bool
}

func (Authorized) decision()       {}
func (RedirectRequired) decision() {}

// UserLoader loads the user a session points at.
type UserLoader interface {
	GetUser(ctx context.Context, id string) (*domain.UserSummary, error)
}

// Sessions issues and reads session cookies.
type Sessions struct {
	codec  ports.SessionCodec
	users  UserLoader
	secure bool
	log    *slog.Logger
}

// NewSessions creates a Sessions. secure sets the cookie Secure flag and
// should be true only in production.
func NewSessions(codec ports.SessionCodec, users UserLoader, secure bool, log *slog.Logger) *Sessions {
	return &Sessions{
		codec:  codec,
		users:  users,
		secure: secure,
		log:    log,
	}
}

// CreateSession stores userID in a fresh session cookie and redirects to redirectTo.
// redirectTo must already have passed domain.ValidateRedirect.
func (s *Sessions) CreateSession(c *gin.Context, userID, redirectTo string) error {
	value, err := s.codec.Encode(domain.Session{UserID: userID})
	if err != nil {
		return err
	}

	s.setCookie(c, value, cookieMaxAge)
	c.Redirect(http.StatusFound, redirectTo)
	return nil
}

// GetUserID returns the user id stored in the request's session cookie.
// A missing, tampered or expired cookie reports false.
func (s *Sessions) GetUserID(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	sess, err := s.codec.Decode(cookie.Value)
	if err != nil {
		s.log.Debug("ignoring invalid session cookie", "error", err)
		return "", false
	}
	return sess.UserID, true
}

// RequireUserID returns Authorized when the request carries a session, and
// otherwise a redirect to the login page that remembers redirectTo.
// An empty redirectTo means the path of r.
func (s *Sessions) RequireUserID(r *http.Request, redirectTo string) Decision {
	if userID, ok := s.GetUserID(r); ok {
		return Authorized{UserID: userID}
	}

	if redirectTo == "" {
		redirectTo = r.URL.Path
	}
	return RedirectRequired{Location: LoginRedirect(redirectTo)}
}

// LoginRedirect builds the login page URL carrying redirectTo as a query parameter.
func LoginRedirect(redirectTo string) string {
	return LoginPath + "?" + url.Values{"redirectTo": {redirectTo}}.Encode()
}

// GetUser resolves the session to its user.
//
// No session, or a session whose user no longer exists, yields (nil, nil).
// If the user store fails, the session is treated as broken: the returned
// redirect logs the visitor out, and the fault is only logged.
func (s *Sessions) GetUser(c *gin.Context) (*domain.UserSummary, *RedirectRequired) {
	userID, ok := s.GetUserID(c.Request)
	if !ok {
		return nil, nil
	}

	user, err := s.users.GetUser(c.Request.Context(), userID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, nil
		}
		s.log.Error("failed to load session user, forcing logout",
			"user_id", userID,
			"error", err,
		)
		return nil, &RedirectRequired{Location: LoginPath, ClearSession: true}
	}
	return user, nil
}

// Logout expires the session cookie and redirects to the login page.
func (s *Sessions) Logout(c *gin.Context) {
	s.Follow(c, RedirectRequired{Location: LoginPath, ClearSession: true})
}

// Follow sends the redirect described by r and aborts the handler chain.
func (s *Sessions) Follow(c *gin.Context, r RedirectRequired) {
	if r.ClearSession {
		s.setCookie(c, "", -1)
	}
	c.Redirect(http.StatusFound, r.Location)
	c.Abort()
}

func (s *Sessions) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, value, maxAge, "/", "", s.secure, true)
}
