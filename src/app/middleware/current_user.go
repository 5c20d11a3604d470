package middleware

import (
	"github.com/gin-gonic/gin"

	"jokeshare/src/app/auth"
	"jokeshare/src/core/domain"
)

const currentUserKey = "current_user"

// CurrentUser resolves the session to its user and stores it for
// GetCurrentUser. Visitors without a session pass through. A session whose
// user cannot be loaded is logged out and the request is not served.
func CurrentUser(sessions *auth.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, redirect := sessions.GetUser(c)
		if redirect != nil {
			sessions.Follow(c, *redirect)
			return
		}
		if user != nil {
			c.Set(currentUserKey, user)
		}
		c.Next()
	}
}

// GetCurrentUser returns the user stored by CurrentUser, or nil.
func GetCurrentUser(c *gin.Context) *domain.UserSummary {
	if v, ok := c.Get(currentUserKey); ok {
		if user, ok := v.(*domain.UserSummary); ok {
			return user
		}
	}
	return nil
}
