package main

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"fintrack/models"
	"fintrack/store"

	"github.com/gin-gonic/gin"
)

// contextUserKey is where requireAuth stores the resolved *models.User.
const contextUserKey = "fintrack.user"

// requireAuth verifies the bearer token and resolves it to an existing user.
// A valid signature is not enough: the subject must still exist, so tokens of
// deleted users fail here. The resolved user is stored as a typed value for
// handlers to pick up via currentUser.
func (s *server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, no token provided"})
			return
		}
		claims, err := parseToken([]byte(s.cfg.JWTSecret), strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, token failed"})
			return
		}
		user, err := s.store.UserByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, unknown user"})
				return
			}
			s.log.Error("resolve token subject", "err", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Server Error. Please try again later."})
			return
		}
		c.Set(contextUserKey, user)
		c.Next()
	}
}

// currentUser returns the identity resolved by requireAuth. Only call it from
// handlers registered behind that middleware.
func currentUser(c *gin.Context) *models.User {
	user, _ := c.MustGet(contextUserKey).(*models.User)
	return user
}

// recovery turns a panicking handler into a 500. The stack is included only
// outside release mode.
func (s *server) recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				s.log.Error("panic recovered", "path", c.Request.URL.Path, "panic", rec)
				body := gin.H{"message": fmt.Sprintf("%v", rec)}
				if gin.Mode() != gin.ReleaseMode {
					body["stack"] = string(debug.Stack())
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, body)
			}
		}()
		c.Next()
	}
}
