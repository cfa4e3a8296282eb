package middleware

import (
	"net/http"

	"ecotrack/internal/model"
	"ecotrack/internal/repository"
	"ecotrack/pkg/token"

	"github.com/gin-gonic/gin"
)

const userContextKey = "currentUser"

// RequireAuth verifies the bearer token and loads the authenticated user
// into the request context. Any failure, including a token for a user that
// no longer exists, aborts with 401.
func RequireAuth(secret string, users repository.IUserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := token.FromHeader(c.GetHeader("Authorization"))
		if err != nil {
			abortUnauthorized(c)
			return
		}
		userID, err := token.Verify(secret, raw)
		if err != nil {
			abortUnauthorized(c)
			return
		}
		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			abortUnauthorized(c)
			return
		}
		c.Set(userContextKey, user)
		c.Next()
	}
}

// RequireAdmin gates admin-only routes. Must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, model.NewErrorResponse("admin access required", ""))
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user set by RequireAuth, or nil.
func CurrentUser(c *gin.Context) *model.User {
	value, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, _ := value.(*model.User)
	return user
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, model.NewErrorResponse("authentication required", ""))
}
