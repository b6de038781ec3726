package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/todoplanner/todo-planner-api/internal/auth"
	"github.com/todoplanner/todo-planner-api/internal/constants"
	"github.com/todoplanner/todo-planner-api/internal/errors"
	"github.com/todoplanner/todo-planner-api/internal/models"
	"github.com/todoplanner/todo-planner-api/internal/services"
)

// RequireAuth verifies the bearer token and resolves the account
// behind it on every request; no session state is kept anywhere.
// errorKey is the operation's JSON message key, since error payloads
// are keyed per endpoint.
func RequireAuth(tokens *auth.TokenManager, authService *services.AuthService, errorKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := tokens.VerifyHeader(c.GetHeader("Authorization"))
		if err != nil {
			errors.Respond(c, errorKey, err)
			c.Abort()
			return
		}

		user, err := authService.Resolve(claims.UserID)
		if err != nil {
			errors.Respond(c, errorKey, err)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUser, user)
		c.Next()
	}
}

// CurrentUser retrieves the resolved user from the request context.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
