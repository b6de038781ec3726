package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/todoplanner/todo-planner-api/internal/dto"
	apierrors "github.com/todoplanner/todo-planner-api/internal/errors"
	"github.com/todoplanner/todo-planner-api/internal/middleware"
	"github.com/todoplanner/todo-planner-api/internal/services"
)

// errInvalidBody covers request bodies that fail JSON binding before
// any field-level validation can run.
var errInvalidBody = apierrors.New(apierrors.KindValidation, "Invalid request body")

// errNoResolvedUser should be unreachable behind RequireAuth.
var errNoResolvedUser = apierrors.New(apierrors.KindInternal, "no resolved user in request context")

// UserHandler coordinates account-related HTTP handlers.
type UserHandler struct {
	authService *services.AuthService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService *services.AuthService) *UserHandler {
	return &UserHandler{
		authService: authService,
	}
}

// Register creates an account and returns a bearer token.
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.Respond(c, "registerUserError", errInvalidBody)
		return
	}

	token, err := h.authService.Register(services.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		LastName: req.LastName,
	})
	if err != nil {
		apierrors.Respond(c, "registerUserError", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Login verifies credentials and returns a bearer token.
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.Respond(c, "loginUserError", errInvalidBody)
		return
	}

	token, err := h.authService.Login(services.LoginInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		apierrors.Respond(c, "loginUserError", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GetUserDetails returns the non-secret projection of the account.
func (h *UserHandler) GetUserDetails(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Respond(c, "getUserDetailsMessage", errNoResolvedUser)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": dto.ToUserDetailsDTO(*user)})
}

// UpdateUserDetails applies a partial profile update.
func (h *UserHandler) UpdateUserDetails(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Respond(c, "updateUserMessage", errNoResolvedUser)
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.Respond(c, "updateUserMessage", errInvalidBody)
		return
	}

	err := h.authService.UpdateDetails(user, services.UpdateInput{
		Username: req.Username,
		Email:    req.Email,
		Name:     req.Name,
		LastName: req.LastName,
		Password: req.Password,
	})
	if err != nil {
		apierrors.Respond(c, "updateUserMessage", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User details updated successfully!"})
}

// DeleteUser soft-deletes the account.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Respond(c, "deleteUserMessage", errNoResolvedUser)
		return
	}

	if err := h.authService.HideAccount(user); err != nil {
		apierrors.Respond(c, "deleteUserMessage", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User account deleted successfully!"})
}

// VerifyToken confirms the caller's token still maps to a live
// account; clients call it on bootstrap.
func (h *UserHandler) VerifyToken(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); !ok {
		apierrors.Respond(c, "error", errNoResolvedUser)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Token Verified -- Up to date",
	})
}
