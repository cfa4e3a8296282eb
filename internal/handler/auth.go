package handler

import (
	"errors"
	"net/http"

	"ecotrack/internal/middleware"
	"ecotrack/internal/model"
	"ecotrack/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles signup, login and session introspection.
type AuthHandler struct {
	users *service.UserService
}

func NewAuthHandler(users *service.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	resp, err := h.users.Signup(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.NewSuccessResponse("account created", resp))
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	resp, err := h.users.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, model.NewErrorResponse(err.Error(), ""))
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("login successful", resp))
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, model.NewSuccessResponse("", user.ToProfile()))
}

// ForgotPassword handles POST /api/auth/forgot-password. The response never
// reveals whether an account exists for the address.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req model.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse(
		"if an account exists for that email, reset instructions have been sent", nil))
}
