package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"oysterkode.backend/internal/domain/entities"
	domainerrors "oysterkode.backend/internal/domain/errors"
	"oysterkode.backend/internal/interfaces/http/middleware"
	"oysterkode.backend/internal/interfaces/http/response"
	"oysterkode.backend/internal/metrics"
	"oysterkode.backend/internal/usecases"
	"oysterkode.backend/pkg/logger"
)

// AuthHandler handles administrator authentication endpoints
type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

func adminView(a *entities.Admin) gin.H {
	return gin.H{
		"id":       a.ID.Hex(),
		"username": a.Username,
	}
}

// Login authenticates an administrator
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.authUsecase.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			metrics.LoginAttemptsTotal.WithLabelValues("invalid").Inc()
			logger.Info(c.Request.Context(), "login rejected", zap.String("client_ip", c.ClientIP()))
		} else {
			metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		}
		response.Error(c, err)
		return
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	response.Success(c, http.StatusOK, gin.H{
		"token":     result.Token,
		"expiresAt": result.ExpiresAt,
		"user":      adminView(result.Admin),
		"message":   "Login successful",
	})
}

// Logout revokes the current token
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)
	if err := h.authUsecase.Logout(c.Request.Context(), identity); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Logged out")
}

// Me returns the current administrator
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	adminID, _ := middleware.GetAdminID(c)
	admin, err := h.authUsecase.Me(c.Request.Context(), adminID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": adminView(admin)})
}

// ChangePassword replaces the current administrator's password
// POST /api/auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var input entities.ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, err)
		return
	}

	adminID, _ := middleware.GetAdminID(c)
	if err := h.authUsecase.ChangePassword(c.Request.Context(), adminID, &input); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Password updated successfully")
}
