package handlers

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/666akuma13/interview-agent/internal/config"
	"github.com/666akuma13/interview-agent/internal/middleware"
	"github.com/666akuma13/interview-agent/internal/models"
	"github.com/666akuma13/interview-agent/internal/utils"
)

// AuthHandler manages admin authentication.
type AuthHandler struct {
	config *config.Config
	logger *zap.Logger
}

func NewAuthHandler(cfg *config.Config, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{config: cfg, logger: logger}
}

type authResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.LoginRequest](r)

	if req.Username != h.config.AdminUsername || !h.config.CheckAdminPassword(req.Password) {
		h.logger.Warn("Failed admin login attempt", zap.String("username", req.Username))
		utils.JSON(w, http.StatusUnauthorized, models.ErrorResponse{
			Code:    "invalid_credentials",
			Message: "Incorrect username or password",
		})
		return
	}

	claims := jwt.MapClaims{
		"sub":  req.Username,
		"role": "admin",
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.config.JWTSecret))
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "token_error",
			Message: "Failed to sign token",
		})
		return
	}

	utils.JSON(w, http.StatusOK, authResponse{Token: signed})
}
