package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fieldstack/fieldops-backend-go/internal/handler/http/response"
	"github.com/fieldstack/fieldops-backend-go/internal/service/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService *auth.AuthService
}

func NewAuthHandler(authService *auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	if req.Email == "" || req.Password == "" {
		response.BadRequest(w, "Email and password are required")
		return
	}

	result, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"token":      result.Token,
		"expires_at": result.ExpiresAt,
		"user_id":    result.User.ID,
		"full_name":  result.User.FullName,
		"role":       result.User.Role,
	})
}
