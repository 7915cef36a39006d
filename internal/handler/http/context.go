package http

import (
	"net/http"

	"github.com/fieldstack/fieldops-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

type caller struct {
	ID   string
	Role user.Role
}

// callerFromRequest reads the authenticated caller's identity out of the
// verified JWT claims. Authentication itself happened in middleware.
func callerFromRequest(r *http.Request) (caller, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return caller{}, false
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return caller{}, false
	}

	role, _ := claims["role"].(string)

	return caller{ID: userID, Role: user.Role(role)}, true
}
