package auth

import (
	"context"
	"fmt"

	"github.com/fieldstack/fieldops-backend-go/internal/domain/user"
	"github.com/fieldstack/fieldops-backend-go/internal/pkg/jwt"
	"github.com/fieldstack/fieldops-backend-go/internal/pkg/password"
)

type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt int64     `json:"expires_at"`
	User      user.User `json:"-"`
}

type AuthService struct {
	users user.Repository
	jwt   jwt.Service
}

func NewAuthService(userRepository user.Repository, jwtService jwt.Service) *AuthService {
	return &AuthService{users: userRepository, jwt: jwtService}
}

func (s *AuthService) Login(ctx context.Context, email, plainPassword string) (LoginResult, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// Do not reveal whether the account exists.
		return LoginResult{}, user.ErrInvalidCredentials
	}

	if !password.Verify(u.PasswordHash, plainPassword) {
		return LoginResult{}, user.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwt.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return LoginResult{Token: token, ExpiresAt: expiresAt, User: u}, nil
}
