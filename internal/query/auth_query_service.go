package query

import (
	"fmt"

	"github.com/bloghub/blog-service/internal/cqrs"
	"github.com/bloghub/blog-service/internal/middleware"
	"github.com/bloghub/blog-service/internal/models"
	"github.com/bloghub/blog-service/internal/utils"
)

// UserFinder defines the user lookups used by the auth query service.
type UserFinder interface {
	GetByEmail(string) (*models.User, error)
}

// AuthQueryService handles login and token refresh. Writes (registration)
// live in the command package.
type AuthQueryService struct {
	userRepo UserFinder
}

func NewAuthQueryService(userRepo UserFinder) *AuthQueryService {
	return &AuthQueryService{userRepo: userRepo}
}

// Login verifies the credentials and issues a fresh bearer token.
// Unknown email and password mismatch are indistinguishable to the caller.
func (s *AuthQueryService) Login(cmd cqrs.LoginCommand) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(cmd.Email)
	if err != nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}
	if !utils.CheckPassword(cmd.Password, user.PasswordHash) {
		return nil, "", fmt.Errorf("invalid credentials")
	}
	token, err := middleware.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, token, nil
}

// RefreshToken re-issues a token from a still-valid one.
func (s *AuthQueryService) RefreshToken(cmd cqrs.RefreshTokenCommand) (*models.User, string, error) {
	claims, err := middleware.ParseToken(cmd.Token)
	if err != nil {
		return nil, "", fmt.Errorf("invalid token")
	}
	user, err := s.userRepo.GetByEmail(claims.Email)
	if err != nil {
		return nil, "", fmt.Errorf("invalid token")
	}
	token, err := middleware.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, token, nil
}
