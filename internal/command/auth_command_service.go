package command

import (
	"fmt"
	"time"

	"github.com/bloghub/blog-service/internal/cqrs"
	"github.com/bloghub/blog-service/internal/middleware"
	"github.com/bloghub/blog-service/internal/models"
	"github.com/bloghub/blog-service/internal/utils"
)

// UserStore defines the user persistence operations used by the command services.
type UserStore interface {
	Create(*models.User) error
	GetByEmail(string) (*models.User, error)
}

// AuthCommandService registers new users. Login lives in the query package
// because it doesn't mutate application state.
type AuthCommandService struct {
	userRepo UserStore
}

func NewAuthCommandService(userRepo UserStore) *AuthCommandService {
	return &AuthCommandService{userRepo: userRepo}
}

// Register hashes the password, persists the user and issues a bearer token.
// The unique index on users.email makes the conflict check atomic; a duplicate
// surfaces as "email already exists" from the repository.
func (s *AuthCommandService) Register(cmd cqrs.RegisterCommand) (*models.User, string, error) {
	passwordHash, err := utils.HashPassword(cmd.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}
	user := &models.User{
		ID:           utils.GenerateID("usr"),
		Email:        cmd.Email,
		PasswordHash: passwordHash,
		Name:         cmd.Name,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, "", err
	}

	token, err := middleware.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, token, nil
}
