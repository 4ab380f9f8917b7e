// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"greencart/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginInput defines the data required for a user or the seller to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// SessionOutput carries a freshly issued session token and the identity it is bound to.
type SessionOutput struct {
	User  *entity.User
	Token string
	TTL   time.Duration
}

// UserUsecase defines the interface for shopper account operations.
type UserUsecase interface {
	// Register creates the account and opens a session for it.
	Register(ctx context.Context, input *RegisterUserInput) (*SessionOutput, error)
	// Login checks the credentials and opens a session.
	Login(ctx context.Context, input *LoginInput) (*SessionOutput, error)
	// GetUser resolves the identity behind a verified session.
	GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
