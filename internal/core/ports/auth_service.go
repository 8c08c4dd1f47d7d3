package ports

import (
	"context"

	"github.com/liderlab/assessment-system/internal/core/domain"
)

type AuthService interface {
	// Verify authenticates by case-insensitive email (first match in load
	// order) and password; domain.ErrInvalidCredentials on any mismatch.
	Verify(ctx context.Context, email, password string) (*domain.User, error)
	CreateUser(ctx context.Context, email, password, role string) (*domain.User, error)
	// EnsureSeedUsers creates the two default accounts on an empty user
	// store. Idempotent: a no-op when any user exists.
	EnsureSeedUsers(ctx context.Context) error
	// IssueToken signs a short-lived JWT carrying the user's email and role.
	IssueToken(user domain.User) (string, error)
}
