package ports

import (
	"context"

	"github.com/liderlab/assessment-system/internal/core/domain"
)

// UserRepository defines persistence operations for users. Lookups are done
// by the service over List so that "first match in load order" holds for
// every backend; uniqueness is not enforced on write.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	Insert(ctx context.Context, u *domain.User) error
}
