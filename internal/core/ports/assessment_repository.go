package ports

import (
	"context"

	"github.com/liderlab/assessment-system/internal/core/domain"
)

// AssessmentRepository defines persistence operations for assessments.
//
// The file-backed implementation realizes every mutation as a whole-document
// read-modify-rewrite under a single lock; the mongodb implementation is
// per-record. Callers must not assume either.
type AssessmentRepository interface {
	// List returns every persisted assessment in load order.
	List(ctx context.Context) ([]domain.Assessment, error)
	// FindByID returns domain.ErrAssessmentNotFound when absent.
	FindByID(ctx context.Context, id string) (*domain.Assessment, error)
	Insert(ctx context.Context, a *domain.Assessment) error
	// Update overwrites the record with the same ID in place.
	Update(ctx context.Context, a *domain.Assessment) error
	Delete(ctx context.Context, id string) error
}
