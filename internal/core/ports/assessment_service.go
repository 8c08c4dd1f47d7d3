package ports

import (
	"context"

	"github.com/liderlab/assessment-system/internal/core/domain"
)

// AssessmentInput carries the user-editable fields of an assessment.
// Dimensions maps dimension codes to 1..5 scores; codes absent from the map
// default to 1 inside the service (preserved legacy leniency — the transport
// layer rejects incomplete submissions before the service is reached).
type AssessmentInput struct {
	FullName        string
	Position        string
	ManagementLevel string
	Dimensions      map[string]int
}

// AssessmentService defines ownership-scoped CRUD over assessments. The
// acting user is always passed explicitly; derived scores are recomputed
// from the dimensions on every create and update.
type AssessmentService interface {
	Create(ctx context.Context, input AssessmentInput, actor domain.User) (*domain.Assessment, error)
	Update(ctx context.Context, id string, input AssessmentInput, actor domain.User) (*domain.Assessment, error)
	Delete(ctx context.Context, id string, actor domain.User) error
	// Find returns domain.ErrForbidden when the actor may not view the record.
	Find(ctx context.Context, id string, actor domain.User) (*domain.Assessment, error)
	// List returns all assessments for a master actor, owner-scoped otherwise.
	List(ctx context.Context, actor domain.User) ([]domain.Assessment, error)
}
