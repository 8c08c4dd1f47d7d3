package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/liderlab/assessment-system/internal/core/domain"
	"github.com/liderlab/assessment-system/internal/core/ports"
)

// AssessmentService implements ownership-scoped CRUD over assessments.
type AssessmentService struct {
	repo ports.AssessmentRepository
	log  zerolog.Logger
}

func NewAssessmentService(repo ports.AssessmentRepository, log zerolog.Logger) *AssessmentService {
	return &AssessmentService{repo: repo, log: log}
}

func (s *AssessmentService) Create(ctx context.Context, input ports.AssessmentInput, actor domain.User) (*domain.Assessment, error) {
	dimensions := completeDimensions(input.Dimensions)
	scores := domain.CalculateScores(dimensions)

	a := &domain.Assessment{
		ID:              uuid.NewString(),
		AssessedBy:      actor.Email,
		FullName:        strings.TrimSpace(input.FullName),
		Position:        strings.TrimSpace(input.Position),
		ManagementLevel: strings.TrimSpace(input.ManagementLevel),
		Dimensions:      dimensions,
		Adequacy:        scores.Adequacy,
		Potential:       scores.Potential,
		Category:        scores.Category,
	}

	if err := s.repo.Insert(ctx, a); err != nil {
		s.log.Error().Err(err).Msg("failed to create assessment")
		return nil, err
	}

	s.log.Info().
		Str("assessment_id", a.ID).
		Str("assessed_by", a.AssessedBy).
		Str("category", a.Category).
		Msg("assessment created")

	return a, nil
}

func (s *AssessmentService) Update(ctx context.Context, id string, input ports.AssessmentInput, actor domain.User) (*domain.Assessment, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanModify(*a, actor) {
		return nil, domain.ErrForbidden
	}

	dimensions := completeDimensions(input.Dimensions)
	scores := domain.CalculateScores(dimensions)

	a.FullName = strings.TrimSpace(input.FullName)
	a.Position = strings.TrimSpace(input.Position)
	a.ManagementLevel = strings.TrimSpace(input.ManagementLevel)
	a.Dimensions = dimensions
	a.Adequacy = scores.Adequacy
	a.Potential = scores.Potential
	a.Category = scores.Category

	if err := s.repo.Update(ctx, a); err != nil {
		s.log.Error().Err(err).Str("assessment_id", id).Msg("failed to update assessment")
		return nil, err
	}

	s.log.Info().
		Str("assessment_id", a.ID).
		Str("category", a.Category).
		Msg("assessment updated")

	return a, nil
}

func (s *AssessmentService) Delete(ctx context.Context, id string, actor domain.User) error {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanModify(*a, actor) {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("assessment_id", id).Msg("failed to delete assessment")
		return err
	}

	s.log.Info().Str("assessment_id", id).Msg("assessment deleted")
	return nil
}

func (s *AssessmentService) Find(ctx context.Context, id string, actor domain.User) (*domain.Assessment, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanModify(*a, actor) {
		return nil, domain.ErrForbidden
	}
	return a, nil
}

func (s *AssessmentService) List(ctx context.Context, actor domain.User) ([]domain.Assessment, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if actor.IsMaster() {
		return all, nil
	}

	owned := make([]domain.Assessment, 0, len(all))
	for _, a := range all {
		if a.AssessedBy == actor.Email {
			owned = append(owned, a)
		}
	}
	return owned, nil
}

// completeDimensions builds a full dimension map from partial input. Absent
// codes fall back to 1, mirroring the legacy form behavior; completeness is
// validated at the transport boundary.
func completeDimensions(input map[string]int) map[string]int {
	dimensions := make(map[string]int, len(domain.AllDimensions))
	for _, code := range domain.AllDimensions {
		score, ok := input[code]
		if !ok {
			score = 1
		}
		dimensions[code] = score
	}
	return dimensions
}
