package jsonfile

import (
	"context"

	"github.com/liderlab/assessment-system/internal/core/domain"
)

// assessmentsDocument is the on-disk shape of assessments.json.
type assessmentsDocument struct {
	Assessments []storedAssessment `json:"assessments"`
}

// storedAssessment is the persisted record shape. Kept separate from the
// domain type so the file format does not silently follow domain changes.
type storedAssessment struct {
	ID              string         `json:"id"`
	AssessedBy      string         `json:"assessed_by"`
	FullName        string         `json:"full_name"`
	Position        string         `json:"position"`
	ManagementLevel string         `json:"management_level"`
	Dimensions      map[string]int `json:"dimensions"`
	Adequacy        float64        `json:"adequacy"`
	Potential       float64        `json:"potential"`
	Category        string         `json:"category"`
}

type AssessmentRepository struct {
	store *Store
}

func NewAssessmentRepository(store *Store) *AssessmentRepository {
	return &AssessmentRepository{store: store}
}

func (r *AssessmentRepository) List(_ context.Context) ([]domain.Assessment, error) {
	doc, err := r.loadDocument()
	if err != nil {
		return nil, err
	}

	assessments := make([]domain.Assessment, 0, len(doc.Assessments))
	for _, sa := range doc.Assessments {
		assessments = append(assessments, toDomainAssessment(sa))
	}
	return assessments, nil
}

func (r *AssessmentRepository) FindByID(_ context.Context, id string) (*domain.Assessment, error) {
	doc, err := r.loadDocument()
	if err != nil {
		return nil, err
	}

	for _, sa := range doc.Assessments {
		if sa.ID == id {
			a := toDomainAssessment(sa)
			return &a, nil
		}
	}
	return nil, domain.ErrAssessmentNotFound
}

func (r *AssessmentRepository) Insert(_ context.Context, a *domain.Assessment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	doc, err := r.loadDocument()
	if err != nil {
		return err
	}
	doc.Assessments = append(doc.Assessments, toStoredAssessment(*a))
	return r.store.save(assessmentsFile, doc)
}

func (r *AssessmentRepository) Update(_ context.Context, a *domain.Assessment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	doc, err := r.loadDocument()
	if err != nil {
		return err
	}

	for i := range doc.Assessments {
		if doc.Assessments[i].ID == a.ID {
			doc.Assessments[i] = toStoredAssessment(*a)
			return r.store.save(assessmentsFile, doc)
		}
	}
	return domain.ErrAssessmentNotFound
}

func (r *AssessmentRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	doc, err := r.loadDocument()
	if err != nil {
		return err
	}

	remaining := make([]storedAssessment, 0, len(doc.Assessments))
	removed := false
	for _, sa := range doc.Assessments {
		if sa.ID == id {
			removed = true
			continue
		}
		remaining = append(remaining, sa)
	}
	if !removed {
		return domain.ErrAssessmentNotFound
	}

	doc.Assessments = remaining
	return r.store.save(assessmentsFile, doc)
}

func (r *AssessmentRepository) loadDocument() (*assessmentsDocument, error) {
	doc := &assessmentsDocument{Assessments: []storedAssessment{}}
	if err := r.store.load(assessmentsFile, &assessmentsDocument{Assessments: []storedAssessment{}}, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func toStoredAssessment(a domain.Assessment) storedAssessment {
	return storedAssessment{
		ID:              a.ID,
		AssessedBy:      a.AssessedBy,
		FullName:        a.FullName,
		Position:        a.Position,
		ManagementLevel: a.ManagementLevel,
		Dimensions:      a.Dimensions,
		Adequacy:        a.Adequacy,
		Potential:       a.Potential,
		Category:        a.Category,
	}
}

func toDomainAssessment(sa storedAssessment) domain.Assessment {
	return domain.Assessment{
		ID:              sa.ID,
		AssessedBy:      sa.AssessedBy,
		FullName:        sa.FullName,
		Position:        sa.Position,
		ManagementLevel: sa.ManagementLevel,
		Dimensions:      sa.Dimensions,
		Adequacy:        sa.Adequacy,
		Potential:       sa.Potential,
		Category:        sa.Category,
	}
}
