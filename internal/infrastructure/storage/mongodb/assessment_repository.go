package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/liderlab/assessment-system/internal/core/domain"
)

const assessmentCollection = "assessments"

type AssessmentRepository struct {
	coll *mongo.Collection
}

func NewAssessmentRepository(db *mongo.Database) *AssessmentRepository {
	return &AssessmentRepository{coll: db.Collection(assessmentCollection)}
}

// mongoAssessment uses the application-assigned UUID as _id.
type mongoAssessment struct {
	ID              string         `bson:"_id"`
	AssessedBy      string         `bson:"assessed_by"`
	FullName        string         `bson:"full_name"`
	Position        string         `bson:"position"`
	ManagementLevel string         `bson:"management_level"`
	Dimensions      map[string]int `bson:"dimensions"`
	Adequacy        float64        `bson:"adequacy"`
	Potential       float64        `bson:"potential"`
	Category        string         `bson:"category"`
}

func (r *AssessmentRepository) List(ctx context.Context) ([]domain.Assessment, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoAssessment
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode assessments: %w", err)
	}

	assessments := make([]domain.Assessment, 0, len(docs))
	for _, doc := range docs {
		assessments = append(assessments, doc.toDomain())
	}
	return assessments, nil
}

func (r *AssessmentRepository) FindByID(ctx context.Context, id string) (*domain.Assessment, error) {
	var doc mongoAssessment
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAssessmentNotFound
		}
		return nil, fmt.Errorf("find assessment: %w", err)
	}

	a := doc.toDomain()
	return &a, nil
}

func (r *AssessmentRepository) Insert(ctx context.Context, a *domain.Assessment) error {
	if _, err := r.coll.InsertOne(ctx, fromDomain(*a)); err != nil {
		return fmt.Errorf("insert assessment: %w", err)
	}
	return nil
}

func (r *AssessmentRepository) Update(ctx context.Context, a *domain.Assessment) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": a.ID}, fromDomain(*a))
	if err != nil {
		return fmt.Errorf("update assessment: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAssessmentNotFound
	}
	return nil
}

func (r *AssessmentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete assessment: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAssessmentNotFound
	}
	return nil
}

func fromDomain(a domain.Assessment) mongoAssessment {
	return mongoAssessment{
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

func (m mongoAssessment) toDomain() domain.Assessment {
	return domain.Assessment{
		ID:              m.ID,
		AssessedBy:      m.AssessedBy,
		FullName:        m.FullName,
		Position:        m.Position,
		ManagementLevel: m.ManagementLevel,
		Dimensions:      m.Dimensions,
		Adequacy:        m.Adequacy,
		Potential:       m.Potential,
		Category:        m.Category,
	}
}
