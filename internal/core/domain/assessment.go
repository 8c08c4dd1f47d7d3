package domain

import "errors"

var ErrAssessmentNotFound = errors.New("assessment not found")
var ErrForbidden = errors.New("access forbidden")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")

// ManagementLevels enumerates the valid management levels for an assessment.
var ManagementLevels = []string{"B-1", "B-2", "B-3", "Ostalo"}

// Assessment is the core aggregate: one evaluation of one person.
// Adequacy, Potential and Category are derived from Dimensions and are
// recomputed on every create/update; they are never set independently.
type Assessment struct {
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

// CanModify is the single authorization predicate for update, delete and
// detail views: the record's owner or a master user.
func CanModify(a Assessment, actor User) bool {
	return a.AssessedBy == actor.Email || actor.IsMaster()
}
