package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/liderlab/assessment-system/internal/api/metrics"
	"github.com/liderlab/assessment-system/internal/core/domain"
	"github.com/liderlab/assessment-system/internal/core/ports"
)

// AssessmentAPIHandler serves the JSON API for assessments.
type AssessmentAPIHandler struct {
	service ports.AssessmentService
}

func NewAssessmentAPIHandler(service ports.AssessmentService) *AssessmentAPIHandler {
	return &AssessmentAPIHandler{service: service}
}

type assessmentRequest struct {
	FullName        string         `json:"full_name"        validate:"required"`
	Position        string         `json:"position"         validate:"required"`
	ManagementLevel string         `json:"management_level" validate:"required,oneof=B-1 B-2 B-3 Ostalo"`
	Dimensions      map[string]int `json:"dimensions"       validate:"required,dive,min=1,max=5"`
}

// validateDimensions rejects submissions missing any of the nine scores.
// Range is covered by the struct tags; completeness has to be checked here.
func (r *assessmentRequest) validateDimensions() error {
	for _, code := range domain.AllDimensions {
		if _, ok := r.Dimensions[code]; !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "dimension "+code+" is required")
		}
	}
	return nil
}

func (r *assessmentRequest) toInput() ports.AssessmentInput {
	return ports.AssessmentInput{
		FullName:        r.FullName,
		Position:        r.Position,
		ManagementLevel: r.ManagementLevel,
		Dimensions:      r.Dimensions,
	}
}

// List returns every assessment visible to the acting user.
//
// @Summary      List assessments
// @Tags         assessments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Assessment
// @Failure      401  {object}  map[string]string
// @Router       /api/assessments [get]
func (h *AssessmentAPIHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	assessments, err := h.service.List(c.Request().Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, assessments)
}

// Get returns a single assessment.
//
// @Summary      Get an assessment
// @Tags         assessments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Assessment id"
// @Success      200  {object}  domain.Assessment
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/assessments/{id} [get]
func (h *AssessmentAPIHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	a, err := h.service.Find(c.Request().Context(), c.Param("id"), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a)
}

// Create records a new assessment owned by the acting user.
//
// @Summary      Create an assessment
// @Tags         assessments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      assessmentRequest  true  "Assessment fields"
// @Success      201   {object}  domain.Assessment
// @Failure      400   {object}  map[string]string
// @Router       /api/assessments [post]
func (h *AssessmentAPIHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req assessmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := req.validateDimensions(); err != nil {
		return err
	}

	a, err := h.service.Create(c.Request().Context(), req.toInput(), user)
	if err != nil {
		return err
	}

	metrics.AssessmentsCreatedTotal.WithLabelValues(a.ManagementLevel).Inc()
	return c.JSON(http.StatusCreated, a)
}

// Update overwrites an assessment's fields and recomputes its scores.
//
// @Summary      Update an assessment
// @Tags         assessments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Assessment id"
// @Param        body  body      assessmentRequest  true  "Assessment fields"
// @Success      200   {object}  domain.Assessment
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/assessments/{id} [put]
func (h *AssessmentAPIHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req assessmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := req.validateDimensions(); err != nil {
		return err
	}

	a, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput(), user)
	if err != nil {
		return err
	}

	metrics.AssessmentsUpdatedTotal.Inc()
	return c.JSON(http.StatusOK, a)
}

// Delete removes an assessment.
//
// @Summary      Delete an assessment
// @Tags         assessments
// @Security     BearerAuth
// @Param        id  path  string  true  "Assessment id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/assessments/{id} [delete]
func (h *AssessmentAPIHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), user); err != nil {
		return err
	}

	metrics.AssessmentsDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}
