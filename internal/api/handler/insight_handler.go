package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/liderlab/assessment-system/internal/api/metrics"
	"github.com/liderlab/assessment-system/internal/core/ports"
)

// InsightHandler serves AI-generated narrative insights for assessments.
type InsightHandler struct {
	assessments ports.AssessmentService
	insights    ports.InsightService
}

func NewInsightHandler(assessments ports.AssessmentService, insights ports.InsightService) *InsightHandler {
	return &InsightHandler{assessments: assessments, insights: insights}
}

type insightResponse struct {
	Content string `json:"content"`
}

// Get returns the generated insight for one assessment. The content is
// always a displayable string; configuration gaps and upstream failures are
// reported inside it, not as HTTP errors.
//
// @Summary      Generate an AI insight
// @Tags         insights
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Assessment id"
// @Success      200  {object}  insightResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/insights/{id} [get]
func (h *InsightHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	a, err := h.assessments.Find(c.Request().Context(), c.Param("id"), user)
	if err != nil {
		return err
	}

	metrics.InsightRequestsTotal.Inc()
	content := h.insights.Generate(c.Request().Context(), *a)
	return c.JSON(http.StatusOK, insightResponse{Content: content})
}
