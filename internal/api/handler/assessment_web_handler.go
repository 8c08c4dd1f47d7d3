package handler

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/liderlab/assessment-system/internal/api/metrics"
	"github.com/liderlab/assessment-system/internal/core/domain"
	"github.com/liderlab/assessment-system/internal/core/ports"
)

// AssessmentWebHandler serves the server-rendered HTML views.
type AssessmentWebHandler struct {
	service ports.AssessmentService
}

func NewAssessmentWebHandler(service ports.AssessmentService) *AssessmentWebHandler {
	return &AssessmentWebHandler{service: service}
}

// dimensionView pairs a dimension code with its rubric entry so templates
// can iterate in display order (Go maps iterate randomly).
type dimensionView struct {
	Code   string
	Detail domain.DimensionDetail
}

func dimensionViews() []dimensionView {
	views := make([]dimensionView, 0, len(domain.AllDimensions))
	for _, code := range domain.AllDimensions {
		views = append(views, dimensionView{Code: code, Detail: domain.DimensionDetails[code]})
	}
	return views
}

var scaleLevels = []int{1, 2, 3, 4, 5}

// Dashboard renders the owned-assessment list with the category breakdown.
func (h *AssessmentWebHandler) Dashboard(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	assessments, err := h.service.List(c.Request().Context(), user)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "dashboard.html", map[string]any{
		"User":           user,
		"Assessments":    assessments,
		"Summary":        domain.SummarizeByCategory(assessments),
		"ShowAssessedBy": user.IsMaster(),
		"Flash":          takeFlash(c),
	})
}

// NewForm renders the empty assessment form.
func (h *AssessmentWebHandler) NewForm(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return h.renderForm(c, user, nil, nil)
}

// Create handles the new-assessment form submission.
func (h *AssessmentWebHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	input, draft, ok := h.parseForm(c)
	if !ok {
		return h.renderForm(c, user, draft, &flashMessage{Level: "danger", Text: "Molimo unesite sve ocjene."})
	}

	a, err := h.service.Create(c.Request().Context(), input, user)
	if err != nil {
		return err
	}

	metrics.AssessmentsCreatedTotal.WithLabelValues(a.ManagementLevel).Inc()
	setFlash(c, "success", "Procjena je spremljena.")
	return c.Redirect(http.StatusFound, "/")
}

// EditForm renders the form pre-filled with an existing assessment.
func (h *AssessmentWebHandler) EditForm(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	a, err := h.service.Find(c.Request().Context(), c.Param("id"), user)
	if err != nil {
		return h.redirectWithError(c, err)
	}
	return h.renderForm(c, user, a, nil)
}

// Update handles the edit form submission.
func (h *AssessmentWebHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	input, draft, ok := h.parseForm(c)
	if !ok {
		draft.ID = c.Param("id")
		return h.renderForm(c, user, draft, &flashMessage{Level: "danger", Text: "Molimo unesite sve ocjene."})
	}

	if _, err := h.service.Update(c.Request().Context(), c.Param("id"), input, user); err != nil {
		return h.redirectWithError(c, err)
	}

	metrics.AssessmentsUpdatedTotal.Inc()
	setFlash(c, "success", "Procjena je ažurirana.")
	return c.Redirect(http.StatusFound, "/")
}

// Delete removes an assessment.
func (h *AssessmentWebHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), user); err != nil {
		setFlash(c, "danger", "Brisanje nije dopušteno.")
		return c.Redirect(http.StatusFound, "/")
	}

	metrics.AssessmentsDeletedTotal.Inc()
	setFlash(c, "info", "Procjena je izbrisana.")
	return c.Redirect(http.StatusFound, "/")
}

// visualizationPayload is serialized into the page for the chart script.
type visualizationPayload struct {
	Mode            string               `json:"mode"`
	DimensionKeys   []string             `json:"dimensionKeys"`
	DimensionLabels []string             `json:"dimensionLabels"`
	Selected        *domain.Assessment   `json:"selected"`
	ComparisonA     *domain.Assessment   `json:"comparisonA"`
	ComparisonB     *domain.Assessment   `json:"comparisonB"`
	Assessments     []domain.Assessment  `json:"assessments"`
}

// Visualizations renders the chart view: a matrix scatter, a radar profile
// of the selected assessment, or a two-way comparison.
func (h *AssessmentWebHandler) Visualizations(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	assessments, err := h.service.List(ctx, user)
	if err != nil {
		return err
	}

	mode := c.QueryParam("mode")
	if mode == "" {
		mode = "matrix"
	}

	selected := h.findViewable(c, c.QueryParam("selected"), user)
	if selected == nil && len(assessments) > 0 {
		selected = &assessments[0]
	}
	comparisonA := h.findViewable(c, c.QueryParam("a"), user)
	comparisonB := h.findViewable(c, c.QueryParam("b"), user)

	labels := make([]string, 0, len(domain.AllDimensions))
	for _, code := range domain.AllDimensions {
		labels = append(labels, domain.DimensionDetails[code].Name)
	}

	payload, err := json.Marshal(visualizationPayload{
		Mode:            mode,
		DimensionKeys:   domain.AllDimensions,
		DimensionLabels: labels,
		Selected:        selected,
		ComparisonA:     comparisonA,
		ComparisonB:     comparisonB,
		Assessments:     assessments,
	})
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "visualizations.html", map[string]any{
		"User":        user,
		"Mode":        mode,
		"Assessments": assessments,
		"Selected":    selected,
		"ComparisonA": comparisonA,
		"ComparisonB": comparisonB,
		"Payload":     template.JS(payload),
		"Flash":       takeFlash(c),
	})
}

// findViewable resolves an assessment id to a record the user may see, or
// nil: unknown ids and cross-owner records are simply not shown.
func (h *AssessmentWebHandler) findViewable(c echo.Context, id string, user domain.User) *domain.Assessment {
	if id == "" {
		return nil
	}
	a, err := h.service.Find(c.Request().Context(), id, user)
	if err != nil {
		return nil
	}
	return a
}

// parseForm extracts the assessment fields from the submitted form. ok is
// false when any of the nine dimension scores is missing or out of range;
// draft then carries the submitted values for redisplay.
func (h *AssessmentWebHandler) parseForm(c echo.Context) (ports.AssessmentInput, *domain.Assessment, bool) {
	form, err := c.FormParams()
	if err != nil {
		return ports.AssessmentInput{}, &domain.Assessment{}, false
	}

	input := ports.AssessmentInput{
		FullName:        c.FormValue("full_name"),
		Position:        c.FormValue("position"),
		ManagementLevel: c.FormValue("management_level"),
		Dimensions:      make(map[string]int, len(domain.AllDimensions)),
	}

	complete := true
	for _, code := range domain.AllDimensions {
		key := "dimension_" + code
		if !form.Has(key) {
			complete = false
			continue
		}
		score, err := strconv.Atoi(form.Get(key))
		if err != nil || score < 1 || score > 5 {
			complete = false
			continue
		}
		input.Dimensions[code] = score
	}

	draft := &domain.Assessment{
		FullName:        input.FullName,
		Position:        input.Position,
		ManagementLevel: input.ManagementLevel,
		Dimensions:      input.Dimensions,
	}
	return input, draft, complete
}

func (h *AssessmentWebHandler) renderForm(c echo.Context, user domain.User, a *domain.Assessment, flash *flashMessage) error {
	if flash == nil {
		flash = takeFlash(c)
	}
	return c.Render(http.StatusOK, "assessment_form.html", map[string]any{
		"User":             user,
		"Assessment":       a,
		"Dimensions":       dimensionViews(),
		"ManagementLevels": domain.ManagementLevels,
		"Levels":           scaleLevels,
		"Flash":            flash,
	})
}

func (h *AssessmentWebHandler) redirectWithError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrAssessmentNotFound):
		setFlash(c, "danger", "Procjena nije pronađena.")
	case errors.Is(err, domain.ErrForbidden):
		setFlash(c, "danger", "Nemate ovlasti za uređivanje ove procjene.")
	default:
		setFlash(c, "danger", "Nije moguće ažurirati procjenu.")
	}
	return c.Redirect(http.StatusFound, "/")
}
