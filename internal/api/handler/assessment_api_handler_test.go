package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/liderlab/assessment-system/internal/api/middleware"
	"github.com/liderlab/assessment-system/internal/core/domain"
	"github.com/liderlab/assessment-system/internal/core/ports"
)

type stubAssessmentService struct {
	createFn func(ctx context.Context, input ports.AssessmentInput, actor domain.User) (*domain.Assessment, error)
	updateFn func(ctx context.Context, id string, input ports.AssessmentInput, actor domain.User) (*domain.Assessment, error)
	deleteFn func(ctx context.Context, id string, actor domain.User) error
	findFn   func(ctx context.Context, id string, actor domain.User) (*domain.Assessment, error)
	listFn   func(ctx context.Context, actor domain.User) ([]domain.Assessment, error)
}

func (s *stubAssessmentService) Create(ctx context.Context, input ports.AssessmentInput, actor domain.User) (*domain.Assessment, error) {
	return s.createFn(ctx, input, actor)
}

func (s *stubAssessmentService) Update(ctx context.Context, id string, input ports.AssessmentInput, actor domain.User) (*domain.Assessment, error) {
	return s.updateFn(ctx, id, input, actor)
}

func (s *stubAssessmentService) Delete(ctx context.Context, id string, actor domain.User) error {
	return s.deleteFn(ctx, id, actor)
}

func (s *stubAssessmentService) Find(ctx context.Context, id string, actor domain.User) (*domain.Assessment, error) {
	return s.findFn(ctx, id, actor)
}

func (s *stubAssessmentService) List(ctx context.Context, actor domain.User) ([]domain.Assessment, error) {
	return s.listFn(ctx, actor)
}

const validBody = `{
	"full_name": "Ana Anić",
	"position": "Voditeljica prodaje",
	"management_level": "B-2",
	"dimensions": {"A":4,"B":4,"C":4,"D":4,"E":4,"F":4,"G":4,"H":4,"I":4}
}`

func newAPIContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserKey, domain.User{Email: "user@example.com", Role: domain.RoleStandard})
	return c, rec
}

func TestAssessmentAPIHandler_Create(t *testing.T) {
	stub := &stubAssessmentService{
		createFn: func(_ context.Context, input ports.AssessmentInput, actor domain.User) (*domain.Assessment, error) {
			if actor.Email != "user@example.com" {
				t.Fatalf("unexpected actor: %q", actor.Email)
			}
			if input.FullName != "Ana Anić" || input.ManagementLevel != "B-2" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Assessment{
				ID:         "a1",
				AssessedBy: actor.Email,
				FullName:   input.FullName,
				Category:   "Primjer",
			}, nil
		},
	}
	handler := NewAssessmentAPIHandler(stub)

	c, rec := newAPIContext(t, http.MethodPost, "/api/assessments", validBody)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "a1" || resp["category"] != "Primjer" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAssessmentAPIHandler_CreateMissingDimension(t *testing.T) {
	stub := &stubAssessmentService{
		createFn: func(context.Context, ports.AssessmentInput, domain.User) (*domain.Assessment, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}
	handler := NewAssessmentAPIHandler(stub)

	// Dimension I absent.
	body := `{
		"full_name": "Ana Anić",
		"position": "Voditeljica",
		"management_level": "B-2",
		"dimensions": {"A":4,"B":4,"C":4,"D":4,"E":4,"F":4,"G":4,"H":4}
	}`
	c, _ := newAPIContext(t, http.MethodPost, "/api/assessments", body)

	err := handler.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAssessmentAPIHandler_CreateScoreOutOfRange(t *testing.T) {
	stub := &stubAssessmentService{
		createFn: func(context.Context, ports.AssessmentInput, domain.User) (*domain.Assessment, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}
	handler := NewAssessmentAPIHandler(stub)

	body := `{
		"full_name": "Ana Anić",
		"position": "Voditeljica",
		"management_level": "B-2",
		"dimensions": {"A":6,"B":4,"C":4,"D":4,"E":4,"F":4,"G":4,"H":4,"I":4}
	}`
	c, _ := newAPIContext(t, http.MethodPost, "/api/assessments", body)

	err := handler.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAssessmentAPIHandler_CreateInvalidManagementLevel(t *testing.T) {
	stub := &stubAssessmentService{
		createFn: func(context.Context, ports.AssessmentInput, domain.User) (*domain.Assessment, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}
	handler := NewAssessmentAPIHandler(stub)

	body := strings.Replace(validBody, "B-2", "B-9", 1)
	c, _ := newAPIContext(t, http.MethodPost, "/api/assessments", body)

	err := handler.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAssessmentAPIHandler_GetPropagatesServiceErrors(t *testing.T) {
	stub := &stubAssessmentService{
		findFn: func(context.Context, string, domain.User) (*domain.Assessment, error) {
			return nil, domain.ErrForbidden
		},
	}
	handler := NewAssessmentAPIHandler(stub)

	c, _ := newAPIContext(t, http.MethodGet, "/api/assessments/a1", "")
	c.SetParamNames("id")
	c.SetParamValues("a1")

	// The sentinel passes through untouched; the central error handler maps it.
	if err := handler.Get(c); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden passthrough, got %v", err)
	}
}

func TestAssessmentAPIHandler_List(t *testing.T) {
	stub := &stubAssessmentService{
		listFn: func(_ context.Context, actor domain.User) ([]domain.Assessment, error) {
			return []domain.Assessment{{ID: "a1", AssessedBy: actor.Email}}, nil
		},
	}
	handler := NewAssessmentAPIHandler(stub)

	c, rec := newAPIContext(t, http.MethodGet, "/api/assessments", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["id"] != "a1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAssessmentAPIHandler_Delete(t *testing.T) {
	deleted := ""
	stub := &stubAssessmentService{
		deleteFn: func(_ context.Context, id string, _ domain.User) error {
			deleted = id
			return nil
		},
	}
	handler := NewAssessmentAPIHandler(stub)

	c, rec := newAPIContext(t, http.MethodDelete, "/api/assessments/a1", "")
	c.SetParamNames("id")
	c.SetParamValues("a1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != "a1" {
		t.Fatalf("expected delete of a1, got %q", deleted)
	}
}

func TestAssessmentAPIHandler_MissingUser(t *testing.T) {
	handler := NewAssessmentAPIHandler(&stubAssessmentService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/assessments", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.List(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
