package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/liderlab/assessment-system/internal/api/handler"
	"github.com/liderlab/assessment-system/internal/api/middleware"
	"github.com/liderlab/assessment-system/internal/api/view"
	"github.com/liderlab/assessment-system/internal/core/ports"
)

// Dependencies bundles everything the router needs; all services are passed
// in so the transport layer stays free of construction logic.
type Dependencies struct {
	Assessments ports.AssessmentService
	Auth        ports.AuthService
	Insights    ports.InsightService
	Users       ports.UserRepository

	JWTSecret     string
	SessionSecret string
	Logger        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)
	e.Validator = handler.NewValidator()

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("assessment"))
	e.Use(session.Middleware(middleware.NewSessionStore(deps.SessionSecret)))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	webHandler := handler.NewAssessmentWebHandler(deps.Assessments)
	apiHandler := handler.NewAssessmentAPIHandler(deps.Assessments)
	insightHandler := handler.NewInsightHandler(deps.Assessments, deps.Insights)
	healthHandler := handler.NewHealthHandler(deps.Users)

	// --- Probes and metrics (no auth required) ---
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – is storage up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Static assets and login ---
	e.StaticFS("/static", view.StaticFS())
	e.GET("/login", authHandler.LoginForm)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)

	// --- Server-rendered views (cookie session) ---
	web := e.Group("", middleware.WebAuth())
	web.GET("/", webHandler.Dashboard)
	web.GET("/assessments/new", webHandler.NewForm)
	web.POST("/assessments/new", webHandler.Create)
	web.GET("/assessments/:id/edit", webHandler.EditForm)
	web.POST("/assessments/:id/edit", webHandler.Update)
	web.POST("/assessments/:id/delete", webHandler.Delete)
	web.GET("/visualizations", webHandler.Visualizations)

	// --- JSON API (Bearer JWT, session fallback) ---
	e.POST("/api/auth/login", authHandler.APILogin)

	apiGroup := e.Group("/api", middleware.APIAuth(deps.JWTSecret))
	apiGroup.GET("/assessments", apiHandler.List)
	apiGroup.POST("/assessments", apiHandler.Create)
	apiGroup.GET("/assessments/:id", apiHandler.Get)
	apiGroup.PUT("/assessments/:id", apiHandler.Update)
	apiGroup.DELETE("/assessments/:id", apiHandler.Delete)
	apiGroup.GET("/insights/:id", insightHandler.Get)

	return e, nil
}
