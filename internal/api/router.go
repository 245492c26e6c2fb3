package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/servicedesk/service-desk/internal/api/handler"
	"github.com/servicedesk/service-desk/internal/api/middleware"
	"github.com/servicedesk/service-desk/internal/core/domain"
	"github.com/servicedesk/service-desk/internal/core/ports"
)

// Deps is everything the HTTP layer needs from the rest of the process.
type Deps struct {
	Auth      ports.AuthService
	Catalog   ports.CatalogService
	Incidents ports.IncidentService
	Messages  ports.MessageService

	// Checks are the readiness probes by dependency name.
	Checks map[string]handler.Check
	Logger zerolog.Logger
	// SecureCookie marks the token cookie Secure.
	SecureCookie bool
	// Registry receives the HTTP request metrics. Nil means the default
	// prometheus registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(promConfig(d.Registry)))

	// --- Handlers ---
	public := handler.NewPublicHandler(d.Catalog, d.Incidents)
	auth := handler.NewAuthHandler(d.Auth, d.SecureCookie)
	itsm := handler.NewITSMHandler(d.Incidents)
	services := handler.NewServiceHandler(d.Catalog)
	chat := handler.NewChatHandler(d.Messages)
	health := handler.NewHealthHandler(d.Checks)

	requireAuth := middleware.Auth(d.Auth)
	canManage := middleware.RequireRole(domain.RoleAdmin, domain.RoleEmployee)

	// --- Public site ---
	e.GET("/", public.Home)
	e.GET("/request/", public.RequestForm)
	e.POST("/request/", public.Submit, middleware.OptionalAuth(d.Auth))

	// --- Sign in / out ---
	e.GET("/workers-login/", auth.WorkersLogin)
	e.POST(handler.LoginPath, auth.Login)
	e.POST("/logout/", auth.Logout, requireAuth)

	// --- ITSM panel ---
	panel := e.Group("/itsm", requireAuth)
	panel.GET("/", itsm.Dashboard)
	panel.GET("/incidents/", itsm.ListIncidents)
	panel.GET("/incidents/:id/", itsm.IncidentDetail)
	panel.POST("/incidents/:id/", itsm.IncidentAction)

	panel.GET("/services/", services.List)
	panel.GET("/services/create/", services.CreateForm, canManage)
	panel.POST("/services/create/", services.Create, canManage)
	panel.GET("/services/:id/edit/", services.EditForm, canManage)
	panel.POST("/services/:id/edit/", services.Update, canManage)
	panel.GET("/services/:id/delete/", services.DeletePreview, canManage)
	panel.POST("/services/:id/delete/", services.Delete, canManage)

	// --- Direct messages ---
	rooms := e.Group("/chat", requireAuth)
	rooms.GET("/", chat.Contacts)
	rooms.GET("/:user_id/", chat.Room)

	messages := e.Group("/api/messages", requireAuth)
	messages.POST("/send/", chat.Send)
	messages.GET("/:user_id/", chat.Messages)

	// --- Operations ---
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", metricsHandler(d.Registry))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func promConfig(reg *prometheus.Registry) echoprometheus.MiddlewareConfig {
	cfg := echoprometheus.MiddlewareConfig{
		Subsystem: "servicedesk",
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}
	if reg != nil {
		cfg.Registerer = reg
	}
	return cfg
}

func metricsHandler(reg *prometheus.Registry) echo.HandlerFunc {
	if reg == nil {
		return echoprometheus.NewHandler()
	}
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg})
}

// requestLogger writes one zerolog event per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
