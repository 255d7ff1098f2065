package http

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/kpi-dashboard/internal/config"
	"github.com/cmlabs-hris/kpi-dashboard/internal/handler/http/middleware"
	"github.com/cmlabs-hris/kpi-dashboard/internal/handler/http/response"
	"github.com/cmlabs-hris/kpi-dashboard/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// NewLogger builds the JSON logger in the ECS schema used for request logs
func NewLogger(w io.Writer, app config.AppConfig, level slog.Level) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(false)
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", app.Name),
		slog.String("version", app.Version),
		slog.String("env", app.Env),
	)
}

// RouterOptions holds the non-handler router settings
type RouterOptions struct {
	AllowedOrigins []string
	DefaultStoreID string
	LogLevel       slog.Level
}

// NewRouter wires the KPI routes. A nil JWTService leaves /api/v1 open.
func NewRouter(logger *slog.Logger, opts RouterOptions, JWTService jwt.Service, kpiHandler KPIHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})

	r.Route("/api/v1", func(r chi.Router) {
		if JWTService != nil {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)
		}

		r.Group(func(r chi.Router) {
			if JWTService != nil {
				r.Use(middleware.StoreAccess(opts.DefaultStoreID))
			}
			r.Get("/dashboard", kpiHandler.GetDefaultDashboard)
		})

		r.Route("/stores/{storeID}", func(r chi.Router) {
			if JWTService != nil {
				r.Use(middleware.StoreAccess(opts.DefaultStoreID))
			}
			r.Get("/dashboard", kpiHandler.GetDashboard)
			r.Get("/topline", kpiHandler.GetTopline)
			r.Get("/hourly-sales", kpiHandler.GetHourlySales)

			r.Route("/waste", func(r chi.Router) {
				r.Get("/", kpiHandler.GetWasteSummary)
				r.Get("/export", kpiHandler.ExportWasteSummary)
			})

			r.Route("/labor", func(r chi.Router) {
				r.Get("/", kpiHandler.GetLaborKPIs)
				r.Get("/export", kpiHandler.ExportLaborKPIs)
			})
		})
	})
	return r
}
