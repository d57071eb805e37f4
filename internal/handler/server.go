// Package handler implements the HTTP handlers for the FuelTrackr API.
// Handlers are methods on Server, split into resource-specific files
// (user.go, travel.go, export.go, health.go) that all share the same struct
// so they can access its dependencies. Routing lives in Routes; request and
// response shapes are plain structs defined next to the handlers that use
// them.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pereras/fueltrackr/backend/internal/domain"
	"github.com/pereras/fueltrackr/backend/internal/middleware"
	"github.com/pereras/fueltrackr/backend/internal/report"
	"github.com/pereras/fueltrackr/backend/internal/service"
)

// UserServicer defines the account operations the user handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type UserServicer interface {
	Register(ctx context.Context, in service.RegisterInput) (domain.User, error)
	Login(ctx context.Context, email, password string) (string, domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdateRole(ctx context.Context, actor domain.Identity, email string, role domain.Role) (domain.User, error)
	Delete(ctx context.Context, actor domain.Identity, email string) error
}

// TravelServicer defines the travel log operations the travel handlers
// depend on.
type TravelServicer interface {
	Create(ctx context.Context, owner domain.Identity, in service.TravelLogInput) (domain.TravelLog, error)
	ListMine(ctx context.Context, owner domain.Identity) ([]domain.TravelLog, error)
	ListAll(ctx context.Context) ([]domain.TravelLog, error)
	Summarize(ctx context.Context) (domain.Summary, error)
}

// Exporter defines the report assembly operation the export handler depends
// on. Rendering is done by the report package directly.
type Exporter interface {
	BuildTable(ctx context.Context, resource service.ExportResource) (report.Table, error)
}

// Server holds the dependencies shared by all API handlers.
type Server struct {
	users   UserServicer
	travels TravelServicer
	export  Exporter
	openapi []byte
}

// NewServer constructs the Server with all its dependencies.
// openapi is the raw spec served at /openapi.yaml; pass nil to disable.
func NewServer(users UserServicer, travels TravelServicer, export Exporter, openapi []byte) *Server {
	return &Server{users: users, travels: travels, export: export, openapi: openapi}
}

// Routes assembles the full route tree. authn is the bearer-token
// authenticator from the middleware package; it runs before every protected
// route, and admin routes additionally pass through RequireRole, so no
// protected handler ever executes — and no data fetch is ever issued — for
// an unauthorized caller.
func (s *Server) Routes(authn func(http.Handler) http.Handler) chi.Router {
	admin := middleware.RequireRole(domain.RoleAdmin)

	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	if s.openapi != nil {
		r.Get("/openapi.yaml", s.GetOpenAPI)
	}

	r.Route("/users", func(r chi.Router) {
		r.Post("/register", s.Register)
		r.Post("/login", s.Login)

		r.Group(func(r chi.Router) {
			r.Use(authn)
			r.Get("/me", s.GetMe)

			r.Group(func(r chi.Router) {
				r.Use(admin)
				r.Get("/all", s.ListUsers)
				r.Put("/{email}", s.UpdateUserRole)
				r.Delete("/{email}", s.DeleteUser)
			})
		})
	})

	r.Route("/travels", func(r chi.Router) {
		r.Use(authn)
		r.Post("/", s.CreateTravelLog)
		r.Get("/me", s.ListMyTravelLogs)

		r.Group(func(r chi.Router) {
			r.Use(admin)
			r.Get("/all", s.ListAllTravelLogs)
			r.Get("/summary", s.GetSummary)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(authn, admin)
		r.Get("/export", s.Export)
	})

	return r
}

// identity returns the authenticated identity stored by the auth middleware.
// Handlers behind authn can rely on it being present; the ok flag guards
// against miswired routes.
func identity(r *http.Request) (domain.Identity, bool) {
	return middleware.IdentityFrom(r.Context())
}
