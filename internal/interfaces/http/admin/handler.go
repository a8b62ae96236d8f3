package admin

import (
	"log"
	"time"

	"github.com/go-chi/chi/v5"
	adminapp "github.com/hireline/job-application-services/api/internal/admin/application"
)

// Handler wires admin HTTP endpoints to application services.
type Handler struct {
	logger      *log.Logger
	submissions adminapp.SubmissionService
	location    *time.Location
}

// Config provides dependencies for Handler.
type Config struct {
	Logger      *log.Logger
	Submissions adminapp.SubmissionService
	Location    *time.Location
}

// NewHandler constructs the admin HTTP handler set.
func NewHandler(cfg Config) *Handler {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		logger:      cfg.Logger,
		submissions: cfg.Submissions,
		location:    loc,
	}
}

// Register mounts admin routes onto router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.applicationListHandler())
	r.Get("/export", h.exportHandler())
	r.Get("/metrics", h.metricsHandler())
	r.Get("/{id}", h.applicationDetailHandler())
	r.Patch("/{id}/status", h.statusUpdateHandler())
	r.Delete("/{id}", h.applicationDeleteHandler())
}
