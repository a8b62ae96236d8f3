package public

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	admindomain "github.com/hireline/job-application-services/api/internal/admin/domain"
)

// SubmissionStore persists accepted applications.
type SubmissionStore interface {
	Insert(ctx context.Context, record *admindomain.SubmissionRecord) error
}

// Handler wires the public submission endpoint to persistence.
type Handler struct {
	logger      *log.Logger
	submissions SubmissionStore
	uploadDir   string
}

// Config provides dependencies for Handler.
type Config struct {
	Logger      *log.Logger
	Submissions SubmissionStore
	UploadDir   string
}

// NewHandler constructs the public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:      cfg.Logger,
		submissions: cfg.Submissions,
		uploadDir:   cfg.UploadDir,
	}
}

// Register mounts public routes onto router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/", h.applicationCreateHandler())
}
