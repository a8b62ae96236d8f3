package application

import (
	"context"

	admindomain "github.com/hireline/job-application-services/api/internal/admin/domain"
)

// SubmissionRepository exposes persistence operations on applications.
type SubmissionRepository interface {
	FindAll(ctx context.Context) ([]admindomain.SubmissionRecord, error)
	FindByID(ctx context.Context, id string) (*admindomain.SubmissionRecord, error)
	Insert(ctx context.Context, record *admindomain.SubmissionRecord) error
	UpdateStatus(ctx context.Context, id string, status admindomain.Status) error
	Delete(ctx context.Context, id string) error
}

// SubmissionService describes the review use-cases behind the admin API.
type SubmissionService interface {
	List(ctx context.Context) ([]admindomain.SubmissionRecord, error)
	Detail(ctx context.Context, id string) (*admindomain.SubmissionRecord, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type submissionService struct {
	repo SubmissionRepository
}

// NewSubmissionService wires the review use-cases to a repository.
func NewSubmissionService(repo SubmissionRepository) SubmissionService {
	return &submissionService{repo: repo}
}

func (s *submissionService) List(ctx context.Context) ([]admindomain.SubmissionRecord, error) {
	return s.repo.FindAll(ctx)
}

func (s *submissionService) Detail(ctx context.Context, id string) (*admindomain.SubmissionRecord, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *submissionService) UpdateStatus(ctx context.Context, id, status string) error {
	parsed, err := admindomain.NewStatus(status)
	if err != nil {
		return err
	}
	return s.repo.UpdateStatus(ctx, id, parsed)
}

func (s *submissionService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
