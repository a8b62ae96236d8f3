package application

import (
	"context"
	"log"
	"strings"
	"time"

	admindomain "github.com/hireline/job-application-services/api/internal/admin/domain"
)

// SubmissionAPI is the slice of the applications API the review store needs.
type SubmissionAPI interface {
	List(ctx context.Context) ([]admindomain.SubmissionRecord, error)
	UpdateStatus(ctx context.Context, id string, status admindomain.Status) error
	Delete(ctx context.Context, id string) error
}

// ConfirmFunc asks the operator to confirm a destructive action.
type ConfirmFunc func(prompt string) bool

// StatusFilterAll disables status filtering.
const StatusFilterAll = "all"

// ReviewStoreConfig carries ReviewStore dependencies.
type ReviewStoreConfig struct {
	API      SubmissionAPI
	Confirm  ConfirmFunc
	Logger   *log.Logger
	Location *time.Location
	Now      func() time.Time
}

// ReviewStore holds the cached submission collection behind the review
// dashboard: search and status filtering, status changes, confirmed deletes
// and the analytics views. It is driven from a single event loop and does
// its own locking nowhere; callers serialize access.
type ReviewStore struct {
	api      SubmissionAPI
	confirm  ConfirmFunc
	logger   *log.Logger
	location *time.Location
	now      func() time.Time

	submissions  []admindomain.SubmissionRecord
	selected     *admindomain.SubmissionRecord
	searchTerm   string
	statusFilter string
	loading      bool
}

// NewReviewStore returns an empty store with filtering disabled.
func NewReviewStore(cfg ReviewStoreConfig) *ReviewStore {
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	confirm := cfg.Confirm
	if confirm == nil {
		confirm = func(string) bool { return true }
	}
	return &ReviewStore{
		api:          cfg.API,
		confirm:      confirm,
		logger:       cfg.Logger,
		location:     loc,
		now:          now,
		statusFilter: StatusFilterAll,
	}
}

// Fetch reloads the full collection from the API. On failure the cached
// collection stays as it was.
func (s *ReviewStore) Fetch(ctx context.Context) error {
	s.loading = true
	defer func() { s.loading = false }()

	records, err := s.api.List(ctx)
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("submission fetch failed: %v", err)
		}
		return err
	}
	s.submissions = records
	return nil
}

// Loading reports whether a fetch is in progress.
func (s *ReviewStore) Loading() bool { return s.loading }

// Submissions returns a copy of the cached collection.
func (s *ReviewStore) Submissions() []admindomain.SubmissionRecord {
	return append([]admindomain.SubmissionRecord(nil), s.submissions...)
}

// SetSearchTerm updates the free-text filter.
func (s *ReviewStore) SetSearchTerm(term string) { s.searchTerm = term }

// SetStatusFilter updates the status filter; StatusFilterAll disables it.
func (s *ReviewStore) SetStatusFilter(filter string) { s.statusFilter = filter }

// Filtered returns the records matching the current search term and status
// filter. The search term matches name, email or position, case-insensitive;
// both conditions must hold. The view is recomputed on every call.
func (s *ReviewStore) Filtered() []admindomain.SubmissionRecord {
	term := strings.ToLower(s.searchTerm)

	out := make([]admindomain.SubmissionRecord, 0, len(s.submissions))
	for _, rec := range s.submissions {
		if term != "" &&
			!strings.Contains(strings.ToLower(rec.FullName), term) &&
			!strings.Contains(strings.ToLower(rec.Email), term) &&
			!strings.Contains(strings.ToLower(rec.Position), term) {
			continue
		}
		if s.statusFilter != StatusFilterAll && rec.Status != s.statusFilter {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Select marks a record as the one open in the detail view.
func (s *ReviewStore) Select(id string) bool {
	for _, rec := range s.submissions {
		if rec.ID == id {
			selected := rec
			s.selected = &selected
			return true
		}
	}
	return false
}

// ClearSelection closes the detail view.
func (s *ReviewStore) ClearSelection() { s.selected = nil }

// Selected returns a copy of the open record, or nil.
func (s *ReviewStore) Selected() *admindomain.SubmissionRecord {
	if s.selected == nil {
		return nil
	}
	selected := *s.selected
	return &selected
}

// UpdateStatus changes a record's status through the API and, on success,
// replaces the cached record and mirrors the change into the selection. A
// failed call leaves the cache untouched.
func (s *ReviewStore) UpdateStatus(ctx context.Context, id, status string) error {
	parsed, err := admindomain.NewStatus(status)
	if err != nil {
		return err
	}
	if err := s.api.UpdateStatus(ctx, id, parsed); err != nil {
		if s.logger != nil {
			s.logger.Printf("status update failed id=%s: %v", id, err)
		}
		return err
	}

	updated := make([]admindomain.SubmissionRecord, len(s.submissions))
	for i, rec := range s.submissions {
		if rec.ID == id {
			rec.Status = parsed.String()
		}
		updated[i] = rec
	}
	s.submissions = updated

	if s.selected != nil && s.selected.ID == id {
		selected := *s.selected
		selected.Status = parsed.String()
		s.selected = &selected
	}
	return nil
}

// Delete removes a record after operator confirmation. A declined prompt is
// a silent no-op. On success the record leaves the cache and a matching
// selection is cleared.
func (s *ReviewStore) Delete(ctx context.Context, id string) error {
	if !s.confirm("Are you sure you want to delete this submission?") {
		return nil
	}
	if err := s.api.Delete(ctx, id); err != nil {
		if s.logger != nil {
			s.logger.Printf("submission delete failed id=%s: %v", id, err)
		}
		return err
	}

	kept := make([]admindomain.SubmissionRecord, 0, len(s.submissions))
	for _, rec := range s.submissions {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	s.submissions = kept

	if s.selected != nil && s.selected.ID == id {
		s.selected = nil
	}
	return nil
}

// StatusDistribution recomputes the status breakdown over the full cache.
func (s *ReviewStore) StatusDistribution() []admindomain.StatusSlice {
	return admindomain.StatusDistribution(s.submissions)
}

// ApplicationsOverTime recomputes the trailing 30-day series.
func (s *ReviewStore) ApplicationsOverTime() []admindomain.DailyCount {
	return admindomain.ApplicationsOverTime(s.submissions, s.now(), s.location)
}

// EducationDistribution recomputes the education-level chart.
func (s *ReviewStore) EducationDistribution() []admindomain.LabelCount {
	return admindomain.EducationDistribution(s.submissions)
}

// PositionDistribution recomputes the position chart.
func (s *ReviewStore) PositionDistribution() []admindomain.LabelCount {
	return admindomain.PositionDistribution(s.submissions)
}

// ExperienceDistribution recomputes the experience chart.
func (s *ReviewStore) ExperienceDistribution() []admindomain.LabelCount {
	return admindomain.ExperienceDistribution(s.submissions)
}

// Stats recomputes the headline numbers.
func (s *ReviewStore) Stats() admindomain.SummaryStats {
	return admindomain.Summarize(s.submissions, s.now(), s.location)
}

// ExportCSV serializes the full cached collection, ignoring active filters.
func (s *ReviewStore) ExportCSV() (filename, content string) {
	return admindomain.ExportCSV(s.submissions, s.now(), s.location)
}
