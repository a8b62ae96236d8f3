package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	admindomain "github.com/hireline/job-application-services/api/internal/admin/domain"
)

type fakeAPI struct {
	records   []admindomain.SubmissionRecord
	listErr   error
	statusErr error
	deleteErr error

	statusCalls []string
	deleteCalls []string
}

func (f *fakeAPI) List(_ context.Context) ([]admindomain.SubmissionRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]admindomain.SubmissionRecord(nil), f.records...), nil
}

func (f *fakeAPI) UpdateStatus(_ context.Context, id string, status admindomain.Status) error {
	f.statusCalls = append(f.statusCalls, id+":"+status.String())
	return f.statusErr
}

func (f *fakeAPI) Delete(_ context.Context, id string) error {
	f.deleteCalls = append(f.deleteCalls, id)
	return f.deleteErr
}

func sampleRecords() []admindomain.SubmissionRecord {
	return []admindomain.SubmissionRecord{
		{ID: "1", FullName: "Ravi Kumar", Email: "ravi@example.com", Position: "Electrician", Status: "pending"},
		{ID: "2", FullName: "Ananya Iyer", Email: "ananya@example.com", Position: "Data Analyst", Status: "shortlisted"},
		{ID: "3", FullName: "Rohan Das", Email: "rohan@example.com", Position: "Site Supervisor", Status: "pending"},
	}
}

func newLoadedStore(t *testing.T, api SubmissionAPI) *ReviewStore {
	t.Helper()
	store := NewReviewStore(ReviewStoreConfig{API: api})
	require.NoError(t, store.Fetch(context.Background()))
	return store
}

func TestFetchFailureKeepsCache(t *testing.T) {
	api := &fakeAPI{records: sampleRecords()}
	store := newLoadedStore(t, api)
	require.Len(t, store.Submissions(), 3)

	api.listErr = errors.New("connection refused")
	assert.Error(t, store.Fetch(context.Background()))
	assert.Len(t, store.Submissions(), 3, "failed reload leaves the cache untouched")
}

func TestFilteredSearchAndStatus(t *testing.T) {
	store := newLoadedStore(t, &fakeAPI{records: sampleRecords()})

	tests := []struct {
		name    string
		term    string
		status  string
		wantIDs []string
	}{
		{name: "no filters", term: "", status: StatusFilterAll, wantIDs: []string{"1", "2", "3"}},
		{name: "name match is case-insensitive", term: "RAVI", status: StatusFilterAll, wantIDs: []string{"1"}},
		{name: "email match", term: "ananya@", status: StatusFilterAll, wantIDs: []string{"2"}},
		{name: "position match", term: "supervisor", status: StatusFilterAll, wantIDs: []string{"3"}},
		{name: "term matches several fields across records", term: "ro", status: StatusFilterAll, wantIDs: []string{"3"}},
		{name: "status only", term: "", status: "pending", wantIDs: []string{"1", "3"}},
		{name: "term and status must both hold", term: "ananya", status: "pending", wantIDs: nil},
		{name: "no matches", term: "zzz", status: StatusFilterAll, wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store.SetSearchTerm(tt.term)
			store.SetStatusFilter(tt.status)

			var ids []string
			for _, rec := range store.Filtered() {
				ids = append(ids, rec.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestUpdateStatusReplacesCacheAndSelection(t *testing.T) {
	api := &fakeAPI{records: sampleRecords()}
	store := newLoadedStore(t, api)
	require.True(t, store.Select("1"))

	require.NoError(t, store.UpdateStatus(context.Background(), "1", "reviewed"))

	assert.Equal(t, []string{"1:reviewed"}, api.statusCalls)
	assert.Equal(t, "reviewed", store.Submissions()[0].Status)
	assert.Equal(t, "reviewed", store.Selected().Status, "open detail view mirrors the change")
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	api := &fakeAPI{records: sampleRecords()}
	store := newLoadedStore(t, api)

	assert.Error(t, store.UpdateStatus(context.Background(), "1", "archived"))
	assert.Empty(t, api.statusCalls, "invalid status never reaches the backend")
}

func TestUpdateStatusBackendFailureLeavesCache(t *testing.T) {
	api := &fakeAPI{records: sampleRecords(), statusErr: errors.New("boom")}
	store := newLoadedStore(t, api)

	assert.Error(t, store.UpdateStatus(context.Background(), "1", "reviewed"))
	assert.Equal(t, "pending", store.Submissions()[0].Status)
}

func TestDeleteDeclinedIsNoop(t *testing.T) {
	api := &fakeAPI{records: sampleRecords()}
	store := NewReviewStore(ReviewStoreConfig{
		API:     api,
		Confirm: func(string) bool { return false },
	})
	require.NoError(t, store.Fetch(context.Background()))

	require.NoError(t, store.Delete(context.Background(), "1"))
	assert.Empty(t, api.deleteCalls)
	assert.Len(t, store.Submissions(), 3)
}

func TestDeleteRemovesRecordAndSelection(t *testing.T) {
	api := &fakeAPI{records: sampleRecords()}
	var prompt string
	store := NewReviewStore(ReviewStoreConfig{
		API: api,
		Confirm: func(p string) bool {
			prompt = p
			return true
		},
	})
	require.NoError(t, store.Fetch(context.Background()))
	require.True(t, store.Select("2"))

	require.NoError(t, store.Delete(context.Background(), "2"))

	assert.Equal(t, "Are you sure you want to delete this submission?", prompt)
	assert.Equal(t, []string{"2"}, api.deleteCalls)
	assert.Len(t, store.Submissions(), 2)
	assert.Nil(t, store.Selected())
}

func TestDeleteOtherRecordKeepsSelection(t *testing.T) {
	store := newLoadedStore(t, &fakeAPI{records: sampleRecords()})
	require.True(t, store.Select("1"))

	require.NoError(t, store.Delete(context.Background(), "3"))
	require.NotNil(t, store.Selected())
	assert.Equal(t, "1", store.Selected().ID)
}

func TestAnalyticsViewsIgnoreFilters(t *testing.T) {
	store := newLoadedStore(t, &fakeAPI{records: sampleRecords()})
	store.SetSearchTerm("ravi")
	store.SetStatusFilter("pending")

	stats := store.Stats()
	assert.Equal(t, 3, stats.Total, "aggregations always run over the full cache")
	assert.Equal(t, 2, stats.Pending)
	assert.Equal(t, 1, stats.Shortlisted)

	slices := store.StatusDistribution()
	require.Len(t, slices, 2)
	assert.Equal(t, "Pending", slices[0].Name)
}

func TestExportCSVUsesFullCache(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	store := NewReviewStore(ReviewStoreConfig{
		API:      &fakeAPI{records: sampleRecords()},
		Location: time.UTC,
		Now:      func() time.Time { return now },
	})
	require.NoError(t, store.Fetch(context.Background()))
	store.SetSearchTerm("ravi")

	filename, content := store.ExportCSV()
	assert.Equal(t, "job-applications-2026-09-01.csv", filename)
	assert.Len(t, strings.Split(content, "\n"), 4, "filters do not narrow the export")
}
