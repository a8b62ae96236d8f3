package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireline/job-application-services/api/internal/applicant/domain"
)

type fakeSubmitter struct {
	err      error
	payloads []*Payload
}

func (f *fakeSubmitter) Submit(_ context.Context, payload *Payload) error {
	f.payloads = append(f.payloads, payload)
	return f.err
}

func newTestModel(t *testing.T, submitter Submitter) *FormModel {
	t.Helper()
	m := New(Config{Submitter: submitter, ResetDelay: 20 * time.Millisecond})
	t.Cleanup(m.Close)
	return m
}

func TestUpdateFieldClearsError(t *testing.T) {
	m := newTestModel(t, &fakeSubmitter{})

	require.NoError(t, m.UpdateField("email", "broken"))
	m.Validate()
	require.Contains(t, m.Errors(), "email")

	require.NoError(t, m.UpdateField("email", "still broken"))
	assert.NotContains(t, m.Errors(), "email")
}

func TestUpdateFieldEducationClearsBranch(t *testing.T) {
	m := newTestModel(t, &fakeSubmitter{})

	require.NoError(t, m.UpdateField("branch", "computer-engineering"))
	require.NoError(t, m.UpdateField("education", "diploma"))

	draft := m.Draft()
	assert.Equal(t, "diploma", draft.Education)
	assert.Equal(t, "", draft.Branch)
}

func TestUpdateFieldUnknownKey(t *testing.T) {
	m := newTestModel(t, &fakeSubmitter{})
	assert.Error(t, m.UpdateField("favouriteColour", "blue"))
}

func TestSameAsPermanentCopiesOnce(t *testing.T) {
	m := newTestModel(t, &fakeSubmitter{})

	require.NoError(t, m.UpdateField("permanentAddress", "12 MG Road"))
	require.NoError(t, m.UpdateField("permanentCity", "Pune"))

	m.SetSameAsPermanent(true)
	draft := m.Draft()
	assert.Equal(t, "12 MG Road", draft.CurrentAddress)
	assert.Equal(t, "Pune", draft.CurrentCity)

	// Later edits to the permanent block do not propagate.
	require.NoError(t, m.UpdateField("permanentCity", "Mumbai"))
	assert.Equal(t, "Pune", m.Draft().CurrentCity)

	// Unchecking clears nothing.
	m.SetSameAsPermanent(false)
	assert.Equal(t, "12 MG Road", m.Draft().CurrentAddress)
}

func TestEducationRowLifecycle(t *testing.T) {
	m := newTestModel(t, &fakeSubmitter{})

	// The last row cannot be removed.
	m.RemoveEducation(0)
	require.Len(t, m.Educations(), 1)

	m.AddEducation()
	require.Len(t, m.Educations(), 2)

	require.NoError(t, m.UpdateEducation(1, "education", "btech"))
	require.NoError(t, m.UpdateEducation(1, "branch", "civil-engineering"))
	require.NoError(t, m.UpdateEducation(1, "otherBranch", "marine"))

	// Changing the level resets the dependent branch fields.
	require.NoError(t, m.UpdateEducation(1, "education", "mba"))
	entry := m.Educations()[1]
	assert.Equal(t, "mba", entry.Level)
	assert.Equal(t, "", entry.Branch)
	assert.Equal(t, "", entry.OtherBranch)

	m.RemoveEducation(0)
	rows := m.Educations()
	require.Len(t, rows, 1)
	assert.Equal(t, "mba", rows[0].Level)
}

func TestExperienceRowLifecycle(t *testing.T) {
	m := newTestModel(t, &fakeSubmitter{})

	m.RemoveExperience(0)
	require.Len(t, m.WorkExperiences(), 1)

	m.AddExperience()
	require.NoError(t, m.UpdateExperience(1, "company", "Infosys"))
	require.NoError(t, m.UpdateExperience(1, "endDate", "2024-01"))
	require.NoError(t, m.UpdateExperience(1, "currentlyWorking", "true"))

	entry := m.WorkExperiences()[1]
	assert.True(t, entry.CurrentlyWorking)
	assert.Equal(t, "", entry.EndDate, "current role has no end date")
}

func TestRemoveExperienceDropsErrorsWithoutRekeying(t *testing.T) {
	m := newTestModel(t, &fakeSubmitter{})
	m.AddExperience()
	m.AddExperience()

	// Seed row-scoped errors by hand through the map the engine maintains.
	m.mu.Lock()
	m.fieldErrors["experience_0_company"] = "required"
	m.fieldErrors["experience_1_company"] = "required"
	m.fieldErrors["experience_2_startDate"] = "required"
	m.mu.Unlock()

	m.RemoveExperience(1)

	errs := m.Errors()
	assert.Contains(t, errs, "experience_0_company")
	assert.NotContains(t, errs, "experience_1_company")
	// The key for the old index 2 is not shifted down.
	assert.Contains(t, errs, "experience_2_startDate")
}

func TestAttachFileRejectionKeepsPrevious(t *testing.T) {
	m := newTestModel(t, &fakeSubmitter{})

	good := domain.Attachment{Name: "cv.pdf", MediaType: "application/pdf", Size: 100}
	require.NoError(t, m.AttachFile("resume", good))

	bad := domain.Attachment{Name: "cv.exe", MediaType: "application/octet-stream", Size: 100}
	err := m.AttachFile("resume", bad)
	require.Error(t, err)
	assert.Equal(t, "Please upload a PDF or Word document", m.Errors()["resume"])

	staged, ok := m.Attachment("resume")
	require.True(t, ok)
	assert.Equal(t, "cv.pdf", staged.Name)

	// A later valid upload clears the error.
	require.NoError(t, m.AttachFile("resume", good))
	assert.NotContains(t, m.Errors(), "resume")
}

func TestAttachOtherCertificatesIsAtomic(t *testing.T) {
	m := newTestModel(t, &fakeSubmitter{})

	first := []domain.Attachment{{Name: "a.pdf", MediaType: "application/pdf", Size: 10}}
	require.NoError(t, m.AttachOtherCertificates(first))

	mixed := []domain.Attachment{
		{Name: "b.pdf", MediaType: "application/pdf", Size: 10},
		{Name: "huge.png", MediaType: "image/png", Size: 6 * 1024 * 1024},
	}
	err := m.AttachOtherCertificates(mixed)
	require.Error(t, err)
	assert.Equal(t, "Each file must be less than 5MB", m.Errors()["otherCertificates"])

	staged := m.OtherCertificates()
	require.Len(t, staged, 1)
	assert.Equal(t, "a.pdf", staged[0].Name)
}

func TestSubmitValidationFailureStaysEditing(t *testing.T) {
	submitter := &fakeSubmitter{}
	m := newTestModel(t, submitter)

	require.NoError(t, m.UpdateField("email", "not-an-email"))

	err := m.Submit(context.Background())
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, StateEditing, m.State())
	assert.Empty(t, submitter.payloads)
	assert.Contains(t, m.Errors(), "email")
}

func TestSubmitSuccessResetsAfterDelay(t *testing.T) {
	submitter := &fakeSubmitter{}
	m := newTestModel(t, submitter)

	require.NoError(t, m.UpdateField("fullName", "Ravi Kumar"))
	require.NoError(t, m.UpdateField("email", "ravi@example.com"))
	m.SetFresher(true)

	require.NoError(t, m.Submit(context.Background()))
	assert.Equal(t, StateSubmitted, m.State())
	require.Len(t, submitter.payloads, 1)

	assert.Eventually(t, func() bool {
		return m.State() == StateEditing
	}, time.Second, 5*time.Millisecond)

	draft := m.Draft()
	assert.Equal(t, "", draft.FullName)
	assert.False(t, m.IsFresher())
	assert.Len(t, m.Educations(), 1)
	assert.Len(t, m.WorkExperiences(), 1)
}

func TestSubmitBackendFailureKeepsDraft(t *testing.T) {
	submitter := &fakeSubmitter{err: errors.New("Failed to save application")}
	m := newTestModel(t, submitter)

	require.NoError(t, m.UpdateField("fullName", "Ravi Kumar"))

	err := m.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, StateEditing, m.State())
	assert.Equal(t, "Failed to save application", m.LastSubmitError())
	assert.Equal(t, "Ravi Kumar", m.Draft().FullName)

	// Recovery: the same draft can be resubmitted.
	submitter.err = nil
	require.NoError(t, m.Submit(context.Background()))
	assert.Equal(t, StateSubmitted, m.State())
}

func TestSubmitWhileSubmittedIsRejected(t *testing.T) {
	m := newTestModel(t, &fakeSubmitter{})

	require.NoError(t, m.Submit(context.Background()))
	assert.ErrorIs(t, m.Submit(context.Background()), ErrSubmitInProgress)
}

func TestCloseCancelsReset(t *testing.T) {
	m := New(Config{Submitter: &fakeSubmitter{}, ResetDelay: 50 * time.Millisecond})

	require.NoError(t, m.UpdateField("fullName", "Ravi Kumar"))
	require.NoError(t, m.Submit(context.Background()))
	m.Close()

	time.Sleep(100 * time.Millisecond)
	// The reset never ran; the submitted draft is still visible.
	assert.Equal(t, "Ravi Kumar", m.Draft().FullName)
}
