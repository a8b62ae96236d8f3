package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/hireline/job-application-services/api/internal/applicant/domain"
)

// State is the submission phase of the form.
type State int

const (
	StateEditing State = iota
	StateSubmitting
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	case StateSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// ErrValidation is returned by Submit when the draft fails format checks.
// The per-field messages are available through Errors.
var ErrValidation = errors.New("application has validation errors")

// ErrSubmitInProgress is returned when Submit is called outside the editing
// state.
var ErrSubmitInProgress = errors.New("submission already in progress")

// Submitter delivers a finished payload to the applications API.
type Submitter interface {
	Submit(ctx context.Context, payload *Payload) error
}

// DefaultResetDelay is how long the submitted confirmation stays before the
// form clears itself for the next applicant.
const DefaultResetDelay = 3 * time.Second

// Config carries FormModel dependencies.
type Config struct {
	Submitter  Submitter
	Logger     *log.Logger
	ResetDelay time.Duration
}

// FormModel owns the state of one application form: the flat draft, the
// repeatable education and work-experience sections, staged attachments,
// field errors and the submit state machine.
//
// The timer that clears the form after a successful submit fires on its own
// goroutine, so all state is guarded by a mutex.
type FormModel struct {
	mu sync.Mutex

	submitter  Submitter
	logger     *log.Logger
	resetDelay time.Duration

	draft           domain.ApplicationDraft
	educations      []domain.EducationEntry
	workExperiences []domain.WorkExperienceEntry
	isFresher       bool
	sameAsPermanent bool

	attachments       map[string]domain.Attachment
	otherCertificates []domain.Attachment

	fieldErrors map[string]string
	state       State
	lastSubmit  string

	resetTimer *time.Timer
	closed     bool
}

// New returns a FormModel in the editing state with one empty education and
// one empty work-experience row.
func New(cfg Config) *FormModel {
	delay := cfg.ResetDelay
	if delay <= 0 {
		delay = DefaultResetDelay
	}
	m := &FormModel{
		submitter:  cfg.Submitter,
		logger:     cfg.Logger,
		resetDelay: delay,
	}
	m.resetLocked()
	return m
}

// Close cancels the pending reset timer, if any. The model must not be used
// afterwards.
func (m *FormModel) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	if m.resetTimer != nil {
		m.resetTimer.Stop()
		m.resetTimer = nil
	}
}

// UpdateField sets one flat draft field by its form name and clears any
// recorded error for that field. The legacy top-level "education" key also
// clears the top-level branch, matching the dependent select behaviour.
func (m *FormModel) UpdateField(name, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch name {
	case "fullName":
		m.draft.FullName = value
	case "fatherName":
		m.draft.FatherName = value
	case "email":
		m.draft.Email = value
	case "phone":
		m.draft.Phone = value
	case "currentAddress":
		m.draft.CurrentAddress = value
	case "currentCity":
		m.draft.CurrentCity = value
	case "currentState":
		m.draft.CurrentState = value
	case "currentCountry":
		m.draft.CurrentCountry = value
	case "permanentAddress":
		m.draft.PermanentAddress = value
	case "permanentCity":
		m.draft.PermanentCity = value
	case "permanentState":
		m.draft.PermanentState = value
	case "permanentCountry":
		m.draft.PermanentCountry = value
	case "position":
		m.draft.Position = value
	case "experience":
		m.draft.Experience = value
	case "otherExperience":
		m.draft.OtherExperience = value
	case "education":
		m.draft.Education = value
		m.draft.Branch = ""
	case "otherEducation":
		m.draft.OtherEducation = value
	case "stream":
		m.draft.Stream = value
	case "otherStream":
		m.draft.OtherStream = value
	case "course":
		m.draft.Course = value
	case "branch":
		m.draft.Branch = value
	case "otherBranch":
		m.draft.OtherBranch = value
	case "coverLetter":
		m.draft.CoverLetter = value
	case "availability":
		m.draft.Availability = value
	case "otherAvailability":
		m.draft.OtherAvailability = value
	case "expectedSalary":
		m.draft.ExpectedSalary = value
	case "linkedIn":
		m.draft.LinkedIn = value
	case "portfolio":
		m.draft.Portfolio = value
	default:
		return fmt.Errorf("unknown field %q", name)
	}

	delete(m.fieldErrors, name)
	return nil
}

// SetSameAsPermanent toggles address mirroring. Enabling copies the
// permanent address block into the current one once; later edits to either
// block are independent, and disabling clears nothing.
func (m *FormModel) SetSameAsPermanent(on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sameAsPermanent = on
	if on {
		m.draft.CurrentAddress = m.draft.PermanentAddress
		m.draft.CurrentCity = m.draft.PermanentCity
		m.draft.CurrentState = m.draft.PermanentState
		m.draft.CurrentCountry = m.draft.PermanentCountry
	}
}

// SetFresher marks the applicant as having no prior work experience. The
// work-experience rows are kept for editing; the payload carries an empty
// list while the flag is on.
func (m *FormModel) SetFresher(on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.isFresher = on
}

// AttachFile stages a single-file upload. A file failing the field's
// allow-list or the size limit records a field error and leaves any
// previously staged file in place.
func (m *FormModel) AttachFile(field string, file domain.Attachment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rule, ok := domain.AttachmentRuleFor(field)
	if !ok {
		return fmt.Errorf("unknown upload field %q", field)
	}
	if err := rule.Check(file); err != nil {
		m.fieldErrors[field] = err.Error()
		return err
	}
	m.attachments[field] = file
	delete(m.fieldErrors, field)
	return nil
}

// AttachOtherCertificates stages the multi-file certificate batch. The batch
// is atomic: one bad file rejects the whole selection and keeps the previous
// batch.
func (m *FormModel) AttachOtherCertificates(files []domain.Attachment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(files) == 0 {
		return nil
	}
	for _, file := range files {
		if err := domain.OtherCertificatesRule.Check(file); err != nil {
			m.fieldErrors["otherCertificates"] = err.Error()
			return err
		}
	}
	m.otherCertificates = append([]domain.Attachment(nil), files...)
	delete(m.fieldErrors, "otherCertificates")
	return nil
}

// AddEducation appends an empty education row.
func (m *FormModel) AddEducation() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.educations = append(m.educations, domain.NewEducationEntry())
}

// RemoveEducation deletes the row at index. The last remaining row cannot be
// removed.
func (m *FormModel) RemoveEducation(index int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.educations) <= 1 || index < 0 || index >= len(m.educations) {
		return
	}
	m.educations = append(m.educations[:index], m.educations[index+1:]...)
}

// UpdateEducation sets one field of an education row. Changing the level
// resets the row's branch selection since branch options depend on it.
func (m *FormModel) UpdateEducation(index int, field, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if index < 0 || index >= len(m.educations) {
		return fmt.Errorf("education index %d out of range", index)
	}
	entry := &m.educations[index]
	switch field {
	case "education":
		entry.Level = value
		entry.Branch = ""
		entry.OtherBranch = ""
	case "otherEducation":
		entry.OtherLevel = value
	case "stream":
		entry.Stream = value
	case "otherStream":
		entry.OtherStream = value
	case "course":
		entry.Course = value
	case "branch":
		entry.Branch = value
	case "otherBranch":
		entry.OtherBranch = value
	case "schoolName":
		entry.SchoolName = value
	case "percentage":
		entry.Percentage = value
	case "duration":
		entry.Duration = value
	case "passingYear":
		entry.PassingYear = value
	default:
		return fmt.Errorf("unknown education field %q", field)
	}
	return nil
}

// AddExperience appends an empty work-experience row.
func (m *FormModel) AddExperience() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.workExperiences = append(m.workExperiences, domain.NewWorkExperienceEntry())
}

// RemoveExperience deletes the row at index and drops its field errors.
// Errors recorded for later rows keep their original index keys; the keys
// are not shifted down.
func (m *FormModel) RemoveExperience(index int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.workExperiences) <= 1 || index < 0 || index >= len(m.workExperiences) {
		return
	}
	m.workExperiences = append(m.workExperiences[:index], m.workExperiences[index+1:]...)

	prefix := experienceErrorKey(index, "")
	for key := range m.fieldErrors {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(m.fieldErrors, key)
		}
	}
}

// UpdateExperience sets one field of a work-experience row and clears the
// row-field error. Marking a row as currently working clears its end date.
func (m *FormModel) UpdateExperience(index int, field, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if index < 0 || index >= len(m.workExperiences) {
		return fmt.Errorf("experience index %d out of range", index)
	}
	entry := &m.workExperiences[index]
	switch field {
	case "company":
		entry.Company = value
	case "jobTitle":
		entry.JobTitle = value
	case "startDate":
		entry.StartDate = value
	case "endDate":
		entry.EndDate = value
	case "currentlyWorking":
		entry.CurrentlyWorking = value == "true"
		if entry.CurrentlyWorking {
			entry.EndDate = ""
		}
	case "department":
		entry.Department = value
	case "otherDepartment":
		entry.OtherDepartment = value
	case "freelancing":
		entry.Freelancing = value
	case "description":
		entry.Description = value
	default:
		return fmt.Errorf("unknown experience field %q", field)
	}

	delete(m.fieldErrors, experienceErrorKey(index, field))
	return nil
}

// Validate runs the submit-time format checks and records the results.
func (m *FormModel) Validate() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.validateLocked()
}

func (m *FormModel) validateLocked() map[string]string {
	errs := domain.ValidateDraft(m.draft)
	for key, msg := range errs {
		m.fieldErrors[key] = msg
	}
	return errs
}

// Submit validates the draft, builds the multipart payload and delivers it.
// On success the form enters the submitted state and clears itself back to
// editing after the reset delay. On failure the draft is untouched and the
// backend message is kept for display.
func (m *FormModel) Submit(ctx context.Context) error {
	m.mu.Lock()
	if m.state != StateEditing {
		m.mu.Unlock()
		return ErrSubmitInProgress
	}
	if errs := m.validateLocked(); len(errs) > 0 {
		m.mu.Unlock()
		return ErrValidation
	}

	payload, err := m.buildPayloadLocked()
	if err != nil {
		m.mu.Unlock()
		return err
	}
	m.state = StateSubmitting
	m.lastSubmit = ""
	submitter := m.submitter
	m.mu.Unlock()

	submitErr := submitter.Submit(ctx, payload)

	m.mu.Lock()
	defer m.mu.Unlock()

	if submitErr != nil {
		m.state = StateEditing
		m.lastSubmit = submitErr.Error()
		if m.logger != nil {
			m.logger.Printf("application submit failed: %v", submitErr)
		}
		return submitErr
	}

	m.state = StateSubmitted
	if !m.closed {
		m.resetTimer = time.AfterFunc(m.resetDelay, m.resetAfterSubmit)
	}
	return nil
}

func (m *FormModel) resetAfterSubmit() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed || m.state != StateSubmitted {
		return
	}
	m.resetLocked()
}

func (m *FormModel) resetLocked() {
	m.draft = domain.ApplicationDraft{}
	m.educations = []domain.EducationEntry{domain.NewEducationEntry()}
	m.workExperiences = []domain.WorkExperienceEntry{domain.NewWorkExperienceEntry()}
	m.isFresher = false
	m.sameAsPermanent = false
	m.attachments = map[string]domain.Attachment{}
	m.otherCertificates = nil
	m.fieldErrors = map[string]string{}
	m.state = StateEditing
	m.resetTimer = nil
}

// State returns the current submit phase.
func (m *FormModel) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// LastSubmitError returns the message from the most recent failed submit.
func (m *FormModel) LastSubmitError() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastSubmit
}

// Draft returns a copy of the flat fields.
func (m *FormModel) Draft() domain.ApplicationDraft {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draft
}

// Educations returns a copy of the education rows.
func (m *FormModel) Educations() []domain.EducationEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.EducationEntry(nil), m.educations...)
}

// WorkExperiences returns a copy of the work-experience rows.
func (m *FormModel) WorkExperiences() []domain.WorkExperienceEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.WorkExperienceEntry(nil), m.workExperiences...)
}

// IsFresher reports the fresher flag.
func (m *FormModel) IsFresher() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.isFresher
}

// Attachment returns the staged file for a single-file field.
func (m *FormModel) Attachment(field string) (domain.Attachment, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	file, ok := m.attachments[field]
	return file, ok
}

// OtherCertificates returns a copy of the staged certificate batch.
func (m *FormModel) OtherCertificates() []domain.Attachment {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Attachment(nil), m.otherCertificates...)
}

// Errors returns a copy of the recorded field errors.
func (m *FormModel) Errors() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]string, len(m.fieldErrors))
	for k, v := range m.fieldErrors {
		out[k] = v
	}
	return out
}

func experienceErrorKey(index int, field string) string {
	return fmt.Sprintf("experience_%d_%s", index, field)
}
