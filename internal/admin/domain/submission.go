package domain

import (
	"fmt"
	"time"
)

// Status is the triage state of a stored application.
type Status string

const (
	StatusPending     Status = "pending"
	StatusReviewed    Status = "reviewed"
	StatusShortlisted Status = "shortlisted"
	StatusRejected    Status = "rejected"
)

var validStatuses = map[Status]struct{}{
	StatusPending:     {},
	StatusReviewed:    {},
	StatusShortlisted: {},
	StatusRejected:    {},
}

// NewStatus validates a raw status value.
func NewStatus(value string) (Status, error) {
	s := Status(value)
	if _, ok := validStatuses[s]; !ok {
		return "", fmt.Errorf("invalid status %q", value)
	}
	return s, nil
}

func (s Status) String() string { return string(s) }

// EducationRecord is one stored education row.
type EducationRecord struct {
	Level       string `json:"education" bson:"education"`
	OtherLevel  string `json:"other_education,omitempty" bson:"otherEducation,omitempty"`
	Stream      string `json:"stream,omitempty" bson:"stream,omitempty"`
	OtherStream string `json:"other_stream,omitempty" bson:"otherStream,omitempty"`
	Course      string `json:"course,omitempty" bson:"course,omitempty"`
	Branch      string `json:"branch,omitempty" bson:"branch,omitempty"`
	OtherBranch string `json:"other_branch,omitempty" bson:"otherBranch,omitempty"`
	SchoolName  string `json:"school_name,omitempty" bson:"schoolName,omitempty"`
	Percentage  string `json:"percentage,omitempty" bson:"percentage,omitempty"`
	Duration    string `json:"duration,omitempty" bson:"duration,omitempty"`
	PassingYear string `json:"passing_year,omitempty" bson:"passingYear,omitempty"`
}

// WorkExperienceRecord is one stored work-experience row.
type WorkExperienceRecord struct {
	Company          string `json:"company" bson:"company"`
	JobTitle         string `json:"job_title,omitempty" bson:"jobTitle,omitempty"`
	StartDate        string `json:"start_date,omitempty" bson:"startDate,omitempty"`
	EndDate          string `json:"end_date,omitempty" bson:"endDate,omitempty"`
	CurrentlyWorking bool   `json:"currently_working" bson:"currentlyWorking"`
	Department       string `json:"department,omitempty" bson:"department,omitempty"`
	OtherDepartment  string `json:"other_department,omitempty" bson:"otherDepartment,omitempty"`
	Freelancing      string `json:"freelancing,omitempty" bson:"freelancing,omitempty"`
	Description      string `json:"description,omitempty" bson:"description,omitempty"`
}

// SubmissionRecord is a stored application as served to the review tools.
// JSON tags are the wire keys of GET /api/applications.
type SubmissionRecord struct {
	ID               string `json:"id"`
	FullName         string `json:"full_name,omitempty"`
	FatherName       string `json:"father_name,omitempty"`
	Email            string `json:"email,omitempty"`
	Phone            string `json:"phone,omitempty"`
	CurrentAddress   string `json:"current_address,omitempty"`
	CurrentCity      string `json:"current_city,omitempty"`
	CurrentState     string `json:"current_state,omitempty"`
	CurrentCountry   string `json:"current_country,omitempty"`
	PermanentAddress string `json:"permanent_address,omitempty"`
	PermanentCity    string `json:"permanent_city,omitempty"`
	PermanentState   string `json:"permanent_state,omitempty"`
	PermanentCountry string `json:"permanent_country,omitempty"`

	Position        string `json:"position,omitempty"`
	Experience      string `json:"experience,omitempty"`
	OtherExperience string `json:"other_experience,omitempty"`

	Availability      string `json:"availability,omitempty"`
	OtherAvailability string `json:"other_availability,omitempty"`
	ExpectedSalary    string `json:"expected_salary,omitempty"`
	CoverLetter       string `json:"cover_letter,omitempty"`
	LinkedIn          string `json:"linkedin,omitempty"`
	Portfolio         string `json:"portfolio,omitempty"`

	IsFresher       bool                   `json:"is_fresher"`
	Educations      []EducationRecord      `json:"educations,omitempty"`
	WorkExperiences []WorkExperienceRecord `json:"work_experiences,omitempty"`

	ResumePath                string   `json:"resume_path,omitempty"`
	AadharCardPath            string   `json:"aadhar_card_path,omitempty"`
	PanCardPath               string   `json:"pan_card_path,omitempty"`
	PassportPath              string   `json:"passport_path,omitempty"`
	TenthCertificatePath      string   `json:"tenth_certificate_path,omitempty"`
	TwelfthCertificatePath    string   `json:"twelfth_certificate_path,omitempty"`
	DiplomaCertificatePath    string   `json:"diploma_certificate_path,omitempty"`
	DegreeCertificatePath     string   `json:"degree_certificate_path,omitempty"`
	ExperienceCertificatePath string   `json:"experience_certificate_path,omitempty"`
	OtherCertificatePaths     []string `json:"other_certificate_paths,omitempty"`

	Status      string    `json:"status,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// EffectiveStatus returns the record's status, treating a missing value as
// pending. Early records predate the status column.
func (r SubmissionRecord) EffectiveStatus() Status {
	if r.Status == "" {
		return StatusPending
	}
	return Status(r.Status)
}
