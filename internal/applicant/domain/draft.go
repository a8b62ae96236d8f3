package domain

// ApplicationDraft holds the flat fields of an in-progress application.
// Repeatable sections (educations, work experiences) and staged files live
// alongside the draft in the form model, mirroring how the submission payload
// is assembled.
type ApplicationDraft struct {
	FullName   string
	FatherName string
	Email      string
	Phone      string

	CurrentAddress string
	CurrentCity    string
	CurrentState   string
	CurrentCountry string

	PermanentAddress string
	PermanentCity    string
	PermanentState   string
	PermanentCountry string

	Position        string
	Experience      string
	OtherExperience string

	// Legacy top-level education fields. Newer drafts carry the same data in
	// the educations list; these stay writable for older clients.
	Education      string
	OtherEducation string
	Stream         string
	OtherStream    string
	Course         string
	Branch         string
	OtherBranch    string

	CoverLetter       string
	Availability      string
	OtherAvailability string
	ExpectedSalary    string

	LinkedIn  string
	Portfolio string
}

// EducationEntry is one row of the repeatable education section.
// JSON tags match the submission payload keys.
type EducationEntry struct {
	Level       string `json:"education"`
	OtherLevel  string `json:"otherEducation"`
	Stream      string `json:"stream"`
	OtherStream string `json:"otherStream"`
	Course      string `json:"course"`
	Branch      string `json:"branch"`
	OtherBranch string `json:"otherBranch"`
	SchoolName  string `json:"schoolName"`
	Percentage  string `json:"percentage"`
	Duration    string `json:"duration"`
	PassingYear string `json:"passingYear"`
}

// WorkExperienceEntry is one row of the repeatable work-experience section.
type WorkExperienceEntry struct {
	Company          string `json:"company"`
	JobTitle         string `json:"jobTitle"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	CurrentlyWorking bool   `json:"currentlyWorking"`
	Department       string `json:"department"`
	OtherDepartment  string `json:"otherDepartment"`
	Freelancing      string `json:"freelancing"`
	Description      string `json:"description"`
}

// NewEducationEntry returns an empty education row.
func NewEducationEntry() EducationEntry {
	return EducationEntry{}
}

// NewWorkExperienceEntry returns an empty work-experience row.
func NewWorkExperienceEntry() WorkExperienceEntry {
	return WorkExperienceEntry{}
}
