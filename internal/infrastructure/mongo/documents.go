package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EducationDocument は応募書類内の学歴 1 行分の埋め込みドキュメント。
type EducationDocument struct {
	Level       string `bson:"education"`
	OtherLevel  string `bson:"otherEducation,omitempty"`
	Stream      string `bson:"stream,omitempty"`
	OtherStream string `bson:"otherStream,omitempty"`
	Course      string `bson:"course,omitempty"`
	Branch      string `bson:"branch,omitempty"`
	OtherBranch string `bson:"otherBranch,omitempty"`
	SchoolName  string `bson:"schoolName,omitempty"`
	Percentage  string `bson:"percentage,omitempty"`
	Duration    string `bson:"duration,omitempty"`
	PassingYear string `bson:"passingYear,omitempty"`
}

// WorkExperienceDocument は職歴 1 行分の埋め込みドキュメント。
type WorkExperienceDocument struct {
	Company          string `bson:"company"`
	JobTitle         string `bson:"jobTitle,omitempty"`
	StartDate        string `bson:"startDate,omitempty"`
	EndDate          string `bson:"endDate,omitempty"`
	CurrentlyWorking bool   `bson:"currentlyWorking"`
	Department       string `bson:"department,omitempty"`
	OtherDepartment  string `bson:"otherDepartment,omitempty"`
	Freelancing      string `bson:"freelancing,omitempty"`
	Description      string `bson:"description,omitempty"`
}

// ApplicationDocument は MongoDB 上での応募スキーマを Go 構造体として表現したもの。
type ApplicationDocument struct {
	ID               primitive.ObjectID `bson:"_id"`
	FullName         string             `bson:"fullName,omitempty"`
	FatherName       string             `bson:"fatherName,omitempty"`
	Email            string             `bson:"email,omitempty"`
	Phone            string             `bson:"phone,omitempty"`
	CurrentAddress   string             `bson:"currentAddress,omitempty"`
	CurrentCity      string             `bson:"currentCity,omitempty"`
	CurrentState     string             `bson:"currentState,omitempty"`
	CurrentCountry   string             `bson:"currentCountry,omitempty"`
	PermanentAddress string             `bson:"permanentAddress,omitempty"`
	PermanentCity    string             `bson:"permanentCity,omitempty"`
	PermanentState   string             `bson:"permanentState,omitempty"`
	PermanentCountry string             `bson:"permanentCountry,omitempty"`

	Position        string `bson:"position,omitempty"`
	Experience      string `bson:"experience,omitempty"`
	OtherExperience string `bson:"otherExperience,omitempty"`

	Availability      string `bson:"availability,omitempty"`
	OtherAvailability string `bson:"otherAvailability,omitempty"`
	ExpectedSalary    string `bson:"expectedSalary,omitempty"`
	CoverLetter       string `bson:"coverLetter,omitempty"`
	LinkedIn          string `bson:"linkedIn,omitempty"`
	Portfolio         string `bson:"portfolio,omitempty"`

	IsFresher       bool                     `bson:"isFresher"`
	Educations      []EducationDocument      `bson:"educations,omitempty"`
	WorkExperiences []WorkExperienceDocument `bson:"workExperiences,omitempty"`

	ResumePath                string   `bson:"resumePath,omitempty"`
	AadharCardPath            string   `bson:"aadharCardPath,omitempty"`
	PanCardPath               string   `bson:"panCardPath,omitempty"`
	PassportPath              string   `bson:"passportPath,omitempty"`
	TenthCertificatePath      string   `bson:"tenthCertificatePath,omitempty"`
	TwelfthCertificatePath    string   `bson:"twelfthCertificatePath,omitempty"`
	DiplomaCertificatePath    string   `bson:"diplomaCertificatePath,omitempty"`
	DegreeCertificatePath     string   `bson:"degreeCertificatePath,omitempty"`
	ExperienceCertificatePath string   `bson:"experienceCertificatePath,omitempty"`
	OtherCertificatePaths     []string `bson:"otherCertificatePaths,omitempty"`

	Status      string    `bson:"status,omitempty"`
	SubmittedAt time.Time `bson:"submittedAt"`
}
