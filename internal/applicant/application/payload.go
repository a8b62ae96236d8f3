package application

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strconv"
	"strings"

	"github.com/hireline/job-application-services/api/internal/applicant/domain"
)

// Payload is a finished multipart request body for POST /api/applications.
type Payload struct {
	Body        []byte
	ContentType string
}

// BuildPayload assembles the multipart body from the current form state
// without mutating it. Empty flat fields are omitted, staged files become
// file parts, and the repeatable sections travel as JSON text. While the
// fresher flag is set the work-experience list is sent empty.
func (m *FormModel) BuildPayload() (*Payload, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.buildPayloadLocked()
}

func (m *FormModel) buildPayloadLocked() (*Payload, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	flatFields := []struct {
		key   string
		value string
	}{
		{"fullName", m.draft.FullName},
		{"fatherName", m.draft.FatherName},
		{"email", m.draft.Email},
		{"phone", m.draft.Phone},
		{"currentAddress", m.draft.CurrentAddress},
		{"currentCity", m.draft.CurrentCity},
		{"currentState", m.draft.CurrentState},
		{"currentCountry", m.draft.CurrentCountry},
		{"permanentAddress", m.draft.PermanentAddress},
		{"permanentCity", m.draft.PermanentCity},
		{"permanentState", m.draft.PermanentState},
		{"permanentCountry", m.draft.PermanentCountry},
		{"position", m.draft.Position},
		{"experience", m.draft.Experience},
		{"otherExperience", m.draft.OtherExperience},
		{"education", m.draft.Education},
		{"otherEducation", m.draft.OtherEducation},
		{"stream", m.draft.Stream},
		{"otherStream", m.draft.OtherStream},
		{"course", m.draft.Course},
		{"branch", m.draft.Branch},
		{"otherBranch", m.draft.OtherBranch},
		{"coverLetter", m.draft.CoverLetter},
		{"availability", m.draft.Availability},
		{"otherAvailability", m.draft.OtherAvailability},
		{"expectedSalary", m.draft.ExpectedSalary},
		{"linkedIn", m.draft.LinkedIn},
		{"portfolio", m.draft.Portfolio},
	}
	for _, field := range flatFields {
		if field.value == "" {
			continue
		}
		if err := writer.WriteField(field.key, field.value); err != nil {
			return nil, fmt.Errorf("write field %s: %w", field.key, err)
		}
	}

	for _, field := range domain.AttachmentFields {
		file, ok := m.attachments[field]
		if !ok {
			continue
		}
		if err := writeFilePart(writer, field, file); err != nil {
			return nil, err
		}
	}
	for _, file := range m.otherCertificates {
		if err := writeFilePart(writer, "otherCertificates", file); err != nil {
			return nil, err
		}
	}

	educations, err := json.Marshal(m.educations)
	if err != nil {
		return nil, fmt.Errorf("marshal educations: %w", err)
	}
	if err := writer.WriteField("educations", string(educations)); err != nil {
		return nil, fmt.Errorf("write educations: %w", err)
	}

	experiences := m.workExperiences
	if m.isFresher {
		experiences = []domain.WorkExperienceEntry{}
	}
	workExperiences, err := json.Marshal(experiences)
	if err != nil {
		return nil, fmt.Errorf("marshal work experiences: %w", err)
	}
	if err := writer.WriteField("workExperiences", string(workExperiences)); err != nil {
		return nil, fmt.Errorf("write work experiences: %w", err)
	}

	if err := writer.WriteField("isFresher", strconv.FormatBool(m.isFresher)); err != nil {
		return nil, fmt.Errorf("write isFresher: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalize multipart body: %w", err)
	}

	return &Payload{Body: buf.Bytes(), ContentType: writer.FormDataContentType()}, nil
}

func writeFilePart(writer *multipart.Writer, field string, file domain.Attachment) error {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		field, escapeQuotes(file.Name)))
	if file.MediaType != "" {
		header.Set("Content-Type", file.MediaType)
	}
	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("create file part %s: %w", field, err)
	}
	if _, err := part.Write(file.Content); err != nil {
		return fmt.Errorf("write file part %s: %w", field, err)
	}
	return nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
