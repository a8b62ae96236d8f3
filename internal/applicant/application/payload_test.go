package application

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireline/job-application-services/api/internal/applicant/domain"
)

type parsedPayload struct {
	values map[string][]string
	files  map[string][]parsedFile
}

type parsedFile struct {
	filename  string
	mediaType string
	content   []byte
}

func parsePayload(t *testing.T, payload *Payload) parsedPayload {
	t.Helper()

	mediaType, params, err := mime.ParseMediaType(payload.ContentType)
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	reader := multipart.NewReader(bytes.NewReader(payload.Body), params["boundary"])
	out := parsedPayload{values: map[string][]string{}, files: map[string][]parsedFile{}}
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)

		content, err := io.ReadAll(part)
		require.NoError(t, err)

		if part.FileName() != "" {
			out.files[part.FormName()] = append(out.files[part.FormName()], parsedFile{
				filename:  part.FileName(),
				mediaType: part.Header.Get("Content-Type"),
				content:   content,
			})
		} else {
			out.values[part.FormName()] = append(out.values[part.FormName()], string(content))
		}
	}
	return out
}

func TestBuildPayloadOmitsEmptyFields(t *testing.T) {
	m := newTestModel(t, &fakeSubmitter{})
	require.NoError(t, m.UpdateField("fullName", "Ravi Kumar"))
	require.NoError(t, m.UpdateField("position", "Electrician"))

	payload, err := m.BuildPayload()
	require.NoError(t, err)

	parsed := parsePayload(t, payload)
	assert.Equal(t, []string{"Ravi Kumar"}, parsed.values["fullName"])
	assert.Equal(t, []string{"Electrician"}, parsed.values["position"])
	assert.NotContains(t, parsed.values, "email")
	assert.NotContains(t, parsed.values, "coverLetter")
}

func TestBuildPayloadRepeatableSections(t *testing.T) {
	m := newTestModel(t, &fakeSubmitter{})
	require.NoError(t, m.UpdateEducation(0, "education", "iti"))
	require.NoError(t, m.UpdateEducation(0, "branch", "fitter"))
	require.NoError(t, m.UpdateExperience(0, "company", "Tata Motors"))

	payload, err := m.BuildPayload()
	require.NoError(t, err)
	parsed := parsePayload(t, payload)

	var educations []domain.EducationEntry
	require.NoError(t, json.Unmarshal([]byte(parsed.values["educations"][0]), &educations))
	require.Len(t, educations, 1)
	assert.Equal(t, "iti", educations[0].Level)
	assert.Equal(t, "fitter", educations[0].Branch)

	var experiences []domain.WorkExperienceEntry
	require.NoError(t, json.Unmarshal([]byte(parsed.values["workExperiences"][0]), &experiences))
	require.Len(t, experiences, 1)
	assert.Equal(t, "Tata Motors", experiences[0].Company)

	assert.Equal(t, []string{"false"}, parsed.values["isFresher"])
}

func TestBuildPayloadFresherSendsEmptyExperiences(t *testing.T) {
	m := newTestModel(t, &fakeSubmitter{})
	require.NoError(t, m.UpdateExperience(0, "company", "Tata Motors"))
	m.SetFresher(true)

	payload, err := m.BuildPayload()
	require.NoError(t, err)
	parsed := parsePayload(t, payload)

	assert.Equal(t, []string{"[]"}, parsed.values["workExperiences"])
	assert.Equal(t, []string{"true"}, parsed.values["isFresher"])

	// The rows themselves survive in the model in case the flag is undone.
	assert.Equal(t, "Tata Motors", m.WorkExperiences()[0].Company)
}

func TestBuildPayloadFileParts(t *testing.T) {
	m := newTestModel(t, &fakeSubmitter{})

	require.NoError(t, m.AttachFile("resume", domain.Attachment{
		Name: "cv.pdf", MediaType: "application/pdf", Size: 4, Content: []byte("%PDF"),
	}))
	require.NoError(t, m.AttachOtherCertificates([]domain.Attachment{
		{Name: "award.png", MediaType: "image/png", Size: 3, Content: []byte("png")},
		{Name: "training.pdf", MediaType: "application/pdf", Size: 3, Content: []byte("doc")},
	}))

	payload, err := m.BuildPayload()
	require.NoError(t, err)
	parsed := parsePayload(t, payload)

	require.Len(t, parsed.files["resume"], 1)
	resume := parsed.files["resume"][0]
	assert.Equal(t, "cv.pdf", resume.filename)
	assert.Equal(t, "application/pdf", resume.mediaType)
	assert.Equal(t, []byte("%PDF"), resume.content)

	// The batch repeats the same part name, one part per file.
	require.Len(t, parsed.files["otherCertificates"], 2)
	assert.Equal(t, "award.png", parsed.files["otherCertificates"][0].filename)
	assert.Equal(t, "training.pdf", parsed.files["otherCertificates"][1].filename)
}
