package public

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	admindomain "github.com/hireline/job-application-services/api/internal/admin/domain"
	applicantdomain "github.com/hireline/job-application-services/api/internal/applicant/domain"
	"github.com/hireline/job-application-services/api/internal/interfaces/http/common"
)

// applicationCreateHandler は応募フォームの multipart 送信を受け付け、
// 添付ファイルを保存した上で応募ドキュメントを登録する。
func (h *Handler) applicationCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, common.MaxApplicationRequestBody)
		if err := r.ParseMultipartForm(common.MaxApplicationRequestBody); err != nil {
			common.WriteFailure(h.logger, w, http.StatusBadRequest, "Invalid form data")
			return
		}
		defer func() {
			if r.MultipartForm != nil {
				_ = r.MultipartForm.RemoveAll()
			}
		}()

		record, message := buildRecordFromForm(r)
		if message != "" {
			common.WriteFailure(h.logger, w, http.StatusBadRequest, message)
			return
		}

		if message := h.storeAttachments(r, record); message != "" {
			common.WriteFailure(h.logger, w, http.StatusBadRequest, message)
			return
		}

		record.Status = admindomain.StatusPending.String()
		record.SubmittedAt = time.Now().UTC()

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.submissions.Insert(ctx, record); err != nil {
			h.logger.Printf("application insert failed: %v", err)
			common.WriteFailure(h.logger, w, http.StatusInternalServerError, "Failed to save application")
			return
		}

		common.WriteSuccess(h.logger, w, http.StatusCreated,
			map[string]string{"id": record.ID}, "Application submitted successfully")
	}
}

// buildRecordFromForm はフラット項目と繰り返しセクションを応募レコードへ詰め替える。
// 戻り値の message が非空なら 400 で返すユーザー向けメッセージ。
func buildRecordFromForm(r *http.Request) (*admindomain.SubmissionRecord, string) {
	record := &admindomain.SubmissionRecord{
		FullName:         strings.TrimSpace(r.FormValue("fullName")),
		FatherName:       strings.TrimSpace(r.FormValue("fatherName")),
		Email:            strings.TrimSpace(r.FormValue("email")),
		Phone:            strings.TrimSpace(r.FormValue("phone")),
		CurrentAddress:   r.FormValue("currentAddress"),
		CurrentCity:      r.FormValue("currentCity"),
		CurrentState:     r.FormValue("currentState"),
		CurrentCountry:   r.FormValue("currentCountry"),
		PermanentAddress: r.FormValue("permanentAddress"),
		PermanentCity:    r.FormValue("permanentCity"),
		PermanentState:   r.FormValue("permanentState"),
		PermanentCountry: r.FormValue("permanentCountry"),

		Position:        strings.TrimSpace(r.FormValue("position")),
		Experience:      r.FormValue("experience"),
		OtherExperience: r.FormValue("otherExperience"),

		Availability:      r.FormValue("availability"),
		OtherAvailability: r.FormValue("otherAvailability"),
		ExpectedSalary:    r.FormValue("expectedSalary"),
		CoverLetter:       r.FormValue("coverLetter"),
		LinkedIn:          strings.TrimSpace(r.FormValue("linkedIn")),
		Portfolio:         strings.TrimSpace(r.FormValue("portfolio")),

		IsFresher: strings.EqualFold(r.FormValue("isFresher"), "true"),
	}

	if record.Email != "" && !applicantdomain.ValidEmail(record.Email) {
		return nil, "Please enter a valid email address"
	}
	if record.Phone != "" && !applicantdomain.ValidPhone(record.Phone) {
		return nil, "Please enter a valid phone number (minimum 10 digits)"
	}

	if raw := r.FormValue("educations"); raw != "" {
		var entries []applicantdomain.EducationEntry
		if err := json.Unmarshal([]byte(raw), &entries); err != nil {
			return nil, "Invalid educations data"
		}
		for _, entry := range entries {
			record.Educations = append(record.Educations, admindomain.EducationRecord{
				Level:       entry.Level,
				OtherLevel:  entry.OtherLevel,
				Stream:      entry.Stream,
				OtherStream: entry.OtherStream,
				Course:      entry.Course,
				Branch:      entry.Branch,
				OtherBranch: entry.OtherBranch,
				SchoolName:  entry.SchoolName,
				Percentage:  entry.Percentage,
				Duration:    entry.Duration,
				PassingYear: entry.PassingYear,
			})
		}
	}

	if raw := r.FormValue("workExperiences"); raw != "" {
		var entries []applicantdomain.WorkExperienceEntry
		if err := json.Unmarshal([]byte(raw), &entries); err != nil {
			return nil, "Invalid work experiences data"
		}
		for _, entry := range entries {
			record.WorkExperiences = append(record.WorkExperiences, admindomain.WorkExperienceRecord{
				Company:          entry.Company,
				JobTitle:         entry.JobTitle,
				StartDate:        entry.StartDate,
				EndDate:          entry.EndDate,
				CurrentlyWorking: entry.CurrentlyWorking,
				Department:       entry.Department,
				OtherDepartment:  entry.OtherDepartment,
				Freelancing:      entry.Freelancing,
				Description:      entry.Description,
			})
		}
	}
	if record.IsFresher {
		record.WorkExperiences = nil
	}

	return record, ""
}

// storeAttachments は添付ファイルを検証して保存し、保存先パスをレコードへ書き込む。
func (h *Handler) storeAttachments(r *http.Request, record *admindomain.SubmissionRecord) string {
	targets := map[string]*string{
		"resume":                &record.ResumePath,
		"aadharCard":            &record.AadharCardPath,
		"panCard":               &record.PanCardPath,
		"passport":              &record.PassportPath,
		"tenthCertificate":      &record.TenthCertificatePath,
		"twelfthCertificate":    &record.TwelfthCertificatePath,
		"diplomaCertificate":    &record.DiplomaCertificatePath,
		"degreeCertificate":     &record.DegreeCertificatePath,
		"experienceCertificate": &record.ExperienceCertificatePath,
	}

	for _, field := range applicantdomain.AttachmentFields {
		file, header, err := r.FormFile(field)
		if err != nil {
			if err == http.ErrMissingFile {
				continue
			}
			return "Invalid form data"
		}
		file.Close()

		rule, _ := applicantdomain.AttachmentRuleFor(field)
		if err := rule.Check(attachmentMeta(header)); err != nil {
			return err.Error()
		}

		path, err := h.saveUpload(header)
		if err != nil {
			h.logger.Printf("upload save failed field=%s: %v", field, err)
			return "Failed to save uploaded file"
		}
		*targets[field] = path
	}

	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["otherCertificates"] {
			if err := applicantdomain.OtherCertificatesRule.Check(attachmentMeta(header)); err != nil {
				return err.Error()
			}
		}
		for _, header := range r.MultipartForm.File["otherCertificates"] {
			path, err := h.saveUpload(header)
			if err != nil {
				h.logger.Printf("upload save failed field=otherCertificates: %v", err)
				return "Failed to save uploaded file"
			}
			record.OtherCertificatePaths = append(record.OtherCertificatePaths, path)
		}
	}

	return ""
}

func attachmentMeta(header *multipart.FileHeader) applicantdomain.Attachment {
	return applicantdomain.Attachment{
		Name:      header.Filename,
		MediaType: header.Header.Get("Content-Type"),
		Size:      header.Size,
	}
}

// saveUpload はアップロードを UUID ファイル名で保存し、相対パスを返す。
func (h *Handler) saveUpload(header *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := uuid.NewString() + strings.ToLower(filepath.Ext(header.Filename))
	path := filepath.Join(h.uploadDir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
