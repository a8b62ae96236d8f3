package domain

import "errors"

// MaxAttachmentSize is the per-file upload limit.
const MaxAttachmentSize = 5 * 1024 * 1024

// Attachment is a staged upload: metadata plus raw content.
type Attachment struct {
	Name      string
	MediaType string
	Size      int64
	Content   []byte
}

// AttachmentRule describes the accepted media types for one upload field and
// the messages surfaced on rejection.
type AttachmentRule struct {
	AllowedTypes []string
	TypeMessage  string
	SizeMessage  string
}

var documentTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

var imageOrPDFTypes = []string{
	"application/pdf",
	"image/jpeg",
	"image/jpg",
	"image/png",
}

var resumeRule = AttachmentRule{
	AllowedTypes: documentTypes,
	TypeMessage:  "Please upload a PDF or Word document",
	SizeMessage:  "File size must be less than 5MB",
}

var certificateRule = AttachmentRule{
	AllowedTypes: imageOrPDFTypes,
	TypeMessage:  "Please upload PDF or Image file",
	SizeMessage:  "File size must be less than 5MB",
}

// OtherCertificatesRule applies to each file in the multi-upload batch.
var OtherCertificatesRule = AttachmentRule{
	AllowedTypes: imageOrPDFTypes,
	TypeMessage:  "Please upload only PDF or Image files",
	SizeMessage:  "Each file must be less than 5MB",
}

var attachmentRules = map[string]AttachmentRule{
	"resume":                resumeRule,
	"aadharCard":            certificateRule,
	"panCard":               certificateRule,
	"passport":              certificateRule,
	"tenthCertificate":      certificateRule,
	"twelfthCertificate":    certificateRule,
	"diplomaCertificate":    certificateRule,
	"degreeCertificate":     certificateRule,
	"experienceCertificate": certificateRule,
}

// AttachmentFields lists the single-file upload fields in payload order.
var AttachmentFields = []string{
	"resume",
	"aadharCard",
	"panCard",
	"passport",
	"tenthCertificate",
	"twelfthCertificate",
	"diplomaCertificate",
	"degreeCertificate",
	"experienceCertificate",
}

// AttachmentRuleFor returns the rule for a single-file upload field.
func AttachmentRuleFor(field string) (AttachmentRule, bool) {
	rule, ok := attachmentRules[field]
	return rule, ok
}

// Check validates an attachment against the rule. The returned error message
// is suitable for display to the applicant.
func (r AttachmentRule) Check(file Attachment) error {
	allowed := false
	for _, t := range r.AllowedTypes {
		if file.MediaType == t {
			allowed = true
			break
		}
	}
	if !allowed {
		return errors.New(r.TypeMessage)
	}
	if file.Size > MaxAttachmentSize {
		return errors.New(r.SizeMessage)
	}
	return nil
}
