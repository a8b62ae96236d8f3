package domain

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10,}$`)
	phoneStrip   = strings.NewReplacer("-", "", " ", "")
)

// ValidEmail reports whether value matches the accepted email shape.
func ValidEmail(value string) bool {
	return emailPattern.MatchString(value)
}

// ValidPhone reports whether value contains at least ten digits once
// hyphens and spaces are stripped.
func ValidPhone(value string) bool {
	return phonePattern.MatchString(phoneStrip.Replace(value))
}

// ValidateDraft checks field formats at submit time. Every field is
// optional; only non-empty values are checked. The returned map is keyed by
// field name and empty when the draft is acceptable.
func ValidateDraft(draft ApplicationDraft) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(draft.Email) != "" && !ValidEmail(draft.Email) {
		errs["email"] = "Please enter a valid email address"
	}
	if strings.TrimSpace(draft.Phone) != "" && !ValidPhone(draft.Phone) {
		errs["phone"] = "Please enter a valid phone number (minimum 10 digits)"
	}

	return errs
}
