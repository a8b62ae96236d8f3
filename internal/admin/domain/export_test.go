package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSV(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, loc)

	records := []SubmissionRecord{
		{
			FullName:    "Ravi Kumar",
			FatherName:  "Suresh Kumar",
			Email:       "ravi@example.com",
			Phone:       "9876543210",
			Position:    "Electrician",
			Experience:  "3-5",
			Status:      "shortlisted",
			SubmittedAt: time.Date(2026, 8, 20, 9, 30, 0, 0, loc),
		},
		{
			FullName:    "Ananya Iyer",
			SubmittedAt: time.Date(2026, 8, 25, 18, 0, 0, 0, loc),
		},
	}

	filename, content := ExportCSV(records, now, loc)

	assert.Equal(t, "job-applications-2026-09-01.csv", filename)

	lines := strings.Split(content, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Name,Father Name,Email,Phone,Position,Experience,Status,Submitted Date", lines[0])
	assert.Equal(t, "Ravi Kumar,Suresh Kumar,ravi@example.com,9876543210,Electrician,3-5,shortlisted,2026-08-20", lines[1])
	// Missing fields stay empty; a missing status exports as pending.
	assert.Equal(t, "Ananya Iyer,,,,,,pending,2026-08-25", lines[2])
}

func TestExportCSVDoesNotQuoteCommas(t *testing.T) {
	records := []SubmissionRecord{{
		FullName:    "Kumar, Ravi",
		SubmittedAt: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
	}}

	_, content := ExportCSV(records, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), time.UTC)

	lines := strings.Split(content, "\n")
	// Values are joined as-is; a comma inside a value shifts the columns.
	assert.Equal(t, "Kumar, Ravi,,,,,,pending,2026-08-20", lines[1])
}

func TestExportCSVEmptyCollection(t *testing.T) {
	filename, content := ExportCSV(nil, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), time.UTC)
	assert.Equal(t, "job-applications-2026-09-01.csv", filename)
	assert.Equal(t, "Name,Father Name,Email,Phone,Position,Experience,Status,Submitted Date", content)
}
