package domain

import (
	"strings"
	"time"
)

var exportHeader = []string{
	"Name", "Father Name", "Email", "Phone", "Position", "Experience", "Status", "Submitted Date",
}

// ExportCSV serializes the full record set in the fixed export column order.
// Values are joined with commas as-is; fields containing commas are a known
// limitation of the export format and are not quoted or escaped. Missing
// statuses export as pending. The filename carries the export date.
func ExportCSV(records []SubmissionRecord, now time.Time, loc *time.Location) (filename, content string) {
	rows := make([]string, 0, len(records)+1)
	rows = append(rows, strings.Join(exportHeader, ","))

	for _, rec := range records {
		row := []string{
			rec.FullName,
			rec.FatherName,
			rec.Email,
			rec.Phone,
			rec.Position,
			rec.Experience,
			rec.EffectiveStatus().String(),
			rec.SubmittedAt.In(loc).Format("2006-01-02"),
		}
		rows = append(rows, strings.Join(row, ","))
	}

	filename = "job-applications-" + now.In(loc).Format("2006-01-02") + ".csv"
	return filename, strings.Join(rows, "\n")
}
