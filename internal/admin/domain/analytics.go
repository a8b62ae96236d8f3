package domain

import (
	"sort"
	"strings"
	"time"
)

// Display colors for the status breakdown chart.
const (
	colorPending     = "#ffa726"
	colorReviewed    = "#42a5f5"
	colorShortlisted = "#66bb6a"
	colorRejected    = "#ef5350"
)

const notSpecified = "Not specified"

// StatusSlice is one wedge of the status breakdown.
type StatusSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// DailyCount is one day of the applications-over-time series.
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"applications"`
}

// LabelCount is one bar of a label/count chart.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// SummaryStats are the headline numbers of the analytics view.
type SummaryStats struct {
	Total       int `json:"total"`
	Pending     int `json:"pending"`
	Reviewed    int `json:"reviewed"`
	Shortlisted int `json:"shortlisted"`
	Rejected    int `json:"rejected"`
	Today       int `json:"todayApplications"`
	ThisWeek    int `json:"thisWeek"`
}

// StatusDistribution counts records per effective status. Only statuses
// actually present appear; each carries its fixed display color.
func StatusDistribution(records []SubmissionRecord) []StatusSlice {
	counts := map[Status]int{}
	for _, rec := range records {
		counts[rec.EffectiveStatus()]++
	}

	ordered := []Status{StatusPending, StatusReviewed, StatusShortlisted, StatusRejected}
	slices := make([]StatusSlice, 0, len(counts))
	for _, status := range ordered {
		count, ok := counts[status]
		if !ok {
			continue
		}
		slices = append(slices, StatusSlice{
			Name:  capitalize(status.String()),
			Value: count,
			Color: statusColor(status),
		})
		delete(counts, status)
	}

	// Unknown statuses stored by older tooling still get counted.
	var rest []Status
	for status := range counts {
		rest = append(rest, status)
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	for _, status := range rest {
		slices = append(slices, StatusSlice{
			Name:  capitalize(status.String()),
			Value: counts[status],
			Color: colorRejected,
		})
	}
	return slices
}

func statusColor(status Status) string {
	switch status {
	case StatusPending:
		return colorPending
	case StatusReviewed:
		return colorReviewed
	case StatusShortlisted:
		return colorShortlisted
	default:
		return colorRejected
	}
}

// ApplicationsOverTime buckets submissions per day over the trailing 30 days
// ending at now. Days without submissions appear with a zero count.
func ApplicationsOverTime(records []SubmissionRecord, now time.Time, loc *time.Location) []DailyCount {
	perDay := map[string]int{}
	for _, rec := range records {
		perDay[rec.SubmittedAt.In(loc).Format("2006-01-02")]++
	}

	series := make([]DailyCount, 0, 30)
	for i := 29; i >= 0; i-- {
		day := now.In(loc).AddDate(0, 0, -i)
		series = append(series, DailyCount{
			Date:  day.Format("Jan 2"),
			Count: perDay[day.Format("2006-01-02")],
		})
	}
	return series
}

// EducationDistribution counts education rows per level across all records,
// flattening every row of every submission. The top ten levels are returned,
// counts descending, labels longer than 20 runes ellipsised.
func EducationDistribution(records []SubmissionRecord) []LabelCount {
	counts := map[string]int{}
	for _, rec := range records {
		for _, edu := range rec.Educations {
			level := edu.Level
			if level == "" {
				level = notSpecified
			}
			counts[level]++
		}
	}
	return topCounts(counts, 10, 20)
}

// PositionDistribution counts records per applied position. Missing
// positions fall into "Not specified". The top ten are returned, labels
// longer than 25 runes ellipsised.
func PositionDistribution(records []SubmissionRecord) []LabelCount {
	counts := map[string]int{}
	for _, rec := range records {
		position := rec.Position
		if position == "" {
			position = notSpecified
		}
		counts[position]++
	}
	return topCounts(counts, 10, 25)
}

// ExperienceDistribution counts records per experience bracket, all brackets,
// counts descending.
func ExperienceDistribution(records []SubmissionRecord) []LabelCount {
	counts := map[string]int{}
	for _, rec := range records {
		experience := rec.Experience
		if experience == "" {
			experience = notSpecified
		}
		counts[experience]++
	}
	return topCounts(counts, 0, 0)
}

// Summarize computes the headline numbers. "Today" uses calendar-day
// equality in loc; "this week" is everything at or after seven days before
// now.
func Summarize(records []SubmissionRecord, now time.Time, loc *time.Location) SummaryStats {
	stats := SummaryStats{Total: len(records)}

	today := now.In(loc).Format("2006-01-02")
	weekAgo := now.AddDate(0, 0, -7)

	for _, rec := range records {
		switch rec.EffectiveStatus() {
		case StatusPending:
			stats.Pending++
		case StatusReviewed:
			stats.Reviewed++
		case StatusShortlisted:
			stats.Shortlisted++
		case StatusRejected:
			stats.Rejected++
		}
		if rec.SubmittedAt.In(loc).Format("2006-01-02") == today {
			stats.Today++
		}
		if !rec.SubmittedAt.Before(weekAgo) {
			stats.ThisWeek++
		}
	}
	return stats
}

// topCounts orders counts descending with ties broken by label, keeps the
// first limit entries (no limit when 0) and ellipsises labels longer than
// maxLabel runes (no truncation when 0).
func topCounts(counts map[string]int, limit, maxLabel int) []LabelCount {
	out := make([]LabelCount, 0, len(counts))
	for label, count := range counts {
		out = append(out, LabelCount{Label: label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	if maxLabel > 0 {
		for i := range out {
			out[i].Label = truncateLabel(out[i].Label, maxLabel)
		}
	}
	return out
}

func truncateLabel(label string, max int) string {
	runes := []rune(label)
	if len(runes) <= max {
		return label
	}
	return string(runes[:max]) + "..."
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
