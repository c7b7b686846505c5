package models

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// VisitStatus represents the state of a charted visit. Stored values other
// than completed are passed through as written.
type VisitStatus string

// VisitStatusCompleted is assumed when a record has no status.
const VisitStatusCompleted VisitStatus = "completed"

// VisitRecord represents one completed clinical encounter as read from a store
type VisitRecord struct {
	ID            string      `json:"id"`
	HospitalID    string      `json:"hospitalId,omitempty"`
	PatientID     string      `json:"patientId,omitempty"`
	PatientName   string      `json:"patientName,omitempty"`
	PatientGender string      `json:"patientGender,omitempty"`
	PatientAge    string      `json:"patientAge,omitempty"`
	CreatedAt     Timestamp   `json:"-"`
	Diagnosis     string      `json:"diagnosis,omitempty"`
	Duration      string      `json:"duration"` // MM:SS
	Status        VisitStatus `json:"status,omitempty"`
}

// DurationSeconds parses the MM:SS (or H:MM:SS) recording length.
// Anything unparseable counts as zero.
func (r VisitRecord) DurationSeconds() int {
	return ParseDuration(r.Duration)
}

// DiagnosisLabel is the trimmed first line of the diagnosis text.
func (r VisitRecord) DiagnosisLabel() string {
	first, _, _ := strings.Cut(r.Diagnosis, "\n")
	return strings.TrimSpace(first)
}

// VisitRecordView is a record with its derived local values, as listed by the API.
type VisitRecordView struct {
	VisitRecord
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationSeconds int    `json:"durationSeconds"`
}

// View derives the local date, time and duration of the record in loc.
func (r VisitRecord) View(loc *time.Location) VisitRecordView {
	return VisitRecordView{
		VisitRecord:     r,
		Date:            r.CreatedAt.LocalDate(loc),
		Time:            r.CreatedAt.LocalClock(loc),
		DurationSeconds: r.DurationSeconds(),
	}
}

// SortNewestFirst orders records by creation time, newest first. Records
// without a timestamp sort as epoch and end up last.
func SortNewestFirst(records []VisitRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.SortKey() > records[j].CreatedAt.SortKey()
	})
}

// ParseDuration converts "MM:SS" or "H:MM:SS" into seconds.
func ParseDuration(s string) int {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0
	}
	total := 0
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return 0
		}
		total = total*60 + n
	}
	return total
}

// FormatDuration renders seconds as M:SS with zero-padded seconds.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
