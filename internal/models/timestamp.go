package models

import (
	"strings"
	"time"
)

// TimestampKind tells which representation a stored creation time arrived in.
type TimestampKind int

const (
	TimestampAbsent TimestampKind = iota
	TimestampISO
	TimestampEpochMillis
)

// Timestamp is the single representation of a stored creation time. Store
// adapters build it once from whatever the document held (an ISO 8601 string,
// epoch milliseconds or a native datetime); everything downstream only asks it
// for calendar values.
type Timestamp struct {
	kind   TimestampKind
	iso    string
	millis int64
}

// ISO layouts accepted from stored documents, most specific first.
var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// dateOnlyLayout is read as UTC midnight, the way browsers parse a bare date.
const dateOnlyLayout = "2006-01-02"

// TimestampFromISO keeps an ISO 8601 string. Strings that do not parse produce
// an absent timestamp.
func TimestampFromISO(s string) Timestamp {
	s = strings.TrimSpace(s)
	if s == "" {
		return Timestamp{}
	}
	if _, ok := parseISO(s, time.UTC); !ok {
		return Timestamp{}
	}
	return Timestamp{kind: TimestampISO, iso: s}
}

// TimestampFromEpochMillis wraps milliseconds since the Unix epoch.
func TimestampFromEpochMillis(ms int64) Timestamp {
	return Timestamp{kind: TimestampEpochMillis, millis: ms}
}

// TimestampFromTime converts a native time. The zero time is absent.
func TimestampFromTime(t time.Time) Timestamp {
	if t.IsZero() {
		return Timestamp{}
	}
	return TimestampFromEpochMillis(t.UnixMilli())
}

// Kind reports the stored representation.
func (ts Timestamp) Kind() TimestampKind { return ts.kind }

// Valid reports whether the timestamp holds an instant.
func (ts Timestamp) Valid() bool { return ts.kind != TimestampAbsent }

// In resolves the instant in loc. Offset-less ISO date-times are read as wall
// clock time in loc; a bare date is UTC midnight.
func (ts Timestamp) In(loc *time.Location) (time.Time, bool) {
	switch ts.kind {
	case TimestampISO:
		t, ok := parseISO(ts.iso, loc)
		if !ok {
			return time.Time{}, false
		}
		return t.In(loc), true
	case TimestampEpochMillis:
		return time.UnixMilli(ts.millis).In(loc), true
	default:
		return time.Time{}, false
	}
}

// LocalDate formats the calendar date in loc as YYYY-MM-DD, or "" when absent.
func (ts Timestamp) LocalDate(loc *time.Location) string {
	t, ok := ts.In(loc)
	if !ok {
		return ""
	}
	return t.Format("2006-01-02")
}

// LocalClock formats the wall clock in loc as HH:MM, or "" when absent.
func (ts Timestamp) LocalClock(loc *time.Location) string {
	t, ok := ts.In(loc)
	if !ok {
		return ""
	}
	return t.Format("15:04")
}

// SortKey is the instant in epoch milliseconds; absent timestamps sort as epoch.
func (ts Timestamp) SortKey() int64 {
	t, ok := ts.In(time.UTC)
	if !ok {
		return 0
	}
	return t.UnixMilli()
}

func parseISO(s string, loc *time.Location) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	if t, err := time.Parse(dateOnlyLayout, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
