package stats

import (
	"time"

	"charting-dashboard-server/internal/models"

	"github.com/samber/lo"
)

const dateLayout = "2006-01-02"

// weekdayLabels are the bucket labels, Monday first.
var weekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Period holds the boundary dates of one computation. All dates are local
// YYYY-MM-DD strings, so lexicographic order is date order.
type Period struct {
	Now           time.Time
	Location      *time.Location
	Today         string
	WeekStart     string
	MonthStart    string
	PrevWeekStart string
	WeekDates     [7]string
}

// NewPeriod computes the boundaries for now in loc. Weeks start on Monday; a
// Sunday is the last day of the week that began six days earlier.
func NewPeriod(now time.Time, loc *time.Location) Period {
	if loc == nil {
		loc = time.Local
	}
	now = now.In(loc)

	offset := (int(now.Weekday()) + 6) % 7
	weekStart := time.Date(now.Year(), now.Month(), now.Day()-offset, 0, 0, 0, 0, loc)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)

	p := Period{
		Now:           now,
		Location:      loc,
		Today:         now.Format(dateLayout),
		WeekStart:     weekStart.Format(dateLayout),
		MonthStart:    monthStart.Format(dateLayout),
		PrevWeekStart: weekStart.AddDate(0, 0, -7).Format(dateLayout),
	}
	for i := range p.WeekDates {
		p.WeekDates[i] = weekStart.AddDate(0, 0, i).Format(dateLayout)
	}
	return p
}

// ElapsedWeekDays is the number of this week's days up to and including today,
// never less than one.
func (p Period) ElapsedWeekDays() int {
	n := lo.CountBy(p.WeekDates[:], func(d string) bool { return d <= p.Today })
	return max(n, 1)
}

// datedRecord is a record with its local date resolved once.
type datedRecord struct {
	models.VisitRecord
	Date string
}

// Subsets are the period partitions of one record list.
type Subsets struct {
	All      []datedRecord
	Today    []datedRecord
	Week     []datedRecord
	Month    []datedRecord
	PrevWeek []datedRecord
}

// Partition normalizes every record's date and splits the list by period.
// Records without a date stay in All only.
func (p Period) Partition(records []models.VisitRecord) Subsets {
	all := lo.Map(records, func(r models.VisitRecord, _ int) datedRecord {
		return datedRecord{VisitRecord: r, Date: r.CreatedAt.LocalDate(p.Location)}
	})
	dated := lo.Filter(all, func(r datedRecord, _ int) bool { return r.Date != "" })

	return Subsets{
		All: all,
		Today: lo.Filter(dated, func(r datedRecord, _ int) bool {
			return r.Date == p.Today
		}),
		Week: lo.Filter(dated, func(r datedRecord, _ int) bool {
			return r.Date >= p.WeekStart
		}),
		Month: lo.Filter(dated, func(r datedRecord, _ int) bool {
			return r.Date >= p.MonthStart
		}),
		PrevWeek: lo.Filter(dated, func(r datedRecord, _ int) bool {
			return r.Date >= p.PrevWeekStart && r.Date < p.WeekStart
		}),
	}
}
