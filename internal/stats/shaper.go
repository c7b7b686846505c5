package stats

import (
	"time"

	"charting-dashboard-server/internal/models"

	"github.com/samber/lo"
)

// Display values used when a visit has no patient details.
const (
	FallbackPatientName   = "환자"
	FallbackPatientGender = "Unknown"
)

// Compute reduces records to the dashboard summary as of now, without any
// patient lookups.
func Compute(records []models.VisitRecord, now time.Time, loc *time.Location, c Constants) models.DashboardStats {
	p := NewPeriod(now, loc)
	subsets := p.Partition(records)
	sessions := todaySessions(subsets.Today, loc)
	applyFallbacks(sessions)
	return Shape(p, subsets, sessions, c)
}

// Shape packs the aggregates into the flat response. Every field is filled,
// with zero values when its subset is empty.
func Shape(p Period, s Subsets, sessions []models.SessionSummary, c Constants) models.DashboardStats {
	avg := averageDuration(s.Week)
	weekly := weeklyHistogram(p, s.Week)
	top := rankDiagnoses(s.Month, TopDiagnosesLimit)

	topDiagnosis := noValue
	if len(top) > 0 {
		topDiagnosis = top[0].Diagnosis
	}
	if sessions == nil {
		sessions = []models.SessionSummary{}
	}

	return models.DashboardStats{
		TotalCount:           len(s.All),
		TodayCount:           len(s.Today),
		WeekCount:            len(s.Week),
		MonthCount:           len(s.Month),
		AvgDuration:          avg,
		AvgDurationFormatted: models.FormatDuration(avg),
		WeeklyData:           weekly,
		WeekTotal:            len(s.Week),
		DailyAverage:         dailyAverage(len(s.Week), p),
		BusiestDay:           busiestDay(weekly),
		WeekChange:           formatSignedPercent(weekChange(len(s.Week), len(s.PrevWeek))),
		TimeSaved:            timeSavedHours(len(s.Month), c),
		TimeSavedPercent:     shownWhenAny(len(s.Month), c.TimeSavedPercent),
		TopDiagnoses:         top,
		TopDiagnosis:         topDiagnosis,
		Accuracy:             shownWhenAny(len(s.Month), c.DisplayAccuracy),
		TodaySessions:        sessions,
	}
}

// todaySessions lists the newest of today's visits with their stored display
// values; missing patient details are left empty for enrichment.
func todaySessions(today []datedRecord, loc *time.Location) []models.SessionSummary {
	records := lo.Map(today, func(r datedRecord, _ int) models.VisitRecord { return r.VisitRecord })
	models.SortNewestFirst(records)
	if len(records) > TodaySessionsLimit {
		records = records[:TodaySessionsLimit]
	}

	return lo.Map(records, func(r models.VisitRecord, _ int) models.SessionSummary {
		seconds := r.DurationSeconds()
		status := string(r.Status)
		if status == "" {
			status = string(models.VisitStatusCompleted)
		}
		return models.SessionSummary{
			ID:                r.ID,
			Time:              r.CreatedAt.LocalClock(loc),
			PatientID:         r.PatientID,
			PatientName:       r.PatientName,
			PatientGender:     r.PatientGender,
			PatientAge:        r.PatientAge,
			Diagnosis:         r.DiagnosisLabel(),
			Duration:          seconds,
			DurationFormatted: models.FormatDuration(seconds),
			Status:            status,
		}
	})
}

func needsPatient(s models.SessionSummary) bool {
	return s.PatientID != "" && (s.PatientName == "" || s.PatientGender == "" || s.PatientAge == "")
}

func applyFallbacks(sessions []models.SessionSummary) {
	for i := range sessions {
		if sessions[i].PatientName == "" {
			sessions[i].PatientName = FallbackPatientName
		}
		if sessions[i].PatientGender == "" {
			sessions[i].PatientGender = FallbackPatientGender
		}
	}
}
