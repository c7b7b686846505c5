package stats

import (
	"fmt"
	"math"
	"sort"

	"charting-dashboard-server/internal/models"

	"github.com/samber/lo"
)

const (
	// TopDiagnosesLimit caps the diagnosis ranking.
	TopDiagnosesLimit = 5
	// TodaySessionsLimit caps the sessions listed for today.
	TodaySessionsLimit = 10

	noValue = "-"
)

// Constants are the fixed display figures of the dashboard. They are
// presentation defaults, not measurements.
type Constants struct {
	MinutesSavedPerVisit int
	TimeSavedPercent     string
	DisplayAccuracy      string
}

// DefaultConstants are the figures shown when nothing is configured.
var DefaultConstants = Constants{
	MinutesSavedPerVisit: 8,
	TimeSavedPercent:     "73%",
	DisplayAccuracy:      "98.5%",
}

// averageDuration returns the mean duration in whole seconds, 0 for no records.
func averageDuration(records []datedRecord) int {
	if len(records) == 0 {
		return 0
	}
	total := lo.SumBy(records, func(r datedRecord) int { return r.DurationSeconds() })
	return roundHalfUp(float64(total) / float64(len(records)))
}

// weeklyHistogram counts the records of each day of the week, Monday first.
func weeklyHistogram(p Period, week []datedRecord) []models.WeeklyBucket {
	perDay := lo.CountValuesBy(week, func(r datedRecord) string { return r.Date })

	buckets := make([]models.WeeklyBucket, len(p.WeekDates))
	for i, date := range p.WeekDates {
		buckets[i] = models.WeeklyBucket{
			Day:   weekdayLabels[i],
			Date:  date,
			Count: perDay[date],
		}
	}
	return buckets
}

// rankDiagnoses groups records by diagnosis label and returns the most frequent
// first. Equal counts keep the order in which the label was first seen.
func rankDiagnoses(records []datedRecord, limit int) []models.DiagnosisCount {
	ranking := []models.DiagnosisCount{}
	index := map[string]int{}
	for _, r := range records {
		label := r.DiagnosisLabel()
		if label == "" {
			continue
		}
		if i, ok := index[label]; ok {
			ranking[i].Count++
			continue
		}
		index[label] = len(ranking)
		ranking = append(ranking, models.DiagnosisCount{Diagnosis: label, Count: 1})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Count > ranking[j].Count
	})
	if len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking
}

// busiestDay scans the buckets for the highest count. The first bucket wins a
// tie and an all-zero week has no busiest day.
func busiestDay(buckets []models.WeeklyBucket) string {
	best := models.WeeklyBucket{Day: noValue}
	for _, b := range buckets {
		if b.Count > best.Count {
			best = b
		}
	}
	return best.Day
}

// weekChange is the signed week-over-week change in percent.
func weekChange(week, prevWeek int) int {
	switch {
	case prevWeek > 0:
		return roundHalfUp(float64(week-prevWeek) / float64(prevWeek) * 100)
	case week > 0:
		return 100
	default:
		return 0
	}
}

func formatSignedPercent(v int) string {
	if v >= 0 {
		return fmt.Sprintf("+%d%%", v)
	}
	return fmt.Sprintf("%d%%", v)
}

// timeSavedHours converts the per-visit minutes saved into hours.
func timeSavedHours(visits int, c Constants) string {
	return formatOneDecimal(float64(visits*c.MinutesSavedPerVisit) / 60)
}

func dailyAverage(weekCount int, p Period) string {
	return formatOneDecimal(float64(weekCount) / float64(p.ElapsedWeekDays()))
}

// shownWhenAny returns label when there is at least one record, else 0%.
func shownWhenAny(count int, label string) string {
	if count > 0 {
		return label
	}
	return "0%"
}

// roundHalfUp rounds halves towards positive infinity, so -2.5 becomes -2.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func formatOneDecimal(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
