package stats

import (
	"encoding/json"
	"testing"
	"time"

	"charting-dashboard-server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-01-08 is a Wednesday.
var wednesday = time.Date(2025, 1, 8, 14, 0, 0, 0, time.UTC)

func record(id, created, duration, diagnosis string) models.VisitRecord {
	return models.VisitRecord{
		ID:        id,
		CreatedAt: models.TimestampFromISO(created),
		Duration:  duration,
		Diagnosis: diagnosis,
	}
}

func TestNewPeriod(t *testing.T) {
	cases := []struct {
		name      string
		now       time.Time
		weekStart string
		prevWeek  string
		month     string
		elapsed   int
	}{
		{"wednesday", wednesday, "2025-01-06", "2024-12-30", "2025-01-01", 3},
		{"monday", time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), "2025-01-06", "2024-12-30", "2025-01-01", 1},
		{"sunday belongs to previous monday", time.Date(2025, 1, 12, 23, 0, 0, 0, time.UTC), "2025-01-06", "2024-12-30", "2025-01-01", 7},
		{"week spans new year", time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC), "2024-12-30", "2024-12-23", "2025-01-01", 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPeriod(tc.now, time.UTC)
			assert.Equal(t, tc.now.Format("2006-01-02"), p.Today)
			assert.Equal(t, tc.weekStart, p.WeekStart)
			assert.Equal(t, tc.prevWeek, p.PrevWeekStart)
			assert.Equal(t, tc.month, p.MonthStart)
			assert.Equal(t, tc.weekStart, p.WeekDates[0])
			assert.Equal(t, tc.elapsed, p.ElapsedWeekDays())
		})
	}
}

func TestNewPeriodUsesLocalCalendar(t *testing.T) {
	kst := time.FixedZone("KST", 9*60*60)
	// Sunday evening in UTC is already Monday morning in Seoul.
	p := NewPeriod(time.Date(2025, 1, 12, 20, 0, 0, 0, time.UTC), kst)
	assert.Equal(t, "2025-01-13", p.Today)
	assert.Equal(t, "2025-01-13", p.WeekStart)
}

func TestPartition(t *testing.T) {
	p := NewPeriod(wednesday, time.UTC)
	s := p.Partition([]models.VisitRecord{
		record("today", "2025-01-08T09:00:00Z", "01:00", ""),
		record("monday", "2025-01-06T09:00:00Z", "01:00", ""),
		record("prev", "2025-01-02T09:00:00Z", "01:00", ""),
		record("december", "2024-12-31T09:00:00Z", "01:00", ""),
		record("old", "2024-11-01T09:00:00Z", "01:00", ""),
		record("undated", "", "01:00", ""),
	})

	ids := func(rs []datedRecord) []string {
		out := []string{}
		for _, r := range rs {
			out = append(out, r.ID)
		}
		return out
	}
	assert.Len(t, s.All, 6)
	assert.Equal(t, []string{"today"}, ids(s.Today))
	assert.Equal(t, []string{"today", "monday"}, ids(s.Week))
	assert.Equal(t, []string{"today", "monday", "prev"}, ids(s.Month))
	assert.Equal(t, []string{"prev", "december"}, ids(s.PrevWeek))
}

func TestComputeExampleWeek(t *testing.T) {
	st := Compute([]models.VisitRecord{
		record("a", "2025-01-06T10:00:00Z", "02:00", "Flu"),
		record("b", "2025-01-07T10:00:00Z", "03:00", "Cold"),
	}, wednesday, time.UTC, DefaultConstants)

	assert.Equal(t, 2, st.WeekCount)
	assert.Equal(t, 150, st.AvgDuration)
	assert.Equal(t, "2:30", st.AvgDurationFormatted)
	counts := []int{}
	for _, b := range st.WeeklyData {
		counts = append(counts, b.Count)
	}
	assert.Equal(t, []int{1, 1, 0, 0, 0, 0, 0}, counts)
	assert.Equal(t, "Mon", st.WeeklyData[0].Day)
	assert.Equal(t, "2025-01-06", st.WeeklyData[0].Date)
	assert.Equal(t, "Sun", st.WeeklyData[6].Day)

	assert.Equal(t, 0, st.TodayCount)
	assert.Equal(t, 2, st.MonthCount)
	assert.Equal(t, 2, st.WeekTotal)
	assert.Equal(t, "0.7", st.DailyAverage)
	assert.Equal(t, "Mon", st.BusiestDay)
	assert.Equal(t, "+100%", st.WeekChange)
	assert.Equal(t, "0.3", st.TimeSaved)
	assert.Equal(t, "73%", st.TimeSavedPercent)
	assert.Equal(t, "98.5%", st.Accuracy)
	assert.Equal(t, "Flu", st.TopDiagnosis)
	assert.Empty(t, st.TodaySessions)
}

func TestComputeEmpty(t *testing.T) {
	st := Compute(nil, wednesday, time.UTC, DefaultConstants)

	assert.Equal(t, 0, st.TotalCount)
	assert.Equal(t, 0, st.AvgDuration)
	assert.Equal(t, "0:00", st.AvgDurationFormatted)
	assert.Len(t, st.WeeklyData, 7)
	assert.Equal(t, "0.0", st.DailyAverage)
	assert.Equal(t, "-", st.BusiestDay)
	assert.Equal(t, "+0%", st.WeekChange)
	assert.Equal(t, "0.0", st.TimeSaved)
	assert.Equal(t, "0%", st.TimeSavedPercent)
	assert.Equal(t, "0%", st.Accuracy)
	assert.Equal(t, "-", st.TopDiagnosis)

	// empty lists are serialized, never omitted or null
	raw, err := json.Marshal(st)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"topDiagnoses":[]`)
	assert.Contains(t, string(raw), `"todaySessions":[]`)
}

func TestTodayCountPartitionsTotal(t *testing.T) {
	records := []models.VisitRecord{
		record("1", "2025-01-08T01:00:00Z", "01:00", ""),
		record("2", "2025-01-08T23:59:00Z", "01:00", ""),
		record("3", "2025-01-07T23:59:00Z", "01:00", ""),
		record("4", "", "01:00", ""),
		record("5", "garbage", "01:00", ""),
	}
	p := NewPeriod(wednesday, time.UTC)
	s := p.Partition(records)

	notToday := 0
	for _, r := range s.All {
		if r.Date != p.Today {
			notToday++
		}
	}
	assert.Equal(t, len(records), len(s.Today)+notToday)
	assert.Equal(t, 2, len(s.Today))

	st := Compute(records, wednesday, time.UTC, DefaultConstants)
	assert.Equal(t, 5, st.TotalCount)
}

func TestWeeklyBucketsSumToWeekCount(t *testing.T) {
	sunday := time.Date(2025, 1, 12, 12, 0, 0, 0, time.UTC)
	records := []models.VisitRecord{}
	for day := 6; day <= 12; day++ {
		for n := 0; n < day%3+1; n++ {
			records = append(records, record("r", time.Date(2025, 1, day, 9, n, 0, 0, time.UTC).Format(time.RFC3339), "01:30", ""))
		}
	}
	records = append(records, record("prev", "2025-01-05T09:00:00Z", "01:00", ""))

	st := Compute(records, sunday, time.UTC, DefaultConstants)
	sum := 0
	for _, b := range st.WeeklyData {
		sum += b.Count
	}
	assert.Equal(t, st.WeekCount, sum)
	assert.Equal(t, 13, sum)
	// Wednesday and Saturday both have three; the earlier day wins
	assert.Equal(t, "Wed", st.BusiestDay)
}

func TestRankDiagnoses(t *testing.T) {
	st := Compute([]models.VisitRecord{
		record("1", "2025-01-02T09:00:00Z", "", "A"),
		record("2", "2025-01-03T09:00:00Z", "", "B"),
		record("3", "2025-01-04T09:00:00Z", "", "A"),
	}, wednesday, time.UTC, DefaultConstants)

	require.NotEmpty(t, st.TopDiagnoses)
	assert.Equal(t, models.DiagnosisCount{Diagnosis: "A", Count: 2}, st.TopDiagnoses[0])
	assert.Equal(t, "A", st.TopDiagnosis)
}

func TestRankDiagnosesTiesAndLimit(t *testing.T) {
	var rs []datedRecord
	for _, d := range []string{"C", "B\nsecond line", " B ", "D", "E", "F", "G", "  ", "A", "A"} {
		rs = append(rs, datedRecord{VisitRecord: models.VisitRecord{Diagnosis: d}})
	}
	ranking := rankDiagnoses(rs, TopDiagnosesLimit)

	require.Len(t, ranking, 5)
	assert.Equal(t, []models.DiagnosisCount{
		{Diagnosis: "B", Count: 2},
		{Diagnosis: "A", Count: 2},
		{Diagnosis: "C", Count: 1},
		{Diagnosis: "D", Count: 1},
		{Diagnosis: "E", Count: 1},
	}, ranking)
}

func TestWeekChange(t *testing.T) {
	cases := []struct {
		week, prev int
		want       string
	}{
		{0, 0, "+0%"},
		{3, 0, "+100%"},
		{0, 4, "-100%"},
		{3, 2, "+50%"},
		{1, 3, "-67%"},
		{3, 3, "+0%"},
		// -87.5 rounds towards +inf like Math.round
		{1, 8, "-87%"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, formatSignedPercent(weekChange(tc.week, tc.prev)), "week=%d prev=%d", tc.week, tc.prev)
	}
}

func TestBusiestDay(t *testing.T) {
	zero := make([]models.WeeklyBucket, 7)
	for i := range zero {
		zero[i].Day = weekdayLabels[i]
	}
	assert.Equal(t, "-", busiestDay(zero))

	tied := append([]models.WeeklyBucket(nil), zero...)
	tied[2].Count = 4
	tied[5].Count = 4
	assert.Equal(t, "Wed", busiestDay(tied))
}

func TestAverageDurationRoundTrip(t *testing.T) {
	st := Compute([]models.VisitRecord{
		record("1", "2025-01-06T09:00:00Z", "01:01", ""),
		record("2", "2025-01-07T09:00:00Z", "01:02", ""),
	}, wednesday, time.UTC, DefaultConstants)

	// 61.5 rounds half up
	assert.Equal(t, 62, st.AvgDuration)
	assert.Equal(t, "1:02", st.AvgDurationFormatted)
	assert.Equal(t, st.AvgDuration, models.ParseDuration(st.AvgDurationFormatted))
}

func TestTodaySessions(t *testing.T) {
	records := []models.VisitRecord{}
	for i := 0; i < 12; i++ {
		r := record("r", time.Date(2025, 1, 8, 8+i/2, i, 0, 0, time.UTC).Format(time.RFC3339), "02:05", "Migraine\nleft side")
		r.ID = string(rune('a' + i))
		records = append(records, r)
	}
	records[11].PatientName = "Park"
	records[11].PatientGender = "M"
	records[11].PatientAge = "52"

	st := Compute(records, wednesday, time.UTC, DefaultConstants)

	assert.Equal(t, 12, st.TodayCount)
	require.Len(t, st.TodaySessions, TodaySessionsLimit)
	first := st.TodaySessions[0]
	assert.Equal(t, "l", first.ID)
	assert.Equal(t, "13:11", first.Time)
	assert.Equal(t, "Park", first.PatientName)
	assert.Equal(t, "Migraine", first.Diagnosis)
	assert.Equal(t, 125, first.Duration)
	assert.Equal(t, "2:05", first.DurationFormatted)
	assert.Equal(t, "completed", first.Status)

	assert.Equal(t, FallbackPatientName, st.TodaySessions[1].PatientName)
	assert.Equal(t, FallbackPatientGender, st.TodaySessions[1].PatientGender)
	assert.Equal(t, "", st.TodaySessions[1].PatientAge)
}

func TestConstantsAreConfigurable(t *testing.T) {
	c := Constants{MinutesSavedPerVisit: 30, TimeSavedPercent: "50%", DisplayAccuracy: "99%"}
	st := Compute([]models.VisitRecord{
		record("1", "2025-01-02T09:00:00Z", "01:00", ""),
	}, wednesday, time.UTC, c)

	assert.Equal(t, "0.5", st.TimeSaved)
	assert.Equal(t, "50%", st.TimeSavedPercent)
	assert.Equal(t, "99%", st.Accuracy)
}

func TestComputeIsIdempotent(t *testing.T) {
	records := []models.VisitRecord{
		record("1", "2025-01-08T09:00:00Z", "02:00", "A"),
		record("2", "2025-01-07T09:00:00Z", "03:10", "B"),
		record("3", "2025-01-01T09:00:00Z", "01:10", "B"),
		record("4", "", "01:10", "C"),
	}

	first, err := json.Marshal(Compute(records, wednesday, time.UTC, DefaultConstants))
	require.NoError(t, err)
	second, err := json.Marshal(Compute(records, wednesday, time.UTC, DefaultConstants))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
