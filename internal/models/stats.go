package models

// DashboardStats is the flat summary returned by the dashboard stats endpoint.
type DashboardStats struct {
	TotalCount           int              `json:"totalCount"`
	TodayCount           int              `json:"todayCount"`
	WeekCount            int              `json:"weekCount"`
	MonthCount           int              `json:"monthCount"`
	AvgDuration          int              `json:"avgDuration"`
	AvgDurationFormatted string           `json:"avgDurationFormatted"`
	WeeklyData           []WeeklyBucket   `json:"weeklyData"`
	WeekTotal            int              `json:"weekTotal"`
	DailyAverage         string           `json:"dailyAverage"`
	BusiestDay           string           `json:"busiestDay"`
	WeekChange           string           `json:"weekChange"`
	TimeSaved            string           `json:"timeSaved"`
	TimeSavedPercent     string           `json:"timeSavedPercent"`
	TopDiagnoses         []DiagnosisCount `json:"topDiagnoses"`
	TopDiagnosis         string           `json:"topDiagnosis"`
	Accuracy             string           `json:"accuracy"`
	TodaySessions        []SessionSummary `json:"todaySessions"`
}

// WeeklyBucket counts the records of one weekday of the current week
type WeeklyBucket struct {
	Day   string `json:"day"`
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// DiagnosisCount is one entry of the diagnosis ranking
type DiagnosisCount struct {
	Diagnosis string `json:"diagnosis"`
	Count     int    `json:"count"`
}

// SessionSummary is one of today's visits as shown on the dashboard
type SessionSummary struct {
	ID                string `json:"id"`
	Time              string `json:"time"`
	PatientID         string `json:"patientId"`
	PatientName       string `json:"patientName"`
	PatientGender     string `json:"patientGender"`
	PatientAge        string `json:"patientAge"`
	Diagnosis         string `json:"diagnosis"`
	Duration          int    `json:"duration"`
	DurationFormatted string `json:"durationFormatted"`
	Status            string `json:"status"`
}
