package models

// RecordingSession is a legacy per-user recording, kept for accounts that have
// no clinic assigned yet.
type RecordingSession struct {
	BaseModel
	UserID        string `gorm:"size:36;index" json:"userId"`
	PatientID     string `gorm:"size:64" json:"patientId"`
	PatientName   string `gorm:"size:100" json:"patientName"`
	PatientGender string `gorm:"size:20" json:"patientGender"`
	PatientAge    string `gorm:"size:10" json:"patientAge"`
	Diagnosis     string `gorm:"type:text" json:"diagnosis"`
	Duration      string `gorm:"size:16" json:"duration"`
	Status        string `gorm:"size:20;default:'completed'" json:"status"`
}

// ToVisitRecord maps the session onto the common visit record.
func (s RecordingSession) ToVisitRecord() VisitRecord {
	status := VisitStatus(s.Status)
	if status == "" {
		status = VisitStatusCompleted
	}
	return VisitRecord{
		ID:            s.ID,
		PatientID:     s.PatientID,
		PatientName:   s.PatientName,
		PatientGender: s.PatientGender,
		PatientAge:    s.PatientAge,
		CreatedAt:     TimestampFromTime(s.CreatedAt),
		Diagnosis:     s.Diagnosis,
		Duration:      s.Duration,
		Status:        status,
	}
}
