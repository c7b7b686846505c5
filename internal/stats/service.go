package stats

import (
	"context"
	"fmt"
	"time"

	"charting-dashboard-server/internal/models"
)

// HospitalRecordReader reads the visit records of one clinic.
type HospitalRecordReader interface {
	FindByHospital(ctx context.Context, hospitalID string) ([]models.VisitRecord, error)
}

// SessionReader reads the legacy recording sessions of one user.
type SessionReader interface {
	FindByUser(ctx context.Context, userID string) ([]models.VisitRecord, error)
}

// PatientLookup resolves a clinic patient for display enrichment.
type PatientLookup interface {
	FindPatient(ctx context.Context, hospitalID, patientID string) (*models.Patient, error)
}

// Service computes dashboard statistics from the injected stores.
type Service struct {
	Records   HospitalRecordReader
	Sessions  SessionReader
	Enricher  Enricher
	Constants Constants
	Location  *time.Location
	Now       func() time.Time
}

// NewService creates a Service reading clinic records, legacy sessions and patients.
func NewService(records HospitalRecordReader, sessions SessionReader, patients PatientLookup, c Constants, loc *time.Location, concurrency int) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		Records:   records,
		Sessions:  sessions,
		Enricher:  Enricher{Patients: patients, Concurrency: concurrency},
		Constants: c,
		Location:  loc,
		Now:       time.Now,
	}
}

// HospitalStats summarizes the records of a clinic.
func (s *Service) HospitalStats(ctx context.Context, hospitalID string) (models.DashboardStats, error) {
	if s.Records == nil {
		return models.DashboardStats{}, fmt.Errorf("clinic record store is not configured")
	}
	records, err := s.Records.FindByHospital(ctx, hospitalID)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("failed to read records of hospital %s: %w", hospitalID, err)
	}
	return s.summarize(ctx, hospitalID, records), nil
}

// UserStats summarizes the legacy recording sessions of a user.
func (s *Service) UserStats(ctx context.Context, userID string) (models.DashboardStats, error) {
	if s.Sessions == nil {
		return models.DashboardStats{}, fmt.Errorf("legacy session store is not configured")
	}
	records, err := s.Sessions.FindByUser(ctx, userID)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("failed to read sessions of user %s: %w", userID, err)
	}
	return s.summarize(ctx, "", records), nil
}

// HospitalRecords lists the clinic's records with their local derived values,
// newest first. A positive limit truncates the list.
func (s *Service) HospitalRecords(ctx context.Context, hospitalID string, limit int) ([]models.VisitRecordView, error) {
	if s.Records == nil {
		return nil, fmt.Errorf("clinic record store is not configured")
	}
	records, err := s.Records.FindByHospital(ctx, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("failed to read records of hospital %s: %w", hospitalID, err)
	}
	models.SortNewestFirst(records)
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	views := make([]models.VisitRecordView, len(records))
	for i, r := range records {
		views[i] = r.View(s.Location)
	}
	return views, nil
}

func (s *Service) summarize(ctx context.Context, hospitalID string, records []models.VisitRecord) models.DashboardStats {
	p := NewPeriod(s.Now(), s.Location)
	subsets := p.Partition(records)

	sessions := todaySessions(subsets.Today, s.Location)
	s.Enricher.Enrich(ctx, hospitalID, sessions, p.Now)
	applyFallbacks(sessions)

	return Shape(p, subsets, sessions, s.Constants)
}
