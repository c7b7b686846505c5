package stats

import (
	"context"
	"log"
	"time"

	"charting-dashboard-server/internal/models"

	"golang.org/x/sync/errgroup"
)

// Enricher fills missing patient details on session summaries.
type Enricher struct {
	Patients    PatientLookup
	Concurrency int
}

// Enrich looks up the patient of every session that lacks a name, gender or
// age. Lookups run independently; a failed one is logged and leaves that
// session as it was.
func (e Enricher) Enrich(ctx context.Context, hospitalID string, sessions []models.SessionSummary, now time.Time) {
	if e.Patients == nil || hospitalID == "" {
		return
	}

	var g errgroup.Group
	if e.Concurrency > 0 {
		g.SetLimit(e.Concurrency)
	}

	for i := range sessions {
		if !needsPatient(sessions[i]) {
			continue
		}
		s := &sessions[i]
		g.Go(func() error {
			patient, err := e.Patients.FindPatient(ctx, hospitalID, s.PatientID)
			if err != nil {
				log.Printf("Failed to load patient %s for record %s: %v", s.PatientID, s.ID, err)
				return nil
			}
			if s.PatientName == "" {
				s.PatientName = patient.Name
			}
			if s.PatientGender == "" {
				s.PatientGender = patient.Gender
			}
			if s.PatientAge == "" {
				s.PatientAge = patient.AgeAt(now)
			}
			return nil
		})
	}

	_ = g.Wait()
}
