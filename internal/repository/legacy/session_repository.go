package legacy

import (
	"context"
	"fmt"

	"charting-dashboard-server/internal/models"

	"gorm.io/gorm"
)

// SessionRepository reads per-user recording sessions from the legacy database
type SessionRepository struct {
	DB *gorm.DB
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

// FindByUser returns the user's sessions as visit records, newest first.
func (r *SessionRepository) FindByUser(ctx context.Context, userID string) ([]models.VisitRecord, error) {
	var sessions []models.RecordingSession
	if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch recording sessions: %w", err)
	}

	records := make([]models.VisitRecord, len(sessions))
	for i, s := range sessions {
		records[i] = s.ToVisitRecord()
	}
	models.SortNewestFirst(records)

	return records, nil
}
