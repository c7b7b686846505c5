package models

import (
	"fmt"
	"time"

	"charting-dashboard-server/internal/config"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// BaseModel contains common columns for all legacy tables
type BaseModel struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate will set a UUID rather than numeric ID
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == "" {
		base.ID = uuid.New().String()
	}
	return nil
}

// InitLegacyDB opens the relational store that still holds per-user recording
// sessions from before clinics had their own record collections.
func InitLegacyDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dialector, err := legacyDialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := MigrateLegacy(db); err != nil {
		return nil, err
	}

	return db, nil
}

func legacyDialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "mysql":
		return mysql.Open(cfg.DSN), nil
	case "postgres":
		return postgres.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported legacy database driver %q", cfg.Driver)
	}
}

// MigrateLegacy auto migrates the legacy models
func MigrateLegacy(db *gorm.DB) error {
	return db.AutoMigrate(&RecordingSession{})
}
