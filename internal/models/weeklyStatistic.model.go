package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WeeklyStatistic holds one recomputed popularity row per (track, week start).
// Counts are overwritten on every aggregation run, never incremented.
type WeeklyStatistic struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey;default:uuidv7()"                                      json:"id"`
	TrackID         uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_weekly_statistics_track_week,priority:1" json:"trackId"`
	Track           *Track         `gorm:"foreignKey:TrackID"                                                         json:"track,omitempty"`
	WeekStartDate   datatypes.Date `gorm:"not null;uniqueIndex:idx_weekly_statistics_track_week,priority:2"           json:"weekStartDate"`
	WeekEndDate     datatypes.Date `gorm:"not null"                                                                   json:"weekEndDate"`
	ListenCount     int64          `gorm:"type:bigint;not null;default:0"                                             json:"listenCount"`
	UniqueListeners int64          `gorm:"type:bigint;not null;default:0"                                             json:"uniqueListeners"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"                                                             json:"createdAt"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"                                                             json:"updatedAt"`
}
