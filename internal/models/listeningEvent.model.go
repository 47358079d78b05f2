package models

import (
	"time"

	"github.com/google/uuid"
)

// ListeningEvent is the append-only ground truth for affinity and statistics.
// Rows are created once per play and never updated or deleted.
type ListeningEvent struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuidv7()"                                json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index:idx_events_user;index:idx_events_user_time"  json:"userId"`
	User       *User     `gorm:"foreignKey:UserID"                                                    json:"user,omitempty"`
	TrackID    uuid.UUID `gorm:"type:uuid;not null;index:idx_events_track"                            json:"trackId"`
	Track      *Track    `gorm:"foreignKey:TrackID"                                                   json:"track,omitempty"`
	ListenedAt time.Time `gorm:"not null;index:idx_events_listened_at;index:idx_events_user_time"     json:"listenedAt"`
}
