package models

import (
	"time"

	"github.com/google/uuid"
)

type Playlist struct {
	BaseUUIDModel
	Name              string    `gorm:"type:text;not null"                           json:"name"`
	Description       string    `gorm:"type:text"                                    json:"description"`
	OwnerID           uuid.UUID `gorm:"type:uuid;not null;index:idx_playlists_owner" json:"ownerId"`
	Owner             *User     `gorm:"foreignKey:OwnerID"                           json:"owner,omitempty"`
	IsSystemGenerated bool      `gorm:"type:bool;not null;default:false"             json:"isSystemGenerated"`
}

// PlaylistTrack is one playlist membership row. Positions start at 1 and are
// unique per playlist; a track may appear at most once per playlist. Both
// rules are enforced at the database level so concurrent writers cannot
// produce duplicate rows or duplicate positions.
type PlaylistTrack struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuidv7()"                                                                                                       json:"id"`
	PlaylistID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_playlist_tracks_playlist_track,priority:1;uniqueIndex:idx_playlist_tracks_playlist_position,priority:1" json:"playlistId"`
	Playlist   *Playlist `gorm:"foreignKey:PlaylistID"                                                                                                                       json:"playlist,omitempty"`
	TrackID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_playlist_tracks_playlist_track,priority:2"                                                                json:"trackId"`
	Track      *Track    `gorm:"foreignKey:TrackID"                                                                                                                          json:"track,omitempty"`
	Position   int       `gorm:"type:int;not null;uniqueIndex:idx_playlist_tracks_playlist_position,priority:2"                                                              json:"position"`
	AddedAt    time.Time `gorm:"autoCreateTime"                                                                                                                              json:"addedAt"`
}

// PlaylistSummary is what playlist regeneration returns to callers.
type PlaylistSummary struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	OwnerID           string `json:"ownerId"`
	IsSystemGenerated bool   `json:"isSystemGenerated"`
	TrackCount        int    `json:"trackCount"`
}

func (p *Playlist) ToSummary(trackCount int) PlaylistSummary {
	return PlaylistSummary{
		ID:                p.ID.String(),
		Name:              p.Name,
		Description:       p.Description,
		OwnerID:           p.OwnerID.String(),
		IsSystemGenerated: p.IsSystemGenerated,
		TrackCount:        trackCount,
	}
}
