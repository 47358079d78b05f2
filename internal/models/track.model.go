package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Track struct {
	BaseUUIDModel
	Title           string     `gorm:"type:text;not null;index:idx_tracks_title"  json:"title"`
	ArtistID        uuid.UUID  `gorm:"type:uuid;not null;index:idx_tracks_artist" json:"artistId"`
	Artist          *User      `gorm:"foreignKey:ArtistID"                        json:"artist,omitempty"`
	AlbumID         *uuid.UUID `gorm:"type:uuid;index:idx_tracks_album"           json:"albumId,omitempty"`
	Album           *Album     `gorm:"foreignKey:AlbumID"                         json:"album,omitempty"`
	Genre           Genre      `gorm:"type:text;not null;index:idx_tracks_genre"  json:"genre"`
	DurationSeconds int        `gorm:"type:int;not null"                          json:"durationSeconds"`
	FileURL         string     `gorm:"type:text;not null"                         json:"fileUrl"`
}

func (t *Track) BeforeSave(tx *gorm.DB) error {
	if t.Title == "" {
		return gorm.ErrInvalidValue
	}
	if !t.Genre.IsValid() {
		return gorm.ErrInvalidValue
	}
	if t.DurationSeconds < 0 {
		return gorm.ErrInvalidValue
	}
	return nil
}

// TrackSummary is the compact projection used in profiles and playlists.
type TrackSummary struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Genre           Genre  `json:"genre"`
	DurationSeconds int    `json:"durationSeconds"`
}

func (t *Track) ToSummary() TrackSummary {
	return TrackSummary{
		ID:              t.ID.String(),
		Title:           t.Title,
		Genre:           t.Genre,
		DurationSeconds: t.DurationSeconds,
	}
}
