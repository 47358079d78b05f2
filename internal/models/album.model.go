package models

import "github.com/google/uuid"

type Album struct {
	BaseUUIDModel
	Title       string    `gorm:"type:text;not null"                        json:"title"`
	ArtistID    uuid.UUID `gorm:"type:uuid;not null;index:idx_albums_artist" json:"artistId"`
	Artist      *User     `gorm:"foreignKey:ArtistID"                       json:"artist,omitempty"`
	ReleaseYear *int      `gorm:"type:int"                                  json:"releaseYear,omitempty"`
}
