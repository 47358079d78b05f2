package models

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestPlaylistTrack_UniqueConstraints(t *testing.T) {
	s, err := schema.Parse(&PlaylistTrack{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	uniqueColumns := map[string][]string{}
	for _, index := range s.ParseIndexes() {
		if index.Class != "UNIQUE" {
			continue
		}
		var columns []string
		for _, field := range index.Fields {
			columns = append(columns, field.DBName)
		}
		uniqueColumns[index.Name] = columns
	}

	t.Run("track appears at most once per playlist", func(t *testing.T) {
		assert.Equal(t,
			[]string{"playlist_id", "track_id"},
			uniqueColumns["idx_playlist_tracks_playlist_track"],
		)
	})

	t.Run("position is unique per playlist", func(t *testing.T) {
		assert.Equal(t,
			[]string{"playlist_id", "position"},
			uniqueColumns["idx_playlist_tracks_playlist_position"],
		)
	})
}

func TestPlaylist_ToSummary(t *testing.T) {
	id := uuid.New()
	ownerID := uuid.New()
	playlist := &Playlist{
		BaseUUIDModel:     BaseUUIDModel{ID: id},
		Name:              "JAZZ Mix for You",
		Description:       "Based on your listening history",
		OwnerID:           ownerID,
		IsSystemGenerated: true,
	}

	summary := playlist.ToSummary(20)

	assert.Equal(t, id.String(), summary.ID)
	assert.Equal(t, ownerID.String(), summary.OwnerID)
	assert.True(t, summary.IsSystemGenerated)
	assert.Equal(t, 20, summary.TrackCount)
}
