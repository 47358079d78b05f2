package repositories

import (
	"context"
	"errors"

	. "resonate/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlaylistRepository interface {
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*Playlist, error)
	GetByOwner(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID) ([]*Playlist, error)
	GetSystemGeneratedByOwner(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID) ([]*Playlist, error)
	Create(ctx context.Context, tx *gorm.DB, playlist *Playlist) error
	SoftDelete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	AddTrack(ctx context.Context, tx *gorm.DB, playlistID, trackID uuid.UUID, position int) error
	RemoveTrack(ctx context.Context, tx *gorm.DB, playlistID, trackID uuid.UUID) error
	GetTracks(ctx context.Context, tx *gorm.DB, playlistID uuid.UUID) ([]*PlaylistTrack, error)
	NextPosition(ctx context.Context, tx *gorm.DB, playlistID uuid.UUID) (int, error)
}

type playlistRepository struct {
	log logger.Logger
}

func NewPlaylistRepository() PlaylistRepository {
	return &playlistRepository{
		log: logger.New("playlistRepository"),
	}
}

func (r *playlistRepository) GetByID(
	ctx context.Context,
	tx *gorm.DB,
	id uuid.UUID,
) (*Playlist, error) {
	log := r.log.Function("GetByID")

	var playlist Playlist
	if err := tx.WithContext(ctx).First(&playlist, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, log.Err("failed to get playlist by id", err, "playlistID", id)
	}

	return &playlist, nil
}

func (r *playlistRepository) GetByOwner(
	ctx context.Context,
	tx *gorm.DB,
	ownerID uuid.UUID,
) ([]*Playlist, error) {
	log := r.log.Function("GetByOwner")

	var playlists []*Playlist
	if err := tx.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC, id ASC").
		Find(&playlists).Error; err != nil {
		return nil, log.Err("failed to get playlists by owner", err, "ownerID", ownerID)
	}

	return playlists, nil
}

func (r *playlistRepository) GetSystemGeneratedByOwner(
	ctx context.Context,
	tx *gorm.DB,
	ownerID uuid.UUID,
) ([]*Playlist, error) {
	log := r.log.Function("GetSystemGeneratedByOwner")

	var playlists []*Playlist
	if err := tx.WithContext(ctx).
		Where("owner_id = ? AND is_system_generated = ?", ownerID, true).
		Order("created_at ASC, id ASC").
		Find(&playlists).Error; err != nil {
		return nil, log.Err(
			"failed to get system playlists by owner",
			err,
			"ownerID", ownerID,
		)
	}

	return playlists, nil
}

func (r *playlistRepository) Create(
	ctx context.Context,
	tx *gorm.DB,
	playlist *Playlist,
) error {
	log := r.log.Function("Create")

	if err := tx.WithContext(ctx).Create(playlist).Error; err != nil {
		return log.Err("failed to create playlist", err, "name", playlist.Name)
	}

	return nil
}

func (r *playlistRepository) SoftDelete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	log := r.log.Function("SoftDelete")

	result := tx.WithContext(ctx).Delete(&Playlist{}, "id = ?", id)
	if result.Error != nil {
		return log.Err("failed to delete playlist", result.Error, "playlistID", id)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// AddTrack appends one membership row. A track may appear at most once per
// playlist; duplicates are rejected with ErrDuplicateTrack before the insert,
// and the unique index on (playlist_id, track_id) backs the check under
// concurrency.
func (r *playlistRepository) AddTrack(
	ctx context.Context,
	tx *gorm.DB,
	playlistID, trackID uuid.UUID,
	position int,
) error {
	log := r.log.Function("AddTrack")

	var existing int64
	if err := tx.WithContext(ctx).
		Model(&PlaylistTrack{}).
		Where("playlist_id = ? AND track_id = ?", playlistID, trackID).
		Count(&existing).Error; err != nil {
		return log.Err("failed to check playlist membership", err, "playlistID", playlistID)
	}
	if existing > 0 {
		return ErrDuplicateTrack
	}

	entry := PlaylistTrack{
		PlaylistID: playlistID,
		TrackID:    trackID,
		Position:   position,
	}
	if err := tx.WithContext(ctx).Create(&entry).Error; err != nil {
		return log.Err(
			"failed to add track to playlist",
			err,
			"playlistID", playlistID,
			"trackID", trackID,
		)
	}

	return nil
}

func (r *playlistRepository) RemoveTrack(
	ctx context.Context,
	tx *gorm.DB,
	playlistID, trackID uuid.UUID,
) error {
	log := r.log.Function("RemoveTrack")

	result := tx.WithContext(ctx).
		Where("playlist_id = ? AND track_id = ?", playlistID, trackID).
		Delete(&PlaylistTrack{})
	if result.Error != nil {
		return log.Err(
			"failed to remove track from playlist",
			result.Error,
			"playlistID", playlistID,
			"trackID", trackID,
		)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *playlistRepository) GetTracks(
	ctx context.Context,
	tx *gorm.DB,
	playlistID uuid.UUID,
) ([]*PlaylistTrack, error) {
	log := r.log.Function("GetTracks")

	var entries []*PlaylistTrack
	if err := tx.WithContext(ctx).
		Preload("Track").
		Where("playlist_id = ?", playlistID).
		Order("position ASC").
		Find(&entries).Error; err != nil {
		return nil, log.Err("failed to get playlist tracks", err, "playlistID", playlistID)
	}

	return entries, nil
}

func (r *playlistRepository) NextPosition(
	ctx context.Context,
	tx *gorm.DB,
	playlistID uuid.UUID,
) (int, error) {
	log := r.log.Function("NextPosition")

	var maxPosition *int
	if err := tx.WithContext(ctx).
		Model(&PlaylistTrack{}).
		Where("playlist_id = ?", playlistID).
		Select("MAX(position)").
		Scan(&maxPosition).Error; err != nil {
		return 0, log.Err("failed to get max position", err, "playlistID", playlistID)
	}

	if maxPosition == nil {
		return 1, nil
	}
	return *maxPosition + 1, nil
}
