package repositories

import (
	"context"
	"errors"

	. "resonate/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TrackRepository interface {
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*Track, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*Track, error)
	GetByArtist(ctx context.Context, tx *gorm.DB, artistID uuid.UUID) ([]*Track, error)
	GetByGenre(ctx context.Context, tx *gorm.DB, genre Genre, limit int) ([]*Track, error)
	DistinctGenresByArtist(ctx context.Context, tx *gorm.DB, artistID uuid.UUID) ([]Genre, error)
	CountByArtist(ctx context.Context, tx *gorm.DB, artistID uuid.UUID) (int64, error)
	Create(ctx context.Context, tx *gorm.DB, track *Track) error
	Update(ctx context.Context, tx *gorm.DB, track *Track) error
	SoftDelete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type trackRepository struct {
	log logger.Logger
}

func NewTrackRepository() TrackRepository {
	return &trackRepository{
		log: logger.New("trackRepository"),
	}
}

func (r *trackRepository) GetByID(
	ctx context.Context,
	tx *gorm.DB,
	id uuid.UUID,
) (*Track, error) {
	log := r.log.Function("GetByID")

	var track Track
	if err := tx.WithContext(ctx).First(&track, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, log.Err("failed to get track by id", err, "trackID", id)
	}

	return &track, nil
}

func (r *trackRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]*Track, error) {
	log := r.log.Function("GetAll")

	var tracks []*Track
	if err := tx.WithContext(ctx).Order("id ASC").Find(&tracks).Error; err != nil {
		return nil, log.Err("failed to get tracks", err)
	}

	return tracks, nil
}

func (r *trackRepository) GetByArtist(
	ctx context.Context,
	tx *gorm.DB,
	artistID uuid.UUID,
) ([]*Track, error) {
	log := r.log.Function("GetByArtist")

	var tracks []*Track
	if err := tx.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("title ASC, id ASC").
		Find(&tracks).Error; err != nil {
		return nil, log.Err("failed to get tracks by artist", err, "artistID", artistID)
	}

	return tracks, nil
}

// GetByGenre returns non-deleted tracks of a genre in a deterministic catalog
// order (title, then id) so one regeneration run is reproducible.
func (r *trackRepository) GetByGenre(
	ctx context.Context,
	tx *gorm.DB,
	genre Genre,
	limit int,
) ([]*Track, error) {
	log := r.log.Function("GetByGenre")

	var tracks []*Track
	if err := tx.WithContext(ctx).
		Where("genre = ?", genre).
		Order("title ASC, id ASC").
		Limit(limit).
		Find(&tracks).Error; err != nil {
		return nil, log.Err("failed to get tracks by genre", err, "genre", genre)
	}

	return tracks, nil
}

func (r *trackRepository) DistinctGenresByArtist(
	ctx context.Context,
	tx *gorm.DB,
	artistID uuid.UUID,
) ([]Genre, error) {
	log := r.log.Function("DistinctGenresByArtist")

	var genres []Genre
	if err := tx.WithContext(ctx).
		Model(&Track{}).
		Where("artist_id = ?", artistID).
		Distinct().
		Order("genre ASC").
		Pluck("genre", &genres).Error; err != nil {
		return nil, log.Err("failed to get distinct genres", err, "artistID", artistID)
	}

	return genres, nil
}

func (r *trackRepository) CountByArtist(
	ctx context.Context,
	tx *gorm.DB,
	artistID uuid.UUID,
) (int64, error) {
	log := r.log.Function("CountByArtist")

	var count int64
	if err := tx.WithContext(ctx).
		Model(&Track{}).
		Where("artist_id = ?", artistID).
		Count(&count).Error; err != nil {
		return 0, log.Err("failed to count tracks by artist", err, "artistID", artistID)
	}

	return count, nil
}

func (r *trackRepository) Create(ctx context.Context, tx *gorm.DB, track *Track) error {
	log := r.log.Function("Create")

	if err := tx.WithContext(ctx).Create(track).Error; err != nil {
		return log.Err("failed to create track", err, "title", track.Title)
	}

	return nil
}

func (r *trackRepository) Update(ctx context.Context, tx *gorm.DB, track *Track) error {
	log := r.log.Function("Update")

	if err := tx.WithContext(ctx).Save(track).Error; err != nil {
		return log.Err("failed to update track", err, "trackID", track.ID)
	}

	return nil
}

func (r *trackRepository) SoftDelete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	log := r.log.Function("SoftDelete")

	result := tx.WithContext(ctx).Delete(&Track{}, "id = ?", id)
	if result.Error != nil {
		return log.Err("failed to delete track", result.Error, "trackID", id)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
