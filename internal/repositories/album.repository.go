package repositories

import (
	"context"
	"errors"

	. "resonate/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AlbumRepository interface {
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*Album, error)
	GetByArtist(ctx context.Context, tx *gorm.DB, artistID uuid.UUID) ([]*Album, error)
	CountByArtist(ctx context.Context, tx *gorm.DB, artistID uuid.UUID) (int64, error)
	Create(ctx context.Context, tx *gorm.DB, album *Album) error
}

type albumRepository struct {
	log logger.Logger
}

func NewAlbumRepository() AlbumRepository {
	return &albumRepository{
		log: logger.New("albumRepository"),
	}
}

func (r *albumRepository) GetByID(
	ctx context.Context,
	tx *gorm.DB,
	id uuid.UUID,
) (*Album, error) {
	log := r.log.Function("GetByID")

	var album Album
	if err := tx.WithContext(ctx).First(&album, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, log.Err("failed to get album by id", err, "albumID", id)
	}

	return &album, nil
}

func (r *albumRepository) GetByArtist(
	ctx context.Context,
	tx *gorm.DB,
	artistID uuid.UUID,
) ([]*Album, error) {
	log := r.log.Function("GetByArtist")

	var albums []*Album
	if err := tx.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("title ASC").
		Find(&albums).Error; err != nil {
		return nil, log.Err("failed to get albums by artist", err, "artistID", artistID)
	}

	return albums, nil
}

func (r *albumRepository) CountByArtist(
	ctx context.Context,
	tx *gorm.DB,
	artistID uuid.UUID,
) (int64, error) {
	log := r.log.Function("CountByArtist")

	var count int64
	if err := tx.WithContext(ctx).
		Model(&Album{}).
		Where("artist_id = ?", artistID).
		Count(&count).Error; err != nil {
		return 0, log.Err("failed to count albums by artist", err, "artistID", artistID)
	}

	return count, nil
}

func (r *albumRepository) Create(ctx context.Context, tx *gorm.DB, album *Album) error {
	log := r.log.Function("Create")

	if err := tx.WithContext(ctx).Create(album).Error; err != nil {
		return log.Err("failed to create album", err, "title", album.Title)
	}

	return nil
}
