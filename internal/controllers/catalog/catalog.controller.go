package catalogController

import (
	"context"

	. "resonate/internal/models"
	"resonate/internal/repositories"
	"resonate/internal/services"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogController handles track and album management plus listen recording.
type CatalogController struct {
	trackRepo         repositories.TrackRepository
	albumRepo         repositories.AlbumRepository
	eventRepo         repositories.ListeningEventRepository
	similarityService *services.SimilarityService
	db                *gorm.DB
	log               logger.Logger
}

type CatalogControllerInterface interface {
	GetTrack(ctx context.Context, user *User, trackID uuid.UUID) (*Track, error)
	ListTracksByArtist(ctx context.Context, artistID uuid.UUID) ([]*Track, error)
	CreateTrack(ctx context.Context, user *User, req TrackCreateRequest) (*Track, error)
	UpdateTrack(ctx context.Context, user *User, trackID uuid.UUID, req TrackUpdateRequest) (*Track, error)
	DeleteTrack(ctx context.Context, user *User, trackID uuid.UUID) error
	CreateAlbum(ctx context.Context, user *User, req AlbumCreateRequest) (*Album, error)
}

type TrackCreateRequest struct {
	Title           string     `json:"title"`
	AlbumID         *uuid.UUID `json:"albumId,omitempty"`
	Genre           string     `json:"genre"`
	DurationSeconds int        `json:"durationSeconds"`
	FileURL         string     `json:"fileUrl"`
}

type TrackUpdateRequest struct {
	Title           *string `json:"title,omitempty"`
	Genre           *string `json:"genre,omitempty"`
	DurationSeconds *int    `json:"durationSeconds,omitempty"`
	FileURL         *string `json:"fileUrl,omitempty"`
}

type AlbumCreateRequest struct {
	Title       string `json:"title"`
	ReleaseYear *int   `json:"releaseYear,omitempty"`
}

func New(
	repos repositories.Repository,
	services services.Service,
	db *gorm.DB,
) CatalogControllerInterface {
	return &CatalogController{
		trackRepo:         repos.Track,
		albumRepo:         repos.Album,
		eventRepo:         repos.ListeningEvent,
		similarityService: services.Similarity,
		db:                db,
		log:               logger.New("catalogController"),
	}
}

// GetTrack fetches a track and records a listening event for the requesting
// user. The event write is best effort; a failed insert does not block the
// fetch.
func (c *CatalogController) GetTrack(
	ctx context.Context,
	user *User,
	trackID uuid.UUID,
) (*Track, error) {
	log := c.log.TraceFromContext(ctx).Function("GetTrack")

	track, err := c.trackRepo.GetByID(ctx, c.db, trackID)
	if err != nil {
		return nil, err
	}

	event := &ListeningEvent{
		UserID:  user.ID,
		TrackID: track.ID,
	}
	if err := c.eventRepo.Create(ctx, c.db, event); err != nil {
		log.Warn("failed to record listen", "trackID", track.ID, "userID", user.ID)
	}

	return track, nil
}

func (c *CatalogController) ListTracksByArtist(
	ctx context.Context,
	artistID uuid.UUID,
) ([]*Track, error) {
	return c.trackRepo.GetByArtist(ctx, c.db, artistID)
}

func (c *CatalogController) CreateTrack(
	ctx context.Context,
	user *User,
	req TrackCreateRequest,
) (*Track, error) {
	log := c.log.TraceFromContext(ctx).Function("CreateTrack")

	if !user.IsArtist() {
		return nil, ErrNotAnArtist
	}

	genre, err := ParseGenre(req.Genre)
	if err != nil {
		return nil, err
	}

	if req.AlbumID != nil {
		album, err := c.albumRepo.GetByID(ctx, c.db, *req.AlbumID)
		if err != nil {
			return nil, err
		}
		if album.ArtistID != user.ID {
			return nil, ErrForbidden
		}
	}

	track := &Track{
		Title:           req.Title,
		ArtistID:        user.ID,
		AlbumID:         req.AlbumID,
		Genre:           genre,
		DurationSeconds: req.DurationSeconds,
		FileURL:         req.FileURL,
	}
	if err := c.trackRepo.Create(ctx, c.db, track); err != nil {
		return nil, err
	}

	c.similarityService.InvalidateProfile(ctx, user.ID)
	log.Info("created track", "trackID", track.ID, "artistID", user.ID)

	return track, nil
}

func (c *CatalogController) UpdateTrack(
	ctx context.Context,
	user *User,
	trackID uuid.UUID,
	req TrackUpdateRequest,
) (*Track, error) {
	log := c.log.TraceFromContext(ctx).Function("UpdateTrack")

	track, err := c.trackRepo.GetByID(ctx, c.db, trackID)
	if err != nil {
		return nil, err
	}
	if !user.CanManageTrack(track) {
		return nil, ErrForbidden
	}

	if req.Title != nil {
		track.Title = *req.Title
	}
	if req.Genre != nil {
		genre, err := ParseGenre(*req.Genre)
		if err != nil {
			return nil, err
		}
		track.Genre = genre
	}
	if req.DurationSeconds != nil {
		track.DurationSeconds = *req.DurationSeconds
	}
	if req.FileURL != nil {
		track.FileURL = *req.FileURL
	}

	if err := c.trackRepo.Update(ctx, c.db, track); err != nil {
		return nil, err
	}

	c.similarityService.InvalidateProfile(ctx, track.ArtistID)
	log.Info("updated track", "trackID", track.ID)

	return track, nil
}

// DeleteTrack soft deletes a track. Existing listening events are untouched;
// affinity and aggregation queries exclude deleted tracks on read.
func (c *CatalogController) DeleteTrack(
	ctx context.Context,
	user *User,
	trackID uuid.UUID,
) error {
	log := c.log.TraceFromContext(ctx).Function("DeleteTrack")

	track, err := c.trackRepo.GetByID(ctx, c.db, trackID)
	if err != nil {
		return err
	}
	if !user.CanManageTrack(track) {
		return ErrForbidden
	}

	if err := c.trackRepo.SoftDelete(ctx, c.db, track.ID); err != nil {
		return err
	}

	c.similarityService.InvalidateProfile(ctx, track.ArtistID)
	log.Info("deleted track", "trackID", track.ID)

	return nil
}

func (c *CatalogController) CreateAlbum(
	ctx context.Context,
	user *User,
	req AlbumCreateRequest,
) (*Album, error) {
	log := c.log.TraceFromContext(ctx).Function("CreateAlbum")

	if !user.IsArtist() {
		return nil, ErrNotAnArtist
	}

	album := &Album{
		Title:       req.Title,
		ArtistID:    user.ID,
		ReleaseYear: req.ReleaseYear,
	}
	if err := c.albumRepo.Create(ctx, c.db, album); err != nil {
		return nil, err
	}

	log.Info("created album", "albumID", album.ID, "artistID", user.ID)

	return album, nil
}
