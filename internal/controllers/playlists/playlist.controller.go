package playlistController

import (
	"context"

	. "resonate/internal/models"
	"resonate/internal/repositories"
	"resonate/internal/services"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlaylistController handles manual playlist management. Generated playlists
// are read-only for their owner; only the regeneration flow may rewrite them.
type PlaylistController struct {
	playlistRepo       repositories.PlaylistRepository
	trackRepo          repositories.TrackRepository
	transactionService services.TransactionExecutor
	db                 *gorm.DB
	log                logger.Logger
}

type PlaylistControllerInterface interface {
	GetPlaylist(ctx context.Context, user *User, playlistID uuid.UUID) (*PlaylistDetail, error)
	ListPlaylists(ctx context.Context, user *User) ([]*Playlist, error)
	CreatePlaylist(ctx context.Context, user *User, req PlaylistCreateRequest) (*Playlist, error)
	AddTrack(ctx context.Context, user *User, playlistID, trackID uuid.UUID) error
	RemoveTrack(ctx context.Context, user *User, playlistID, trackID uuid.UUID) error
}

type PlaylistCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type PlaylistDetail struct {
	Playlist Playlist        `json:"playlist"`
	Tracks   []PlaylistEntry `json:"tracks"`
}

type PlaylistEntry struct {
	Position int          `json:"position"`
	Track    TrackSummary `json:"track"`
}

func New(
	repos repositories.Repository,
	services services.Service,
	db *gorm.DB,
) PlaylistControllerInterface {
	return &PlaylistController{
		playlistRepo:       repos.Playlist,
		trackRepo:          repos.Track,
		transactionService: services.Transaction,
		db:                 db,
		log:                logger.New("playlistController"),
	}
}

func (c *PlaylistController) GetPlaylist(
	ctx context.Context,
	user *User,
	playlistID uuid.UUID,
) (*PlaylistDetail, error) {
	playlist, err := c.playlistRepo.GetByID(ctx, c.db, playlistID)
	if err != nil {
		return nil, err
	}
	if playlist.OwnerID != user.ID && !user.IsAdmin() {
		return nil, ErrForbidden
	}

	entries, err := c.playlistRepo.GetTracks(ctx, c.db, playlist.ID)
	if err != nil {
		return nil, err
	}

	detail := &PlaylistDetail{Playlist: *playlist}
	for _, entry := range entries {
		if entry.Track == nil {
			continue
		}
		detail.Tracks = append(detail.Tracks, PlaylistEntry{
			Position: entry.Position,
			Track:    entry.Track.ToSummary(),
		})
	}

	return detail, nil
}

func (c *PlaylistController) ListPlaylists(
	ctx context.Context,
	user *User,
) ([]*Playlist, error) {
	return c.playlistRepo.GetByOwner(ctx, c.db, user.ID)
}

func (c *PlaylistController) CreatePlaylist(
	ctx context.Context,
	user *User,
	req PlaylistCreateRequest,
) (*Playlist, error) {
	log := c.log.TraceFromContext(ctx).Function("CreatePlaylist")

	if req.Name == "" {
		return nil, gorm.ErrInvalidValue
	}

	playlist := &Playlist{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     user.ID,
	}
	if err := c.playlistRepo.Create(ctx, c.db, playlist); err != nil {
		return nil, err
	}

	log.Info("created playlist", "playlistID", playlist.ID, "ownerID", user.ID)

	return playlist, nil
}

// AddTrack appends a track at the next free position. The ownership and
// duplicate checks and the position read run inside one transaction so two
// concurrent adds cannot claim the same slot.
func (c *PlaylistController) AddTrack(
	ctx context.Context,
	user *User,
	playlistID, trackID uuid.UUID,
) error {
	log := c.log.TraceFromContext(ctx).Function("AddTrack")

	playlist, err := c.authorizeManualEdit(ctx, user, playlistID)
	if err != nil {
		return err
	}

	if _, err := c.trackRepo.GetByID(ctx, c.db, trackID); err != nil {
		return err
	}

	err = c.transactionService.Execute(ctx, func(txCtx context.Context, tx *gorm.DB) error {
		position, err := c.playlistRepo.NextPosition(txCtx, tx, playlist.ID)
		if err != nil {
			return err
		}
		return c.playlistRepo.AddTrack(txCtx, tx, playlist.ID, trackID, position)
	})
	if err != nil {
		return err
	}

	log.Info("added track to playlist", "playlistID", playlist.ID, "trackID", trackID)

	return nil
}

func (c *PlaylistController) RemoveTrack(
	ctx context.Context,
	user *User,
	playlistID, trackID uuid.UUID,
) error {
	log := c.log.TraceFromContext(ctx).Function("RemoveTrack")

	playlist, err := c.authorizeManualEdit(ctx, user, playlistID)
	if err != nil {
		return err
	}

	if err := c.playlistRepo.RemoveTrack(ctx, c.db, playlist.ID, trackID); err != nil {
		return err
	}

	log.Info("removed track from playlist", "playlistID", playlist.ID, "trackID", trackID)

	return nil
}

func (c *PlaylistController) authorizeManualEdit(
	ctx context.Context,
	user *User,
	playlistID uuid.UUID,
) (*Playlist, error) {
	playlist, err := c.playlistRepo.GetByID(ctx, c.db, playlistID)
	if err != nil {
		return nil, err
	}
	if playlist.OwnerID != user.ID && !user.IsAdmin() {
		return nil, ErrForbidden
	}
	if playlist.IsSystemGenerated {
		return nil, ErrForbidden
	}

	return playlist, nil
}
