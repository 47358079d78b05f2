package services

import (
	"context"

	"resonate/internal/database"
	. "resonate/internal/models"
	"resonate/internal/repositories"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// TopGenreCount is how many of the user's ranked genres get a playlist.
	TopGenreCount = 3
	// TracksPerPlaylist caps each generated playlist's length.
	TracksPerPlaylist = 20

	generatedPlaylistDescription = "Based on your listening history"
)

// RecommendationService regenerates a user's system playlists from their
// genre ranking.
type RecommendationService struct {
	db           *gorm.DB
	transaction  TransactionExecutor
	affinity     *AffinityService
	userRepo     repositories.UserRepository
	trackRepo    repositories.TrackRepository
	playlistRepo repositories.PlaylistRepository
	log          logger.Logger
}

func NewRecommendationService(
	db database.DB,
	repo repositories.Repository,
	transaction TransactionExecutor,
	affinity *AffinityService,
) *RecommendationService {
	return &RecommendationService{
		db:           db.SQL,
		transaction:  transaction,
		affinity:     affinity,
		userRepo:     repo.User,
		trackRepo:    repo.Track,
		playlistRepo: repo.Playlist,
		log:          logger.New("recommendationService"),
	}
}

// GeneratePlaylists replaces the user's system playlists with fresh ones, one
// per top genre, inside a single transaction. The old playlists are always
// removed, even for a user with no recent listening, so a stale set never
// outlives the ranking that produced it. Returned summaries follow the genre
// ranking order.
func (s *RecommendationService) GeneratePlaylists(
	ctx context.Context,
	userID uuid.UUID,
) ([]PlaylistSummary, error) {
	log := s.log.Function("GeneratePlaylists")

	user, err := s.userRepo.GetByID(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}

	affinities, err := s.affinity.RankedGenres(ctx, user.ID)
	if err != nil {
		return nil, log.Err("failed to rank genres", err, "userID", user.ID)
	}
	if len(affinities) > TopGenreCount {
		affinities = affinities[:TopGenreCount]
	}

	summaries := make([]PlaylistSummary, 0, len(affinities))
	err = s.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		stale, err := s.playlistRepo.GetSystemGeneratedByOwner(ctx, tx, user.ID)
		if err != nil {
			return err
		}
		for _, playlist := range stale {
			if err := s.playlistRepo.SoftDelete(ctx, tx, playlist.ID); err != nil {
				return err
			}
		}

		for _, affinity := range affinities {
			playlist := &Playlist{
				Name:              affinity.Genre.MixPlaylistName(),
				Description:       generatedPlaylistDescription,
				OwnerID:           user.ID,
				IsSystemGenerated: true,
			}
			if err := s.playlistRepo.Create(ctx, tx, playlist); err != nil {
				return err
			}

			tracks, err := s.trackRepo.GetByGenre(ctx, tx, affinity.Genre, TracksPerPlaylist)
			if err != nil {
				return err
			}
			for position, track := range tracks {
				if err := s.playlistRepo.AddTrack(ctx, tx, playlist.ID, track.ID, position+1); err != nil {
					return err
				}
			}

			summaries = append(summaries, playlist.ToSummary(len(tracks)))
		}

		return nil
	})
	if err != nil {
		return nil, log.Err("failed to regenerate playlists", err, "userID", user.ID)
	}

	log.Info(
		"Regenerated system playlists",
		"userID", user.ID,
		"playlistCount", len(summaries),
	)

	return summaries, nil
}
