package services

import (
	"context"
	"sort"
	"time"

	"resonate/internal/database"
	. "resonate/internal/models"
	"resonate/internal/repositories"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AffinityLookbackMonths bounds the listening window used to rank a user's
// genres. Events older than this do not influence recommendations.
const AffinityLookbackMonths = 3

// AffinityService ranks a user's genres by how often they listened to them
// inside the lookback window.
type AffinityService struct {
	db        *gorm.DB
	eventRepo repositories.ListeningEventRepository
	trackRepo repositories.TrackRepository
	log       logger.Logger
}

func NewAffinityService(db database.DB, repo repositories.Repository) *AffinityService {
	return &AffinityService{
		db:        db.SQL,
		eventRepo: repo.ListeningEvent,
		trackRepo: repo.Track,
		log:       logger.New("affinityService"),
	}
}

// RankedGenres returns the user's genres ordered by descending listen count
// within the lookback window. Ties break alphabetically by genre so repeated
// calls over the same events produce the same ranking. Listens to deleted
// tracks are excluded. A user with no recent events gets an empty slice, not
// an error.
func (s *AffinityService) RankedGenres(
	ctx context.Context,
	userID uuid.UUID,
) ([]repositories.GenreListenCount, error) {
	log := s.log.Function("RankedGenres")

	cutoff := time.Now().UTC().AddDate(0, -AffinityLookbackMonths, 0)

	counts, err := s.eventRepo.TopGenresByUser(ctx, s.db, userID, cutoff)
	if err != nil {
		return nil, log.Err("failed to rank genres", err, "userID", userID)
	}

	sort.SliceStable(counts, func(i, j int) bool {
		if counts[i].Listens != counts[j].Listens {
			return counts[i].Listens > counts[j].Listens
		}
		return counts[i].Genre < counts[j].Genre
	})

	return counts, nil
}

// GenresForArtist returns the distinct genres across an artist's tracks,
// sorted alphabetically.
func (s *AffinityService) GenresForArtist(
	ctx context.Context,
	artistID uuid.UUID,
) ([]Genre, error) {
	log := s.log.Function("GenresForArtist")

	genres, err := s.trackRepo.DistinctGenresByArtist(ctx, s.db, artistID)
	if err != nil {
		return nil, log.Err("failed to get artist genres", err, "artistID", artistID)
	}

	return genres, nil
}
