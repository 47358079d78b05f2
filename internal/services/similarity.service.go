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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	// MaxSimilarArtists caps how many related artists a profile carries.
	MaxSimilarArtists = 10
	// ProfileTopTrackCount caps the track list embedded in a profile.
	ProfileTopTrackCount = 10

	ARTIST_PROFILE_CACHE_PREFIX = "artistProfile"
	artistProfileCacheTTL       = 15 * time.Minute
)

// SimilarArtist pairs a related artist with the genres both artists publish
// in.
type SimilarArtist struct {
	Artist       UserProfile `json:"artist"`
	SharedGenres []Genre     `json:"sharedGenres"`
}

// ArtistProfile is the aggregate view of one artist's catalog.
type ArtistProfile struct {
	Artist             UserProfile     `json:"artist"`
	Genres             []Genre         `json:"genres"`
	TrackCount         int64           `json:"trackCount"`
	AlbumCount         int64           `json:"albumCount"`
	TotalPlaytimeHours decimal.Decimal `json:"totalPlaytimeHours"`
	TopTracks          []TrackSummary  `json:"topTracks"`
	SimilarArtists     []SimilarArtist `json:"similarArtists"`
}

// SimilarityService relates artists through the genres their catalogs share.
type SimilarityService struct {
	db        *gorm.DB
	cache     database.CacheClient
	userRepo  repositories.UserRepository
	trackRepo repositories.TrackRepository
	albumRepo repositories.AlbumRepository
	log       logger.Logger
}

func NewSimilarityService(db database.DB, repo repositories.Repository) *SimilarityService {
	return &SimilarityService{
		db:        db.SQL,
		cache:     db.Cache.General,
		userRepo:  repo.User,
		trackRepo: repo.Track,
		albumRepo: repo.Album,
		log:       logger.New("similarityService"),
	}
}

// SimilarArtists returns up to MaxSimilarArtists artists whose catalogs share
// at least one genre with the given artist, ordered by the number of shared
// genres descending, then by artist id for a stable order. Returns
// ErrNotFound for an unknown user and ErrNotAnArtist when the user exists but
// does not publish tracks. An artist with no tracks, or no genre overlap with
// anyone, gets an empty slice.
func (s *SimilarityService) SimilarArtists(
	ctx context.Context,
	artistID uuid.UUID,
) ([]SimilarArtist, error) {
	log := s.log.Function("SimilarArtists")

	target, err := s.requireArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}

	targetGenres, err := s.trackRepo.DistinctGenresByArtist(ctx, s.db, target.ID)
	if err != nil {
		return nil, log.Err("failed to get target genres", err, "artistID", artistID)
	}
	if len(targetGenres) == 0 {
		return []SimilarArtist{}, nil
	}

	genreSet := make(map[Genre]struct{}, len(targetGenres))
	for _, genre := range targetGenres {
		genreSet[genre] = struct{}{}
	}

	candidates, err := s.userRepo.GetArtists(ctx, s.db)
	if err != nil {
		return nil, log.Err("failed to get candidate artists", err)
	}

	similar := make([]SimilarArtist, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.ID == target.ID {
			continue
		}

		candidateGenres, err := s.trackRepo.DistinctGenresByArtist(ctx, s.db, candidate.ID)
		if err != nil {
			return nil, log.Err(
				"failed to get candidate genres",
				err,
				"candidateID", candidate.ID,
			)
		}

		shared := make([]Genre, 0, len(candidateGenres))
		for _, genre := range candidateGenres {
			if _, ok := genreSet[genre]; ok {
				shared = append(shared, genre)
			}
		}
		if len(shared) == 0 {
			continue
		}

		similar = append(similar, SimilarArtist{
			Artist:       candidate.ToProfile(),
			SharedGenres: shared,
		})
	}

	// Candidates arrive ordered by id, so the stable sort keeps id order
	// among equal overlaps.
	sort.SliceStable(similar, func(i, j int) bool {
		return len(similar[i].SharedGenres) > len(similar[j].SharedGenres)
	})

	if len(similar) > MaxSimilarArtists {
		similar = similar[:MaxSimilarArtists]
	}

	return similar, nil
}

// Profile assembles the full aggregate for one artist. Profiles are cached
// briefly; catalog edits surface once the entry expires.
func (s *SimilarityService) Profile(
	ctx context.Context,
	artistID uuid.UUID,
) (*ArtistProfile, error) {
	log := s.log.Function("Profile")

	if s.cache != nil {
		var cached ArtistProfile
		found, err := database.NewCacheBuilder(s.cache, artistID).
			WithContext(ctx).
			WithHash(ARTIST_PROFILE_CACHE_PREFIX).
			Get(&cached)
		if err != nil {
			log.Warn("failed to read artist profile cache", "error", err)
		} else if found {
			return &cached, nil
		}
	}

	artist, err := s.requireArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}

	genres, err := s.trackRepo.DistinctGenresByArtist(ctx, s.db, artist.ID)
	if err != nil {
		return nil, log.Err("failed to get artist genres", err, "artistID", artistID)
	}

	trackCount, err := s.trackRepo.CountByArtist(ctx, s.db, artist.ID)
	if err != nil {
		return nil, log.Err("failed to count tracks", err, "artistID", artistID)
	}

	albumCount, err := s.albumRepo.CountByArtist(ctx, s.db, artist.ID)
	if err != nil {
		return nil, log.Err("failed to count albums", err, "artistID", artistID)
	}

	tracks, err := s.trackRepo.GetByArtist(ctx, s.db, artist.ID)
	if err != nil {
		return nil, log.Err("failed to get artist tracks", err, "artistID", artistID)
	}

	var totalSeconds int64
	for _, track := range tracks {
		totalSeconds += int64(track.DurationSeconds)
	}

	topTracks := make([]TrackSummary, 0, ProfileTopTrackCount)
	for _, track := range tracks {
		if len(topTracks) == ProfileTopTrackCount {
			break
		}
		topTracks = append(topTracks, track.ToSummary())
	}

	similar, err := s.SimilarArtists(ctx, artist.ID)
	if err != nil {
		return nil, err
	}

	profile := &ArtistProfile{
		Artist:     artist.ToProfile(),
		Genres:     genres,
		TrackCount: trackCount,
		AlbumCount: albumCount,
		TotalPlaytimeHours: decimal.NewFromInt(totalSeconds).
			Div(decimal.NewFromInt(3600)).
			Round(2),
		TopTracks:      topTracks,
		SimilarArtists: similar,
	}

	if s.cache != nil {
		if err := database.NewCacheBuilder(s.cache, artistID).
			WithContext(ctx).
			WithHash(ARTIST_PROFILE_CACHE_PREFIX).
			WithStruct(profile).
			WithTTL(artistProfileCacheTTL).
			Set(); err != nil {
			log.Warn("failed to cache artist profile", "error", err)
		}
	}

	return profile, nil
}

// InvalidateProfile drops the cached profile after a catalog mutation.
func (s *SimilarityService) InvalidateProfile(ctx context.Context, artistID uuid.UUID) {
	if s.cache == nil {
		return
	}

	if err := database.NewCacheBuilder(s.cache, artistID).
		WithContext(ctx).
		WithHash(ARTIST_PROFILE_CACHE_PREFIX).
		Delete(); err != nil {
		s.log.Function("InvalidateProfile").
			Warn("failed to invalidate artist profile cache", "error", err)
	}
}

func (s *SimilarityService) requireArtist(
	ctx context.Context,
	artistID uuid.UUID,
) (*User, error) {
	user, err := s.userRepo.GetByID(ctx, s.db, artistID)
	if err != nil {
		return nil, err
	}
	if !user.IsArtist() {
		return nil, ErrNotAnArtist
	}

	return user, nil
}
