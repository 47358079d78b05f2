package recommendationController

import (
	"context"

	. "resonate/internal/models"
	"resonate/internal/repositories"
	"resonate/internal/services"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
)

// RecommendationController fronts playlist regeneration and artist discovery.
type RecommendationController struct {
	recommendationService *services.RecommendationService
	similarityService     *services.SimilarityService
	affinityService       *services.AffinityService
}

type RecommendationControllerInterface interface {
	GeneratePlaylists(ctx context.Context, user *User) ([]PlaylistSummary, error)
	GetArtistProfile(ctx context.Context, artistID uuid.UUID) (*services.ArtistProfile, error)
	GetSimilarArtists(ctx context.Context, artistID uuid.UUID) ([]services.SimilarArtist, error)
	GetGenreAffinity(ctx context.Context, user *User) ([]repositories.GenreListenCount, error)
}

func New(services services.Service) RecommendationControllerInterface {
	return &RecommendationController{
		recommendationService: services.Recommendation,
		similarityService:     services.Similarity,
		affinityService:       services.Affinity,
	}
}

func (c *RecommendationController) GeneratePlaylists(
	ctx context.Context,
	user *User,
) ([]PlaylistSummary, error) {
	log := logger.New("recommendationController").
		TraceFromContext(ctx).
		Function("GeneratePlaylists")

	summaries, err := c.recommendationService.GeneratePlaylists(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	log.Info("generated playlists", "userID", user.ID, "count", len(summaries))

	return summaries, nil
}

func (c *RecommendationController) GetArtistProfile(
	ctx context.Context,
	artistID uuid.UUID,
) (*services.ArtistProfile, error) {
	return c.similarityService.Profile(ctx, artistID)
}

func (c *RecommendationController) GetSimilarArtists(
	ctx context.Context,
	artistID uuid.UUID,
) ([]services.SimilarArtist, error) {
	return c.similarityService.SimilarArtists(ctx, artistID)
}

func (c *RecommendationController) GetGenreAffinity(
	ctx context.Context,
	user *User,
) ([]repositories.GenreListenCount, error) {
	return c.affinityService.RankedGenres(ctx, user.ID)
}
