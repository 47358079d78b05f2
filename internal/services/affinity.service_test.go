package services

import (
	"context"
	"testing"

	. "resonate/internal/models"
	"resonate/internal/repositories"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAffinityService(
	eventRepo repositories.ListeningEventRepository,
	trackRepo repositories.TrackRepository,
) *AffinityService {
	return &AffinityService{
		eventRepo: eventRepo,
		trackRepo: trackRepo,
		log:       logger.New("affinityService"),
	}
}

func TestAffinityService_RankedGenres_OrdersByListensDescending(t *testing.T) {
	eventRepo := newFakeListeningEventRepository()
	userID := uuid.New()
	eventRepo.genreCounts[userID] = []repositories.GenreListenCount{
		{Genre: GenreJazz, Listens: 3},
		{Genre: GenreRock, Listens: 12},
		{Genre: GenrePop, Listens: 7},
	}

	service := newTestAffinityService(eventRepo, &fakeTrackRepository{})

	ranked, err := service.RankedGenres(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, ranked, 3)
	assert.Equal(t, GenreRock, ranked[0].Genre)
	assert.Equal(t, GenrePop, ranked[1].Genre)
	assert.Equal(t, GenreJazz, ranked[2].Genre)
}

func TestAffinityService_RankedGenres_TiesBreakAlphabetically(t *testing.T) {
	eventRepo := newFakeListeningEventRepository()
	userID := uuid.New()
	eventRepo.genreCounts[userID] = []repositories.GenreListenCount{
		{Genre: GenreRock, Listens: 5},
		{Genre: GenreClassical, Listens: 5},
		{Genre: GenreJazz, Listens: 5},
	}

	service := newTestAffinityService(eventRepo, &fakeTrackRepository{})

	ranked, err := service.RankedGenres(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, ranked, 3)
	assert.Equal(t, GenreClassical, ranked[0].Genre)
	assert.Equal(t, GenreJazz, ranked[1].Genre)
	assert.Equal(t, GenreRock, ranked[2].Genre)
}

func TestAffinityService_RankedGenres_NoEventsReturnsEmpty(t *testing.T) {
	service := newTestAffinityService(newFakeListeningEventRepository(), &fakeTrackRepository{})

	ranked, err := service.RankedGenres(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestAffinityService_GenresForArtist(t *testing.T) {
	trackRepo := &fakeTrackRepository{}
	artistID := uuid.New()
	trackRepo.add(&Track{Title: "One", ArtistID: artistID, Genre: GenreRock})
	trackRepo.add(&Track{Title: "Two", ArtistID: artistID, Genre: GenreJazz})
	trackRepo.add(&Track{Title: "Three", ArtistID: artistID, Genre: GenreRock})

	service := newTestAffinityService(newFakeListeningEventRepository(), trackRepo)

	genres, err := service.GenresForArtist(context.Background(), artistID)
	require.NoError(t, err)
	assert.Equal(t, []Genre{GenreJazz, GenreRock}, genres)
}
