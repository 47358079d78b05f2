package services

import (
	"context"
	"fmt"
	"testing"

	. "resonate/internal/models"
	"resonate/internal/repositories"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecommendationService(
	userRepo repositories.UserRepository,
	trackRepo repositories.TrackRepository,
	playlistRepo repositories.PlaylistRepository,
	eventRepo repositories.ListeningEventRepository,
) (*RecommendationService, *fakeTransaction) {
	transaction := &fakeTransaction{}
	return &RecommendationService{
		transaction:  transaction,
		affinity:     newTestAffinityService(eventRepo, trackRepo),
		userRepo:     userRepo,
		trackRepo:    trackRepo,
		playlistRepo: playlistRepo,
		log:          logger.New("recommendationService"),
	}, transaction
}

func TestRecommendationService_GeneratePlaylists_TopThreeGenres(t *testing.T) {
	userRepo := newFakeUserRepository()
	trackRepo := &fakeTrackRepository{}
	playlistRepo := newFakePlaylistRepository()
	eventRepo := newFakeListeningEventRepository()

	listener := userRepo.add(&User{Username: "fan", Role: RoleListener})
	artistID := uuid.New()
	for _, genre := range []Genre{GenreRock, GenrePop, GenreJazz, GenreMetal} {
		trackRepo.add(&Track{
			Title:    string(genre) + " song",
			ArtistID: artistID,
			Genre:    genre,
		})
	}
	eventRepo.genreCounts[listener.ID] = []repositories.GenreListenCount{
		{Genre: GenreRock, Listens: 10},
		{Genre: GenrePop, Listens: 8},
		{Genre: GenreJazz, Listens: 5},
		{Genre: GenreMetal, Listens: 2},
	}

	service, transaction := newTestRecommendationService(
		userRepo, trackRepo, playlistRepo, eventRepo,
	)

	summaries, err := service.GeneratePlaylists(context.Background(), listener.ID)
	require.NoError(t, err)
	require.Len(t, summaries, TopGenreCount)
	assert.Equal(t, 1, transaction.calls)

	assert.Equal(t, "ROCK Mix for You", summaries[0].Name)
	assert.Equal(t, "POP Mix for You", summaries[1].Name)
	assert.Equal(t, "JAZZ Mix for You", summaries[2].Name)
	for _, summary := range summaries {
		assert.Equal(t, "Based on your listening history", summary.Description)
		assert.Equal(t, listener.ID.String(), summary.OwnerID)
		assert.True(t, summary.IsSystemGenerated)
		assert.Equal(t, 1, summary.TrackCount)
	}
}

func TestRecommendationService_GeneratePlaylists_PositionsStartAtOne(t *testing.T) {
	userRepo := newFakeUserRepository()
	trackRepo := &fakeTrackRepository{}
	playlistRepo := newFakePlaylistRepository()
	eventRepo := newFakeListeningEventRepository()

	listener := userRepo.add(&User{Username: "fan", Role: RoleListener})
	artistID := uuid.New()
	for i := 0; i < 5; i++ {
		trackRepo.add(&Track{
			Title:    fmt.Sprintf("rock-%d", i),
			ArtistID: artistID,
			Genre:    GenreRock,
		})
	}
	eventRepo.genreCounts[listener.ID] = []repositories.GenreListenCount{
		{Genre: GenreRock, Listens: 4},
	}

	service, _ := newTestRecommendationService(userRepo, trackRepo, playlistRepo, eventRepo)

	summaries, err := service.GeneratePlaylists(context.Background(), listener.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	playlistID, err := uuid.Parse(summaries[0].ID)
	require.NoError(t, err)

	entries, err := playlistRepo.GetTracks(context.Background(), nil, playlistID)
	require.NoError(t, err)
	require.Len(t, entries, 5)
	for i, entry := range entries {
		assert.Equal(t, i+1, entry.Position)
	}
}

func TestRecommendationService_GeneratePlaylists_CapsTracksPerPlaylist(t *testing.T) {
	userRepo := newFakeUserRepository()
	trackRepo := &fakeTrackRepository{}
	playlistRepo := newFakePlaylistRepository()
	eventRepo := newFakeListeningEventRepository()

	listener := userRepo.add(&User{Username: "fan", Role: RoleListener})
	artistID := uuid.New()
	for i := 0; i < TracksPerPlaylist+7; i++ {
		trackRepo.add(&Track{
			Title:    fmt.Sprintf("pop-%02d", i),
			ArtistID: artistID,
			Genre:    GenrePop,
		})
	}
	eventRepo.genreCounts[listener.ID] = []repositories.GenreListenCount{
		{Genre: GenrePop, Listens: 1},
	}

	service, _ := newTestRecommendationService(userRepo, trackRepo, playlistRepo, eventRepo)

	summaries, err := service.GeneratePlaylists(context.Background(), listener.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, TracksPerPlaylist, summaries[0].TrackCount)
}

func TestRecommendationService_GeneratePlaylists_ReplacesStaleSystemPlaylists(t *testing.T) {
	userRepo := newFakeUserRepository()
	trackRepo := &fakeTrackRepository{}
	playlistRepo := newFakePlaylistRepository()
	eventRepo := newFakeListeningEventRepository()

	listener := userRepo.add(&User{Username: "fan", Role: RoleListener})
	stale := &Playlist{
		Name:              "METAL Mix for You",
		OwnerID:           listener.ID,
		IsSystemGenerated: true,
	}
	require.NoError(t, playlistRepo.Create(context.Background(), nil, stale))
	manual := &Playlist{Name: "Road Trip", OwnerID: listener.ID}
	require.NoError(t, playlistRepo.Create(context.Background(), nil, manual))

	trackRepo.add(&Track{Title: "anthem", ArtistID: uuid.New(), Genre: GenreRock})
	eventRepo.genreCounts[listener.ID] = []repositories.GenreListenCount{
		{Genre: GenreRock, Listens: 3},
	}

	service, _ := newTestRecommendationService(userRepo, trackRepo, playlistRepo, eventRepo)

	_, err := service.GeneratePlaylists(context.Background(), listener.ID)
	require.NoError(t, err)

	_, err = playlistRepo.GetByID(context.Background(), nil, stale.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	remaining, err := playlistRepo.GetByOwner(context.Background(), nil, listener.ID)
	require.NoError(t, err)
	names := make([]string, 0, len(remaining))
	for _, playlist := range remaining {
		names = append(names, playlist.Name)
	}
	assert.Contains(t, names, "Road Trip")
	assert.Contains(t, names, "ROCK Mix for You")
	assert.NotContains(t, names, "METAL Mix for You")
}

func TestRecommendationService_GeneratePlaylists_NoListeningStillClearsOld(t *testing.T) {
	userRepo := newFakeUserRepository()
	playlistRepo := newFakePlaylistRepository()

	listener := userRepo.add(&User{Username: "lapsed", Role: RoleListener})
	stale := &Playlist{
		Name:              "POP Mix for You",
		OwnerID:           listener.ID,
		IsSystemGenerated: true,
	}
	require.NoError(t, playlistRepo.Create(context.Background(), nil, stale))

	service, transaction := newTestRecommendationService(
		userRepo, &fakeTrackRepository{}, playlistRepo, newFakeListeningEventRepository(),
	)

	summaries, err := service.GeneratePlaylists(context.Background(), listener.ID)
	require.NoError(t, err)
	assert.Empty(t, summaries)
	assert.Equal(t, 1, transaction.calls)

	system, err := playlistRepo.GetSystemGeneratedByOwner(context.Background(), nil, listener.ID)
	require.NoError(t, err)
	assert.Empty(t, system)
}

func TestRecommendationService_GeneratePlaylists_UnknownUser(t *testing.T) {
	service, transaction := newTestRecommendationService(
		newFakeUserRepository(),
		&fakeTrackRepository{},
		newFakePlaylistRepository(),
		newFakeListeningEventRepository(),
	)

	_, err := service.GeneratePlaylists(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, transaction.calls)
}
