package services

import (
	"bytes"
	"context"
	"sort"
	"time"

	. "resonate/internal/models"
	"resonate/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func lessUUID(a, b uuid.UUID) bool {
	return bytes.Compare(a[:], b[:]) < 0
}

type fakeTransaction struct {
	calls int
}

func (f *fakeTransaction) Execute(
	ctx context.Context,
	fn func(context.Context, *gorm.DB) error,
) error {
	f.calls++
	return fn(ctx, nil)
}

type fakeUserRepository struct {
	users map[uuid.UUID]*User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[uuid.UUID]*User)}
}

func (f *fakeUserRepository) add(user *User) *User {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.ID] = user
	return user
}

func (f *fakeUserRepository) GetByID(
	ctx context.Context,
	tx *gorm.DB,
	id uuid.UUID,
) (*User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return user, nil
}

func (f *fakeUserRepository) GetByUsername(
	ctx context.Context,
	tx *gorm.DB,
	username string,
) (*User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeUserRepository) GetArtists(ctx context.Context, tx *gorm.DB) ([]*User, error) {
	var artists []*User
	for _, user := range f.users {
		if user.Role == RoleArtist {
			artists = append(artists, user)
		}
	}
	sort.Slice(artists, func(i, j int) bool {
		return lessUUID(artists[i].ID, artists[j].ID)
	})
	return artists, nil
}

func (f *fakeUserRepository) Create(ctx context.Context, tx *gorm.DB, user *User) error {
	f.add(user)
	return nil
}

func (f *fakeUserRepository) Update(ctx context.Context, tx *gorm.DB, user *User) error {
	f.users[user.ID] = user
	return nil
}

type fakeTrackRepository struct {
	tracks []*Track
}

func (f *fakeTrackRepository) add(track *Track) *Track {
	if track.ID == uuid.Nil {
		track.ID = uuid.New()
	}
	f.tracks = append(f.tracks, track)
	return track
}

func (f *fakeTrackRepository) GetByID(
	ctx context.Context,
	tx *gorm.DB,
	id uuid.UUID,
) (*Track, error) {
	for _, track := range f.tracks {
		if track.ID == id {
			return track, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeTrackRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]*Track, error) {
	out := make([]*Track, len(f.tracks))
	copy(out, f.tracks)
	sort.Slice(out, func(i, j int) bool { return lessUUID(out[i].ID, out[j].ID) })
	return out, nil
}

func (f *fakeTrackRepository) GetByArtist(
	ctx context.Context,
	tx *gorm.DB,
	artistID uuid.UUID,
) ([]*Track, error) {
	var out []*Track
	for _, track := range f.tracks {
		if track.ArtistID == artistID {
			out = append(out, track)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Title != out[j].Title {
			return out[i].Title < out[j].Title
		}
		return lessUUID(out[i].ID, out[j].ID)
	})
	return out, nil
}

func (f *fakeTrackRepository) GetByGenre(
	ctx context.Context,
	tx *gorm.DB,
	genre Genre,
	limit int,
) ([]*Track, error) {
	var out []*Track
	for _, track := range f.tracks {
		if track.Genre == genre {
			out = append(out, track)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Title != out[j].Title {
			return out[i].Title < out[j].Title
		}
		return lessUUID(out[i].ID, out[j].ID)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeTrackRepository) DistinctGenresByArtist(
	ctx context.Context,
	tx *gorm.DB,
	artistID uuid.UUID,
) ([]Genre, error) {
	seen := make(map[Genre]struct{})
	var genres []Genre
	for _, track := range f.tracks {
		if track.ArtistID != artistID {
			continue
		}
		if _, ok := seen[track.Genre]; ok {
			continue
		}
		seen[track.Genre] = struct{}{}
		genres = append(genres, track.Genre)
	}
	sort.Slice(genres, func(i, j int) bool { return genres[i] < genres[j] })
	return genres, nil
}

func (f *fakeTrackRepository) CountByArtist(
	ctx context.Context,
	tx *gorm.DB,
	artistID uuid.UUID,
) (int64, error) {
	var count int64
	for _, track := range f.tracks {
		if track.ArtistID == artistID {
			count++
		}
	}
	return count, nil
}

func (f *fakeTrackRepository) Create(ctx context.Context, tx *gorm.DB, track *Track) error {
	f.add(track)
	return nil
}

func (f *fakeTrackRepository) Update(ctx context.Context, tx *gorm.DB, track *Track) error {
	for i, existing := range f.tracks {
		if existing.ID == track.ID {
			f.tracks[i] = track
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeTrackRepository) SoftDelete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	for i, track := range f.tracks {
		if track.ID == id {
			f.tracks = append(f.tracks[:i], f.tracks[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

type fakeAlbumRepository struct {
	albums []*Album
}

func (f *fakeAlbumRepository) GetByID(
	ctx context.Context,
	tx *gorm.DB,
	id uuid.UUID,
) (*Album, error) {
	for _, album := range f.albums {
		if album.ID == id {
			return album, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeAlbumRepository) GetByArtist(
	ctx context.Context,
	tx *gorm.DB,
	artistID uuid.UUID,
) ([]*Album, error) {
	var out []*Album
	for _, album := range f.albums {
		if album.ArtistID == artistID {
			out = append(out, album)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (f *fakeAlbumRepository) CountByArtist(
	ctx context.Context,
	tx *gorm.DB,
	artistID uuid.UUID,
) (int64, error) {
	var count int64
	for _, album := range f.albums {
		if album.ArtistID == artistID {
			count++
		}
	}
	return count, nil
}

func (f *fakeAlbumRepository) Create(ctx context.Context, tx *gorm.DB, album *Album) error {
	if album.ID == uuid.Nil {
		album.ID = uuid.New()
	}
	f.albums = append(f.albums, album)
	return nil
}

type fakeListeningEventRepository struct {
	events       []*ListeningEvent
	genreCounts  map[uuid.UUID][]repositories.GenreListenCount
	trackListens map[uuid.UUID]int64
	trackUnique  map[uuid.UUID]int64
}

func newFakeListeningEventRepository() *fakeListeningEventRepository {
	return &fakeListeningEventRepository{
		genreCounts:  make(map[uuid.UUID][]repositories.GenreListenCount),
		trackListens: make(map[uuid.UUID]int64),
		trackUnique:  make(map[uuid.UUID]int64),
	}
}

func (f *fakeListeningEventRepository) Create(
	ctx context.Context,
	tx *gorm.DB,
	event *ListeningEvent,
) error {
	f.events = append(f.events, event)
	return nil
}

func (f *fakeListeningEventRepository) TopGenresByUser(
	ctx context.Context,
	tx *gorm.DB,
	userID uuid.UUID,
	after time.Time,
) ([]repositories.GenreListenCount, error) {
	counts := f.genreCounts[userID]
	out := make([]repositories.GenreListenCount, len(counts))
	copy(out, counts)
	return out, nil
}

func (f *fakeListeningEventRepository) CountForTrack(
	ctx context.Context,
	tx *gorm.DB,
	trackID uuid.UUID,
	start, end time.Time,
) (int64, error) {
	return f.trackListens[trackID], nil
}

func (f *fakeListeningEventRepository) CountDistinctListenersForTrack(
	ctx context.Context,
	tx *gorm.DB,
	trackID uuid.UUID,
	start, end time.Time,
) (int64, error) {
	return f.trackUnique[trackID], nil
}

type fakePlaylistRepository struct {
	playlists []*Playlist
	deleted   map[uuid.UUID]bool
	entries   map[uuid.UUID][]*PlaylistTrack
}

func newFakePlaylistRepository() *fakePlaylistRepository {
	return &fakePlaylistRepository{
		deleted: make(map[uuid.UUID]bool),
		entries: make(map[uuid.UUID][]*PlaylistTrack),
	}
}

func (f *fakePlaylistRepository) live() []*Playlist {
	var out []*Playlist
	for _, playlist := range f.playlists {
		if !f.deleted[playlist.ID] {
			out = append(out, playlist)
		}
	}
	return out
}

func (f *fakePlaylistRepository) GetByID(
	ctx context.Context,
	tx *gorm.DB,
	id uuid.UUID,
) (*Playlist, error) {
	for _, playlist := range f.live() {
		if playlist.ID == id {
			return playlist, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakePlaylistRepository) GetByOwner(
	ctx context.Context,
	tx *gorm.DB,
	ownerID uuid.UUID,
) ([]*Playlist, error) {
	var out []*Playlist
	for _, playlist := range f.live() {
		if playlist.OwnerID == ownerID {
			out = append(out, playlist)
		}
	}
	return out, nil
}

func (f *fakePlaylistRepository) GetSystemGeneratedByOwner(
	ctx context.Context,
	tx *gorm.DB,
	ownerID uuid.UUID,
) ([]*Playlist, error) {
	var out []*Playlist
	for _, playlist := range f.live() {
		if playlist.OwnerID == ownerID && playlist.IsSystemGenerated {
			out = append(out, playlist)
		}
	}
	return out, nil
}

func (f *fakePlaylistRepository) Create(
	ctx context.Context,
	tx *gorm.DB,
	playlist *Playlist,
) error {
	if playlist.ID == uuid.Nil {
		playlist.ID = uuid.New()
	}
	f.playlists = append(f.playlists, playlist)
	return nil
}

func (f *fakePlaylistRepository) SoftDelete(
	ctx context.Context,
	tx *gorm.DB,
	id uuid.UUID,
) error {
	for _, playlist := range f.live() {
		if playlist.ID == id {
			f.deleted[id] = true
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakePlaylistRepository) AddTrack(
	ctx context.Context,
	tx *gorm.DB,
	playlistID, trackID uuid.UUID,
	position int,
) error {
	for _, entry := range f.entries[playlistID] {
		if entry.TrackID == trackID {
			return ErrDuplicateTrack
		}
	}
	f.entries[playlistID] = append(f.entries[playlistID], &PlaylistTrack{
		ID:         uuid.New(),
		PlaylistID: playlistID,
		TrackID:    trackID,
		Position:   position,
	})
	return nil
}

func (f *fakePlaylistRepository) RemoveTrack(
	ctx context.Context,
	tx *gorm.DB,
	playlistID, trackID uuid.UUID,
) error {
	entries := f.entries[playlistID]
	for i, entry := range entries {
		if entry.TrackID == trackID {
			f.entries[playlistID] = append(entries[:i], entries[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakePlaylistRepository) GetTracks(
	ctx context.Context,
	tx *gorm.DB,
	playlistID uuid.UUID,
) ([]*PlaylistTrack, error) {
	entries := make([]*PlaylistTrack, len(f.entries[playlistID]))
	copy(entries, f.entries[playlistID])
	sort.Slice(entries, func(i, j int) bool { return entries[i].Position < entries[j].Position })
	return entries, nil
}

func (f *fakePlaylistRepository) NextPosition(
	ctx context.Context,
	tx *gorm.DB,
	playlistID uuid.UUID,
) (int, error) {
	max := 0
	for _, entry := range f.entries[playlistID] {
		if entry.Position > max {
			max = entry.Position
		}
	}
	return max + 1, nil
}

type statKey struct {
	trackID   uuid.UUID
	weekStart time.Time
}

type fakeWeeklyStatisticRepository struct {
	rows    map[statKey]*WeeklyStatistic
	upserts int
}

func newFakeWeeklyStatisticRepository() *fakeWeeklyStatisticRepository {
	return &fakeWeeklyStatisticRepository{rows: make(map[statKey]*WeeklyStatistic)}
}

func (f *fakeWeeklyStatisticRepository) key(
	trackID uuid.UUID,
	weekStart datatypes.Date,
) statKey {
	return statKey{trackID: trackID, weekStart: time.Time(weekStart)}
}

func (f *fakeWeeklyStatisticRepository) GetByTrackAndWeekStart(
	ctx context.Context,
	tx *gorm.DB,
	trackID uuid.UUID,
	weekStart datatypes.Date,
) (*WeeklyStatistic, error) {
	stat, ok := f.rows[f.key(trackID, weekStart)]
	if !ok {
		return nil, ErrNotFound
	}
	return stat, nil
}

func (f *fakeWeeklyStatisticRepository) GetByWeekStart(
	ctx context.Context,
	tx *gorm.DB,
	weekStart datatypes.Date,
) ([]*WeeklyStatistic, error) {
	var out []*WeeklyStatistic
	for key, stat := range f.rows {
		if key.weekStart.Equal(time.Time(weekStart)) {
			out = append(out, stat)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ListenCount > out[j].ListenCount })
	return out, nil
}

func (f *fakeWeeklyStatisticRepository) Upsert(
	ctx context.Context,
	tx *gorm.DB,
	stat *WeeklyStatistic,
) error {
	f.upserts++
	key := f.key(stat.TrackID, stat.WeekStartDate)
	if existing, ok := f.rows[key]; ok {
		existing.ListenCount = stat.ListenCount
		existing.UniqueListeners = stat.UniqueListeners
		existing.WeekEndDate = stat.WeekEndDate
		return nil
	}
	if stat.ID == uuid.Nil {
		stat.ID = uuid.New()
	}
	f.rows[key] = stat
	return nil
}
