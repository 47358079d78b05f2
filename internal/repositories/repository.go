package repositories

import (
	"resonate/internal/database"
)

type Repository struct {
	User            UserRepository
	Track           TrackRepository
	Album           AlbumRepository
	ListeningEvent  ListeningEventRepository
	Playlist        PlaylistRepository
	WeeklyStatistic WeeklyStatisticRepository
}

func New(db database.DB) Repository {
	return Repository{
		User:            NewUserRepository(db.Cache.User),
		Track:           NewTrackRepository(),
		Album:           NewAlbumRepository(),
		ListeningEvent:  NewListeningEventRepository(),
		Playlist:        NewPlaylistRepository(),
		WeeklyStatistic: NewWeeklyStatisticRepository(),
	}
}
