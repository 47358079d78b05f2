package seed

import (
	"time"

	"resonate/config"
	. "resonate/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed loads a small development catalog: one admin, two artists with a few
// tracks each, and a listener with enough recent listens to exercise the
// recommendation flow.
func Seed(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("seed")
	log.Info("Seeding development data")

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return log.Err("failed to hash seed password", err)
	}

	admin := User{
		Username:     "admin",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		FirstName:    "Admin",
		LastName:     "User",
		Role:         RoleAdmin,
	}
	rockArtist := User{
		Username:     "thevoltas",
		Email:        "voltas@example.com",
		PasswordHash: string(hash),
		FirstName:    "The",
		LastName:     "Voltas",
		Role:         RoleArtist,
	}
	jazzArtist := User{
		Username:     "bluenotetrio",
		Email:        "bluenote@example.com",
		PasswordHash: string(hash),
		FirstName:    "Blue Note",
		LastName:     "Trio",
		Role:         RoleArtist,
	}
	listener := User{
		Username:     "ada",
		Email:        "ada@example.com",
		PasswordHash: string(hash),
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Role:         RoleListener,
	}

	for _, user := range []*User{&admin, &rockArtist, &jazzArtist, &listener} {
		var existing User
		if err := db.First(&existing, "username = ?", user.Username).Error; err == nil {
			log.Info("User already exists", "username", user.Username)
			*user = existing
			continue
		}
		if err := db.Create(user).Error; err != nil {
			return log.Err("failed to seed user", err, "username", user.Username)
		}
	}

	tracks := []Track{
		{Title: "Voltage Drop", ArtistID: rockArtist.ID, Genre: GenreRock, DurationSeconds: 212, FileURL: "https://cdn.example.com/voltage-drop.mp3"},
		{Title: "Short Circuit", ArtistID: rockArtist.ID, Genre: GenreRock, DurationSeconds: 198, FileURL: "https://cdn.example.com/short-circuit.mp3"},
		{Title: "Ground State", ArtistID: rockArtist.ID, Genre: GenreMetal, DurationSeconds: 245, FileURL: "https://cdn.example.com/ground-state.mp3"},
		{Title: "Midnight Walk", ArtistID: jazzArtist.ID, Genre: GenreJazz, DurationSeconds: 321, FileURL: "https://cdn.example.com/midnight-walk.mp3"},
		{Title: "Blue Window", ArtistID: jazzArtist.ID, Genre: GenreJazz, DurationSeconds: 287, FileURL: "https://cdn.example.com/blue-window.mp3"},
		{Title: "Crossover", ArtistID: jazzArtist.ID, Genre: GenreRock, DurationSeconds: 264, FileURL: "https://cdn.example.com/crossover.mp3"},
	}

	for i := range tracks {
		track := &tracks[i]
		var existing Track
		if err := db.First(&existing, "title = ? AND artist_id = ?", track.Title, track.ArtistID).Error; err == nil {
			*track = existing
			continue
		}
		if err := db.Create(track).Error; err != nil {
			return log.Err("failed to seed track", err, "title", track.Title)
		}
	}

	// Recent listens skewed toward rock so regeneration has a clear top genre.
	now := time.Now().UTC()
	listenPlan := []struct {
		track *Track
		count int
	}{
		{&tracks[0], 6},
		{&tracks[1], 4},
		{&tracks[3], 3},
		{&tracks[4], 1},
	}

	var existingEvents int64
	if err := db.Model(&ListeningEvent{}).
		Where("user_id = ?", listener.ID).
		Count(&existingEvents).Error; err != nil {
		return log.Err("failed to count seed events", err)
	}

	if existingEvents == 0 {
		for _, plan := range listenPlan {
			for i := 0; i < plan.count; i++ {
				event := ListeningEvent{
					UserID:     listener.ID,
					TrackID:    plan.track.ID,
					ListenedAt: now.AddDate(0, 0, -(i + 1)),
				}
				if err := db.Create(&event).Error; err != nil {
					return log.Err("failed to seed listening event", err)
				}
			}
		}
	}

	log.Info("Seed complete")
	return nil
}
