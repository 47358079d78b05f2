package repositories

import (
	"context"
	"time"

	. "resonate/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GenreListenCount is one row of the grouped affinity query: a genre and how
// often the user listened to it inside the lookback window.
type GenreListenCount struct {
	Genre   Genre `json:"genre"`
	Listens int64 `json:"listens"`
}

type ListeningEventRepository interface {
	Create(ctx context.Context, tx *gorm.DB, event *ListeningEvent) error
	TopGenresByUser(
		ctx context.Context,
		tx *gorm.DB,
		userID uuid.UUID,
		after time.Time,
	) ([]GenreListenCount, error)
	CountForTrack(
		ctx context.Context,
		tx *gorm.DB,
		trackID uuid.UUID,
		start, end time.Time,
	) (int64, error)
	CountDistinctListenersForTrack(
		ctx context.Context,
		tx *gorm.DB,
		trackID uuid.UUID,
		start, end time.Time,
	) (int64, error)
}

type listeningEventRepository struct {
	log logger.Logger
}

func NewListeningEventRepository() ListeningEventRepository {
	return &listeningEventRepository{
		log: logger.New("listeningEventRepository"),
	}
}

func (r *listeningEventRepository) Create(
	ctx context.Context,
	tx *gorm.DB,
	event *ListeningEvent,
) error {
	log := r.log.Function("Create")

	if event.ListenedAt.IsZero() {
		event.ListenedAt = time.Now().UTC()
	}

	if err := tx.WithContext(ctx).Create(event).Error; err != nil {
		return log.Err(
			"failed to create listening event",
			err,
			"userID", event.UserID,
			"trackID", event.TrackID,
		)
	}

	return nil
}

// TopGenresByUser groups the user's events after the cutoff by track genre and
// returns them ordered by descending listen count. Deleted tracks are joined
// out; ties keep the database's stable group order.
func (r *listeningEventRepository) TopGenresByUser(
	ctx context.Context,
	tx *gorm.DB,
	userID uuid.UUID,
	after time.Time,
) ([]GenreListenCount, error) {
	log := r.log.Function("TopGenresByUser")

	var rows []GenreListenCount
	if err := tx.WithContext(ctx).
		Model(&ListeningEvent{}).
		Select("tracks.genre AS genre, COUNT(*) AS listens").
		Joins("JOIN tracks ON tracks.id = listening_events.track_id AND tracks.deleted_at IS NULL").
		Where("listening_events.user_id = ? AND listening_events.listened_at > ?", userID, after).
		Group("tracks.genre").
		Order("listens DESC").
		Scan(&rows).Error; err != nil {
		return nil, log.Err("failed to get top genres", err, "userID", userID)
	}

	return rows, nil
}

func (r *listeningEventRepository) CountForTrack(
	ctx context.Context,
	tx *gorm.DB,
	trackID uuid.UUID,
	start, end time.Time,
) (int64, error) {
	log := r.log.Function("CountForTrack")

	var count int64
	if err := tx.WithContext(ctx).
		Model(&ListeningEvent{}).
		Where("track_id = ? AND listened_at BETWEEN ? AND ?", trackID, start, end).
		Count(&count).Error; err != nil {
		return 0, log.Err("failed to count listens", err, "trackID", trackID)
	}

	return count, nil
}

func (r *listeningEventRepository) CountDistinctListenersForTrack(
	ctx context.Context,
	tx *gorm.DB,
	trackID uuid.UUID,
	start, end time.Time,
) (int64, error) {
	log := r.log.Function("CountDistinctListenersForTrack")

	var count int64
	if err := tx.WithContext(ctx).
		Model(&ListeningEvent{}).
		Where("track_id = ? AND listened_at BETWEEN ? AND ?", trackID, start, end).
		Distinct("user_id").
		Count(&count).Error; err != nil {
		return 0, log.Err("failed to count distinct listeners", err, "trackID", trackID)
	}

	return count, nil
}
