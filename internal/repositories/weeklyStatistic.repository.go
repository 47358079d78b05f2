package repositories

import (
	"context"
	"errors"

	. "resonate/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WeeklyStatisticRepository interface {
	GetByTrackAndWeekStart(
		ctx context.Context,
		tx *gorm.DB,
		trackID uuid.UUID,
		weekStart datatypes.Date,
	) (*WeeklyStatistic, error)
	GetByWeekStart(
		ctx context.Context,
		tx *gorm.DB,
		weekStart datatypes.Date,
	) ([]*WeeklyStatistic, error)
	Upsert(ctx context.Context, tx *gorm.DB, stat *WeeklyStatistic) error
}

type weeklyStatisticRepository struct {
	log logger.Logger
}

func NewWeeklyStatisticRepository() WeeklyStatisticRepository {
	return &weeklyStatisticRepository{
		log: logger.New("weeklyStatisticRepository"),
	}
}

func (r *weeklyStatisticRepository) GetByTrackAndWeekStart(
	ctx context.Context,
	tx *gorm.DB,
	trackID uuid.UUID,
	weekStart datatypes.Date,
) (*WeeklyStatistic, error) {
	log := r.log.Function("GetByTrackAndWeekStart")

	var stat WeeklyStatistic
	if err := tx.WithContext(ctx).
		First(&stat, "track_id = ? AND week_start_date = ?", trackID, weekStart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, log.Err("failed to get weekly statistic", err, "trackID", trackID)
	}

	return &stat, nil
}

func (r *weeklyStatisticRepository) GetByWeekStart(
	ctx context.Context,
	tx *gorm.DB,
	weekStart datatypes.Date,
) ([]*WeeklyStatistic, error) {
	log := r.log.Function("GetByWeekStart")

	var stats []*WeeklyStatistic
	if err := tx.WithContext(ctx).
		Where("week_start_date = ?", weekStart).
		Order("listen_count DESC").
		Find(&stats).Error; err != nil {
		return nil, log.Err("failed to get weekly statistics", err, "weekStart", weekStart)
	}

	return stats, nil
}

// Upsert writes the recomputed counts for one (track, week start) pair. The
// conflict target is the unique index; counts are overwritten, never added to,
// which keeps reruns within a week idempotent.
func (r *weeklyStatisticRepository) Upsert(
	ctx context.Context,
	tx *gorm.DB,
	stat *WeeklyStatistic,
) error {
	log := r.log.Function("Upsert")

	if err := tx.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "track_id"}, {Name: "week_start_date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"listen_count",
				"unique_listeners",
				"week_end_date",
				"updated_at",
			}),
		}).
		Create(stat).Error; err != nil {
		return log.Err(
			"failed to upsert weekly statistic",
			err,
			"trackID", stat.TrackID,
			"weekStart", stat.WeekStartDate,
		)
	}

	return nil
}
