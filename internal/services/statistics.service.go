package services

import (
	"context"
	"time"

	"resonate/internal/database"
	. "resonate/internal/models"
	"resonate/internal/repositories"
	"resonate/internal/utils"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StatisticsService recomputes per-track listen counts for the current
// listening week (Monday through Sunday, UTC).
type StatisticsService struct {
	db        *gorm.DB
	trackRepo repositories.TrackRepository
	eventRepo repositories.ListeningEventRepository
	statRepo  repositories.WeeklyStatisticRepository
	log       logger.Logger
}

func NewStatisticsService(db database.DB, repo repositories.Repository) *StatisticsService {
	return &StatisticsService{
		db:        db.SQL,
		trackRepo: repo.Track,
		eventRepo: repo.ListeningEvent,
		statRepo:  repo.WeeklyStatistic,
		log:       logger.New("statisticsService"),
	}
}

// GenerateWeeklyStatistics aggregates the week containing the current time.
func (s *StatisticsService) GenerateWeeklyStatistics(ctx context.Context) (int, error) {
	return s.GenerateForWeek(ctx, time.Now())
}

// GenerateForWeek recomputes listen and unique-listener counts for every
// non-deleted track over the week containing the given time, upserting one
// row per (track, week start). Counts are overwritten, so running twice in
// the same week converges on the same values. Returns how many tracks were
// aggregated.
func (s *StatisticsService) GenerateForWeek(ctx context.Context, at time.Time) (int, error) {
	log := s.log.Function("GenerateForWeek")

	weekStart, weekEnd := utils.WeekBounds(at)
	log.Info(
		"Aggregating weekly statistics",
		"weekStart", weekStart.Format(time.DateOnly),
		"weekEnd", weekEnd.Format(time.DateOnly),
	)

	tracks, err := s.trackRepo.GetAll(ctx, s.db)
	if err != nil {
		return 0, log.Err("failed to load tracks", err)
	}

	for _, track := range tracks {
		listens, err := s.eventRepo.CountForTrack(ctx, s.db, track.ID, weekStart, weekEnd)
		if err != nil {
			return 0, log.Err("failed to count listens", err, "trackID", track.ID)
		}

		listeners, err := s.eventRepo.CountDistinctListenersForTrack(
			ctx, s.db, track.ID, weekStart, weekEnd,
		)
		if err != nil {
			return 0, log.Err("failed to count listeners", err, "trackID", track.ID)
		}

		stat := &WeeklyStatistic{
			TrackID:         track.ID,
			WeekStartDate:   datatypes.Date(weekStart),
			WeekEndDate:     datatypes.Date(weekEnd),
			ListenCount:     listens,
			UniqueListeners: listeners,
		}
		if err := s.statRepo.Upsert(ctx, s.db, stat); err != nil {
			return 0, log.Err("failed to upsert statistic", err, "trackID", track.ID)
		}
	}

	log.Info("Weekly statistics aggregated", "trackCount", len(tracks))

	return len(tracks), nil
}

// StatisticsForWeek returns the stored rows for the week containing the given
// time, most listened first.
func (s *StatisticsService) StatisticsForWeek(
	ctx context.Context,
	at time.Time,
) ([]*WeeklyStatistic, error) {
	log := s.log.Function("StatisticsForWeek")

	weekStart, _ := utils.WeekBounds(at)

	stats, err := s.statRepo.GetByWeekStart(ctx, s.db, datatypes.Date(weekStart))
	if err != nil {
		return nil, log.Err("failed to load weekly statistics", err)
	}

	return stats, nil
}
