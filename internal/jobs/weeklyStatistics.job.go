package jobs

import (
	"context"

	"resonate/internal/services"

	logger "github.com/Bparsons0904/goLogger"
)

// WeeklyStatisticsJob recomputes the current week's per-track listen counts.
// It runs Friday evening so the numbers are fresh going into the weekend, and
// the aggregation itself is idempotent if triggered again by hand.
type WeeklyStatisticsJob struct {
	statisticsService *services.StatisticsService
	log               logger.Logger
	schedule          services.Schedule
}

func NewWeeklyStatisticsJob(
	statisticsService *services.StatisticsService,
	schedule services.Schedule,
) *WeeklyStatisticsJob {
	return &WeeklyStatisticsJob{
		statisticsService: statisticsService,
		log:               logger.New("weeklyStatisticsJob"),
		schedule:          schedule,
	}
}

func (j *WeeklyStatisticsJob) Name() string {
	return "WeeklyStatisticsAggregation"
}

func (j *WeeklyStatisticsJob) Execute(ctx context.Context) error {
	log := j.log.Function("Execute")

	log.Info("Starting weekly statistics aggregation")

	trackCount, err := j.statisticsService.GenerateWeeklyStatistics(ctx)
	if err != nil {
		return log.Err("weekly statistics aggregation failed", err)
	}

	log.Info("Weekly statistics aggregation completed", "trackCount", trackCount)
	return nil
}

func (j *WeeklyStatisticsJob) Schedule() services.Schedule {
	return j.schedule
}
