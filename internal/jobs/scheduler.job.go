package jobs

import (
	"resonate/config"
	"resonate/internal/repositories"
	"resonate/internal/services"

	logger "github.com/Bparsons0904/goLogger"
)

// Import schedule constants
const (
	Hourly       = services.Hourly
	Daily        = services.Daily
	WeeklyFriday = services.WeeklyFriday
)

func RegisterAllJobs(
	schedulerService *services.SchedulerService,
	config config.Config,
	services services.Service,
	repos repositories.Repository,
) error {
	log := logger.New("jobs").Function("RegisterAllJobs")
	log.Info("Registering jobs")

	weeklyStatisticsJob := NewWeeklyStatisticsJob(
		services.Statistics,
		WeeklyFriday,
	)
	if err := schedulerService.AddJob(weeklyStatisticsJob); err != nil {
		return log.Err("failed to register weekly statistics job", err)
	}
	log.Info("Registered weekly statistics job", "schedule", "friday 23:59 UTC")

	return nil
}
