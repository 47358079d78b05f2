package adminController

import (
	"context"
	"time"

	. "resonate/internal/models"
	"resonate/internal/services"

	logger "github.com/Bparsons0904/goLogger"
)

// AdminController exposes operational actions restricted to admins.
type AdminController struct {
	statisticsService *services.StatisticsService
	log               logger.Logger
}

type AdminControllerInterface interface {
	RunWeeklyStatistics(ctx context.Context, user *User) (*WeeklyStatisticsRunResponse, error)
	GetWeeklyStatistics(ctx context.Context, user *User) ([]*WeeklyStatistic, error)
}

type WeeklyStatisticsRunResponse struct {
	TrackCount int       `json:"trackCount"`
	RanAt      time.Time `json:"ranAt"`
}

func New(services services.Service) AdminControllerInterface {
	return &AdminController{
		statisticsService: services.Statistics,
		log:               logger.New("adminController"),
	}
}

// RunWeeklyStatistics triggers the same aggregation the scheduler runs on
// Friday evenings. Safe to call repeatedly; the counts converge.
func (c *AdminController) RunWeeklyStatistics(
	ctx context.Context,
	user *User,
) (*WeeklyStatisticsRunResponse, error) {
	log := c.log.TraceFromContext(ctx).Function("RunWeeklyStatistics")

	if !user.IsAdmin() {
		return nil, ErrForbidden
	}

	trackCount, err := c.statisticsService.GenerateWeeklyStatistics(ctx)
	if err != nil {
		return nil, err
	}

	log.Info("on-demand weekly statistics run", "adminID", user.ID, "trackCount", trackCount)

	return &WeeklyStatisticsRunResponse{
		TrackCount: trackCount,
		RanAt:      time.Now().UTC(),
	}, nil
}

func (c *AdminController) GetWeeklyStatistics(
	ctx context.Context,
	user *User,
) ([]*WeeklyStatistic, error) {
	if !user.IsAdmin() {
		return nil, ErrForbidden
	}

	return c.statisticsService.StatisticsForWeek(ctx, time.Now())
}
