package services

import (
	"resonate/config"
	"resonate/internal/database"
	"resonate/internal/repositories"
)

type Service struct {
	Transaction    *TransactionService
	Scheduler      *SchedulerService
	Affinity       *AffinityService
	Similarity     *SimilarityService
	Recommendation *RecommendationService
	Statistics     *StatisticsService
}

func New(db database.DB, config config.Config) (Service, error) {
	transactionService := NewTransactionService(db)
	repos := repositories.New(db)

	schedulerService := NewSchedulerService()
	affinityService := NewAffinityService(db, repos)
	similarityService := NewSimilarityService(db, repos)
	recommendationService := NewRecommendationService(db, repos, transactionService, affinityService)
	statisticsService := NewStatisticsService(db, repos)

	return Service{
		Transaction:    transactionService,
		Scheduler:      schedulerService,
		Affinity:       affinityService,
		Similarity:     similarityService,
		Recommendation: recommendationService,
		Statistics:     statisticsService,
	}, nil
}
