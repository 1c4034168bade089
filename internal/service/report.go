package service

import (
	"context"

	"biotrack/internal/models"
	"biotrack/internal/repository"
)

// RecentMealsLimit caps how many meals a report shows.
const RecentMealsLimit = 5

type ReportService struct {
	biometrics repository.BiometricsRepo
	meals      repository.Meals
}

func NewReportService(biometrics repository.BiometricsRepo, meals repository.Meals) *ReportService {
	return &ReportService{biometrics: biometrics, meals: meals}
}

// GetReport re-reads the user's biometrics and latest meals from the store.
func (s *ReportService) GetReport(ctx context.Context, userID int64) (models.Report, error) {
	bio, err := s.biometrics.GetByUserID(ctx, userID)
	if err != nil {
		return models.Report{}, persistenceError("load biometrics", err)
	}
	meals, err := s.meals.ListRecent(ctx, userID, RecentMealsLimit)
	if err != nil {
		return models.Report{}, persistenceError("load meals", err)
	}
	if meals == nil {
		meals = []models.MealEntry{}
	}
	return models.Report{Biometrics: bio, Meals: meals}, nil
}
