package service

import (
	"context"
	"errors"
	"math"
	"strings"

	"biotrack/internal/models"
	"biotrack/internal/repository"
)

type BiometricsInput struct {
	HeightCm float64
	WeightKg float64
	Goal     string
}

type BiometricsService struct {
	repo repository.BiometricsRepo
}

func NewBiometricsService(repo repository.BiometricsRepo) *BiometricsService {
	return &BiometricsService{repo: repo}
}

// SaveBiometrics creates or overwrites the user's single biometrics row.
func (s *BiometricsService) SaveBiometrics(ctx context.Context, userID int64, in BiometricsInput) error {
	if !positiveFinite(in.HeightCm) {
		return validationError("height_cm must be a positive number")
	}
	if !positiveFinite(in.WeightKg) {
		return validationError("weight_kg must be a positive number")
	}
	goal := strings.TrimSpace(in.Goal)
	if goal == "" {
		goal = models.DefaultGoal
	}

	err := s.repo.Upsert(ctx, models.Biometrics{
		UserID:   userID,
		HeightCm: in.HeightCm,
		WeightKg: in.WeightKg,
		Goal:     goal,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUnknownReference) {
			return &Error{Kind: KindNotFound, Msg: "user no longer exists", Err: err}
		}
		return persistenceError("save biometrics", err)
	}
	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
