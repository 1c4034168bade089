package repository

import (
	"context"
	"errors"

	"biotrack/internal/models"
	"biotrack/internal/repository/db"
)

// Store-level failures callers may want to tell apart.
var (
	ErrDuplicate        = errors.New("duplicate record")
	ErrUnknownReference = errors.New("referenced record does not exist")
)

type Users interface {
	Create(ctx context.Context, u models.User) (int64, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type BiometricsRepo interface {
	Upsert(ctx context.Context, b models.Biometrics) error
	GetByUserID(ctx context.Context, userID int64) (*models.Biometrics, error)
}

type Foods interface {
	List(ctx context.Context) ([]models.FoodItem, error)
}

type Meals interface {
	Create(ctx context.Context, m models.MealLog) (int64, error)
	ListRecent(ctx context.Context, userID int64, limit int) ([]models.MealEntry, error)
	Delete(ctx context.Context, userID, mealID int64) (int64, error)
}

type Repository struct {
	Users      Users
	Biometrics BiometricsRepo
	Foods      Foods
	Meals      Meals
}

func NewRepository(exec *db.Executor) *Repository {
	return &Repository{
		Users:      NewUserRepository(exec),
		Biometrics: NewBiometricsRepository(exec),
		Foods:      NewFoodRepository(exec),
		Meals:      NewMealRepository(exec),
	}
}
