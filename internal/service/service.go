package service

import (
	"context"
	"time"

	"biotrack/internal/models"
	"biotrack/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, in SignUpInput) (int64, error)
	SignIn(ctx context.Context, email, password string) (models.User, error)
}

// Sessions issues and verifies the signed session token.
type Sessions interface {
	IssueSession(u models.User) (string, error)
	ParseSession(token string) (Session, error)
}

type Biometrics interface {
	SaveBiometrics(ctx context.Context, userID int64, in BiometricsInput) error
}

// Meals covers the food catalog and the user's meal log.
type Meals interface {
	ListFoods(ctx context.Context) ([]models.FoodItem, error)
	LogMeal(ctx context.Context, userID int64, in MealInput) (int64, error)
	DeleteMeal(ctx context.Context, userID, mealID int64) error
}

type Reports interface {
	GetReport(ctx context.Context, userID int64) (models.Report, error)
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Sessions
	Biometrics
	Meals
	Reports
}

// Options carries the settings services need from configuration.
type Options struct {
	SessionSecret string
	SessionTTL    time.Duration
	BcryptCost    int
}

func NewService(repos *repository.Repository, opts Options) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, NewCredentials(opts.BcryptCost)),
		Sessions:      NewSessionManager(opts.SessionSecret, opts.SessionTTL),
		Biometrics:    NewBiometricsService(repos.Biometrics),
		Meals:         NewMealService(repos.Meals, repos.Foods),
		Reports:       NewReportService(repos.Biometrics, repos.Meals),
	}
}
