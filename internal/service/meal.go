package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"biotrack/internal/models"
	"biotrack/internal/repository"
)

// Layouts accepted for a user-supplied eaten_at. The last two match what
// browsers send from a datetime-local input.
var eatenAtLayouts = []string{
	models.TimestampLayout,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

type MealInput struct {
	FoodID    int64
	QuantityG float64
	EatenAt   string // optional
}

type MealService struct {
	meals repository.Meals
	foods repository.Foods
	now   func() time.Time
}

func NewMealService(meals repository.Meals, foods repository.Foods) *MealService {
	return &MealService{meals: meals, foods: foods, now: time.Now}
}

// ListFoods returns the catalog for the meal form.
func (s *MealService) ListFoods(ctx context.Context) ([]models.FoodItem, error) {
	foods, err := s.foods.List(ctx)
	if err != nil {
		return nil, persistenceError("list foods", err)
	}
	return foods, nil
}

// LogMeal records a meal. Without EatenAt the server clock is used, truncated
// to whole seconds.
func (s *MealService) LogMeal(ctx context.Context, userID int64, in MealInput) (int64, error) {
	if in.FoodID <= 0 {
		return 0, validationError("food_id must be a positive whole number")
	}
	if !positiveFinite(in.QuantityG) {
		return 0, validationError("quantity_g must be a positive number")
	}

	eatenAt, err := s.resolveEatenAt(in.EatenAt)
	if err != nil {
		return 0, err
	}

	id, err := s.meals.Create(ctx, models.MealLog{
		UserID:    userID,
		FoodID:    in.FoodID,
		EatenAt:   eatenAt,
		QuantityG: in.QuantityG,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUnknownReference) {
			return 0, &Error{Kind: KindValidation, Msg: "unknown food", Err: err}
		}
		return 0, persistenceError("log meal", err)
	}
	return id, nil
}

func (s *MealService) resolveEatenAt(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return s.now().Truncate(time.Second), nil
	}
	for _, layout := range eatenAtLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, validationError("eaten_at must look like YYYY-MM-DD HH:MM:SS")
}

// DeleteMeal removes the meal if userID owns it. Deleting someone else's or a
// missing meal is a silent no-op.
func (s *MealService) DeleteMeal(ctx context.Context, userID, mealID int64) error {
	if mealID <= 0 {
		return &Error{Kind: KindNotFound, Msg: "meal not found"}
	}
	if _, err := s.meals.Delete(ctx, userID, mealID); err != nil {
		return persistenceError("delete meal", err)
	}
	return nil
}
