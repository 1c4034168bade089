package repository

import (
	"context"
	"fmt"

	"biotrack/internal/models"
	"biotrack/internal/repository/db"
)

type MealRepository struct {
	exec *db.Executor
}

func NewMealRepository(exec *db.Executor) *MealRepository {
	return &MealRepository{exec: exec}
}

var _ Meals = (*MealRepository)(nil)

const (
	insertMealSQL = `INSERT INTO Meal_Logs (user_id, food_id, eaten_at, quantity_g) VALUES (?, ?, ?, ?)`

	selectRecentMealsSQL = `
		SELECT ml.id, fi.name, ml.eaten_at, ml.quantity_g, ml.calories
		FROM Meal_Logs ml
		JOIN Food_Items fi ON fi.id = ml.food_id
		WHERE ml.user_id = ?
		ORDER BY ml.eaten_at DESC, ml.id DESC
		LIMIT ?
	`

	// user_id in the filter keeps other users' rows out of reach.
	deleteMealSQL = `DELETE FROM Meal_Logs WHERE id = ? AND user_id = ?`
)

// Create inserts a meal log. eaten_at is written in models.TimestampLayout.
// A missing user or food yields ErrUnknownReference.
func (r *MealRepository) Create(ctx context.Context, m models.MealLog) (int64, error) {
	res, err := r.exec.Execute(ctx, db.ModeWrite, insertMealSQL,
		m.UserID,
		m.FoodID,
		m.EatenAt.Format(models.TimestampLayout),
		m.QuantityG,
	)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return 0, fmt.Errorf("insert meal for user %d: %w", m.UserID, ErrUnknownReference)
		}
		return 0, fmt.Errorf("insert meal for user %d: %w", m.UserID, err)
	}
	return res.LastInsertID, nil
}

// ListRecent returns up to limit meals of the user, newest first, joined with
// the food name.
func (r *MealRepository) ListRecent(ctx context.Context, userID int64, limit int) ([]models.MealEntry, error) {
	res, err := r.exec.Execute(ctx, db.ModeAll, selectRecentMealsSQL, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("select recent meals for user %d: %w", userID, err)
	}

	meals := make([]models.MealEntry, 0, len(res.Rows))
	for _, row := range res.Rows {
		var m models.MealEntry
		if m.ID, err = colInt64(row, "id"); err != nil {
			return nil, err
		}
		if m.FoodName, err = colString(row, "name"); err != nil {
			return nil, err
		}
		if m.EatenAt, err = colTime(row, "eaten_at"); err != nil {
			return nil, err
		}
		if m.QuantityG, err = colFloat64(row, "quantity_g"); err != nil {
			return nil, err
		}
		if m.Calories, err = colOptFloat64(row, "calories"); err != nil {
			return nil, err
		}
		meals = append(meals, m)
	}
	return meals, nil
}

// Delete removes the meal only if it belongs to userID and reports how many
// rows went away (0 or 1).
func (r *MealRepository) Delete(ctx context.Context, userID, mealID int64) (int64, error) {
	res, err := r.exec.Execute(ctx, db.ModeWrite, deleteMealSQL, mealID, userID)
	if err != nil {
		return 0, fmt.Errorf("delete meal %d for user %d: %w", mealID, userID, err)
	}
	return res.RowsAffected, nil
}
