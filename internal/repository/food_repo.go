package repository

import (
	"context"
	"fmt"

	"biotrack/internal/models"
	"biotrack/internal/repository/db"
)

type FoodRepository struct {
	exec *db.Executor
}

func NewFoodRepository(exec *db.Executor) *FoodRepository {
	return &FoodRepository{exec: exec}
}

var _ Foods = (*FoodRepository)(nil)

const selectFoodsSQL = `SELECT id, name FROM Food_Items ORDER BY name`

// List returns the food catalog ordered by name.
func (r *FoodRepository) List(ctx context.Context) ([]models.FoodItem, error) {
	res, err := r.exec.Execute(ctx, db.ModeAll, selectFoodsSQL)
	if err != nil {
		return nil, fmt.Errorf("select foods: %w", err)
	}

	foods := make([]models.FoodItem, 0, len(res.Rows))
	for _, row := range res.Rows {
		var f models.FoodItem
		if f.ID, err = colInt64(row, "id"); err != nil {
			return nil, err
		}
		if f.Name, err = colString(row, "name"); err != nil {
			return nil, err
		}
		foods = append(foods, f)
	}
	return foods, nil
}
