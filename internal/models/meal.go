package models

import "time"

// TimestampLayout is how eaten_at is stored and displayed.
const TimestampLayout = "2006-01-02 15:04:05"

type FoodItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MealLog is a row to be written to Meal_Logs.
type MealLog struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	FoodID    int64     `json:"food_id"`
	EatenAt   time.Time `json:"eaten_at"`
	QuantityG float64   `json:"quantity_g"`
}

// MealEntry is a logged meal joined with its food name, as shown in reports.
type MealEntry struct {
	ID        int64     `json:"id"`
	FoodName  string    `json:"food_name"`
	EatenAt   time.Time `json:"eaten_at"`
	QuantityG float64   `json:"quantity_g"`
	Calories  *float64  `json:"calories,omitempty"` // store-derived, read-only
}

// EatenAtString formats EatenAt in TimestampLayout.
func (m MealEntry) EatenAtString() string {
	return m.EatenAt.Format(TimestampLayout)
}
