package models

// DefaultGoal is stored when the biometrics form leaves goal empty.
const DefaultGoal = "maintain"

// Biometrics is the single per-user body measurement row.
type Biometrics struct {
	UserID   int64    `json:"user_id"`
	HeightCm float64  `json:"height_cm"`
	WeightKg float64  `json:"weight_kg"`
	Goal     string   `json:"goal"`
	BMI      *float64 `json:"bmi,omitempty"` // store-derived, read-only
}
