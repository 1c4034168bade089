package models

// Report is the recent-activity view for one user.
type Report struct {
	Biometrics *Biometrics `json:"biometrics"`
	Meals      []MealEntry `json:"meals"`
}
