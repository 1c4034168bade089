package repository

import (
	"context"
	"fmt"

	"biotrack/internal/models"
	"biotrack/internal/repository/db"
)

type BiometricsRepository struct {
	exec *db.Executor
}

func NewBiometricsRepository(exec *db.Executor) *BiometricsRepository {
	return &BiometricsRepository{exec: exec}
}

var _ BiometricsRepo = (*BiometricsRepository)(nil)

// Upserts rely on UNIQUE(user_id); bmi is never written here.
const (
	upsertBiometricsSQLite = `
		INSERT INTO Biometrics (user_id, height_cm, weight_kg, goal)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			height_cm=excluded.height_cm,
			weight_kg=excluded.weight_kg,
			goal=excluded.goal
	`

	upsertBiometricsMySQL = `
		INSERT INTO Biometrics (user_id, height_cm, weight_kg, goal)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			height_cm=VALUES(height_cm),
			weight_kg=VALUES(weight_kg),
			goal=VALUES(goal)
	`

	selectBiometricsSQL = `
		SELECT user_id, height_cm, weight_kg, goal, bmi
		FROM Biometrics WHERE user_id = ?
	`
)

func (r *BiometricsRepository) upsertSQL() string {
	if r.exec.Dialect() == db.DialectMySQL {
		return upsertBiometricsMySQL
	}
	return upsertBiometricsSQLite
}

// Upsert inserts the user's biometrics or overwrites the existing row in one
// atomic statement.
func (r *BiometricsRepository) Upsert(ctx context.Context, b models.Biometrics) error {
	_, err := r.exec.Execute(ctx, db.ModeWrite, r.upsertSQL(), b.UserID, b.HeightCm, b.WeightKg, b.Goal)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return fmt.Errorf("upsert biometrics for user %d: %w", b.UserID, ErrUnknownReference)
		}
		return fmt.Errorf("upsert biometrics for user %d: %w", b.UserID, err)
	}
	return nil
}

// GetByUserID returns the user's biometrics, or (nil, nil) if none saved yet.
func (r *BiometricsRepository) GetByUserID(ctx context.Context, userID int64) (*models.Biometrics, error) {
	res, err := r.exec.Execute(ctx, db.ModeOne, selectBiometricsSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("select biometrics for user %d: %w", userID, err)
	}
	row, ok := res.First()
	if !ok {
		return nil, nil
	}

	var b models.Biometrics
	if b.UserID, err = colInt64(row, "user_id"); err != nil {
		return nil, err
	}
	if b.HeightCm, err = colFloat64(row, "height_cm"); err != nil {
		return nil, err
	}
	if b.WeightKg, err = colFloat64(row, "weight_kg"); err != nil {
		return nil, err
	}
	if b.Goal, err = colString(row, "goal"); err != nil {
		return nil, err
	}
	if b.BMI, err = colOptFloat64(row, "bmi"); err != nil {
		return nil, err
	}
	return &b, nil
}
