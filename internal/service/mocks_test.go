package service

import (
	"context"

	"biotrack/internal/models"
)

// Lightweight in-test mocks for the repository interfaces.

type mockUsers struct {
	CreateFn     func(u models.User) (int64, error)
	GetByEmailFn func(email string) (*models.User, error)

	created   []models.User
	getEmails []string
}

func (m *mockUsers) Create(_ context.Context, u models.User) (int64, error) {
	m.created = append(m.created, u)
	return m.CreateFn(u)
}

func (m *mockUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	m.getEmails = append(m.getEmails, email)
	return m.GetByEmailFn(email)
}

type mockBiometrics struct {
	upsertErr error
	upserted  []models.Biometrics

	bio    *models.Biometrics
	getErr error
}

func (m *mockBiometrics) Upsert(_ context.Context, b models.Biometrics) error {
	m.upserted = append(m.upserted, b)
	return m.upsertErr
}

func (m *mockBiometrics) GetByUserID(_ context.Context, _ int64) (*models.Biometrics, error) {
	return m.bio, m.getErr
}

type mockFoods struct {
	foods []models.FoodItem
	err   error
}

func (m *mockFoods) List(_ context.Context) ([]models.FoodItem, error) {
	return m.foods, m.err
}

type mockMeals struct {
	createID  int64
	createErr error
	created   []models.MealLog

	recent      []models.MealEntry
	recentErr   error
	recentLimit int

	deleteN     int64
	deleteErr   error
	deleteCalls [][2]int64
}

func (m *mockMeals) Create(_ context.Context, ml models.MealLog) (int64, error) {
	m.created = append(m.created, ml)
	return m.createID, m.createErr
}

func (m *mockMeals) ListRecent(_ context.Context, _ int64, limit int) ([]models.MealEntry, error) {
	m.recentLimit = limit
	return m.recent, m.recentErr
}

func (m *mockMeals) Delete(_ context.Context, userID, mealID int64) (int64, error) {
	m.deleteCalls = append(m.deleteCalls, [2]int64{userID, mealID})
	return m.deleteN, m.deleteErr
}
