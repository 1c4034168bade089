package repository

import (
	"context"
	"fmt"

	"biotrack/internal/models"
	"biotrack/internal/repository/db"
)

type UserRepository struct {
	exec *db.Executor
}

func NewUserRepository(exec *db.Executor) *UserRepository {
	return &UserRepository{exec: exec}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL        = `INSERT INTO Users (name, email, age, gender, password_hash) VALUES (?, ?, ?, ?, ?)`
	selectUserByEmailSQL = `SELECT id, name, email, age, gender, password_hash FROM Users WHERE email = ?`
)

// Create inserts a new user and returns its ID. A taken email yields ErrDuplicate.
func (r *UserRepository) Create(ctx context.Context, u models.User) (int64, error) {
	var age any
	if u.Age != nil {
		age = *u.Age
	}
	res, err := r.exec.Execute(ctx, db.ModeWrite, insertUserSQL, u.Name, u.Email, age, u.Gender, u.PasswordHash)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return 0, fmt.Errorf("insert user %q: %w", u.Email, ErrDuplicate)
		}
		return 0, fmt.Errorf("insert user %q: %w", u.Email, err)
	}
	return res.LastInsertID, nil
}

// GetByEmail fetches a user by email. Returns (nil, nil) if not found.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	res, err := r.exec.Execute(ctx, db.ModeOne, selectUserByEmailSQL, email)
	if err != nil {
		return nil, fmt.Errorf("select user %q: %w", email, err)
	}
	row, ok := res.First()
	if !ok {
		return nil, nil
	}

	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("select user %q: %w", email, err)
	}
	return u, nil
}

func scanUser(row db.Row) (*models.User, error) {
	var (
		u   models.User
		err error
	)
	if u.ID, err = colInt64(row, "id"); err != nil {
		return nil, err
	}
	if u.Name, err = colString(row, "name"); err != nil {
		return nil, err
	}
	if u.Email, err = colString(row, "email"); err != nil {
		return nil, err
	}
	if u.Age, err = colOptInt(row, "age"); err != nil {
		return nil, err
	}
	if u.Gender, err = colString(row, "gender"); err != nil {
		return nil, err
	}
	if u.PasswordHash, err = colString(row, "password_hash"); err != nil {
		return nil, err
	}
	return &u, nil
}
