package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"biotrack/internal/models"
	"biotrack/internal/repository"
)

// SignUpInput is the raw sign-up form. Age is optional text.
type SignUpInput struct {
	Name     string
	Email    string
	Age      string
	Gender   string
	Password string
}

// AuthService handles user sign-up and sign-in.
type AuthService struct {
	users repository.Users
	creds *Credentials
}

func NewAuthService(users repository.Users, creds *Credentials) *AuthService {
	return &AuthService{users: users, creds: creds}
}

// SignUp validates the form, hashes the password and creates the user.
func (s *AuthService) SignUp(ctx context.Context, in SignUpInput) (int64, error) {
	u, err := newUserFromInput(in)
	if err != nil {
		return 0, err
	}

	hash, err := s.creds.HashPassword(in.Password)
	if err != nil {
		return 0, err
	}
	u.PasswordHash = hash

	id, err := s.users.Create(ctx, u)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return 0, &Error{Kind: KindConflict, Msg: ErrEmailTaken.Error(), Err: ErrEmailTaken}
		}
		return 0, persistenceError("create user", err)
	}
	return id, nil
}

func newUserFromInput(in SignUpInput) (models.User, error) {
	u := models.User{
		Name:   strings.TrimSpace(in.Name),
		Email:  normalizeEmail(in.Email),
		Gender: strings.TrimSpace(in.Gender),
	}
	if u.Name == "" {
		return models.User{}, validationError("name is required")
	}
	if u.Email == "" {
		return models.User{}, validationError("email is required")
	}
	if u.Gender == "" {
		u.Gender = models.DefaultGender
	}

	if age := strings.TrimSpace(in.Age); age != "" {
		n, err := strconv.Atoi(age)
		if err != nil || n < 0 {
			return models.User{}, validationError("age must be a non-negative whole number")
		}
		u.Age = &n
	}
	return u, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignIn checks the credentials and returns the user. Unknown email and wrong
// password produce the same error.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (models.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return models.User{}, validationError("email and password are required")
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return models.User{}, persistenceError("load user", err)
	}
	if u == nil || !s.creds.VerifyPassword(u.PasswordHash, password) {
		return models.User{}, &Error{Kind: KindAuthentication, Msg: "Invalid credentials", Err: ErrInvalidCredentials}
	}
	return *u, nil
}
