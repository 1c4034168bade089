package models

type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Age          *int   `json:"age,omitempty"`
	Gender       string `json:"gender"`
	PasswordHash string `json:"-"` // don’t expose hash
}

// DefaultGender is stored when sign-up leaves gender empty.
const DefaultGender = "Other"
