package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/kitlog-inc/kitlog/internal/shared/biztime"
	"github.com/kitlog-inc/kitlog/internal/shared/constants"
)

// User is the account that owns devices. Passwords are stored only as
// bcrypt hashes; the plaintext never leaves the registration use case.
type User struct {
	ID           uint
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a user with a normalized email and an already-hashed password.
func NewUser(name, email, passwordHash string) (*User, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)

	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > constants.MaxNameLength {
		return nil, fmt.Errorf("name must be at most %d characters", constants.MaxNameLength)
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if len(email) > constants.MaxEmailLength {
		return nil, fmt.Errorf("email must be at most %d characters", constants.MaxEmailLength)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := biztime.NowUTC()
	return &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// NormalizeEmail lowercases and trims an email for storage and lookup.
// Uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
