// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Theme represents the user's preferred UI theme, stored with the document.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// User represents an authenticated Alquimia user.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Theme        Theme
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User with default values.
func NewUser(email, name, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Theme:        ThemeDark,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
