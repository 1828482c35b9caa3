package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid token")
var ErrForbidden = errors.New("access forbidden")

// User models an authenticated actor in the system.
// PasswordHash never leaves the process; the raw password is never stored.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
