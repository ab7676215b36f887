package domain

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("token is invalid or expired")
	ErrInvalidInput       = errors.New("invalid input")
)

type User struct {
	ID           string
	Email        string
	PasswordHash string // base64(salt || key), never leaves the service
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TokenPair is what a successful login or refresh hands back to the client.
type TokenPair struct {
	AccessToken           string
	AccessTokenExpiresAt  time.Time
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
}
