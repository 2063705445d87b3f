package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for staff authentication.
var (
	ErrStaffNotFound      = errors.New("staff member not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Staff is a registration desk operator allowed to mutate events and
// participations.
type Staff struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// PasswordHasher handles salt generation, hashing, and verification.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues bearer tokens for an authenticated staff member.
type TokenIssuer interface {
	Issue(staffID, username string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated staff ID.
type TokenVerifier interface {
	Verify(token string) (staffID string, err error)
}

// StaffRepository defines the interface for staff storage.
type StaffRepository interface {
	GetByUsername(ctx context.Context, username string) (*Staff, error)
}

// StaffService authenticates desk operators.
type StaffService interface {
	Login(ctx context.Context, username, password string) (token string, err error)
}
