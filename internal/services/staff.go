package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"registrationdesk/internal/domain"
)

type staffService struct {
	staffRepo domain.StaffRepository
	hasher    domain.PasswordHasher
	issuer    domain.TokenIssuer
	tokenTTL  time.Duration
}

// NewStaffService creates a StaffService that authenticates desk operators
// against the staff repository and issues bearer tokens on success.
func NewStaffService(
	staffRepo domain.StaffRepository,
	hasher domain.PasswordHasher,
	issuer domain.TokenIssuer,
	tokenTTL time.Duration,
) domain.StaffService {
	return &staffService{
		staffRepo: staffRepo,
		hasher:    hasher,
		issuer:    issuer,
		tokenTTL:  tokenTTL,
	}
}

func (s *staffService) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	staff, err := s.staffRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrStaffNotFound) || errors.Is(err, domain.ErrNotFound) {
			// Do not reveal whether the username exists.
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("get staff by username: %w", err)
	}

	if err := s.hasher.Compare(staff.PasswordHash, staff.Salt, password); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(staff.ID, staff.Username, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
