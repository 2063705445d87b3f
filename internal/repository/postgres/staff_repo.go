package postgres

import (
	"context"
	"database/sql"
	"errors"

	"registrationdesk/internal/domain"
)

type staffRepository struct {
	DB *sql.DB
}

func NewStaffRepository(db *sql.DB) domain.StaffRepository {
	return &staffRepository{
		DB: db,
	}
}

func (r *staffRepository) GetByUsername(ctx context.Context, username string) (*domain.Staff, error) {
	query := `
		SELECT id, username, password_hash, salt, created_at
		FROM staff
		WHERE username = $1
	`
	s := &domain.Staff{}
	err := r.DB.QueryRowContext(ctx, query, username).Scan(
		&s.ID, &s.Username, &s.PasswordHash, &s.Salt, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStaffNotFound
		}
		return nil, err
	}
	return s, nil
}
