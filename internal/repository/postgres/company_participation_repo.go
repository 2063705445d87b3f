package postgres

import (
	"context"
	"database/sql"
	"errors"

	"registrationdesk/internal/domain"
)

type companyParticipationRepository struct {
	DB *sql.DB
}

func NewCompanyParticipationRepository(db *sql.DB) domain.CompanyParticipationRepository {
	return &companyParticipationRepository{
		DB: db,
	}
}

func (r *companyParticipationRepository) Create(ctx context.Context, c *domain.CompanyParticipation) error {
	query := `
		INSERT INTO company_participations (event_id, payment_method, additional_info, company_name, registry_code, number_of_participants, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		c.EventID, string(c.PaymentMethod), c.AdditionalInfo,
		c.CompanyName, c.RegistryCode, c.NumberOfParticipants, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
}

func (r *companyParticipationRepository) GetByID(ctx context.Context, id string) (*domain.CompanyParticipation, error) {
	query := `
		SELECT id, event_id, payment_method, additional_info, company_name, registry_code, number_of_participants, created_at, updated_at
		FROM company_participations
		WHERE id = $1
	`
	c := &domain.CompanyParticipation{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.EventID, &c.PaymentMethod, &c.AdditionalInfo,
		&c.CompanyName, &c.RegistryCode, &c.NumberOfParticipants, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *companyParticipationRepository) Update(ctx context.Context, c *domain.CompanyParticipation) error {
	query := `
		UPDATE company_participations
		SET payment_method = $1, additional_info = $2, company_name = $3, registry_code = $4, number_of_participants = $5, updated_at = $6
		WHERE id = $7
	`
	result, err := r.DB.ExecContext(ctx, query,
		string(c.PaymentMethod), c.AdditionalInfo, c.CompanyName, c.RegistryCode, c.NumberOfParticipants, c.UpdatedAt, c.ID,
	)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *companyParticipationRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM company_participations WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *companyParticipationRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.CompanyParticipation, error) {
	query := `
		SELECT id, event_id, payment_method, additional_info, company_name, registry_code, number_of_participants, created_at, updated_at
		FROM company_participations
		WHERE event_id = $1
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	participations := make([]*domain.CompanyParticipation, 0)
	for rows.Next() {
		c := &domain.CompanyParticipation{}
		if err := rows.Scan(
			&c.ID, &c.EventID, &c.PaymentMethod, &c.AdditionalInfo,
			&c.CompanyName, &c.RegistryCode, &c.NumberOfParticipants, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		participations = append(participations, c)
	}
	return participations, rows.Err()
}
