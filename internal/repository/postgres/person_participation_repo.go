package postgres

import (
	"context"
	"database/sql"
	"errors"

	"registrationdesk/internal/domain"
)

type personParticipationRepository struct {
	DB *sql.DB
}

func NewPersonParticipationRepository(db *sql.DB) domain.PersonParticipationRepository {
	return &personParticipationRepository{
		DB: db,
	}
}

func (r *personParticipationRepository) Create(ctx context.Context, p *domain.PersonParticipation) error {
	query := `
		INSERT INTO person_participations (event_id, payment_method, additional_info, first_name, last_name, personal_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		p.EventID, string(p.PaymentMethod), p.AdditionalInfo,
		p.FirstName, p.LastName, p.PersonalCode, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
}

func (r *personParticipationRepository) GetByID(ctx context.Context, id string) (*domain.PersonParticipation, error) {
	query := `
		SELECT id, event_id, payment_method, additional_info, first_name, last_name, personal_code, created_at, updated_at
		FROM person_participations
		WHERE id = $1
	`
	p := &domain.PersonParticipation{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.EventID, &p.PaymentMethod, &p.AdditionalInfo,
		&p.FirstName, &p.LastName, &p.PersonalCode, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *personParticipationRepository) Update(ctx context.Context, p *domain.PersonParticipation) error {
	query := `
		UPDATE person_participations
		SET payment_method = $1, additional_info = $2, first_name = $3, last_name = $4, personal_code = $5, updated_at = $6
		WHERE id = $7
	`
	result, err := r.DB.ExecContext(ctx, query,
		string(p.PaymentMethod), p.AdditionalInfo, p.FirstName, p.LastName, p.PersonalCode, p.UpdatedAt, p.ID,
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

func (r *personParticipationRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM person_participations WHERE id = $1`
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

func (r *personParticipationRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.PersonParticipation, error) {
	query := `
		SELECT id, event_id, payment_method, additional_info, first_name, last_name, personal_code, created_at, updated_at
		FROM person_participations
		WHERE event_id = $1
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	participations := make([]*domain.PersonParticipation, 0)
	for rows.Next() {
		p := &domain.PersonParticipation{}
		if err := rows.Scan(
			&p.ID, &p.EventID, &p.PaymentMethod, &p.AdditionalInfo,
			&p.FirstName, &p.LastName, &p.PersonalCode, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		participations = append(participations, p)
	}
	return participations, rows.Err()
}
