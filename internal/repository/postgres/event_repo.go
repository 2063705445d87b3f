package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"registrationdesk/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (name, time, location, additional_info, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, e.Name, e.Time, e.Location, e.AdditionalInfo, e.CreatedAt).Scan(&e.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT id, name, time, location, additional_info, created_at
		FROM events
		WHERE id = $1
	`
	e := &domain.Event{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.Name, &e.Time, &e.Location, &e.AdditionalInfo, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *eventRepository) ListByTimeAfter(ctx context.Context, t time.Time) ([]*domain.Event, error) {
	query := `
		SELECT id, name, time, location, additional_info, created_at
		FROM events
		WHERE time > $1
		ORDER BY time ASC
	`
	return r.list(ctx, query, t)
}

func (r *eventRepository) ListByTimeBefore(ctx context.Context, t time.Time) ([]*domain.Event, error) {
	query := `
		SELECT id, name, time, location, additional_info, created_at
		FROM events
		WHERE time < $1
		ORDER BY time DESC
	`
	return r.list(ctx, query, t)
}

func (r *eventRepository) list(ctx context.Context, query string, t time.Time) ([]*domain.Event, error) {
	rows, err := r.DB.QueryContext(ctx, query, t)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e := &domain.Event{}
		if err := rows.Scan(&e.ID, &e.Name, &e.Time, &e.Location, &e.AdditionalInfo, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// DeleteWithParticipations removes the event and every participation that
// references it inside one transaction.
func (r *eventRepository) DeleteWithParticipations(ctx context.Context, id string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM person_participations WHERE event_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM company_participations WHERE event_id = $1`, id); err != nil {
		return err
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit()
}
