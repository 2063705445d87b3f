package domain

import (
	"context"
	"time"
)

// Event is a scheduled happening participations are linked to. Events are
// immutable once created; they leave the system only through the guarded
// delete operation, which also removes all linked participations.
// swagger:model Event
type Event struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Time           time.Time `json:"time"`
	Location       string    `json:"location"`
	AdditionalInfo string    `json:"additional_info"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewEvent returns a new Event with the given fields. ID is set by the
// repository on create.
func NewEvent(name string, t time.Time, location, additionalInfo string, createdAt time.Time) *Event {
	return &Event{
		Name:           name,
		Time:           t,
		Location:       location,
		AdditionalInfo: additionalInfo,
		CreatedAt:      createdAt,
	}
}

// EventInput is the candidate data for creating an event. A zero Time means
// the field was not supplied.
type EventInput struct {
	Name           string    `json:"name"`
	Time           time.Time `json:"time"`
	Location       string    `json:"location"`
	AdditionalInfo string    `json:"additional_info"`
}

// EventSummary is the per-event display row: identity, schedule, and the
// derived headcount (person participations count as 1 each, company
// participations contribute their declared attendee count).
// swagger:model EventSummary
type EventSummary struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Time                 time.Time `json:"time"`
	Location             string    `json:"location"`
	NumberOfParticipants int       `json:"number_of_participants"`
}

// EventRepository defines storage operations for events.
// DeleteWithParticipations removes the event and every participation
// referencing it inside one transaction.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	ListByTimeAfter(ctx context.Context, t time.Time) ([]*Event, error)
	ListByTimeBefore(ctx context.Context, t time.Time) ([]*Event, error)
	DeleteWithParticipations(ctx context.Context, id string) error
}
