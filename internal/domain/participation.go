package domain

import (
	"context"
	"time"
)

// ParticipationKind tags a participation as belonging to a person or a
// company. Closed two-variant set; there is no open hierarchy behind it.
type ParticipationKind string

const (
	KindPerson  ParticipationKind = "PERSON"
	KindCompany ParticipationKind = "COMPANY"
)

// ParseParticipationKind maps a string to a known kind.
func ParseParticipationKind(s string) (ParticipationKind, bool) {
	switch ParticipationKind(s) {
	case KindPerson:
		return KindPerson, true
	case KindCompany:
		return KindCompany, true
	}
	return "", false
}

// PaymentMethod is the closed set of accepted payment options.
type PaymentMethod string

const (
	PaymentBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentCash         PaymentMethod = "CASH"
)

// DisplayName returns the human-readable label for the method.
func (m PaymentMethod) DisplayName() string {
	switch m {
	case PaymentBankTransfer:
		return "Bank transfer"
	case PaymentCash:
		return "Cash"
	}
	return string(m)
}

// ResolvePaymentMethod maps a string to a known payment method. It accepts
// either the method name ("BANK_TRANSFER") or the display label
// ("Bank transfer"), case-sensitive. An unresolved string is an ordinary
// validation failure, never a panic.
func ResolvePaymentMethod(s string) (PaymentMethod, bool) {
	for _, m := range []PaymentMethod{PaymentBankTransfer, PaymentCash} {
		if s == string(m) || s == m.DisplayName() {
			return m, true
		}
	}
	return "", false
}

// PersonParticipation registers one person for an event. The identity is
// embedded in the record; a person always contributes 1 to the headcount.
// swagger:model PersonParticipation
type PersonParticipation struct {
	ID             string        `json:"id"`
	EventID        string        `json:"event_id"`
	PaymentMethod  PaymentMethod `json:"payment_method"`
	AdditionalInfo string        `json:"additional_info"`
	FirstName      string        `json:"first_name"`
	LastName       string        `json:"last_name"`
	PersonalCode   string        `json:"personal_code"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// CompanyParticipation registers a company delegation for an event and
// contributes NumberOfParticipants to the headcount.
// swagger:model CompanyParticipation
type CompanyParticipation struct {
	ID                   string        `json:"id"`
	EventID              string        `json:"event_id"`
	PaymentMethod        PaymentMethod `json:"payment_method"`
	AdditionalInfo       string        `json:"additional_info"`
	CompanyName          string        `json:"company_name"`
	RegistryCode         string        `json:"registry_code"`
	NumberOfParticipants int           `json:"number_of_participants"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}

// PersonParticipationInput is the candidate data for adding or editing a
// person participation. ID is taken from the request path on edits; EventID
// is ignored on edits (a participation never changes event).
type PersonParticipationInput struct {
	ID             string `json:"-"`
	EventID        string `json:"event_id"`
	PaymentMethod  string `json:"payment_method"`
	AdditionalInfo string `json:"additional_info"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	PersonalCode   string `json:"personal_code"`
}

// CompanyParticipationInput is the company counterpart of
// PersonParticipationInput.
type CompanyParticipationInput struct {
	ID                   string `json:"-"`
	EventID              string `json:"event_id"`
	PaymentMethod        string `json:"payment_method"`
	AdditionalInfo       string `json:"additional_info"`
	CompanyName          string `json:"company_name"`
	RegistryCode         string `json:"registry_code"`
	NumberOfParticipants int    `json:"number_of_participants"`
}

// ParticipantSummary is one row in an event's participant listing: display
// name, identity code, and the participation handle needed for follow-up
// operations.
// swagger:model ParticipantSummary
type ParticipantSummary struct {
	Name            string            `json:"name"`
	IDCode          string            `json:"id_code"`
	ParticipationID string            `json:"participation_id"`
	Kind            ParticipationKind `json:"kind"`
}

// PersonParticipationRepository defines storage operations for person
// participations. ListByEventID returns rows in insertion order.
type PersonParticipationRepository interface {
	Create(ctx context.Context, p *PersonParticipation) error
	GetByID(ctx context.Context, id string) (*PersonParticipation, error)
	Update(ctx context.Context, p *PersonParticipation) error
	Delete(ctx context.Context, id string) error
	ListByEventID(ctx context.Context, eventID string) ([]*PersonParticipation, error)
}

// CompanyParticipationRepository defines storage operations for company
// participations. ListByEventID returns rows in insertion order.
type CompanyParticipationRepository interface {
	Create(ctx context.Context, p *CompanyParticipation) error
	GetByID(ctx context.Context, id string) (*CompanyParticipation, error)
	Update(ctx context.Context, p *CompanyParticipation) error
	Delete(ctx context.Context, id string) error
	ListByEventID(ctx context.Context, eventID string) ([]*CompanyParticipation, error)
}

// ParticipationService is the registration desk's operation set. Business
// rule rejections are reported through the returned ValidationResult;
// delete operations report success as a boolean; get-by-id reads return
// ErrNotFound when the record is absent.
type ParticipationService interface {
	CreateEvent(ctx context.Context, input EventInput) *ValidationResult
	DeleteEvent(ctx context.Context, id string) bool
	EventSummary(ctx context.Context, id string) (*EventSummary, error)
	FutureEventSummaries(ctx context.Context) ([]*EventSummary, error)
	PastEventSummaries(ctx context.Context) ([]*EventSummary, error)
	ListParticipants(ctx context.Context, eventID string) ([]*ParticipantSummary, error)

	AddPersonParticipation(ctx context.Context, input PersonParticipationInput) *ValidationResult
	AddCompanyParticipation(ctx context.Context, input CompanyParticipationInput) *ValidationResult
	EditPersonParticipation(ctx context.Context, input PersonParticipationInput) *ValidationResult
	EditCompanyParticipation(ctx context.Context, input CompanyParticipationInput) *ValidationResult
	DeleteParticipation(ctx context.Context, kind ParticipationKind, id string) bool

	PersonParticipationInfo(ctx context.Context, id string) (*PersonParticipation, error)
	CompanyParticipationInfo(ctx context.Context, id string) (*CompanyParticipation, error)
}
