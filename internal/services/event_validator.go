package services

import (
	"strings"
	"time"

	"registrationdesk/internal/domain"
)

const maxEventInfoLength = 1000

// EventValidator checks candidate event input against the creation rules.
// Every rule is evaluated; each violation appends its own message, so the
// caller sees all problems at once.
type EventValidator struct {
	now func() time.Time
}

// NewEventValidator returns a validator using the wall clock.
func NewEventValidator() *EventValidator {
	return &EventValidator{now: time.Now}
}

// Validate checks that name, time, and location are present, that the time
// is not in the past, and that the additional info fits the length limit.
func (v *EventValidator) Validate(input domain.EventInput) *domain.ValidationResult {
	result := domain.NewValidationResult()

	if isBlank(input.Name) || input.Time.IsZero() || isBlank(input.Location) {
		result.AddError(domain.MsgMissingOrBlank)
	}
	if !input.Time.IsZero() && input.Time.Before(v.now()) {
		result.AddError(domain.MsgTimeInPast)
	}
	if len([]rune(input.AdditionalInfo)) > maxEventInfoLength {
		result.AddError(domain.MsgEventInfoTooLong)
	}
	return result
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
