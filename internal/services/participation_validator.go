package services

import (
	"context"
	"fmt"
	"regexp"

	"registrationdesk/internal/domain"
)

const (
	maxPersonInfoLength  = 1500
	maxCompanyInfoLength = 5000
)

var (
	// First digit 1-8 (century/sex marker), then 10 more digits.
	personalCodeRegex = regexp.MustCompile(`^[1-8]\d{10}$`)
	registryCodeRegex = regexp.MustCompile(`^\d{7,8}$`)
)

// ParticipationValidator checks person and company participation input.
// Unlike the event validator, the missing-or-blank check short-circuits:
// when any mandatory field is absent the result carries that single message
// and no further rules run. The remaining rules accumulate.
//
// The returned error reports a store fault during the event existence read;
// it is not a validation outcome.
type ParticipationValidator struct {
	eventRepo domain.EventRepository
}

// NewParticipationValidator returns a validator that checks event existence
// against the given repository.
func NewParticipationValidator(eventRepo domain.EventRepository) *ParticipationValidator {
	return &ParticipationValidator{eventRepo: eventRepo}
}

// ValidatePerson checks a person participation candidate.
func (v *ParticipationValidator) ValidatePerson(ctx context.Context, input domain.PersonParticipationInput) (*domain.ValidationResult, error) {
	result := domain.NewValidationResult()

	if isBlank(input.EventID) ||
		isBlank(input.PaymentMethod) ||
		isBlank(input.PersonalCode) ||
		isBlank(input.FirstName) ||
		isBlank(input.LastName) {
		result.AddError(domain.MsgMissingOrBlank)
		return result, nil
	}

	if !personalCodeRegex.MatchString(input.PersonalCode) {
		result.AddError(domain.MsgInvalidCodeFormat)
	}
	if len([]rune(input.AdditionalInfo)) > maxPersonInfoLength {
		result.AddError(domain.MsgInfoTooLong)
	}

	exists, err := v.eventRepo.ExistsByID(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("check event exists: %w", err)
	}
	if !exists {
		result.AddError(domain.MsgEventNotFound)
	}

	if _, ok := domain.ResolvePaymentMethod(input.PaymentMethod); !ok {
		result.AddError(domain.MsgInvalidPayment)
	}
	return result, nil
}

// ValidateCompany checks a company participation candidate.
func (v *ParticipationValidator) ValidateCompany(ctx context.Context, input domain.CompanyParticipationInput) (*domain.ValidationResult, error) {
	result := domain.NewValidationResult()

	if isBlank(input.EventID) ||
		isBlank(input.PaymentMethod) ||
		isBlank(input.CompanyName) ||
		isBlank(input.RegistryCode) {
		result.AddError(domain.MsgMissingOrBlank)
		return result, nil
	}

	if !registryCodeRegex.MatchString(input.RegistryCode) {
		result.AddError(domain.MsgInvalidCodeFormat)
	}
	if input.NumberOfParticipants < 1 {
		result.AddError(domain.MsgInvalidParticipantCount)
	}
	if len([]rune(input.AdditionalInfo)) > maxCompanyInfoLength {
		result.AddError(domain.MsgInfoTooLong)
	}

	exists, err := v.eventRepo.ExistsByID(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("check event exists: %w", err)
	}
	if !exists {
		result.AddError(domain.MsgEventNotFound)
	}

	if _, ok := domain.ResolvePaymentMethod(input.PaymentMethod); !ok {
		result.AddError(domain.MsgInvalidPayment)
	}
	return result, nil
}
