package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"registrationdesk/internal/domain"
)

func validPersonInput() domain.PersonParticipationInput {
	return domain.PersonParticipationInput{
		EventID:       "ev-1",
		PaymentMethod: "CASH",
		FirstName:     "Mari",
		LastName:      "Maasikas",
		PersonalCode:  "49403136526",
	}
}

func validCompanyInput() domain.CompanyParticipationInput {
	return domain.CompanyParticipationInput{
		EventID:              "ev-1",
		PaymentMethod:        "CASH",
		CompanyName:          "Maasikas OÜ",
		RegistryCode:         "1234567",
		NumberOfParticipants: 3,
	}
}

func TestParticipationValidator_ValidatePerson(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*domain.PersonParticipationInput)
		wantErrors []string
	}{
		{
			name:       "valid input",
			mutate:     func(in *domain.PersonParticipationInput) {},
			wantErrors: []string{},
		},
		{
			name:       "missing first name short-circuits",
			mutate:     func(in *domain.PersonParticipationInput) { in.FirstName = "" },
			wantErrors: []string{domain.MsgMissingOrBlank},
		},
		{
			name:       "blank last name short-circuits",
			mutate:     func(in *domain.PersonParticipationInput) { in.LastName = "  " },
			wantErrors: []string{domain.MsgMissingOrBlank},
		},
		{
			name: "missing code hides the format rule",
			mutate: func(in *domain.PersonParticipationInput) {
				in.PersonalCode = ""
				in.PaymentMethod = "gold"
			},
			wantErrors: []string{domain.MsgMissingOrBlank},
		},
		{
			name:       "code too short",
			mutate:     func(in *domain.PersonParticipationInput) { in.PersonalCode = "4940313652" },
			wantErrors: []string{domain.MsgInvalidCodeFormat},
		},
		{
			name:       "code too long",
			mutate:     func(in *domain.PersonParticipationInput) { in.PersonalCode = "494031365267" },
			wantErrors: []string{domain.MsgInvalidCodeFormat},
		},
		{
			name:       "code first digit zero",
			mutate:     func(in *domain.PersonParticipationInput) { in.PersonalCode = "09403136526" },
			wantErrors: []string{domain.MsgInvalidCodeFormat},
		},
		{
			name:       "code first digit nine",
			mutate:     func(in *domain.PersonParticipationInput) { in.PersonalCode = "99403136526" },
			wantErrors: []string{domain.MsgInvalidCodeFormat},
		},
		{
			name:       "code with letters",
			mutate:     func(in *domain.PersonParticipationInput) { in.PersonalCode = "4940313652a" },
			wantErrors: []string{domain.MsgInvalidCodeFormat},
		},
		{
			name:       "info at the limit is accepted",
			mutate:     func(in *domain.PersonParticipationInput) { in.AdditionalInfo = strings.Repeat("a", 1500) },
			wantErrors: []string{},
		},
		{
			name:       "info over the limit",
			mutate:     func(in *domain.PersonParticipationInput) { in.AdditionalInfo = strings.Repeat("a", 1501) },
			wantErrors: []string{domain.MsgInfoTooLong},
		},
		{
			name:       "unknown event",
			mutate:     func(in *domain.PersonParticipationInput) { in.EventID = "ev-missing" },
			wantErrors: []string{domain.MsgEventNotFound},
		},
		{
			name:       "unknown payment method",
			mutate:     func(in *domain.PersonParticipationInput) { in.PaymentMethod = "gold" },
			wantErrors: []string{domain.MsgInvalidPayment},
		},
		{
			name:       "payment label with wrong case",
			mutate:     func(in *domain.PersonParticipationInput) { in.PaymentMethod = "bank transfer" },
			wantErrors: []string{domain.MsgInvalidPayment},
		},
		{
			name: "errors accumulate past the missing check",
			mutate: func(in *domain.PersonParticipationInput) {
				in.PersonalCode = "123"
				in.AdditionalInfo = strings.Repeat("a", 1501)
				in.EventID = "ev-missing"
				in.PaymentMethod = "gold"
			},
			wantErrors: []string{
				domain.MsgInvalidCodeFormat,
				domain.MsgInfoTooLong,
				domain.MsgEventNotFound,
				domain.MsgInvalidPayment,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := &mockEventRepository{events: map[string]*domain.Event{
				"ev-1": futureEvent("ev-1"),
			}}
			v := NewParticipationValidator(events)

			input := validPersonInput()
			tt.mutate(&input)

			result, err := v.ValidatePerson(context.Background(), input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(result.Errors) != len(tt.wantErrors) {
				t.Fatalf("expected %d errors, got %d: %v", len(tt.wantErrors), len(result.Errors), result.Errors)
			}
			for i, want := range tt.wantErrors {
				if result.Errors[i] != want {
					t.Errorf("error %d: expected %q, got %q", i, want, result.Errors[i])
				}
			}
		})
	}
}

func TestParticipationValidator_ValidateCompany(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*domain.CompanyParticipationInput)
		wantErrors []string
	}{
		{
			name:       "valid input",
			mutate:     func(in *domain.CompanyParticipationInput) {},
			wantErrors: []string{},
		},
		{
			name:       "eight digit registry code is accepted",
			mutate:     func(in *domain.CompanyParticipationInput) { in.RegistryCode = "12345678" },
			wantErrors: []string{},
		},
		{
			name:       "missing company name short-circuits",
			mutate:     func(in *domain.CompanyParticipationInput) { in.CompanyName = "" },
			wantErrors: []string{domain.MsgMissingOrBlank},
		},
		{
			name:       "registry code too short",
			mutate:     func(in *domain.CompanyParticipationInput) { in.RegistryCode = "123456" },
			wantErrors: []string{domain.MsgInvalidCodeFormat},
		},
		{
			name:       "registry code too long",
			mutate:     func(in *domain.CompanyParticipationInput) { in.RegistryCode = "123456789" },
			wantErrors: []string{domain.MsgInvalidCodeFormat},
		},
		{
			name:       "zero participants",
			mutate:     func(in *domain.CompanyParticipationInput) { in.NumberOfParticipants = 0 },
			wantErrors: []string{domain.MsgInvalidParticipantCount},
		},
		{
			name:       "negative participants",
			mutate:     func(in *domain.CompanyParticipationInput) { in.NumberOfParticipants = -4 },
			wantErrors: []string{domain.MsgInvalidParticipantCount},
		},
		{
			name:       "one participant is accepted",
			mutate:     func(in *domain.CompanyParticipationInput) { in.NumberOfParticipants = 1 },
			wantErrors: []string{},
		},
		{
			name:       "info at the limit is accepted",
			mutate:     func(in *domain.CompanyParticipationInput) { in.AdditionalInfo = strings.Repeat("a", 5000) },
			wantErrors: []string{},
		},
		{
			name:       "info over the limit",
			mutate:     func(in *domain.CompanyParticipationInput) { in.AdditionalInfo = strings.Repeat("a", 5001) },
			wantErrors: []string{domain.MsgInfoTooLong},
		},
		{
			name:       "unknown event",
			mutate:     func(in *domain.CompanyParticipationInput) { in.EventID = "ev-missing" },
			wantErrors: []string{domain.MsgEventNotFound},
		},
		{
			name: "errors accumulate past the missing check",
			mutate: func(in *domain.CompanyParticipationInput) {
				in.RegistryCode = "1"
				in.NumberOfParticipants = 0
				in.PaymentMethod = "gold"
			},
			wantErrors: []string{
				domain.MsgInvalidCodeFormat,
				domain.MsgInvalidParticipantCount,
				domain.MsgInvalidPayment,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := &mockEventRepository{events: map[string]*domain.Event{
				"ev-1": futureEvent("ev-1"),
			}}
			v := NewParticipationValidator(events)

			input := validCompanyInput()
			tt.mutate(&input)

			result, err := v.ValidateCompany(context.Background(), input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(result.Errors) != len(tt.wantErrors) {
				t.Fatalf("expected %d errors, got %d: %v", len(tt.wantErrors), len(result.Errors), result.Errors)
			}
			for i, want := range tt.wantErrors {
				if result.Errors[i] != want {
					t.Errorf("error %d: expected %q, got %q", i, want, result.Errors[i])
				}
			}
		})
	}
}

func TestParticipationValidator_StoreFault(t *testing.T) {
	events := &mockEventRepository{
		events:    map[string]*domain.Event{},
		existsErr: errors.New("connection refused"),
	}
	v := NewParticipationValidator(events)

	if _, err := v.ValidatePerson(context.Background(), validPersonInput()); err == nil {
		t.Fatal("expected a store fault to surface as an error")
	}
	if _, err := v.ValidateCompany(context.Background(), validCompanyInput()); err == nil {
		t.Fatal("expected a store fault to surface as an error")
	}
}
