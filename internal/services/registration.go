package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"registrationdesk/internal/domain"
)

// registrationService orchestrates validation, guard checks, and persistence
// for events and participations. Business rule rejections travel in the
// returned ValidationResult; store faults are logged and converted into a
// save-failed validation error at the mutation boundary.
type registrationService struct {
	eventValidator         *EventValidator
	participationValidator *ParticipationValidator
	eventRepo              domain.EventRepository
	personRepo             domain.PersonParticipationRepository
	companyRepo            domain.CompanyParticipationRepository
	logger                 *slog.Logger
	now                    func() time.Time
}

// NewRegistrationService creates the ParticipationService with its
// validators and repositories.
func NewRegistrationService(
	eventValidator *EventValidator,
	participationValidator *ParticipationValidator,
	eventRepo domain.EventRepository,
	personRepo domain.PersonParticipationRepository,
	companyRepo domain.CompanyParticipationRepository,
	logger *slog.Logger,
) domain.ParticipationService {
	return &registrationService{
		eventValidator:         eventValidator,
		participationValidator: participationValidator,
		eventRepo:              eventRepo,
		personRepo:             personRepo,
		companyRepo:            companyRepo,
		logger:                 logger,
		now:                    time.Now,
	}
}

func (s *registrationService) CreateEvent(ctx context.Context, input domain.EventInput) *domain.ValidationResult {
	result := s.eventValidator.Validate(input)
	if !result.IsValid() {
		return result
	}

	event := domain.NewEvent(input.Name, input.Time, input.Location, input.AdditionalInfo, s.now())
	if err := s.eventRepo.Create(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "create event", "name", input.Name, "err", err)
		result.AddError(domain.MsgEventSaveFailed)
		return result
	}
	s.logger.InfoContext(ctx, "event created", "name", event.Name, "location", event.Location)
	return result
}

func (s *registrationService) DeleteEvent(ctx context.Context, id string) bool {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.ErrorContext(ctx, "get event for delete", "event_id", id, "err", err)
		}
		return false
	}
	// Only events that have not started yet may be removed.
	if !event.Time.After(s.now()) {
		return false
	}
	if err := s.eventRepo.DeleteWithParticipations(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "delete event", "event_id", id, "err", err)
		return false
	}
	s.logger.InfoContext(ctx, "event deleted", "name", event.Name)
	return true
}

func (s *registrationService) EventSummary(ctx context.Context, id string) (*domain.EventSummary, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	count, err := s.headcount(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	return summarize(event, count), nil
}

func (s *registrationService) FutureEventSummaries(ctx context.Context) ([]*domain.EventSummary, error) {
	events, err := s.eventRepo.ListByTimeAfter(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("list future events: %w", err)
	}
	return s.summaries(ctx, events)
}

func (s *registrationService) PastEventSummaries(ctx context.Context) ([]*domain.EventSummary, error) {
	events, err := s.eventRepo.ListByTimeBefore(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("list past events: %w", err)
	}
	return s.summaries(ctx, events)
}

func (s *registrationService) summaries(ctx context.Context, events []*domain.Event) ([]*domain.EventSummary, error) {
	result := make([]*domain.EventSummary, 0, len(events))
	for _, event := range events {
		count, err := s.headcount(ctx, event.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, summarize(event, count))
	}
	return result, nil
}

func summarize(event *domain.Event, headcount int) *domain.EventSummary {
	return &domain.EventSummary{
		ID:                   event.ID,
		Name:                 event.Name,
		Time:                 event.Time,
		Location:             event.Location,
		NumberOfParticipants: headcount,
	}
}

// headcount is the event's attendee total: each person participation counts
// as 1, each company participation contributes its declared count.
func (s *registrationService) headcount(ctx context.Context, eventID string) (int, error) {
	companies, err := s.companyRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("list company participations: %w", err)
	}
	persons, err := s.personRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("list person participations: %w", err)
	}
	total := len(persons)
	for _, c := range companies {
		total += c.NumberOfParticipants
	}
	return total, nil
}

func (s *registrationService) ListParticipants(ctx context.Context, eventID string) ([]*domain.ParticipantSummary, error) {
	companies, err := s.companyRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list company participations: %w", err)
	}
	persons, err := s.personRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list person participations: %w", err)
	}

	result := make([]*domain.ParticipantSummary, 0, len(companies)+len(persons))
	for _, c := range companies {
		result = append(result, &domain.ParticipantSummary{
			Name:            c.CompanyName,
			IDCode:          c.RegistryCode,
			ParticipationID: c.ID,
			Kind:            domain.KindCompany,
		})
	}
	for _, p := range persons {
		result = append(result, &domain.ParticipantSummary{
			Name:            p.FirstName + " " + p.LastName,
			IDCode:          p.PersonalCode,
			ParticipationID: p.ID,
			Kind:            domain.KindPerson,
		})
	}
	return result, nil
}

func (s *registrationService) AddPersonParticipation(ctx context.Context, input domain.PersonParticipationInput) *domain.ValidationResult {
	result, err := s.participationValidator.ValidatePerson(ctx, input)
	if err != nil {
		return s.storeFault(ctx, "validate person participation", err)
	}
	if !result.IsValid() {
		return result
	}

	method, _ := domain.ResolvePaymentMethod(input.PaymentMethod)
	now := s.now()
	participation := &domain.PersonParticipation{
		EventID:        input.EventID,
		PaymentMethod:  method,
		AdditionalInfo: input.AdditionalInfo,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		PersonalCode:   input.PersonalCode,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.personRepo.Create(ctx, participation); err != nil {
		s.logger.ErrorContext(ctx, "create person participation", "event_id", input.EventID, "err", err)
		result.AddError(domain.MsgParticipationSaveFailed)
		return result
	}
	s.logger.InfoContext(ctx, "person participation added",
		"event_id", input.EventID, "first_name", input.FirstName, "last_name", input.LastName)
	return result
}

func (s *registrationService) AddCompanyParticipation(ctx context.Context, input domain.CompanyParticipationInput) *domain.ValidationResult {
	result, err := s.participationValidator.ValidateCompany(ctx, input)
	if err != nil {
		return s.storeFault(ctx, "validate company participation", err)
	}
	if !result.IsValid() {
		return result
	}

	method, _ := domain.ResolvePaymentMethod(input.PaymentMethod)
	now := s.now()
	participation := &domain.CompanyParticipation{
		EventID:              input.EventID,
		PaymentMethod:        method,
		AdditionalInfo:       input.AdditionalInfo,
		CompanyName:          input.CompanyName,
		RegistryCode:         input.RegistryCode,
		NumberOfParticipants: input.NumberOfParticipants,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := s.companyRepo.Create(ctx, participation); err != nil {
		s.logger.ErrorContext(ctx, "create company participation", "event_id", input.EventID, "err", err)
		result.AddError(domain.MsgParticipationSaveFailed)
		return result
	}
	s.logger.InfoContext(ctx, "company participation added",
		"event_id", input.EventID, "company_name", input.CompanyName)
	return result
}

func (s *registrationService) EditPersonParticipation(ctx context.Context, input domain.PersonParticipationInput) *domain.ValidationResult {
	existing, err := s.personRepo.GetByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			result := domain.NewValidationResult()
			result.AddError(domain.MsgParticipationNotFound)
			return result
		}
		return s.storeFault(ctx, "get person participation", err)
	}

	// An edit never moves a participation to another event.
	input.EventID = existing.EventID
	result, err := s.participationValidator.ValidatePerson(ctx, input)
	if err != nil {
		return s.storeFault(ctx, "validate person participation", err)
	}
	if !result.IsValid() {
		return result
	}

	method, _ := domain.ResolvePaymentMethod(input.PaymentMethod)
	existing.PaymentMethod = method
	existing.AdditionalInfo = input.AdditionalInfo
	existing.FirstName = input.FirstName
	existing.LastName = input.LastName
	existing.PersonalCode = input.PersonalCode
	existing.UpdatedAt = s.now()

	if err := s.personRepo.Update(ctx, existing); err != nil {
		s.logger.ErrorContext(ctx, "update person participation", "participation_id", input.ID, "err", err)
		result.AddError(domain.MsgParticipationSaveFailed)
	}
	return result
}

func (s *registrationService) EditCompanyParticipation(ctx context.Context, input domain.CompanyParticipationInput) *domain.ValidationResult {
	existing, err := s.companyRepo.GetByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			result := domain.NewValidationResult()
			result.AddError(domain.MsgParticipationNotFound)
			return result
		}
		return s.storeFault(ctx, "get company participation", err)
	}

	input.EventID = existing.EventID
	result, err := s.participationValidator.ValidateCompany(ctx, input)
	if err != nil {
		return s.storeFault(ctx, "validate company participation", err)
	}
	if !result.IsValid() {
		return result
	}

	method, _ := domain.ResolvePaymentMethod(input.PaymentMethod)
	existing.PaymentMethod = method
	existing.AdditionalInfo = input.AdditionalInfo
	existing.CompanyName = input.CompanyName
	existing.RegistryCode = input.RegistryCode
	existing.NumberOfParticipants = input.NumberOfParticipants
	existing.UpdatedAt = s.now()

	if err := s.companyRepo.Update(ctx, existing); err != nil {
		s.logger.ErrorContext(ctx, "update company participation", "participation_id", input.ID, "err", err)
		result.AddError(domain.MsgParticipationSaveFailed)
	}
	return result
}

func (s *registrationService) DeleteParticipation(ctx context.Context, kind domain.ParticipationKind, id string) bool {
	var eventID string
	switch kind {
	case domain.KindPerson:
		p, err := s.personRepo.GetByID(ctx, id)
		if err != nil {
			return false
		}
		eventID = p.EventID
	case domain.KindCompany:
		c, err := s.companyRepo.GetByID(ctx, id)
		if err != nil {
			return false
		}
		eventID = c.EventID
	default:
		return false
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.ErrorContext(ctx, "get event for participation delete", "event_id", eventID, "err", err)
		}
		return false
	}
	// Same guard as event deletion: once the event has started the record stays.
	if !event.Time.After(s.now()) {
		return false
	}

	if kind == domain.KindPerson {
		err = s.personRepo.Delete(ctx, id)
	} else {
		err = s.companyRepo.Delete(ctx, id)
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "delete participation", "kind", kind, "participation_id", id, "err", err)
		return false
	}
	return true
}

func (s *registrationService) PersonParticipationInfo(ctx context.Context, id string) (*domain.PersonParticipation, error) {
	p, err := s.personRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get person participation: %w", err)
	}
	return p, nil
}

func (s *registrationService) CompanyParticipationInfo(ctx context.Context, id string) (*domain.CompanyParticipation, error) {
	c, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get company participation: %w", err)
	}
	return c, nil
}

// storeFault logs an unexpected store error and reports it to the caller as
// a save-failed validation error.
func (s *registrationService) storeFault(ctx context.Context, op string, err error) *domain.ValidationResult {
	s.logger.ErrorContext(ctx, op, "err", err)
	result := domain.NewValidationResult()
	result.AddError(domain.MsgParticipationSaveFailed)
	return result
}
