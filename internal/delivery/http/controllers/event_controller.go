package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"registrationdesk/internal/delivery/http/helpers"
	"registrationdesk/internal/domain"
)

type EventController struct {
	Logger  *slog.Logger
	Service domain.ParticipationService
}

func NewEventController(logger *slog.Logger, svc domain.ParticipationService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// pathID reads and validates a UUID path value. On failure it writes a 400
// JSON error and returns false.
func pathID(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	id := r.PathValue(name)
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing "+name)
		return "", false
	}
	if err := uuid.Validate(id); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid "+name)
		return "", false
	}
	return id, true
}

// CreateEventSuccessResponse is the success response envelope for POST /events (201).
type CreateEventSuccessResponse struct {
	Data  *domain.ValidationResult `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// CreateEvent godoc
// @Summary Create an event
// @Description Validates and stores a new event. Returns 201 with an empty errors list on success, 422 with the validation messages otherwise.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body domain.EventInput true "Event data"
// @Success 201 {object} controllers.CreateEventSuccessResponse "Event created"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 422 {object} helpers.APIResponse "error.code: validation_failed, data carries the messages"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var input domain.EventInput
	if !helpers.DecodeAndValidate(w, r, &input) {
		return
	}
	result := c.Service.CreateEvent(r.Context(), input)
	helpers.WriteValidationResult(w, result, http.StatusCreated)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Deletes an event that has not started yet, together with all its participations. Events that have started or are unknown are not deleted.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data.deleted is true"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /events/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	if !c.Service.DeleteEvent(r.Context(), eventID) {
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "event cannot be deleted")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"deleted": true})
}

// ListEventsSuccessResponse is the success response envelope for the event listing endpoints (200).
type ListEventsSuccessResponse struct {
	Data  []*domain.EventSummary `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// FutureEvents godoc
// @Summary List upcoming events
// @Description Returns summaries of events whose time is still ahead, including the derived participant headcount.
// @Tags events
// @Produce json
// @Success 200 {object} controllers.ListEventsSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/future [get]
func (c *EventController) FutureEvents(w http.ResponseWriter, r *http.Request) {
	summaries, err := c.Service.FutureEventSummaries(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, summaries)
}

// PastEvents godoc
// @Summary List past events
// @Description Returns summaries of events whose time has passed, including the derived participant headcount.
// @Tags events
// @Produce json
// @Success 200 {object} controllers.ListEventsSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/past [get]
func (c *EventController) PastEvents(w http.ResponseWriter, r *http.Request) {
	summaries, err := c.Service.PastEventSummaries(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, summaries)
}

// EventSummarySuccessResponse is the success response envelope for GET /events/{eventID}/summary (200).
type EventSummarySuccessResponse struct {
	Data  *domain.EventSummary `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// EventSummary godoc
// @Summary Get one event's summary
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.EventSummarySuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/summary [get]
func (c *EventController) EventSummary(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	summary, err := c.Service.EventSummary(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, summary)
}

// ListParticipantsSuccessResponse is the success response envelope for GET /events/{eventID}/participants (200).
type ListParticipantsSuccessResponse struct {
	Data  []*domain.ParticipantSummary `json:"data"`
	Error *helpers.APIError            `json:"error"`
}

// ListParticipants godoc
// @Summary List an event's participants
// @Description Returns the event's participant rows, companies first, each in insertion order.
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.ListParticipantsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/participants [get]
func (c *EventController) ListParticipants(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	participants, err := c.Service.ListParticipants(r.Context(), eventID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, participants)
}
