package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"registrationdesk/internal/delivery/http/helpers"
	"registrationdesk/internal/domain"
)

type ParticipationController struct {
	Logger  *slog.Logger
	Service domain.ParticipationService
}

func NewParticipationController(logger *slog.Logger, svc domain.ParticipationService) *ParticipationController {
	return &ParticipationController{
		Logger:  logger,
		Service: svc,
	}
}

// ParticipationResultResponse is the response envelope for participation mutations (200/201/422).
type ParticipationResultResponse struct {
	Data  *domain.ValidationResult `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// AddPerson godoc
// @Summary Register a person for an event
// @Description Validates and stores a person participation. Returns 201 with an empty errors list on success, 422 with the validation messages otherwise.
// @Tags participations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body domain.PersonParticipationInput true "Person participation data"
// @Success 201 {object} controllers.ParticipationResultResponse "Participation created"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 422 {object} helpers.APIResponse "error.code: validation_failed, data carries the messages"
// @Router /participations/person [post]
func (c *ParticipationController) AddPerson(w http.ResponseWriter, r *http.Request) {
	var input domain.PersonParticipationInput
	if !helpers.DecodeAndValidate(w, r, &input) {
		return
	}
	result := c.Service.AddPersonParticipation(r.Context(), input)
	helpers.WriteValidationResult(w, result, http.StatusCreated)
}

// AddCompany godoc
// @Summary Register a company for an event
// @Description Validates and stores a company participation. Returns 201 with an empty errors list on success, 422 with the validation messages otherwise.
// @Tags participations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body domain.CompanyParticipationInput true "Company participation data"
// @Success 201 {object} controllers.ParticipationResultResponse "Participation created"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 422 {object} helpers.APIResponse "error.code: validation_failed, data carries the messages"
// @Router /participations/company [post]
func (c *ParticipationController) AddCompany(w http.ResponseWriter, r *http.Request) {
	var input domain.CompanyParticipationInput
	if !helpers.DecodeAndValidate(w, r, &input) {
		return
	}
	result := c.Service.AddCompanyParticipation(r.Context(), input)
	helpers.WriteValidationResult(w, result, http.StatusCreated)
}

// EditPerson godoc
// @Summary Update a person participation
// @Description Re-validates and overwrites the participation's mutable fields. The event reference never changes.
// @Tags participations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param participationID path string true "Participation ID (UUID)"
// @Param body body domain.PersonParticipationInput true "Person participation data"
// @Success 200 {object} controllers.ParticipationResultResponse "Participation updated"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 422 {object} helpers.APIResponse "error.code: validation_failed, data carries the messages"
// @Router /participations/person/{participationID} [put]
func (c *ParticipationController) EditPerson(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "participationID")
	if !ok {
		return
	}
	var input domain.PersonParticipationInput
	if !helpers.DecodeAndValidate(w, r, &input) {
		return
	}
	input.ID = id
	result := c.Service.EditPersonParticipation(r.Context(), input)
	helpers.WriteValidationResult(w, result, http.StatusOK)
}

// EditCompany godoc
// @Summary Update a company participation
// @Description Re-validates and overwrites the participation's mutable fields. The event reference never changes.
// @Tags participations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param participationID path string true "Participation ID (UUID)"
// @Param body body domain.CompanyParticipationInput true "Company participation data"
// @Success 200 {object} controllers.ParticipationResultResponse "Participation updated"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 422 {object} helpers.APIResponse "error.code: validation_failed, data carries the messages"
// @Router /participations/company/{participationID} [put]
func (c *ParticipationController) EditCompany(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "participationID")
	if !ok {
		return
	}
	var input domain.CompanyParticipationInput
	if !helpers.DecodeAndValidate(w, r, &input) {
		return
	}
	input.ID = id
	result := c.Service.EditCompanyParticipation(r.Context(), input)
	helpers.WriteValidationResult(w, result, http.StatusOK)
}

// DeleteParticipation godoc
// @Summary Remove a participation
// @Description Deletes the participation if its event has not started yet. Kind is "person" or "company".
// @Tags participations
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Participation kind" Enums(person, company)
// @Param participationID path string true "Participation ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data.deleted is true"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /participations/{kind}/{participationID} [delete]
func (c *ParticipationController) DeleteParticipation(w http.ResponseWriter, r *http.Request) {
	kind, ok := domain.ParseParticipationKind(strings.ToUpper(r.PathValue("kind")))
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid kind")
		return
	}
	id, ok := pathID(w, r, "participationID")
	if !ok {
		return
	}
	if !c.Service.DeleteParticipation(r.Context(), kind, id) {
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "participation cannot be deleted")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"deleted": true})
}

// PersonInfoSuccessResponse is the success response envelope for GET /participations/person/{participationID} (200).
type PersonInfoSuccessResponse struct {
	Data  *domain.PersonParticipation `json:"data"`
	Error *helpers.APIError           `json:"error"`
}

// PersonInfo godoc
// @Summary Get a person participation
// @Tags participations
// @Produce json
// @Param participationID path string true "Participation ID (UUID)"
// @Success 200 {object} controllers.PersonInfoSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /participations/person/{participationID} [get]
func (c *ParticipationController) PersonInfo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "participationID")
	if !ok {
		return
	}
	participation, err := c.Service.PersonParticipationInfo(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "participation not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, participation)
}

// CompanyInfoSuccessResponse is the success response envelope for GET /participations/company/{participationID} (200).
type CompanyInfoSuccessResponse struct {
	Data  *domain.CompanyParticipation `json:"data"`
	Error *helpers.APIError            `json:"error"`
}

// CompanyInfo godoc
// @Summary Get a company participation
// @Tags participations
// @Produce json
// @Param participationID path string true "Participation ID (UUID)"
// @Success 200 {object} controllers.CompanyInfoSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /participations/company/{participationID} [get]
func (c *ParticipationController) CompanyInfo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "participationID")
	if !ok {
		return
	}
	participation, err := c.Service.CompanyParticipationInfo(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "participation not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, participation)
}
