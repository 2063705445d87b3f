package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"registrationdesk/internal/delivery/http/controllers"
	"registrationdesk/internal/delivery/http/middleware"
	"registrationdesk/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Reads are public; every mutating route requires a staff bearer token.
func NewRouter(
	eventController *controllers.EventController,
	participationController *controllers.ParticipationController,
	authController *controllers.AuthController,
	verifier domain.TokenVerifier,
	logger *slog.Logger,
) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier, logger)

	// Events
	mux.HandleFunc("POST /events", requireAuth(eventController.CreateEvent))
	mux.HandleFunc("DELETE /events/{eventID}", requireAuth(eventController.DeleteEvent))
	mux.HandleFunc("GET /events/future", eventController.FutureEvents)
	mux.HandleFunc("GET /events/past", eventController.PastEvents)
	mux.HandleFunc("GET /events/{eventID}/summary", eventController.EventSummary)
	mux.HandleFunc("GET /events/{eventID}/participants", eventController.ListParticipants)

	// Participations
	mux.HandleFunc("POST /participations/person", requireAuth(participationController.AddPerson))
	mux.HandleFunc("POST /participations/company", requireAuth(participationController.AddCompany))
	mux.HandleFunc("PUT /participations/person/{participationID}", requireAuth(participationController.EditPerson))
	mux.HandleFunc("PUT /participations/company/{participationID}", requireAuth(participationController.EditCompany))
	mux.HandleFunc("GET /participations/person/{participationID}", participationController.PersonInfo)
	mux.HandleFunc("GET /participations/company/{participationID}", participationController.CompanyInfo)
	mux.HandleFunc("DELETE /participations/{kind}/{participationID}", requireAuth(participationController.DeleteParticipation))

	// Auth
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
