package adaptor

import (
	"encoding/json"
	"net/http"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/usecase"
	"movie-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SessionHandler struct {
	service usecase.BookingSessionService
	log     *zap.Logger
}

func NewSessionHandler(service usecase.BookingSessionService, log *zap.Logger) *SessionHandler {
	return &SessionHandler{
		service: service,
		log:     log.With(zap.String("handler", "session")),
	}
}

// StartSession handles POST /api/booking-sessions (protected)
func (h *SessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	showtimeID, err := uuid.Parse(req.ShowtimeID)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid showtime ID", nil)
		return
	}

	session, err := h.service.Start(r.Context(), userID, showtimeID)
	if err != nil {
		handleServiceError(w, h.log, err, "start booking session")
		return
	}

	utils.ResponseCreated(w, "success", session)
}

// GetSession handles GET /api/booking-sessions/{id} (protected)
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, ok := h.sessionParams(w, r)
	if !ok {
		return
	}

	session, err := h.service.Get(r.Context(), userID, sessionID)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking session")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// ToggleSeat handles POST /api/booking-sessions/{id}/seats (protected)
func (h *SessionHandler) ToggleSeat(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, ok := h.sessionParams(w, r)
	if !ok {
		return
	}

	var req request.ToggleSeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	session, err := h.service.ToggleSeat(r.Context(), userID, sessionID, req.Label)
	if err != nil {
		handleServiceError(w, h.log, err, "toggle seat")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// Advance handles POST /api/booking-sessions/{id}/advance (protected)
func (h *SessionHandler) Advance(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, ok := h.sessionParams(w, r)
	if !ok {
		return
	}

	session, err := h.service.Advance(r.Context(), userID, sessionID)
	if err != nil {
		handleServiceError(w, h.log, err, "advance booking session")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// Retreat handles POST /api/booking-sessions/{id}/retreat (protected)
func (h *SessionHandler) Retreat(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, ok := h.sessionParams(w, r)
	if !ok {
		return
	}

	var req request.RetreatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	session, err := h.service.Retreat(r.Context(), userID, sessionID, entity.SessionStep(req.Step))
	if err != nil {
		handleServiceError(w, h.log, err, "retreat booking session")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// AbandonSession handles DELETE /api/booking-sessions/{id} (protected)
func (h *SessionHandler) AbandonSession(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, ok := h.sessionParams(w, r)
	if !ok {
		return
	}

	if err := h.service.Abandon(r.Context(), userID, sessionID); err != nil {
		handleServiceError(w, h.log, err, "abandon booking session")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

func (h *SessionHandler) sessionParams(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return uuid.Nil, uuid.Nil, false
	}

	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid session ID", nil)
		return uuid.Nil, uuid.Nil, false
	}

	return userID, sessionID, true
}
