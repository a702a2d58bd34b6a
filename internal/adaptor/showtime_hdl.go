package adaptor

import (
	"net/http"

	"movie-booking/internal/dto/response"
	"movie-booking/internal/usecase"
	"movie-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ShowtimeHandler struct {
	service usecase.ShowtimeService
	log     *zap.Logger
}

func NewShowtimeHandler(service usecase.ShowtimeService, log *zap.Logger) *ShowtimeHandler {
	return &ShowtimeHandler{
		service: service,
		log:     log.With(zap.String("handler", "showtime")),
	}
}

// ListShowtimes handles GET /api/showtimes?movie_id=&theatre_id= (public)
func (h *ShowtimeHandler) ListShowtimes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var movieID, theatreID *uuid.UUID
	if raw := query.Get("movie_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid movie ID", nil)
			return
		}
		movieID = &id
	}
	if raw := query.Get("theatre_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid theatre ID", nil)
			return
		}
		theatreID = &id
	}

	showtimes, err := h.service.ListShowtimes(r.Context(), movieID, theatreID)
	if err != nil {
		handleServiceError(w, h.log, err, "list showtimes")
		return
	}

	utils.ResponseSuccess(w, "success", showtimes)
}

// GetShowtime handles GET /api/showtimes/{id} (public)
func (h *ShowtimeHandler) GetShowtime(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid showtime ID", nil)
		return
	}

	showtime, err := h.service.GetShowtime(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get showtime")
		return
	}
	if showtime == nil {
		utils.ResponseNotFound(w, "Showtime not found")
		return
	}

	utils.ResponseSuccess(w, "success", showtime)
}

// GetSeats handles GET /api/showtimes/{id}/seats (public)
func (h *ShowtimeHandler) GetSeats(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid showtime ID", nil)
		return
	}

	seats, err := h.service.ResolveSeats(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get seats")
		return
	}

	utils.ResponseSuccess(w, "success", response.SeatMapResponse{
		ShowtimeID: id.String(),
		Seats:      response.SeatsToResponse(seats),
	})
}
