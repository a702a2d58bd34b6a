package adaptor

import (
	"net/http"

	"movie-booking/internal/usecase"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

type TheatreHandler struct {
	service usecase.TheatreService
	log     *zap.Logger
}

func NewTheatreHandler(service usecase.TheatreService, log *zap.Logger) *TheatreHandler {
	return &TheatreHandler{
		service: service,
		log:     log.With(zap.String("handler", "theatre")),
	}
}

// ListTheatres handles GET /api/theatres (public)
func (h *TheatreHandler) ListTheatres(w http.ResponseWriter, r *http.Request) {
	theatres, err := h.service.ListTheatres(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list theatres")
		return
	}

	utils.ResponseSuccess(w, "success", theatres)
}
