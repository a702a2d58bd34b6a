package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"movie-booking/internal/data/entity"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps domain errors onto the response envelope. Seat
// conflicts carry the raced labels so clients can repaint the seat map.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var conflict *entity.SeatConflictError

	switch {
	case errors.As(err, &conflict):
		log.Warn(operation+" failed - seat conflict",
			zap.Error(err),
			zap.Strings("conflicts", conflict.Labels))
		utils.ResponseConflict(w, err.Error(), map[string][]string{"seats": conflict.Labels})

	case errors.Is(err, entity.ErrSeatConflict):
		log.Warn(operation+" failed - seat conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error(), nil)

	case errors.Is(err, entity.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, entity.ErrNotAuthenticated):
		log.Warn(operation+" failed - not authenticated", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, entity.ErrEmptySelection), errors.Is(err, entity.ErrInvalidState):
		log.Warn(operation+" failed - invalid state", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case strings.Contains(err.Error(), "validation failed"),
		strings.Contains(err.Error(), "invalid"):
		log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
