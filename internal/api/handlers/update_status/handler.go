package update_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/KDR-BookingService/internal/api/handlers"
	"github.com/m04kA/KDR-BookingService/internal/service/bookings"
)

const (
	msgInvalidBookingID   = "Invalid booking ID"
	msgInvalidRequestBody = "Invalid request body"
	msgNotFound           = "Booking not found"
	msgMissingStatus      = "Status field is required"
	msgInvalidStatus      = "Invalid status, expected PENDING, CONFIRMED or CANCELED"
	msgUpdated            = "Booking status updated successfully"
	msgUpdateError        = "Error updating booking"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/bookings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем id из URL
	vars := mux.Vars(r)
	idStr := vars["id"]

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.service.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id} - Booking not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrMissingStatus):
			h.logger.Warn("PUT /bookings/{id} - Status field missing: id=%d", id)
			handlers.RespondBadRequest(w, msgMissingStatus)

		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("PUT /bookings/{id} - Invalid status: id=%d, status=%q", id, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PUT /bookings/{id} - Failed to update status: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w, msgUpdateError, err)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id} - Status updated successfully: id=%d, status=%s", id, booking.Status)
	handlers.RespondJSON(w, http.StatusOK, &UpdateStatusResponse{
		Message: msgUpdated,
		Booking: booking,
	})
}
