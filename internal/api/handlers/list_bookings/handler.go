package list_bookings

import (
	"net/http"

	"github.com/m04kA/KDR-BookingService/internal/api/handlers"
)

const msgListError = "Error fetching bookings"

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

// Handle GET /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w, msgListError, err)
		return
	}

	h.logger.Info("GET /bookings - Returned %d bookings", len(bookings))
	// Контракт админ-панели: плоский массив, без обертки
	handlers.RespondJSON(w, http.StatusOK, bookings)
}
