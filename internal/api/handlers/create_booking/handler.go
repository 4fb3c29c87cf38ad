package create_booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/KDR-BookingService/internal/api/handlers"
	createBooking "github.com/m04kA/KDR-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidDate        = "Invalid date format, expected YYYY-MM-DD"
	msgCreated            = "Booking created successfully"
	msgMissingFieldFmt    = "Missing required field: %s"
	msgCreateError        = "Error creating booking"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var missingField *createBooking.MissingFieldError

		switch {
		case errors.As(err, &missingField):
			h.logger.Warn("POST /bookings - Missing required field: %s", missingField.Field)
			handlers.RespondBadRequest(w, fmt.Sprintf(msgMissingFieldFmt, missingField.Field))

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid date: %q", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w, msgCreateError, err)
		}
		return
	}

	response := &CreateBookingResponse{
		Message:   msgCreated,
		BookingID: result.BookingID,
		Booking:   FromUseCaseResponse(result),
	}

	h.logger.Info("POST /bookings - Booking created successfully: id=%d, booking_id=%s, package=%s",
		result.ID, result.BookingID, result.Package)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
