package submit_contact

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/KDR-BookingService/internal/api/handlers"
	"github.com/m04kA/KDR-BookingService/internal/service/contacts"
	"github.com/m04kA/KDR-BookingService/internal/service/contacts/models"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgSubmitted          = "Contact form submitted successfully"
	msgMissingFieldFmt    = "Missing required field: %s"
	msgSubmitError        = "Error submitting contact form"
)

// SubmitContactResponse обертка ответа на отправку формы
type SubmitContactResponse struct {
	Message string `json:"message"`
}

type Handler struct {
	service ContactService
	logger  Logger
}

func NewHandler(service ContactService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/contact
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitContactRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contact - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Submit(r.Context(), &req); err != nil {
		var missingField *contacts.MissingFieldError

		switch {
		case errors.As(err, &missingField):
			h.logger.Warn("POST /contact - Missing required field: %s", missingField.Field)
			handlers.RespondBadRequest(w, fmt.Sprintf(msgMissingFieldFmt, missingField.Field))

		default:
			h.logger.Error("POST /contact - Failed to submit contact form: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w, msgSubmitError, err)
		}
		return
	}

	h.logger.Info("POST /contact - Contact form submitted: email=%s, subject=%s", req.Email, req.Subject)
	handlers.RespondJSON(w, http.StatusCreated, &SubmitContactResponse{Message: msgSubmitted})
}
