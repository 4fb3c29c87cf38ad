package export_backup

import (
	"net/http"

	"github.com/m04kA/KDR-BookingService/internal/api/handlers"
)

const (
	msgBackupCreated = "Database backup created successfully"
	msgBackupError   = "Error creating backup"
)

type Handler struct {
	useCase ExportBackupUseCase
	logger  Logger
}

func NewHandler(useCase ExportBackupUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/backup
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /backup - Failed to create backup: %v", err)
		handlers.RespondInternalError(w, msgBackupError, err)
		return
	}

	h.logger.Info("GET /backup - Backup created: filename=%s, bookings=%d, contacts=%d",
		result.Filename, result.BookingCount, result.ContactCount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(msgBackupCreated, result))
}
