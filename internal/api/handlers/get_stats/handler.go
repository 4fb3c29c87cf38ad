package get_stats

import (
	"net/http"

	"github.com/m04kA/KDR-BookingService/internal/api/handlers"
)

const msgStatsError = "Error fetching stats"

type Handler struct {
	useCase GetStatsUseCase
	logger  Logger
}

func NewHandler(useCase GetStatsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /stats - Failed to compute stats: %v", err)
		handlers.RespondInternalError(w, msgStatsError, err)
		return
	}

	h.logger.Info("GET /stats - Stats computed: total=%d, revenue=%s",
		result.TotalBookings, result.RevenueFormatted)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
