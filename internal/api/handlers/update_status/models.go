package update_status

import "github.com/m04kA/KDR-BookingService/internal/service/bookings/models"

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatusResponse обертка ответа на смену статуса
type UpdateStatusResponse struct {
	Message string                  `json:"message"`
	Booking *models.BookingResponse `json:"booking"`
}
