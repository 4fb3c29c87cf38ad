package create_booking

import (
	"time"

	"github.com/m04kA/KDR-BookingService/internal/domain"
	createBooking "github.com/m04kA/KDR-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	Package         string  `json:"package"`
	Date            string  `json:"date"` // "2026-05-10"
	Persons         int     `json:"persons"`
	SpecialRequests *string `json:"special_requests"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	Package         string  `json:"package"`
	Persons         int     `json:"persons"`
	Date            *string `json:"date"`
	Status          string  `json:"status"`
	BookingID       string  `json:"booking_id"`
	Amount          float64 `json:"amount"`
	CreatedAt       *string `json:"created_at"`
	SpecialRequests *string `json:"special_requests"`
}

// CreateBookingResponse обертка ответа на создание бронирования
type CreateBookingResponse struct {
	Message   string           `json:"message"`
	BookingID string           `json:"booking_id"`
	Booking   *BookingResponse `json:"booking"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Package:         r.Package,
		Date:            r.Date,
		Persons:         r.Persons,
		SpecialRequests: r.SpecialRequests,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	booking := &BookingResponse{
		ID:              resp.ID,
		Name:            resp.Name,
		Email:           resp.Email,
		Phone:           resp.Phone,
		Package:         resp.Package,
		Persons:         resp.Persons,
		Status:          resp.Status,
		BookingID:       resp.BookingID,
		Amount:          resp.Amount,
		SpecialRequests: resp.SpecialRequests,
	}

	if !resp.Date.IsZero() {
		dateStr := resp.Date.Format(domain.DateFormat)
		booking.Date = &dateStr
	}
	if !resp.CreatedAt.IsZero() {
		createdStr := resp.CreatedAt.Format(time.RFC3339)
		booking.CreatedAt = &createdStr
	}

	return booking
}
