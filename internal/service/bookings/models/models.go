package models

import (
	"errors"
	"time"

	"github.com/m04kA/KDR-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// BookingResponse ответ с данными бронирования.
// Формат полей повторяет контракт админ-панели: snake_case,
// date в виде YYYY-MM-DD, created_at в RFC3339.
type BookingResponse struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Package         string   `json:"package"`
	Persons         int      `json:"persons"`
	Date            *string  `json:"date"`
	Status          string   `json:"status"`
	BookingID       string   `json:"booking_id"`
	Amount          float64  `json:"amount"`
	CreatedAt       *string  `json:"created_at"`
	SpecialRequests *string  `json:"special_requests"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:              b.ID,
		Name:            b.Name,
		Email:           b.Email,
		Phone:           b.Phone,
		Package:         b.Package,
		Persons:         b.Persons,
		Status:          string(b.Status),
		BookingID:       b.BookingID,
		Amount:          b.Amount,
		SpecialRequests: b.SpecialRequests,
	}

	// Незаполненные даты сериализуются как null
	if !b.Date.IsZero() {
		dateStr := b.Date.Format(domain.DateFormat)
		resp.Date = &dateStr
	}
	if !b.CreatedAt.IsZero() {
		createdStr := b.CreatedAt.Format(time.RFC3339)
		resp.CreatedAt = &createdStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) []BookingResponse {
	result := make([]BookingResponse, 0, len(bookings))

	for _, booking := range bookings {
		if resp := FromDomainBooking(booking); resp != nil {
			result = append(result, *resp)
		}
	}

	return result
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	if !domain.IsValidStatus(s) {
		return "", ErrInvalidStatus
	}

	return s, nil
}
