package domain

import "time"

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCanceled  BookingStatus = "CANCELED"
)

// Booking represents a travel package reservation in the system
type Booking struct {
	ID      int64
	Name    string
	Email   string
	Phone   string
	Package string
	Persons int
	Date    time.Time

	Status    BookingStatus
	BookingID string  // Внешний идентификатор вида KDR + HHMM + 8 цифр
	Amount    float64 // Снапшот цены на момент создания, не пересчитывается

	SpecialRequests *string

	CreatedAt time.Time
}

// IsActive returns true if the booking has not been cancelled
func (b *Booking) IsActive() bool {
	return b.Status != StatusCanceled
}

// IsConfirmed returns true if the booking has been confirmed
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// IsValidStatus returns true if s belongs to the closed set of booking statuses
func IsValidStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCanceled:
		return true
	default:
		return false
	}
}

// ValidStatuses список допустимых статусов бронирования
var ValidStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCanceled,
}
