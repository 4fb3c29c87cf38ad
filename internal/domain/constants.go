package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Booking ID format constants
const (
	BookingIDPrefix = "KDR"
	BookingIDLength = 15 // префикс (3) + HHMM (4) + 8 случайных цифр
)

// Revenue formatting constants.
// Выручка от одного лакха и выше показывается в лакхах с одним знаком
// после запятой, меньше — в рупиях с двумя знаками.
const (
	LakhThreshold = 100000
	LakhDivisor   = 100000
)
