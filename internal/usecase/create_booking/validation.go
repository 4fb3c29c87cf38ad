package create_booking

import (
	"time"

	"github.com/m04kA/KDR-BookingService/internal/domain"
)

// validateRequest проверяет заполненность обязательных полей.
// Поля проверяются в фиксированном порядке, ошибка называет первое
// незаполненное. persons обязан быть положительным целым.
func validateRequest(req *Request) error {
	if req.Name == "" {
		return &MissingFieldError{Field: "name"}
	}
	if req.Email == "" {
		return &MissingFieldError{Field: "email"}
	}
	if req.Phone == "" {
		return &MissingFieldError{Field: "phone"}
	}
	if req.Package == "" {
		return &MissingFieldError{Field: "package"}
	}
	if req.Date == "" {
		return &MissingFieldError{Field: "date"}
	}
	if req.Persons <= 0 {
		return &MissingFieldError{Field: "persons"}
	}

	return nil
}

// parseDate парсит дату поездки из строки формата YYYY-MM-DD
func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}
