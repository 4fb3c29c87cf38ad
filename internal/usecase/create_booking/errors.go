package create_booking

import "errors"

var (
	// ErrMissingField возвращается, когда не заполнено обязательное поле
	ErrMissingField = errors.New("create_booking: missing required field")

	// ErrInvalidDate возвращается, когда дата не соответствует формату YYYY-MM-DD
	ErrInvalidDate = errors.New("create_booking: invalid date format")

	// ErrIDConflict возвращается, когда не удалось выделить уникальный
	// идентификатор бронирования за отведённое число попыток
	ErrIDConflict = errors.New("create_booking: failed to allocate unique booking id")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// MissingFieldError ошибка валидации с именем первого незаполненного поля
type MissingFieldError struct {
	Field string
}

// Error реализует интерфейс error
func (e *MissingFieldError) Error() string {
	return "create_booking: missing required field: " + e.Field
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrMissingField)
func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}
