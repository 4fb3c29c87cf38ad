package contacts

import "errors"

var (
	// ErrMissingField возвращается, когда в заявке не заполнено обязательное поле
	ErrMissingField = errors.New("contacts: missing required field")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("contacts service: internal error")
)

// MissingFieldError ошибка валидации с именем первого незаполненного поля
type MissingFieldError struct {
	Field string
}

// Error реализует интерфейс error
func (e *MissingFieldError) Error() string {
	return "contacts: missing required field: " + e.Field
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrMissingField)
func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}
