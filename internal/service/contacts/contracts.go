package contacts

import (
	"context"

	"github.com/m04kA/KDR-BookingService/internal/domain"
)

// ContactRepository интерфейс репозитория заявок обратной связи
type ContactRepository interface {
	Create(ctx context.Context, contact *domain.Contact) (*domain.Contact, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
