package export_backup

import (
	"context"
	"time"

	"github.com/m04kA/KDR-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context) ([]*domain.Booking, error)
}

// ContactRepository интерфейс репозитория заявок обратной связи
type ContactRepository interface {
	List(ctx context.Context) ([]*domain.Contact, error)
}

// Sink приемник готового снапшота. Реализация решает, куда его записать
// (локальный диск, объектное хранилище), и возвращает идентификатор
// расположения — например, имя файла.
type Sink interface {
	Write(ctx context.Context, snapshot *Snapshot) (string, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
