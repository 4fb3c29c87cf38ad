package get_stats

import (
	"context"
	"time"

	"github.com/m04kA/KDR-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований (агрегирующие запросы)
type BookingRepository interface {
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.BookingStatus) (int64, error)
	CountUpcoming(ctx context.Context, from time.Time) (int64, error)
	SumAmountByStatus(ctx context.Context, status domain.BookingStatus) (float64, error)
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
