package get_stats

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/KDR-BookingService/internal/domain"
)

// UseCase use case расчета статистики для админ-панели
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute собирает агрегированную статистику по бронированиям:
// счетчики по статусам, предстоящие поездки и выручку по подтвержденным
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	uc.logger.Info("GetStats: computing booking statistics")

	total, err := uc.bookingRepo.CountAll(ctx)
	if err != nil {
		uc.logger.Error("GetStats: failed to count bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to count bookings: %v", ErrInternal, err)
	}

	confirmed, err := uc.bookingRepo.CountByStatus(ctx, domain.StatusConfirmed)
	if err != nil {
		uc.logger.Error("GetStats: failed to count confirmed bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to count confirmed bookings: %v", ErrInternal, err)
	}

	pending, err := uc.bookingRepo.CountByStatus(ctx, domain.StatusPending)
	if err != nil {
		uc.logger.Error("GetStats: failed to count pending bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to count pending bookings: %v", ErrInternal, err)
	}

	// Предстоящие: дата не раньше сегодняшней и бронирование не отменено
	now := uc.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	upcoming, err := uc.bookingRepo.CountUpcoming(ctx, today)
	if err != nil {
		uc.logger.Error("GetStats: failed to count upcoming bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to count upcoming bookings: %v", ErrInternal, err)
	}

	revenue, err := uc.bookingRepo.SumAmountByStatus(ctx, domain.StatusConfirmed)
	if err != nil {
		uc.logger.Error("GetStats: failed to sum revenue: %v", err)
		return nil, fmt.Errorf("%w: failed to sum revenue: %v", ErrInternal, err)
	}

	uc.logger.Info("GetStats: total=%d, confirmed=%d, pending=%d, upcoming=%d, revenue=%.2f",
		total, confirmed, pending, upcoming, revenue)

	return &Response{
		TotalBookings:     total,
		ConfirmedBookings: confirmed,
		PendingBookings:   pending,
		UpcomingBookings:  upcoming,
		TotalRevenue:      revenue,
		RevenueFormatted:  FormatRevenue(revenue),
	}, nil
}
