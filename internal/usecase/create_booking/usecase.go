package create_booking

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/KDR-BookingService/internal/domain"
)

// maxIDAttempts число попыток сгенерировать свободный booking_id,
// прежде чем сдаться и вернуть ErrIDConflict
const maxIDAttempts = 3

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	idGenerator  IDGenerator
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	idGenerator IDGenerator,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		idGenerator:  idGenerator,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Сумма фиксируется по прайс-листу на момент создания и в дальнейшем
// не пересчитывается. Вся запись выполняется в одной транзакции:
// либо бронирование сохранено целиком, либо не сохранено ничего.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: package=%s, persons=%d, date=%s, email=%s",
		req.Package, req.Persons, req.Date, req.Email)

	// 1. Валидация заполненности полей
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Парсим дату поездки
	date, err := parseDate(req.Date)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid date %q", req.Date)
		return nil, err
	}

	// 3. Считаем сумму по прайс-листу.
	// Неизвестный тур тарифицируется по цене Sacred Darshan — это
	// контрактное поведение каталога, не ошибка.
	amount := domain.CalculatePackageAmount(req.Package, req.Persons)

	now := uc.timeProvider.Now()

	var result *domain.Booking

	// 4. Генерация идентификатора и запись в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		bookingID, err := uc.allocateBookingID(txCtx, now)
		if err != nil {
			return err
		}

		booking := &domain.Booking{
			Name:            req.Name,
			Email:           req.Email,
			Phone:           req.Phone,
			Package:         req.Package,
			Persons:         req.Persons,
			Date:            date,
			Status:          domain.StatusPending,
			BookingID:       bookingID,
			Amount:          amount,
			SpecialRequests: req.SpecialRequests,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, booking_id=%s, amount=%.2f",
		result.ID, result.BookingID, result.Amount)

	return &Response{
		ID:              result.ID,
		Name:            result.Name,
		Email:           result.Email,
		Phone:           result.Phone,
		Package:         result.Package,
		Persons:         result.Persons,
		Date:            result.Date,
		Status:          string(result.Status),
		BookingID:       result.BookingID,
		Amount:          result.Amount,
		SpecialRequests: result.SpecialRequests,
		CreatedAt:       result.CreatedAt,
	}, nil
}

// allocateBookingID генерирует внешний идентификатор и перепроверяет его
// уникальность по хранилищу. Формат идентификатора не гарантирует
// уникальность, поэтому при коллизии генерируем заново, до maxIDAttempts раз.
func (uc *UseCase) allocateBookingID(ctx context.Context, now time.Time) (string, error) {
	for attempt := 1; attempt <= maxIDAttempts; attempt++ {
		bookingID := uc.idGenerator.Generate(now)

		exists, err := uc.bookingRepo.ExistsByBookingID(ctx, bookingID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check booking id uniqueness: %v", err)
			return "", fmt.Errorf("%w: failed to check booking id uniqueness: %v", ErrInternal, err)
		}

		if !exists {
			return bookingID, nil
		}

		uc.logger.Warn("CreateBooking: booking id collision %s, attempt %d/%d",
			bookingID, attempt, maxIDAttempts)
	}

	return "", ErrIDConflict
}
