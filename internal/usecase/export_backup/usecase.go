package export_backup

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	bookingsModels "github.com/m04kA/KDR-BookingService/internal/service/bookings/models"
	contactsModels "github.com/m04kA/KDR-BookingService/internal/service/contacts/models"
)

// backupIDBytes длина случайного идентификатора выгрузки в байтах
// (16 hex символов)
const backupIDBytes = 8

// UseCase use case полной выгрузки данных
type UseCase struct {
	bookingRepo  BookingRepository
	contactRepo  ContactRepository
	sink         Sink
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	contactRepo ContactRepository,
	sink Sink,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		contactRepo:  contactRepo,
		sink:         sink,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute читает все бронирования и заявки, собирает снапшот с UTC-меткой
// времени и случайным идентификатором выгрузки и передает его приемнику
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	uc.logger.Info("ExportBackup: starting full data export")

	bookings, err := uc.bookingRepo.List(ctx)
	if err != nil {
		uc.logger.Error("ExportBackup: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	contacts, err := uc.contactRepo.List(ctx)
	if err != nil {
		uc.logger.Error("ExportBackup: failed to list contacts: %v", err)
		return nil, fmt.Errorf("%w: failed to list contacts: %v", ErrInternal, err)
	}

	backupID, err := generateBackupID()
	if err != nil {
		uc.logger.Error("ExportBackup: failed to generate backup id: %v", err)
		return nil, fmt.Errorf("%w: failed to generate backup id: %v", ErrInternal, err)
	}

	snapshot := &Snapshot{
		Bookings:  bookingsModels.FromDomainBookingList(bookings),
		Contacts:  contactsModels.FromDomainContactList(contacts),
		Timestamp: uc.timeProvider.Now().UTC().Format(time.RFC3339),
		BackupID:  backupID,
	}

	filename, err := uc.sink.Write(ctx, snapshot)
	if err != nil {
		uc.logger.Error("ExportBackup: sink write failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrSinkWrite, err)
	}

	uc.logger.Info("ExportBackup: snapshot written to %s (bookings=%d, contacts=%d, backup_id=%s)",
		filename, len(bookings), len(contacts), backupID)

	return &Response{
		Filename:     filename,
		BookingCount: len(bookings),
		ContactCount: len(contacts),
	}, nil
}

// generateBackupID возвращает 16 hex символов из криптографического
// источника случайности
func generateBackupID() (string, error) {
	buf := make([]byte, backupIDBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
