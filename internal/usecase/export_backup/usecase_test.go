package export_backup

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/KDR-BookingService/internal/domain"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) List(ctx context.Context) ([]*domain.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Contact), args.Error(1)
}

// MockSink запоминает переданный снапшот
type MockSink struct {
	mock.Mock
	snapshot *Snapshot
}

func (m *MockSink) Write(ctx context.Context, snapshot *Snapshot) (string, error) {
	m.snapshot = snapshot
	args := m.Called(ctx, snapshot)
	return args.String(0), args.Error(1)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

var backupIDPattern = regexp.MustCompile(`^[0-9a-f]{16}$`)

func TestExecute_Success(t *testing.T) {
	mockBookings := &MockBookingRepository{}
	mockContacts := &MockContactRepository{}
	mockSink := &MockSink{}

	uc := NewUseCase(mockBookings, mockContacts, mockSink, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 4, 15, 12, 30, 45, 0, time.UTC)}

	ctx := context.Background()

	bookings := []*domain.Booking{
		{
			ID:        1,
			Name:      "Asha Sharma",
			Email:     "asha@example.com",
			Phone:     "+919876543210",
			Package:   domain.PackageDivineJourney,
			Persons:   2,
			Date:      time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
			Status:    domain.StatusConfirmed,
			BookingID: "KDR143712345678",
			Amount:    65000,
			CreatedAt: time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC),
		},
	}
	contacts := []*domain.Contact{
		{
			ID:      1,
			Name:    "Ravi Kumar",
			Email:   "ravi@example.com",
			Subject: "Group booking enquiry",
			Message: "Do you offer discounts?",
		},
	}

	mockBookings.On("List", ctx).Return(bookings, nil).Once()
	mockContacts.On("List", ctx).Return(contacts, nil).Once()
	mockSink.On("Write", ctx, mock.AnythingOfType("*export_backup.Snapshot")).
		Return("backup_20260415_123045.json", nil).Once()

	result, err := uc.Execute(ctx)

	assert.NoError(t, err)
	assert.Equal(t, "backup_20260415_123045.json", result.Filename)
	assert.Equal(t, 1, result.BookingCount)
	assert.Equal(t, 1, result.ContactCount)

	// Снапшот содержит все записи, UTC-метку и случайный идентификатор
	snapshot := mockSink.snapshot
	assert.Len(t, snapshot.Bookings, 1)
	assert.Len(t, snapshot.Contacts, 1)
	assert.Equal(t, "KDR143712345678", snapshot.Bookings[0].BookingID)
	assert.Equal(t, "2026-04-15T12:30:45Z", snapshot.Timestamp)
	assert.Regexp(t, backupIDPattern, snapshot.BackupID)

	mockBookings.AssertExpectations(t)
	mockContacts.AssertExpectations(t)
	mockSink.AssertExpectations(t)
}

func TestExecute_EmptyDatabase(t *testing.T) {
	mockBookings := &MockBookingRepository{}
	mockContacts := &MockContactRepository{}
	mockSink := &MockSink{}

	uc := NewUseCase(mockBookings, mockContacts, mockSink, noopLogger{})

	ctx := context.Background()

	mockBookings.On("List", ctx).Return([]*domain.Booking{}, nil).Once()
	mockContacts.On("List", ctx).Return([]*domain.Contact{}, nil).Once()
	mockSink.On("Write", ctx, mock.Anything).Return("backup_20260415_123045.json", nil).Once()

	result, err := uc.Execute(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 0, result.BookingCount)
	assert.Equal(t, 0, result.ContactCount)

	// Пустые списки сериализуются как [], не null
	assert.NotNil(t, mockSink.snapshot.Bookings)
	assert.NotNil(t, mockSink.snapshot.Contacts)
}

func TestExecute_BookingListError(t *testing.T) {
	mockBookings := &MockBookingRepository{}
	mockContacts := &MockContactRepository{}
	mockSink := &MockSink{}

	uc := NewUseCase(mockBookings, mockContacts, mockSink, noopLogger{})

	ctx := context.Background()
	mockBookings.On("List", ctx).Return(nil, errors.New("connection refused")).Once()

	result, err := uc.Execute(ctx)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInternal)

	mockContacts.AssertNotCalled(t, "List")
	mockSink.AssertNotCalled(t, "Write")
}

func TestExecute_SinkError(t *testing.T) {
	mockBookings := &MockBookingRepository{}
	mockContacts := &MockContactRepository{}
	mockSink := &MockSink{}

	uc := NewUseCase(mockBookings, mockContacts, mockSink, noopLogger{})

	ctx := context.Background()

	mockBookings.On("List", ctx).Return([]*domain.Booking{}, nil).Once()
	mockContacts.On("List", ctx).Return([]*domain.Contact{}, nil).Once()
	mockSink.On("Write", ctx, mock.Anything).Return("", errors.New("disk full")).Once()

	result, err := uc.Execute(ctx)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrSinkWrite)
}

func TestExecute_BackupIDsDiffer(t *testing.T) {
	ids := map[string]bool{}

	for i := 0; i < 10; i++ {
		id, err := generateBackupID()
		assert.NoError(t, err)
		assert.Regexp(t, backupIDPattern, id)
		ids[id] = true
	}

	assert.Len(t, ids, 10)
}
