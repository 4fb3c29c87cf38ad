package get_stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/KDR-BookingService/internal/domain"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) CountByStatus(ctx context.Context, status domain.BookingStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) CountUpcoming(ctx context.Context, from time.Time) (int64, error) {
	args := m.Called(ctx, from)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) SumAmountByStatus(ctx context.Context, status domain.BookingStatus) (float64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(float64), args.Error(1)
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

func TestExecute_Success(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	uc := NewUseCase(mockRepo, noopLogger{})

	// Сегодняшняя дата усекается до полуночи локальной таймзоны
	now := time.Date(2026, 4, 15, 18, 42, 11, 0, time.UTC)
	today := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	uc.timeProvider = &fixedTimeProvider{now: now}

	ctx := context.Background()

	mockRepo.On("CountAll", ctx).Return(int64(10), nil).Once()
	mockRepo.On("CountByStatus", ctx, domain.StatusConfirmed).Return(int64(6), nil).Once()
	mockRepo.On("CountByStatus", ctx, domain.StatusPending).Return(int64(3), nil).Once()
	mockRepo.On("CountUpcoming", ctx, today).Return(int64(4), nil).Once()
	mockRepo.On("SumAmountByStatus", ctx, domain.StatusConfirmed).Return(float64(250000), nil).Once()

	result, err := uc.Execute(ctx)

	assert.NoError(t, err)
	assert.Equal(t, int64(10), result.TotalBookings)
	assert.Equal(t, int64(6), result.ConfirmedBookings)
	assert.Equal(t, int64(3), result.PendingBookings)
	assert.Equal(t, int64(4), result.UpcomingBookings)
	assert.Equal(t, float64(250000), result.TotalRevenue)
	assert.Equal(t, "₹2.5L", result.RevenueFormatted)

	mockRepo.AssertExpectations(t)
}

func TestExecute_EmptyDatabase(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	uc := NewUseCase(mockRepo, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 4, 15, 8, 0, 0, 0, time.UTC)}

	ctx := context.Background()

	mockRepo.On("CountAll", ctx).Return(int64(0), nil).Once()
	mockRepo.On("CountByStatus", ctx, domain.StatusConfirmed).Return(int64(0), nil).Once()
	mockRepo.On("CountByStatus", ctx, domain.StatusPending).Return(int64(0), nil).Once()
	mockRepo.On("CountUpcoming", ctx, mock.AnythingOfType("time.Time")).Return(int64(0), nil).Once()
	mockRepo.On("SumAmountByStatus", ctx, domain.StatusConfirmed).Return(float64(0), nil).Once()

	result, err := uc.Execute(ctx)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), result.TotalBookings)
	// Пустая база даёт нулевую выручку, а не ошибку
	assert.Equal(t, float64(0), result.TotalRevenue)
	assert.Equal(t, "₹0.00", result.RevenueFormatted)

	mockRepo.AssertExpectations(t)
}

func TestExecute_CountError(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	uc := NewUseCase(mockRepo, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Now()}

	ctx := context.Background()

	mockRepo.On("CountAll", ctx).Return(int64(0), errors.New("connection refused")).Once()

	result, err := uc.Execute(ctx)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInternal)

	mockRepo.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "CountByStatus")
}

func TestExecute_RevenueError(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	uc := NewUseCase(mockRepo, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Now()}

	ctx := context.Background()

	mockRepo.On("CountAll", ctx).Return(int64(5), nil).Once()
	mockRepo.On("CountByStatus", ctx, domain.StatusConfirmed).Return(int64(2), nil).Once()
	mockRepo.On("CountByStatus", ctx, domain.StatusPending).Return(int64(3), nil).Once()
	mockRepo.On("CountUpcoming", ctx, mock.AnythingOfType("time.Time")).Return(int64(1), nil).Once()
	mockRepo.On("SumAmountByStatus", ctx, domain.StatusConfirmed).
		Return(float64(0), errors.New("connection refused")).Once()

	result, err := uc.Execute(ctx)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInternal)

	mockRepo.AssertExpectations(t)
}
