package booking

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/KDR-BookingService/internal/domain"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func bookingRows(bookings ...*domain.Booking) *sqlmock.Rows {
	rows := sqlmock.NewRows(bookingColumns)
	for _, b := range bookings {
		// special_requests nullable, передаем значение или NULL
		var specialRequests interface{}
		if b.SpecialRequests != nil {
			specialRequests = *b.SpecialRequests
		}
		rows.AddRow(b.ID, b.Name, b.Email, b.Phone, b.Package, b.Persons,
			b.Date, b.Status, b.BookingID, b.Amount, specialRequests, b.CreatedAt)
	}
	return rows
}

func sampleBooking(id int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		Name:      "Asha Sharma",
		Email:     "asha@example.com",
		Phone:     "+919876543210",
		Package:   domain.PackageDivineJourney,
		Persons:   2,
		Date:      time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
		Status:    status,
		BookingID: "KDR143712345678",
		Amount:    65000,
		CreatedAt: time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newMockRepo(t)

	createdAt := time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC)
	booking := sampleBooking(0, domain.StatusPending)
	booking.CreatedAt = time.Time{}

	mock.ExpectQuery(`INSERT INTO bookings`).
		WithArgs(booking.Name, booking.Email, booking.Phone, booking.Package,
			booking.Persons, booking.Date, booking.Status, booking.BookingID,
			booking.Amount, booking.SpecialRequests).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), createdAt))

	created, err := repo.Create(context.Background(), booking)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, createdAt, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_DuplicateBookingID(t *testing.T) {
	repo, mock := newMockRepo(t)

	booking := sampleBooking(0, domain.StatusPending)

	mock.ExpectQuery(`INSERT INTO bookings`).
		WillReturnError(&pq.Error{Code: "23505"})

	created, err := repo.Create(context.Background(), booking)

	assert.Nil(t, created)
	assert.ErrorIs(t, err, ErrDuplicateBookingID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	expected := sampleBooking(1, domain.StatusConfirmed)

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(bookingRows(expected))

	booking, err := repo.GetByID(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, expected.BookingID, booking.BookingID)
	assert.Equal(t, domain.StatusConfirmed, booking.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnRows(bookingRows())

	booking, err := repo.GetByID(context.Background(), 42)

	assert.Nil(t, booking)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_OrderedByCreatedAtDesc(t *testing.T) {
	repo, mock := newMockRepo(t)

	newer := sampleBooking(2, domain.StatusPending)
	older := sampleBooking(1, domain.StatusConfirmed)

	mock.ExpectQuery(`SELECT .+ FROM bookings ORDER BY created_at DESC`).
		WillReturnRows(bookingRows(newer, older))

	bookings, err := repo.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, bookings, 2)
	assert.Equal(t, int64(2), bookings[0].ID)
	assert.Equal(t, int64(1), bookings[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_Empty(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM bookings ORDER BY created_at DESC`).
		WillReturnRows(bookingRows())

	bookings, err := repo.List(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ExistsByBookingID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT 1 FROM bookings WHERE booking_id = \$1 LIMIT 1`).
		WithArgs("KDR143712345678").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	exists, err := repo.ExistsByBookingID(context.Background(), "KDR143712345678")

	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ExistsByBookingID_Free(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT 1 FROM bookings WHERE booking_id = \$1 LIMIT 1`).
		WithArgs("KDR143700000000").
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	exists, err := repo.ExistsByBookingID(context.Background(), "KDR143700000000")

	assert.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE bookings SET status = \$1 WHERE id = \$2`).
		WithArgs(domain.StatusConfirmed, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), 1, domain.StatusConfirmed)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE bookings SET status = \$1 WHERE id = \$2`).
		WithArgs(domain.StatusCanceled, int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 42, domain.StatusCanceled)

	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountAll(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(7)))

	count, err := repo.CountAll(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(7), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountByStatus(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings WHERE status = \$1`).
		WithArgs(domain.StatusConfirmed).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))

	count, err := repo.CountByStatus(context.Background(), domain.StatusConfirmed)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountUpcoming(t *testing.T) {
	repo, mock := newMockRepo(t)

	today := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)

	// Предстоящие: дата >= сегодня и статус не CANCELED
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings WHERE date >= \$1 AND status <> \$2`).
		WithArgs(today, domain.StatusCanceled).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(4)))

	count, err := repo.CountUpcoming(context.Background(), today)

	assert.NoError(t, err)
	assert.Equal(t, int64(4), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SumAmountByStatus(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM bookings WHERE status = \$1`).
		WithArgs(domain.StatusConfirmed).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(float64(250000)))

	sum, err := repo.SumAmountByStatus(context.Background(), domain.StatusConfirmed)

	assert.NoError(t, err)
	assert.Equal(t, float64(250000), sum)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SumAmountByStatus_Empty(t *testing.T) {
	repo, mock := newMockRepo(t)

	// COALESCE гарантирует 0 при отсутствии подтвержденных бронирований
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM bookings WHERE status = \$1`).
		WithArgs(domain.StatusConfirmed).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(float64(0)))

	sum, err := repo.SumAmountByStatus(context.Background(), domain.StatusConfirmed)

	assert.NoError(t, err)
	assert.Equal(t, float64(0), sum)
	assert.NoError(t, mock.ExpectationsWereMet())
}
