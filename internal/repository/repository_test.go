package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/EsHomes/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

const (
	apartmentID = "6f1c3b1e-1111-4c1a-9d55-000000000001"
	bookingID   = "6f1c3b1e-2222-4c1a-9d55-000000000002"
	userID      = "6f1c3b1e-3333-4c1a-9d55-000000000003"
	txID        = "6f1c3b1e-4444-4c1a-9d55-000000000004"
	txRef       = "ESHOMES-BKG-" + bookingID + "-A1B2C3D4E5"
)

func newMockDB(t *testing.T) (*dbpg.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return &dbpg.DB{Master: sqlDB}, mock
}

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func testBooking() (*domain.Booking, *domain.Transaction) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	id := bookingID
	b := &domain.Booking{
		ID:          bookingID,
		UserID:      userID,
		ApartmentID: apartmentID,
		CheckIn:     day("2025-06-10"),
		CheckOut:    day("2025-06-13"),
		Guests:      2,
		TotalPrice:  decimal.RequireFromString("45000.00"),
		Status:      domain.BookingStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	t := &domain.Transaction{
		ID:        txID,
		UserID:    userID,
		BookingID: &id,
		Amount:    b.TotalPrice,
		TxRef:     txRef,
		Status:    domain.TransactionStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return b, t
}

var bookingCols = []string{
	"id", "user_id", "apartment_id", "check_in", "check_out", "guests", "total_price",
	"status", "special_requests", "cancellation_reason", "created_at", "updated_at",
}

var transactionCols = []string{
	"id", "user_id", "booking_id", "amount", "tx_ref", "gateway_tx_id", "status", "created_at", "updated_at",
}

func bookingRow(status domain.BookingStatus) *sqlmock.Rows {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(bookingCols).AddRow(
		bookingID, userID, apartmentID, day("2025-06-10"), day("2025-06-13"), 2, "45000.00",
		string(status), "", "", now, now,
	)
}

func transactionRow(status domain.TransactionStatus) *sqlmock.Rows {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(transactionCols).AddRow(
		txID, userID, bookingID, "45000.00", txRef, nil, string(status), now, now,
	)
}

func TestBookingRepository_Create(t *testing.T) {
	lockQuery := `SELECT status FROM apartments WHERE id = \$1 FOR UPDATE`
	overlapQuery := `SELECT EXISTS`

	t.Run("inserts booking and transaction", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBookingRepo(db)
		b, tr := testBooking()

		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).WithArgs(apartmentID).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("available"))
		mock.ExpectQuery(overlapQuery).
			WithArgs(apartmentID, sqlmock.AnyArg(), b.CheckOut, b.CheckIn).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec(`INSERT INTO bookings`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO transactions`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Create(t.Context(), b, tr))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("overlapping active booking", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBookingRepo(db)
		b, tr := testBooking()

		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("reserved"))
		mock.ExpectQuery(overlapQuery).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		err := repo.Create(t.Context(), b, tr)
		assert.ErrorIs(t, err, domain.ErrDateConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exclusion constraint race", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBookingRepo(db)
		b, tr := testBooking()

		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("available"))
		mock.ExpectQuery(overlapQuery).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec(`INSERT INTO bookings`).
			WillReturnError(&pq.Error{Code: pgExclusionViolation})
		mock.ExpectRollback()

		err := repo.Create(t.Context(), b, tr)
		assert.ErrorIs(t, err, domain.ErrDateConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("apartment under maintenance", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBookingRepo(db)
		b, tr := testBooking()

		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("maintenance"))
		mock.ExpectRollback()

		err := repo.Create(t.Context(), b, tr)
		assert.ErrorIs(t, err, domain.ErrApartmentUnavailable)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("apartment not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBookingRepo(db)
		b, tr := testBooking()

		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		err := repo.Create(t.Context(), b, tr)
		assert.ErrorIs(t, err, domain.ErrApartmentNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBookingRepository_Cancel(t *testing.T) {
	lockTx := `SELECT id FROM transactions WHERE booking_id = \$1 FOR UPDATE`
	lockBooking := `FROM bookings WHERE id = \$1 FOR UPDATE`

	t.Run("cancels pending booking and declines payment", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBookingRepo(db)
		updated := time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC)

		mock.ExpectBegin()
		mock.ExpectQuery(lockTx).WithArgs(bookingID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(txID))
		mock.ExpectQuery(lockBooking).WithArgs(bookingID).
			WillReturnRows(bookingRow(domain.BookingStatusPending))
		mock.ExpectQuery(`UPDATE bookings`).
			WithArgs(bookingID, "cancelled", "plans changed").
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(updated))
		mock.ExpectExec(`UPDATE transactions`).
			WithArgs(bookingID, "declined", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		b, err := repo.Cancel(t.Context(), bookingID, userID, "plans changed")
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCancelled, b.Status)
		assert.Equal(t, "plans changed", b.CancellationReason)
		assert.Equal(t, updated, b.UpdatedAt)
		assert.True(t, decimal.RequireFromString("45000").Equal(b.TotalPrice))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("other user's booking", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBookingRepo(db)

		mock.ExpectBegin()
		mock.ExpectQuery(lockTx).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(txID))
		mock.ExpectQuery(lockBooking).WillReturnRows(bookingRow(domain.BookingStatusPending))
		mock.ExpectRollback()

		_, err := repo.Cancel(t.Context(), bookingID, "someone-else", "")
		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("confirmed booking cannot be cancelled", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBookingRepo(db)

		mock.ExpectBegin()
		mock.ExpectQuery(lockTx).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(txID))
		mock.ExpectQuery(lockBooking).WillReturnRows(bookingRow(domain.BookingStatusConfirmed))
		mock.ExpectRollback()

		_, err := repo.Cancel(t.Context(), bookingID, userID, "")
		assert.ErrorIs(t, err, domain.ErrBookingNotPending)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("booking not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBookingRepo(db)

		mock.ExpectBegin()
		mock.ExpectQuery(lockTx).WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery(lockBooking).WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		_, err := repo.Cancel(t.Context(), bookingID, userID, "")
		assert.ErrorIs(t, err, domain.ErrBookingNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBookingRepository_CompleteFinished(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)
	today := day("2025-06-13")

	mock.ExpectExec(`UPDATE bookings`).
		WithArgs("confirmed", "completed", today).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`UPDATE apartments a`).
		WithArgs("reserved", "available", "confirmed").
		WillReturnResult(sqlmock.NewResult(0, 1))

	completed, released, err := repo.CompleteFinished(t.Context(), today)
	require.NoError(t, err)
	assert.Equal(t, int64(2), completed)
	assert.Equal(t, int64(1), released)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_Resolve(t *testing.T) {
	lockTx := `FROM transactions WHERE tx_ref = \$1 FOR UPDATE`
	lockBooking := `FROM bookings WHERE id = \$1 FOR UPDATE`
	updated := time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC)

	t.Run("completion confirms booking and reserves apartment", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTransactionRepo(db)

		mock.ExpectBegin()
		mock.ExpectQuery(lockTx).WithArgs(txRef).WillReturnRows(transactionRow(domain.TransactionStatusPending))
		mock.ExpectExec(`^SAVEPOINT resolve_tx`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`UPDATE transactions`).
			WithArgs(txID, "completed", "4567").
			WillReturnRows(sqlmock.NewRows([]string{"gateway_tx_id", "updated_at"}).AddRow("4567", updated))
		mock.ExpectQuery(lockBooking).WithArgs(bookingID).WillReturnRows(bookingRow(domain.BookingStatusPending))
		mock.ExpectQuery(`UPDATE bookings`).
			WithArgs(bookingID, "confirmed", "").
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(updated))
		mock.ExpectExec(`UPDATE apartments`).
			WithArgs(apartmentID, "reserved", "available").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		res, err := repo.Resolve(t.Context(), domain.Resolution{
			TxRef:       txRef,
			Status:      domain.TransactionStatusCompleted,
			GatewayTxID: "4567",
		})
		require.NoError(t, err)
		assert.True(t, res.Applied)
		assert.True(t, res.ApartmentReserved)
		assert.Equal(t, domain.TransactionStatusCompleted, res.Transaction.Status)
		require.NotNil(t, res.Transaction.GatewayTxID)
		assert.Equal(t, "4567", *res.Transaction.GatewayTxID)
		assert.Equal(t, domain.BookingStatusConfirmed, res.Booking.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("decline cancels booking with reason", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTransactionRepo(db)

		mock.ExpectBegin()
		mock.ExpectQuery(lockTx).WillReturnRows(transactionRow(domain.TransactionStatusProcessing))
		mock.ExpectQuery(`UPDATE transactions`).
			WithArgs(txID, "declined", "").
			WillReturnRows(sqlmock.NewRows([]string{"gateway_tx_id", "updated_at"}).AddRow(nil, updated))
		mock.ExpectQuery(lockBooking).WillReturnRows(bookingRow(domain.BookingStatusPending))
		mock.ExpectQuery(`UPDATE bookings`).
			WithArgs(bookingID, "cancelled", "payment failed").
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(updated))
		mock.ExpectCommit()

		res, err := repo.Resolve(t.Context(), domain.Resolution{
			TxRef:  txRef,
			Status: domain.TransactionStatusDeclined,
			Reason: "payment failed",
		})
		require.NoError(t, err)
		assert.True(t, res.Applied)
		assert.False(t, res.ApartmentReserved)
		assert.Equal(t, domain.BookingStatusCancelled, res.Booking.Status)
		assert.Equal(t, "payment failed", res.Booking.CancellationReason)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("late payment for expired booking leaves booking alone", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTransactionRepo(db)

		mock.ExpectBegin()
		mock.ExpectQuery(lockTx).WillReturnRows(transactionRow(domain.TransactionStatusPending))
		mock.ExpectExec(`^SAVEPOINT resolve_tx`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`UPDATE transactions`).
			WillReturnRows(sqlmock.NewRows([]string{"gateway_tx_id", "updated_at"}).AddRow("4567", updated))
		mock.ExpectQuery(lockBooking).WillReturnRows(bookingRow(domain.BookingStatusCancelled))
		mock.ExpectCommit()

		res, err := repo.Resolve(t.Context(), domain.Resolution{
			TxRef:       txRef,
			Status:      domain.TransactionStatusCompleted,
			GatewayTxID: "4567",
		})
		require.NoError(t, err)
		assert.True(t, res.Applied)
		assert.False(t, res.ApartmentReserved)
		assert.Equal(t, domain.BookingStatusCancelled, res.Booking.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("gateway id already used declines", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTransactionRepo(db)

		mock.ExpectBegin()
		mock.ExpectQuery(lockTx).WillReturnRows(transactionRow(domain.TransactionStatusPending))
		mock.ExpectExec(`^SAVEPOINT resolve_tx`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`UPDATE transactions`).
			WithArgs(txID, "completed", "4567").
			WillReturnError(&pq.Error{Code: pgUniqueViolation})
		mock.ExpectExec(`^ROLLBACK TO SAVEPOINT resolve_tx`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`UPDATE transactions`).
			WithArgs(txID, "declined", "").
			WillReturnRows(sqlmock.NewRows([]string{"gateway_tx_id", "updated_at"}).AddRow(nil, updated))
		mock.ExpectQuery(lockBooking).WillReturnRows(bookingRow(domain.BookingStatusPending))
		mock.ExpectQuery(`UPDATE bookings`).
			WithArgs(bookingID, "cancelled", "gateway transaction 4567 already settled another payment").
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(updated))
		mock.ExpectCommit()

		res, err := repo.Resolve(t.Context(), domain.Resolution{
			TxRef:       txRef,
			Status:      domain.TransactionStatusCompleted,
			GatewayTxID: "4567",
		})
		require.NoError(t, err)
		assert.True(t, res.Applied)
		assert.False(t, res.ApartmentReserved)
		assert.Equal(t, domain.TransactionStatusDeclined, res.Transaction.Status)
		assert.Nil(t, res.Transaction.GatewayTxID)
		assert.Equal(t, domain.BookingStatusCancelled, res.Booking.Status)
		assert.Equal(t, "gateway transaction 4567 already settled another payment", res.Reason)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("final transaction is not touched", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTransactionRepo(db)

		mock.ExpectBegin()
		mock.ExpectQuery(lockTx).WillReturnRows(transactionRow(domain.TransactionStatusCompleted))
		mock.ExpectRollback()

		res, err := repo.Resolve(t.Context(), domain.Resolution{
			TxRef:  txRef,
			Status: domain.TransactionStatusDeclined,
			Reason: "payment cancelled",
		})
		require.NoError(t, err)
		assert.False(t, res.Applied)
		assert.Equal(t, domain.TransactionStatusCompleted, res.Transaction.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown tx_ref", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTransactionRepo(db)

		mock.ExpectBegin()
		mock.ExpectQuery(lockTx).WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		_, err := repo.Resolve(t.Context(), domain.Resolution{TxRef: "nope", Status: domain.TransactionStatusCompleted})
		assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("non-final target status", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTransactionRepo(db)

		_, err := repo.Resolve(t.Context(), domain.Resolution{TxRef: txRef, Status: domain.TransactionStatusProcessing})
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTransactionRepository_GetByTxRef(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepo(db)

	mock.ExpectQuery(`FROM transactions WHERE tx_ref = \$1`).WithArgs(txRef).
		WillReturnRows(transactionRow(domain.TransactionStatusPending))

	tr, err := repo.GetByTxRef(t.Context(), txRef)
	require.NoError(t, err)
	assert.Equal(t, txID, tr.ID)
	require.NotNil(t, tr.BookingID)
	assert.Equal(t, bookingID, *tr.BookingID)
	assert.Nil(t, tr.GatewayTxID)
	assert.True(t, decimal.RequireFromString("45000").Equal(tr.Amount))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApartmentRepository_SetStatus(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewApartmentRepo(db)

		mock.ExpectExec(`UPDATE apartments SET status`).
			WithArgs(apartmentID, "maintenance").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.SetStatus(t.Context(), apartmentID, domain.ApartmentStatusMaintenance))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing apartment", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewApartmentRepo(db)

		mock.ExpectExec(`UPDATE apartments SET status`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SetStatus(t.Context(), apartmentID, domain.ApartmentStatusAvailable)
		assert.ErrorIs(t, err, domain.ErrApartmentNotFound)
	})
}

func TestApartmentRepository_BookedRanges(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewApartmentRepo(db)
	from, to := day("2025-06-01"), day("2025-07-01")

	mock.ExpectQuery(`SELECT check_in, check_out`).
		WithArgs(apartmentID, sqlmock.AnyArg(), from, to).
		WillReturnRows(sqlmock.NewRows([]string{"check_in", "check_out"}).
			AddRow(day("2025-06-10"), day("2025-06-13")).
			AddRow(day("2025-06-20"), day("2025-06-22")))

	ranges, err := repo.BookedRanges(t.Context(), apartmentID, from, to)
	require.NoError(t, err)
	require.Len(t, ranges, 2)
	assert.Equal(t, day("2025-06-10"), ranges[0].CheckIn)
	assert.Equal(t, day("2025-06-22"), ranges[1].CheckOut)
	assert.NoError(t, mock.ExpectationsWereMet())
}
