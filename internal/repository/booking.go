package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/EsHomes/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

const bookingColumns = `id, user_id, apartment_id, check_in, check_out, guests, total_price,
	status, special_requests, cancellation_reason, created_at, updated_at`

const expiredReason = "payment not received in time"

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts the booking and its payment transaction atomically. The
// apartment row is locked for the duration so that concurrent requests for the
// same apartment run the overlap check one at a time.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking, t *domain.Transaction) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var status domain.ApartmentStatus
	lockQuery := `SELECT status FROM apartments WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, b.ApartmentID).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrApartmentNotFound
		}
		return fmt.Errorf("lock apartment: %w", err)
	}
	if !status.Bookable() {
		return domain.ErrApartmentUnavailable
	}

	var conflict bool
	overlapQuery := `SELECT EXISTS (
				  SELECT 1 FROM bookings
				  WHERE apartment_id = $1
				    AND status = ANY($2)
				    AND check_in < $3
				    AND check_out > $4)`
	if err = tx.QueryRowContext(
		ctx, overlapQuery, b.ApartmentID,
		pq.Array(domain.ActiveStatuses), b.CheckOut, b.CheckIn,
	).Scan(&conflict); err != nil {
		return fmt.Errorf("check overlap: %w", err)
	}
	if conflict {
		return domain.ErrDateConflict
	}

	bookingQuery := `INSERT INTO bookings (id, user_id, apartment_id, check_in, check_out, guests,
				  total_price, status, special_requests, cancellation_reason, created_at, updated_at)
				  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	if _, err = tx.ExecContext(
		ctx, bookingQuery, b.ID, b.UserID, b.ApartmentID, b.CheckIn, b.CheckOut,
		b.Guests, b.TotalPrice, b.Status, b.SpecialRequests, b.CancellationReason,
		b.CreatedAt, b.UpdatedAt,
	); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgExclusionViolation {
			return domain.ErrDateConflict
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	txQuery := `INSERT INTO transactions (id, user_id, booking_id, amount, tx_ref, status, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err = tx.ExecContext(
		ctx, txQuery, t.ID, t.UserID, t.BookingID, t.Amount,
		t.TxRef, t.Status, t.CreatedAt, t.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings
              WHERE user_id = $1
              ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

// Cancel cancels a pending booking on behalf of its owner and declines the
// open transaction. Locks are taken transaction-first, booking-second, the
// same order reconciliation uses.
func (r *BookingRepository) Cancel(ctx context.Context, bookingID, userID, reason string) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lockTx := `SELECT id FROM transactions WHERE booking_id = $1 FOR UPDATE`
	var txID string
	if err = tx.QueryRowContext(ctx, lockTx, bookingID).Scan(&txID); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("lock transaction: %w", err)
	}

	lockBooking := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`
	b, err := scanBooking(tx.QueryRowContext(ctx, lockBooking, bookingID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("lock booking: %w", err)
	}

	if b.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if b.Status != domain.BookingStatusPending {
		return nil, domain.ErrBookingNotPending
	}

	updBooking := `UPDATE bookings
				   SET status = $2, cancellation_reason = $3, updated_at = NOW()
				   WHERE id = $1
				   RETURNING updated_at`
	if err = tx.QueryRowContext(ctx, updBooking, bookingID, domain.BookingStatusCancelled, reason).
		Scan(&b.UpdatedAt); err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}
	b.Status = domain.BookingStatusCancelled
	b.CancellationReason = reason

	updTx := `UPDATE transactions
			  SET status = $2, updated_at = NOW()
			  WHERE booking_id = $1 AND status = ANY($3)`
	if _, err = tx.ExecContext(
		ctx, updTx, bookingID, domain.TransactionStatusDeclined,
		pq.Array(domain.OpenTransactionStatuses),
	); err != nil {
		return nil, fmt.Errorf("decline transaction: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return b, nil
}

// CancelExpired releases pending bookings created before cutoff whose payment
// is still open, declining their transactions in the same statement.
func (r *BookingRepository) CancelExpired(ctx context.Context, cutoff time.Time) ([]*domain.Booking, error) {
	query := `
        WITH expired AS (
            UPDATE transactions t
            SET status = $3, updated_at = NOW()
            FROM bookings b
            WHERE t.booking_id = b.id
              AND b.status = $1
              AND b.created_at < $5
              AND t.status = ANY($2)
            RETURNING t.booking_id
        )
        UPDATE bookings b
        SET status = $4, cancellation_reason = $6, updated_at = NOW()
        FROM expired e
        WHERE b.id = e.booking_id
        RETURNING b.id, b.user_id, b.apartment_id, b.check_in, b.check_out, b.guests,
                  b.total_price, b.status, b.special_requests, b.cancellation_reason,
                  b.created_at, b.updated_at`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusPending, pq.Array(domain.OpenTransactionStatuses),
		domain.TransactionStatusDeclined, domain.BookingStatusCancelled,
		cutoff, expiredReason,
	)
	if err != nil {
		return nil, fmt.Errorf("cancel expired: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

// CompleteFinished marks confirmed stays that ended on or before today as
// completed and returns reserved apartments without confirmed stays to
// available.
func (r *BookingRepository) CompleteFinished(ctx context.Context, today time.Time) (completed, released int64, err error) {
	completeQuery := `UPDATE bookings
					  SET status = $2, updated_at = NOW()
					  WHERE status = $1 AND check_out <= $3`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, completeQuery,
		domain.BookingStatusConfirmed, domain.BookingStatusCompleted, today,
	)
	if err != nil {
		return 0, 0, fmt.Errorf("complete bookings: %w", err)
	}
	if completed, err = res.RowsAffected(); err != nil {
		return 0, 0, fmt.Errorf("completed rows affected: %w", err)
	}

	releaseQuery := `UPDATE apartments a
					 SET status = $2, updated_at = NOW()
					 WHERE a.status = $1
					   AND NOT EXISTS (
					       SELECT 1 FROM bookings b
					       WHERE b.apartment_id = a.id AND b.status = $3)`
	res, err = r.db.ExecWithRetry(
		ctx, r.strategy, releaseQuery,
		domain.ApartmentStatusReserved, domain.ApartmentStatusAvailable,
		domain.BookingStatusConfirmed,
	)
	if err != nil {
		return completed, 0, fmt.Errorf("release apartments: %w", err)
	}
	if released, err = res.RowsAffected(); err != nil {
		return completed, 0, fmt.Errorf("released rows affected: %w", err)
	}

	return completed, released, nil
}

func scanBooking(s scanner) (*domain.Booking, error) {
	var b domain.Booking
	if err := s.Scan(
		&b.ID, &b.UserID, &b.ApartmentID, &b.CheckIn, &b.CheckOut, &b.Guests,
		&b.TotalPrice, &b.Status, &b.SpecialRequests, &b.CancellationReason,
		&b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

type rowsScanner interface {
	scanner
	Next() bool
	Err() error
}

func collectBookings(rows rowsScanner) ([]*domain.Booking, error) {
	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}
	return res, rows.Err()
}
