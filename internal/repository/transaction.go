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

const transactionColumns = `id, user_id, booking_id, amount, tx_ref, gateway_tx_id, status, created_at, updated_at`

type TransactionRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTransactionRepo(db *dbpg.DB) *TransactionRepository {
	return &TransactionRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	return r.getOne(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id)
}

func (r *TransactionRepository) GetByTxRef(ctx context.Context, txRef string) (*domain.Transaction, error) {
	return r.getOne(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE tx_ref = $1`, txRef)
}

func (r *TransactionRepository) GetByBooking(ctx context.Context, bookingID string) (*domain.Transaction, error) {
	return r.getOne(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE booking_id = $1`, bookingID)
}

func (r *TransactionRepository) getOne(ctx context.Context, query string, arg any) (*domain.Transaction, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}

	t, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("scan transaction: %w", err)
	}

	return t, nil
}

// Resolve moves an open transaction to a terminal status and cascades the
// outcome to its booking and apartment in one database transaction. If the
// transaction is already final nothing is written and Applied is false.
func (r *TransactionRepository) Resolve(ctx context.Context, res domain.Resolution) (*domain.ResolveResult, error) {
	if !res.Status.IsFinal() {
		return nil, fmt.Errorf("%w: resolution to %q", domain.ErrInvalidStatus, res.Status)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT ` + transactionColumns + ` FROM transactions WHERE tx_ref = $1 FOR UPDATE`
	t, err := scanTransaction(tx.QueryRowContext(ctx, lockQuery, res.TxRef))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("lock transaction: %w", err)
	}

	if t.Status.IsFinal() {
		return &domain.ResolveResult{Transaction: t}, nil
	}

	result := &domain.ResolveResult{Transaction: t, Applied: true}
	status, reason := res.Status, res.Reason

	if res.GatewayTxID != "" {
		if _, err = tx.ExecContext(ctx, `SAVEPOINT resolve_tx`); err != nil {
			return nil, fmt.Errorf("savepoint: %w", err)
		}
	}

	err = updateTransaction(ctx, tx, t, status, res.GatewayTxID)
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && res.GatewayTxID != "" {
		// The gateway id already settles another transaction.
		if _, err = tx.ExecContext(ctx, `ROLLBACK TO SAVEPOINT resolve_tx`); err != nil {
			return nil, fmt.Errorf("rollback to savepoint: %w", err)
		}
		status = domain.TransactionStatusDeclined
		reason = fmt.Sprintf("gateway transaction %s already settled another payment", res.GatewayTxID)
		result.Reason = reason
		err = updateTransaction(ctx, tx, t, status, "")
	}
	if err != nil {
		return nil, fmt.Errorf("update transaction: %w", err)
	}
	if t.BookingID == nil {
		if err = tx.Commit(); err != nil {
			return nil, fmt.Errorf("commit: %w", err)
		}
		return result, nil
	}

	lockBooking := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`
	b, err := scanBooking(tx.QueryRowContext(ctx, lockBooking, *t.BookingID))
	if err != nil {
		return nil, fmt.Errorf("lock booking: %w", err)
	}
	result.Booking = b

	if b.Status == domain.BookingStatusPending {
		next, cancelReason := domain.BookingStatusConfirmed, b.CancellationReason
		if status == domain.TransactionStatusDeclined {
			next, cancelReason = domain.BookingStatusCancelled, reason
		}

		updBooking := `UPDATE bookings
					   SET status = $2, cancellation_reason = $3, updated_at = NOW()
					   WHERE id = $1
					   RETURNING updated_at`
		if err = tx.QueryRowContext(ctx, updBooking, b.ID, next, cancelReason).Scan(&b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("update booking: %w", err)
		}
		b.Status, b.CancellationReason = next, cancelReason
	}

	if status == domain.TransactionStatusCompleted && b.Status == domain.BookingStatusConfirmed {
		reserve := `UPDATE apartments
					SET status = $2, updated_at = NOW()
					WHERE id = $1 AND status = $3`
		upd, err := tx.ExecContext(ctx, reserve, b.ApartmentID,
			domain.ApartmentStatusReserved, domain.ApartmentStatusAvailable)
		if err != nil {
			return nil, fmt.Errorf("reserve apartment: %w", err)
		}
		n, err := upd.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("apartment rows affected: %w", err)
		}
		result.ApartmentReserved = n > 0
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return result, nil
}

type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func updateTransaction(ctx context.Context, tx rowQuerier, t *domain.Transaction, status domain.TransactionStatus, gatewayTxID string) error {
	query := `UPDATE transactions
			  SET status = $2,
			      gateway_tx_id = COALESCE(NULLIF($3, ''), gateway_tx_id),
			      updated_at = NOW()
			  WHERE id = $1
			  RETURNING gateway_tx_id, updated_at`
	if err := tx.QueryRowContext(ctx, query, t.ID, status, gatewayTxID).
		Scan(&t.GatewayTxID, &t.UpdatedAt); err != nil {
		return err
	}
	t.Status = status
	return nil
}

func scanTransaction(s scanner) (*domain.Transaction, error) {
	var t domain.Transaction
	if err := s.Scan(
		&t.ID, &t.UserID, &t.BookingID, &t.Amount, &t.TxRef,
		&t.GatewayTxID, &t.Status, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &t, nil
}
