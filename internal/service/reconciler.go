package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/EsHomes/internal/domain"
	"github.com/stpnv0/EsHomes/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const defaultLockTimeout = 30 * time.Second

type ReconcilerOptions struct {
	LockTimeout time.Duration
}

// Reconciler drives a transaction from pending to completed or declined.
// Webhooks, browser redirects and operator re-checks all end up in the same
// state machine, so the order in which reports arrive does not matter.
type Reconciler struct {
	txRepo        ports.TransactionRepo
	apartmentRepo ports.ApartmentRepo
	userRepo      ports.UserRepo
	gateway       ports.PaymentGateway
	locker        ports.Locker
	notifier      ports.BookingNotifier
	opts          ReconcilerOptions
	logger        logger.Logger
}

func NewReconciler(
	txRepo ports.TransactionRepo,
	apartmentRepo ports.ApartmentRepo,
	userRepo ports.UserRepo,
	gateway ports.PaymentGateway,
	locker ports.Locker,
	notifier ports.BookingNotifier,
	opts ReconcilerOptions,
	logger logger.Logger,
) *Reconciler {
	if opts.LockTimeout <= 0 {
		opts.LockTimeout = defaultLockTimeout
	}
	return &Reconciler{
		txRepo:        txRepo,
		apartmentRepo: apartmentRepo,
		userRepo:      userRepo,
		gateway:       gateway,
		locker:        locker,
		notifier:      notifier,
		opts:          opts,
		logger:        logger,
	}
}

// Checkout returns the parameters the payment widget needs for a pending
// transaction owned by userID.
func (r *Reconciler) Checkout(ctx context.Context, transactionID, userID string) (*domain.PaymentSession, error) {
	tx, err := r.txRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if tx.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if tx.Status.IsFinal() {
		return nil, fmt.Errorf("%w: transaction is %s", domain.ErrInvalidStatus, tx.Status)
	}

	user, err := r.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	session := r.gateway.Initiate(tx, domain.Customer{Name: user.FullName(), Email: user.Email})
	return &session, nil
}

func (r *Reconciler) HandleWebhook(ctx context.Context, rep domain.PaymentReport) (*domain.ReconcileOutcome, error) {
	rep.Source = domain.PaymentSourceWebhook
	return r.reconcile(ctx, rep)
}

func (r *Reconciler) HandleRedirect(ctx context.Context, rep domain.PaymentReport) (*domain.ReconcileOutcome, error) {
	rep.Source = domain.PaymentSourceRedirect
	return r.reconcile(ctx, rep)
}

// Reverify asks the gateway again about a transaction that is still open.
func (r *Reconciler) Reverify(ctx context.Context, txRef, gatewayTxID string) (*domain.ReconcileOutcome, error) {
	return r.reconcile(ctx, domain.PaymentReport{
		Source:      domain.PaymentSourceOperator,
		TxRef:       txRef,
		GatewayTxID: gatewayTxID,
	})
}

func (r *Reconciler) reconcile(ctx context.Context, rep domain.PaymentReport) (*domain.ReconcileOutcome, error) {
	if rep.TxRef == "" {
		return nil, fmt.Errorf("%w: tx_ref is required", domain.ErrValidation)
	}

	if _, err := r.txRepo.GetByTxRef(ctx, rep.TxRef); err != nil {
		return nil, err
	}

	lockCtx, cancel := context.WithTimeout(ctx, r.opts.LockTimeout)
	release, err := r.locker.Acquire(lockCtx, rep.TxRef)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", rep.TxRef, err)
	}
	defer release()

	tx, err := r.txRepo.GetByTxRef(ctx, rep.TxRef)
	if err != nil {
		return nil, err
	}
	if tx.Status.IsFinal() {
		return r.replay(tx, rep), nil
	}

	verify, reason, err := classify(rep)
	if err != nil {
		return nil, err
	}

	res := domain.Resolution{
		TxRef:  tx.TxRef,
		Status: domain.TransactionStatusDeclined,
		Reason: reason,
	}
	// An unverified gateway id is only kept when the report itself is authenticated.
	if !verify && rep.Authenticated {
		res.GatewayTxID = rep.GatewayTxID
	}

	if verify {
		if rep.GatewayTxID == "" {
			return nil, fmt.Errorf("%w: transaction_id is required", domain.ErrValidation)
		}

		v, err := r.gateway.Verify(ctx, rep.GatewayTxID)
		if err != nil {
			r.logger.Warn("payment verification failed",
				logger.String("tx_ref", tx.TxRef),
				logger.String("source", string(rep.Source)),
				logger.String("error", err.Error()),
			)
			return nil, fmt.Errorf("verify payment: %w", err)
		}

		res.Reason = v.Mismatch(tx, r.gateway.Currency())
		if res.Reason == "" {
			res.Status = domain.TransactionStatusCompleted
			res.GatewayTxID = rep.GatewayTxID
			if v.GatewayTxID != "" {
				res.GatewayTxID = v.GatewayTxID
			}
		}
	}

	result, err := r.txRepo.Resolve(ctx, res)
	if err != nil {
		return nil, fmt.Errorf("resolve transaction: %w", err)
	}
	if !result.Applied {
		return r.replay(result.Transaction, rep), nil
	}

	status, reason := result.Transaction.Status, res.Reason
	if result.Reason != "" {
		reason = result.Reason
	}

	r.logger.Info("transaction resolved",
		logger.String("tx_ref", tx.TxRef),
		logger.String("status", string(status)),
		logger.String("source", string(rep.Source)),
		logger.String("reason", reason),
		logger.Any("apartment_reserved", result.ApartmentReserved),
	)

	switch {
	case result.Booking == nil:
	case status == domain.TransactionStatusCompleted && result.Booking.Status != domain.BookingStatusConfirmed:
		r.logger.Warn("payment completed for a booking that is no longer pending, needs refund review",
			logger.String("tx_ref", tx.TxRef),
			logger.String("booking_id", result.Booking.ID),
			logger.String("booking_status", string(result.Booking.Status)),
		)
	default:
		go r.notify(context.WithoutCancel(ctx), result.Booking)
	}

	return &domain.ReconcileOutcome{Transaction: result.Transaction, Reason: reason}, nil
}

// classify decides from the unverified report whether the gateway must be
// asked (verify) or the payment can be declined outright.
func classify(rep domain.PaymentReport) (verify bool, reason string, err error) {
	switch rep.Source {
	case domain.PaymentSourceOperator:
		return true, "", nil

	case domain.PaymentSourceWebhook:
		switch {
		case rep.Event == domain.EventChargeCompleted && domain.IsPaymentSuccess(rep.Status):
			return true, "", nil
		case rep.Status == domain.PaymentStatusFailed, rep.Status == domain.PaymentStatusCancelled:
			return false, "payment " + rep.Status, nil
		}
		return false, "", fmt.Errorf("%w: webhook event %q with status %q", domain.ErrInvalidStatus, rep.Event, rep.Status)

	case domain.PaymentSourceRedirect:
		switch {
		case domain.IsPaymentSuccess(rep.Status):
			return true, "", nil
		case rep.Status == domain.PaymentStatusCancelled:
			return false, "payment was cancelled", nil
		case rep.Status == domain.PaymentStatusFailed:
			return false, "payment failed", nil
		}
		return false, fmt.Sprintf("unexpected payment status %q", rep.Status), nil
	}

	return false, "", fmt.Errorf("%w: unknown payment source %q", domain.ErrValidation, rep.Source)
}

func (r *Reconciler) replay(tx *domain.Transaction, rep domain.PaymentReport) *domain.ReconcileOutcome {
	if tx.Status == domain.TransactionStatusDeclined && domain.IsPaymentSuccess(rep.Status) {
		r.logger.Warn("success reported for declined transaction, needs refund review",
			logger.String("tx_ref", tx.TxRef),
			logger.String("gateway_tx_id", rep.GatewayTxID),
			logger.String("source", string(rep.Source)),
		)
	} else {
		r.logger.Debug("transaction already final",
			logger.String("tx_ref", tx.TxRef),
			logger.String("status", string(tx.Status)),
			logger.String("source", string(rep.Source)),
		)
	}

	return &domain.ReconcileOutcome{Transaction: tx, Replayed: true}
}

func (r *Reconciler) notify(ctx context.Context, b *domain.Booking) {
	user, err := r.userRepo.GetByID(ctx, b.UserID)
	if err != nil {
		r.logger.Error("failed to get user for payment notification",
			logger.String("user_id", b.UserID),
		)
		return
	}

	apartment, err := r.apartmentRepo.GetByID(ctx, b.ApartmentID)
	if err != nil {
		r.logger.Error("failed to get apartment for payment notification",
			logger.String("apartment_id", b.ApartmentID),
		)
		return
	}

	switch b.Status {
	case domain.BookingStatusConfirmed:
		r.notifier.NotifyBookingConfirmed(ctx, user, b, apartment)
	case domain.BookingStatusCancelled:
		r.notifier.NotifyBookingCancelled(ctx, user, b, apartment)
	}
}
