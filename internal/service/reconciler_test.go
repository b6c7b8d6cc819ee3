package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/EsHomes/internal/domain"
	"github.com/stpnv0/EsHomes/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testTxRef = "ESHOMES-BKG-b1-0A1B2C3D4E"

type reconcilerDeps struct {
	txs        *mocks.MockTransactionRepo
	apartments *mocks.MockApartmentRepo
	users      *mocks.MockUserRepo
	gateway    *mocks.MockPaymentGateway
	locker     *mocks.MockLocker
	notifier   *mocks.MockBookingNotifier
}

func newReconciler(t *testing.T) (*Reconciler, reconcilerDeps) {
	t.Helper()
	d := reconcilerDeps{
		txs:        mocks.NewMockTransactionRepo(t),
		apartments: mocks.NewMockApartmentRepo(t),
		users:      mocks.NewMockUserRepo(t),
		gateway:    mocks.NewMockPaymentGateway(t),
		locker:     mocks.NewMockLocker(t),
		notifier:   mocks.NewMockBookingNotifier(t),
	}
	r := NewReconciler(d.txs, d.apartments, d.users, d.gateway, d.locker, d.notifier,
		ReconcilerOptions{LockTimeout: time.Second}, newTestLogger(t))
	return r, d
}

func pendingTx() *domain.Transaction {
	bookingID := "b1"
	return &domain.Transaction{
		ID:        "t1",
		UserID:    "u1",
		BookingID: &bookingID,
		Amount:    decimal.RequireFromString("300.00"),
		TxRef:     testTxRef,
		Status:    domain.TransactionStatusPending,
	}
}

func finalTx(status domain.TransactionStatus) *domain.Transaction {
	tx := pendingTx()
	tx.Status = status
	return tx
}

func verified(amount, currency string) *domain.VerificationResult {
	return &domain.VerificationResult{
		Status:        domain.VerifyStatusSuccess,
		PaymentStatus: domain.PaymentStatusSuccessful,
		Amount:        decimal.RequireFromString(amount),
		Currency:      currency,
		GatewayTxID:   "4421",
		TxRef:         testTxRef,
	}
}

func (d reconcilerDeps) expectLocked(tx *domain.Transaction) {
	d.txs.EXPECT().GetByTxRef(mock.Anything, testTxRef).Return(tx, nil).Times(2)
	d.locker.EXPECT().Acquire(mock.Anything, testTxRef).Return(func() {}, nil)
}

func (d reconcilerDeps) expectNotify(status domain.BookingStatus) {
	user := &domain.User{ID: "u1"}
	apartment := &domain.Apartment{ID: "a1"}
	d.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	d.apartments.EXPECT().GetByID(mock.Anything, "a1").Return(apartment, nil)
	switch status {
	case domain.BookingStatusConfirmed:
		d.notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, user, mock.Anything, apartment).Return()
	case domain.BookingStatusCancelled:
		d.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, user, mock.Anything, apartment).Return()
	}
}

func resolved(status domain.TransactionStatus, booking domain.BookingStatus, reserved bool) *domain.ResolveResult {
	return &domain.ResolveResult{
		Transaction:       finalTx(status),
		Booking:           &domain.Booking{ID: "b1", UserID: "u1", ApartmentID: "a1", Status: booking},
		Applied:           true,
		ApartmentReserved: reserved,
	}
}

func successWebhook() domain.PaymentReport {
	return domain.PaymentReport{
		Event:       domain.EventChargeCompleted,
		TxRef:       testTxRef,
		GatewayTxID: "4421",
		Status:      domain.PaymentStatusSuccessful,
	}
}

func TestReconciler_Webhook_VerifiedSuccessCompletes(t *testing.T) {
	r, d := newReconciler(t)

	d.expectLocked(pendingTx())
	d.gateway.EXPECT().Verify(mock.Anything, "4421").Return(verified("300.00", "NGN"), nil)
	d.gateway.EXPECT().Currency().Return("NGN")
	d.txs.EXPECT().Resolve(mock.Anything, domain.Resolution{
		TxRef:       testTxRef,
		Status:      domain.TransactionStatusCompleted,
		GatewayTxID: "4421",
	}).Return(resolved(domain.TransactionStatusCompleted, domain.BookingStatusConfirmed, true), nil)
	d.expectNotify(domain.BookingStatusConfirmed)

	out, err := r.HandleWebhook(context.Background(), successWebhook())

	require.NoError(t, err)
	assert.True(t, out.Completed())
	assert.False(t, out.Replayed)
	assert.Empty(t, out.Reason)

	time.Sleep(50 * time.Millisecond)
}

func TestReconciler_Webhook_AmountWithDifferentScaleStillMatches(t *testing.T) {
	r, d := newReconciler(t)

	d.expectLocked(pendingTx())
	d.gateway.EXPECT().Verify(mock.Anything, "4421").Return(verified("300", "NGN"), nil)
	d.gateway.EXPECT().Currency().Return("NGN")
	d.txs.EXPECT().Resolve(mock.Anything, mock.MatchedBy(func(res domain.Resolution) bool {
		return res.Status == domain.TransactionStatusCompleted
	})).Return(resolved(domain.TransactionStatusCompleted, domain.BookingStatusConfirmed, true), nil)
	d.expectNotify(domain.BookingStatusConfirmed)

	out, err := r.HandleWebhook(context.Background(), successWebhook())

	require.NoError(t, err)
	assert.True(t, out.Completed())

	time.Sleep(50 * time.Millisecond)
}

func TestReconciler_Webhook_ForgedSuccessDeclines(t *testing.T) {
	cases := map[string]*domain.VerificationResult{
		"amount short by a kobo": verified("299.99", "NGN"),
		"wrong currency":         verified("300.00", "USD"),
		"verify status error": func() *domain.VerificationResult {
			v := verified("300.00", "NGN")
			v.Status = "error"
			return v
		}(),
		"payment not successful": func() *domain.VerificationResult {
			v := verified("300.00", "NGN")
			v.PaymentStatus = "failed"
			return v
		}(),
		"other tx_ref": func() *domain.VerificationResult {
			v := verified("300.00", "NGN")
			v.TxRef = "ESHOMES-BKG-other-FFFFFFFFFF"
			return v
		}(),
		"no tx_ref": func() *domain.VerificationResult {
			v := verified("300.00", "NGN")
			v.TxRef = ""
			return v
		}(),
	}

	for name, v := range cases {
		t.Run(name, func(t *testing.T) {
			r, d := newReconciler(t)

			d.expectLocked(pendingTx())
			d.gateway.EXPECT().Verify(mock.Anything, "4421").Return(v, nil)
			d.gateway.EXPECT().Currency().Return("NGN")
			d.txs.EXPECT().Resolve(mock.Anything, mock.MatchedBy(func(res domain.Resolution) bool {
				return res.Status == domain.TransactionStatusDeclined && res.Reason != "" && res.GatewayTxID == ""
			})).Return(resolved(domain.TransactionStatusDeclined, domain.BookingStatusCancelled, false), nil)
			d.expectNotify(domain.BookingStatusCancelled)

			out, err := r.HandleWebhook(context.Background(), successWebhook())

			require.NoError(t, err)
			assert.False(t, out.Completed())
			assert.Equal(t, domain.TransactionStatusDeclined, out.Transaction.Status)
			assert.NotEmpty(t, out.Reason)

			time.Sleep(50 * time.Millisecond)
		})
	}
}

func TestReconciler_Webhook_FailedPaymentDeclinesWithoutVerify(t *testing.T) {
	r, d := newReconciler(t)

	d.expectLocked(pendingTx())
	d.txs.EXPECT().Resolve(mock.Anything, domain.Resolution{
		TxRef:       testTxRef,
		Status:      domain.TransactionStatusDeclined,
		GatewayTxID: "4421",
		Reason:      "payment failed",
	}).Return(resolved(domain.TransactionStatusDeclined, domain.BookingStatusCancelled, false), nil)
	d.expectNotify(domain.BookingStatusCancelled)

	rep := successWebhook()
	rep.Status = domain.PaymentStatusFailed
	rep.Authenticated = true

	out, err := r.HandleWebhook(context.Background(), rep)

	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusDeclined, out.Transaction.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestReconciler_Redirect_DeclineDropsUnverifiedGatewayID(t *testing.T) {
	r, d := newReconciler(t)

	d.expectLocked(pendingTx())
	d.txs.EXPECT().Resolve(mock.Anything, domain.Resolution{
		TxRef:  testTxRef,
		Status: domain.TransactionStatusDeclined,
		Reason: "payment failed",
	}).Return(resolved(domain.TransactionStatusDeclined, domain.BookingStatusCancelled, false), nil)
	d.expectNotify(domain.BookingStatusCancelled)

	_, err := r.HandleRedirect(context.Background(), domain.PaymentReport{
		TxRef:       testTxRef,
		GatewayTxID: "9999",
		Status:      domain.PaymentStatusFailed,
	})

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestReconciler_StoreOverrideReasonIsReported(t *testing.T) {
	r, d := newReconciler(t)

	d.expectLocked(pendingTx())
	d.gateway.EXPECT().Verify(mock.Anything, "4421").Return(verified("300.00", "NGN"), nil)
	d.gateway.EXPECT().Currency().Return("NGN")
	res := resolved(domain.TransactionStatusDeclined, domain.BookingStatusCancelled, false)
	res.Reason = "gateway transaction already settled another payment"
	d.txs.EXPECT().Resolve(mock.Anything, mock.Anything).Return(res, nil)
	d.expectNotify(domain.BookingStatusCancelled)

	out, err := r.HandleWebhook(context.Background(), successWebhook())

	require.NoError(t, err)
	assert.False(t, out.Completed())
	assert.Equal(t, res.Reason, out.Reason)

	time.Sleep(50 * time.Millisecond)
}

func TestReconciler_Webhook_UnknownStatusIsRejected(t *testing.T) {
	r, d := newReconciler(t)

	d.expectLocked(pendingTx())

	rep := successWebhook()
	rep.Status = "pending"

	_, err := r.HandleWebhook(context.Background(), rep)

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestReconciler_Webhook_OtherEventIsRejected(t *testing.T) {
	r, d := newReconciler(t)

	d.expectLocked(pendingTx())

	rep := successWebhook()
	rep.Event = "transfer.completed"

	_, err := r.HandleWebhook(context.Background(), rep)

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestReconciler_Webhook_SuccessWithoutGatewayID(t *testing.T) {
	r, d := newReconciler(t)

	d.expectLocked(pendingTx())

	rep := successWebhook()
	rep.GatewayTxID = ""

	_, err := r.HandleWebhook(context.Background(), rep)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReconciler_Webhook_UnknownTxRef(t *testing.T) {
	r, d := newReconciler(t)

	d.txs.EXPECT().GetByTxRef(mock.Anything, testTxRef).Return(nil, domain.ErrTransactionNotFound)

	_, err := r.HandleWebhook(context.Background(), successWebhook())

	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
}

func TestReconciler_Webhook_GatewayErrorLeavesStateUntouched(t *testing.T) {
	for _, gwErr := range []error{domain.ErrGatewayUnreachable, domain.ErrGateway} {
		t.Run(gwErr.Error(), func(t *testing.T) {
			r, d := newReconciler(t)

			d.expectLocked(pendingTx())
			d.gateway.EXPECT().Verify(mock.Anything, "4421").Return(nil, gwErr)

			_, err := r.HandleWebhook(context.Background(), successWebhook())

			assert.ErrorIs(t, err, gwErr)
			d.txs.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
		})
	}
}

func TestReconciler_ReplayAfterCompletion(t *testing.T) {
	r, d := newReconciler(t)

	d.expectLocked(finalTx(domain.TransactionStatusCompleted))

	out, err := r.HandleWebhook(context.Background(), successWebhook())

	require.NoError(t, err)
	assert.True(t, out.Replayed)
	assert.True(t, out.Completed())
	d.gateway.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}

func TestReconciler_PaymentForExpiredBookingIsNotNotified(t *testing.T) {
	r, d := newReconciler(t)

	d.expectLocked(pendingTx())
	d.gateway.EXPECT().Verify(mock.Anything, "4421").Return(verified("300.00", "NGN"), nil)
	d.gateway.EXPECT().Currency().Return("NGN")
	d.txs.EXPECT().Resolve(mock.Anything, mock.Anything).
		Return(resolved(domain.TransactionStatusCompleted, domain.BookingStatusCancelled, false), nil)

	out, err := r.HandleWebhook(context.Background(), successWebhook())

	require.NoError(t, err)
	assert.True(t, out.Completed())

	time.Sleep(50 * time.Millisecond)
	d.notifier.AssertNotCalled(t, "NotifyBookingCancelled", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReconciler_LateCancelRedirectDoesNotUndoCompletion(t *testing.T) {
	r, d := newReconciler(t)

	d.expectLocked(finalTx(domain.TransactionStatusCompleted))

	out, err := r.HandleRedirect(context.Background(), domain.PaymentReport{
		TxRef:  testTxRef,
		Status: domain.PaymentStatusCancelled,
	})

	require.NoError(t, err)
	assert.True(t, out.Replayed)
	assert.Equal(t, domain.TransactionStatusCompleted, out.Transaction.Status)
}

func TestReconciler_SuccessAfterDeclineStaysDeclined(t *testing.T) {
	r, d := newReconciler(t)

	d.expectLocked(finalTx(domain.TransactionStatusDeclined))

	out, err := r.HandleWebhook(context.Background(), successWebhook())

	require.NoError(t, err)
	assert.True(t, out.Replayed)
	assert.Equal(t, domain.TransactionStatusDeclined, out.Transaction.Status)
}

func TestReconciler_LostRaceInsideResolveIsReplay(t *testing.T) {
	r, d := newReconciler(t)

	d.expectLocked(pendingTx())
	d.gateway.EXPECT().Verify(mock.Anything, "4421").Return(verified("300.00", "NGN"), nil)
	d.gateway.EXPECT().Currency().Return("NGN")
	d.txs.EXPECT().Resolve(mock.Anything, mock.Anything).
		Return(&domain.ResolveResult{Transaction: finalTx(domain.TransactionStatusCompleted)}, nil)

	out, err := r.HandleWebhook(context.Background(), successWebhook())

	require.NoError(t, err)
	assert.True(t, out.Replayed)
	assert.True(t, out.Completed())
}

func TestReconciler_Redirect_Classification(t *testing.T) {
	cases := []struct {
		status string
		reason string
	}{
		{status: "cancelled", reason: "payment was cancelled"},
		{status: "failed", reason: "payment failed"},
		{status: "weird", reason: `unexpected payment status "weird"`},
	}

	for _, tc := range cases {
		t.Run(tc.status, func(t *testing.T) {
			r, d := newReconciler(t)

			d.expectLocked(pendingTx())
			d.txs.EXPECT().Resolve(mock.Anything, domain.Resolution{
				TxRef:  testTxRef,
				Status: domain.TransactionStatusDeclined,
				Reason: tc.reason,
			}).Return(resolved(domain.TransactionStatusDeclined, domain.BookingStatusCancelled, false), nil)
			d.expectNotify(domain.BookingStatusCancelled)

			out, err := r.HandleRedirect(context.Background(), domain.PaymentReport{TxRef: testTxRef, Status: tc.status})

			require.NoError(t, err)
			assert.Equal(t, tc.reason, out.Reason)

			time.Sleep(50 * time.Millisecond)
		})
	}
}

func TestReconciler_Redirect_SuccessVerifies(t *testing.T) {
	r, d := newReconciler(t)

	d.expectLocked(pendingTx())
	d.gateway.EXPECT().Verify(mock.Anything, "4421").Return(verified("300.00", "NGN"), nil)
	d.gateway.EXPECT().Currency().Return("NGN")
	d.txs.EXPECT().Resolve(mock.Anything, mock.Anything).
		Return(resolved(domain.TransactionStatusCompleted, domain.BookingStatusConfirmed, true), nil)
	d.expectNotify(domain.BookingStatusConfirmed)

	out, err := r.HandleRedirect(context.Background(), domain.PaymentReport{
		TxRef:       testTxRef,
		GatewayTxID: "4421",
		Status:      "completed",
	})

	require.NoError(t, err)
	assert.True(t, out.Completed())

	time.Sleep(50 * time.Millisecond)
}

func TestReconciler_Reverify(t *testing.T) {
	r, d := newReconciler(t)

	d.expectLocked(pendingTx())
	d.gateway.EXPECT().Verify(mock.Anything, "4421").Return(verified("300.00", "NGN"), nil)
	d.gateway.EXPECT().Currency().Return("NGN")
	d.txs.EXPECT().Resolve(mock.Anything, mock.Anything).
		Return(resolved(domain.TransactionStatusCompleted, domain.BookingStatusConfirmed, false), nil)
	d.expectNotify(domain.BookingStatusConfirmed)

	out, err := r.Reverify(context.Background(), testTxRef, "4421")

	require.NoError(t, err)
	assert.True(t, out.Completed())

	time.Sleep(50 * time.Millisecond)
}

func TestReconciler_LockTimeout(t *testing.T) {
	r, d := newReconciler(t)

	lockErr := errors.New("lock not acquired")
	d.txs.EXPECT().GetByTxRef(mock.Anything, testTxRef).Return(pendingTx(), nil).Once()
	d.locker.EXPECT().Acquire(mock.Anything, testTxRef).Return(nil, lockErr)

	_, err := r.HandleWebhook(context.Background(), successWebhook())

	assert.ErrorIs(t, err, lockErr)
}

func TestReconciler_EmptyTxRef(t *testing.T) {
	r, _ := newReconciler(t)

	_, err := r.HandleRedirect(context.Background(), domain.PaymentReport{Status: "successful"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReconciler_Checkout(t *testing.T) {
	r, d := newReconciler(t)

	tx := pendingTx()
	user := &domain.User{ID: "u1", FirstName: "Ada", LastName: "Obi", Email: "ada@example.com"}
	session := domain.PaymentSession{TxRef: testTxRef, Amount: tx.Amount, Currency: "NGN"}

	d.txs.EXPECT().GetByID(mock.Anything, "t1").Return(tx, nil)
	d.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	d.gateway.EXPECT().Initiate(tx, domain.Customer{Name: "Ada Obi", Email: "ada@example.com"}).Return(session)

	got, err := r.Checkout(context.Background(), "t1", "u1")

	require.NoError(t, err)
	assert.Equal(t, testTxRef, got.TxRef)
}

func TestReconciler_Checkout_Rejections(t *testing.T) {
	t.Run("other user", func(t *testing.T) {
		r, d := newReconciler(t)
		d.txs.EXPECT().GetByID(mock.Anything, "t1").Return(pendingTx(), nil)

		_, err := r.Checkout(context.Background(), "t1", "u2")

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("already final", func(t *testing.T) {
		r, d := newReconciler(t)
		d.txs.EXPECT().GetByID(mock.Anything, "t1").Return(finalTx(domain.TransactionStatusCompleted), nil)

		_, err := r.Checkout(context.Background(), "t1", "u1")

		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	})
}
