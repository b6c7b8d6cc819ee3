package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	EventChargeCompleted = "charge.completed"
	VerifyStatusSuccess  = "success"

	PaymentStatusSuccessful = "successful"
	PaymentStatusCompleted  = "completed"
	PaymentStatusFailed     = "failed"
	PaymentStatusCancelled  = "cancelled"
)

func IsPaymentSuccess(status string) bool {
	return status == PaymentStatusSuccessful || status == PaymentStatusCompleted
}

type PaymentSource string

const (
	PaymentSourceWebhook  PaymentSource = "webhook"
	PaymentSourceRedirect PaymentSource = "redirect"
	PaymentSourceOperator PaymentSource = "operator"
)

// PaymentReport is an unverified payment outcome reported by the gateway or the
// customer's browser.
type PaymentReport struct {
	Source      PaymentSource
	Event       string
	TxRef       string
	GatewayTxID string
	Status      string
	// Authenticated is set when the sender was checked, e.g. a webhook
	// carrying the configured verif-hash.
	Authenticated bool
}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PaymentSession carries everything the client-side checkout widget needs.
type PaymentSession struct {
	PublicKey      string          `json:"public_key"`
	TxRef          string          `json:"tx_ref"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	RedirectURL    string          `json:"redirect_url"`
	PaymentOptions string          `json:"payment_options"`
	Customer       Customer        `json:"customer"`
}

type VerificationResult struct {
	Status        string
	PaymentStatus string
	Amount        decimal.Decimal
	Currency      string
	GatewayTxID   string
	TxRef         string
}

// Mismatch returns why the result does not confirm tx, or "" when it does.
// Amounts are compared as exact decimals.
func (v *VerificationResult) Mismatch(tx *Transaction, currency string) string {
	switch {
	case v.Status != VerifyStatusSuccess:
		return fmt.Sprintf("verification status %q", v.Status)
	case !IsPaymentSuccess(v.PaymentStatus):
		return fmt.Sprintf("payment status %q", v.PaymentStatus)
	case !v.Amount.Equal(tx.Amount):
		return fmt.Sprintf("amount %s does not match %s", v.Amount, tx.Amount)
	case v.Currency != currency:
		return fmt.Sprintf("currency %q does not match %q", v.Currency, currency)
	case v.TxRef != tx.TxRef:
		return fmt.Sprintf("tx_ref %q does not match", v.TxRef)
	}
	return ""
}

// ReconcileOutcome is the state of a transaction after reconciliation.
// Replayed is set when the transaction was already final and nothing changed.
type ReconcileOutcome struct {
	Transaction *Transaction
	Reason      string
	Replayed    bool
}

func (o *ReconcileOutcome) Completed() bool {
	return o.Transaction != nil && o.Transaction.Status == TransactionStatusCompleted
}
