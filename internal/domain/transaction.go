package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionStatus string

const (
	TransactionStatusPending    TransactionStatus = "pending"
	TransactionStatusProcessing TransactionStatus = "processing"
	TransactionStatusCompleted  TransactionStatus = "completed"
	TransactionStatusDeclined   TransactionStatus = "declined"
)

// IsFinal reports whether no further transition is allowed.
func (s TransactionStatus) IsFinal() bool {
	return s == TransactionStatusCompleted || s == TransactionStatusDeclined
}

var OpenTransactionStatuses = []TransactionStatus{TransactionStatusPending, TransactionStatusProcessing}

type Transaction struct {
	ID          string            `json:"id"`
	UserID      string            `json:"user_id"`
	BookingID   *string           `json:"booking_id"`
	Amount      decimal.Decimal   `json:"amount"`
	TxRef       string            `json:"tx_ref"`
	GatewayTxID *string           `json:"gateway_tx_id"`
	Status      TransactionStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

const txRefSuffixLen = 10

// NewTxRef builds <prefix>-BKG-<bookingID>-<10 uppercase hex chars>.
func NewTxRef(prefix, bookingID string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:txRefSuffixLen]
	return fmt.Sprintf("%s-BKG-%s-%s", prefix, bookingID, strings.ToUpper(suffix))
}

// Resolution is a terminal transition requested for a transaction.
type Resolution struct {
	TxRef       string
	Status      TransactionStatus
	GatewayTxID string
	Reason      string
}

// ResolveResult reports what a resolution changed. Applied is false when the
// transaction was already final and nothing was written.
type ResolveResult struct {
	Transaction       *Transaction
	Booking           *Booking
	Applied           bool
	ApartmentReserved bool
	// Reason is set when the store overrode the requested resolution.
	Reason string
}
