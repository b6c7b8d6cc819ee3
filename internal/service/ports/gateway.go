package ports

import (
	"context"

	"github.com/stpnv0/EsHomes/internal/domain"
)

type PaymentGateway interface {
	Initiate(tx *domain.Transaction, customer domain.Customer) domain.PaymentSession
	Verify(ctx context.Context, gatewayTxID string) (*domain.VerificationResult, error)
	Currency() string
}

// Locker serialises reconciliation of a single tx_ref.
type Locker interface {
	Acquire(ctx context.Context, key string) (func(), error)
}
