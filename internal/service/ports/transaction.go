package ports

import (
	"context"

	"github.com/stpnv0/EsHomes/internal/domain"
)

type TransactionRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	GetByTxRef(ctx context.Context, txRef string) (*domain.Transaction, error)
	GetByBooking(ctx context.Context, bookingID string) (*domain.Transaction, error)
	Resolve(ctx context.Context, res domain.Resolution) (*domain.ResolveResult, error)
}
