package ports

import (
	"context"
	"time"

	"github.com/stpnv0/EsHomes/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking, t *domain.Transaction) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	Cancel(ctx context.Context, bookingID, userID, reason string) (*domain.Booking, error)
	CancelExpired(ctx context.Context, cutoff time.Time) ([]*domain.Booking, error)
	CompleteFinished(ctx context.Context, today time.Time) (completed, released int64, err error)
}
