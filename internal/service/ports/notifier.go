package ports

import (
	"context"

	"github.com/stpnv0/EsHomes/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, user *domain.User, booking *domain.Booking, apartment *domain.Apartment)
	NotifyBookingConfirmed(ctx context.Context, user *domain.User, booking *domain.Booking, apartment *domain.Apartment)
	NotifyBookingCancelled(ctx context.Context, user *domain.User, booking *domain.Booking, apartment *domain.Apartment)
}
