package ports

import (
	"context"
	"time"

	"github.com/stpnv0/EsHomes/internal/domain"
)

type ApartmentRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Apartment, error)
	List(ctx context.Context, f domain.ApartmentFilter) ([]*domain.Apartment, error)
	SetStatus(ctx context.Context, id string, status domain.ApartmentStatus) error
	BookedRanges(ctx context.Context, id string, from, to time.Time) ([]domain.DateRange, error)
}
