package ports

import (
	"context"

	"github.com/stpnv0/EsHomes/internal/domain"
)

type ReviewRepo interface {
	Create(ctx context.Context, rv *domain.Review) error
	ListByApartment(ctx context.Context, apartmentID string) ([]*domain.Review, error)
}
