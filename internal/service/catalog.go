package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/EsHomes/internal/domain"
	"github.com/stpnv0/EsHomes/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// maxCalendarSpan bounds availability queries.
const maxCalendarSpan = 366 * 24 * time.Hour

type CatalogService struct {
	repo   ports.ApartmentRepo
	logger logger.Logger
}

func NewCatalogService(repo ports.ApartmentRepo, logger logger.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

func (s *CatalogService) List(ctx context.Context, f domain.ApartmentFilter) ([]*domain.Apartment, error) {
	if f.Bedrooms != nil && *f.Bedrooms < 0 {
		return nil, fmt.Errorf("%w: bedrooms must not be negative", domain.ErrValidation)
	}
	if f.MaxPrice != nil && f.MaxPrice.IsNegative() {
		return nil, fmt.Errorf("%w: max_price must not be negative", domain.ErrValidation)
	}
	return s.repo.List(ctx, f)
}

func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Apartment, error) {
	return s.repo.GetByID(ctx, id)
}

// SetStatus applies an operator status change. Reserved is never set by hand,
// it only follows a completed payment.
func (s *CatalogService) SetStatus(ctx context.Context, id string, status domain.ApartmentStatus) error {
	if !status.Valid() || status == domain.ApartmentStatusReserved {
		return fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}

	if err := s.repo.SetStatus(ctx, id, status); err != nil {
		return fmt.Errorf("set apartment status: %w", err)
	}

	s.logger.Info("apartment status changed",
		logger.String("apartment_id", id),
		logger.String("status", string(status)),
	)

	return nil
}

// Availability returns the date ranges already held by pending or confirmed
// bookings within [from, to).
func (s *CatalogService) Availability(ctx context.Context, id string, from, to time.Time) ([]domain.DateRange, error) {
	from, to = domain.Date(from), domain.Date(to)
	if !to.After(from) {
		return nil, domain.ErrInvalidDateRange
	}
	if to.Sub(from) > maxCalendarSpan {
		return nil, fmt.Errorf("%w: range longer than a year", domain.ErrValidation)
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	ranges, err := s.repo.BookedRanges(ctx, id, from, to)
	if err != nil {
		return nil, fmt.Errorf("booked ranges: %w", err)
	}

	return ranges, nil
}
