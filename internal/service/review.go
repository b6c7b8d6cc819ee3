package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EsHomes/internal/domain"
	"github.com/stpnv0/EsHomes/internal/service/ports"
)

type ReviewService struct {
	reviewRepo    ports.ReviewRepo
	bookingRepo   ports.BookingRepo
	apartmentRepo ports.ApartmentRepo
}

func NewReviewService(reviewRepo ports.ReviewRepo, bookingRepo ports.BookingRepo, apartmentRepo ports.ApartmentRepo) *ReviewService {
	return &ReviewService{
		reviewRepo:    reviewRepo,
		bookingRepo:   bookingRepo,
		apartmentRepo: apartmentRepo,
	}
}

// Create stores a review for a stay that was paid for. A guest reviews each
// booking at most once.
func (s *ReviewService) Create(ctx context.Context, in domain.CreateReviewInput) (*domain.Review, error) {
	for _, r := range []int{in.Rating, in.CleanlinessRating, in.LocationRating, in.ValueRating} {
		if r < domain.MinRating || r > domain.MaxRating {
			return nil, domain.ErrInvalidRating
		}
	}
	comment := strings.TrimSpace(in.Comment)
	if comment == "" {
		return nil, fmt.Errorf("%w: comment is required", domain.ErrValidation)
	}

	booking, err := s.bookingRepo.GetByID(ctx, in.BookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != in.UserID {
		return nil, domain.ErrForbidden
	}
	if booking.Status != domain.BookingStatusConfirmed && booking.Status != domain.BookingStatusCompleted {
		return nil, fmt.Errorf("%w: booking is %s", domain.ErrReviewNotAllowed, booking.Status)
	}

	review := &domain.Review{
		ID:                uuid.New().String(),
		UserID:            in.UserID,
		ApartmentID:       booking.ApartmentID,
		BookingID:         booking.ID,
		Rating:            in.Rating,
		CleanlinessRating: in.CleanlinessRating,
		LocationRating:    in.LocationRating,
		ValueRating:       in.ValueRating,
		Comment:           comment,
		CreatedAt:         time.Now().UTC(),
	}

	if err = s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	return review, nil
}

func (s *ReviewService) ListByApartment(ctx context.Context, apartmentID string) ([]*domain.Review, error) {
	if _, err := s.apartmentRepo.GetByID(ctx, apartmentID); err != nil {
		return nil, err
	}
	return s.reviewRepo.ListByApartment(ctx, apartmentID)
}
