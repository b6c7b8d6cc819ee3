package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/EsHomes/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ReviewRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReviewRepo(db *dbpg.DB) *ReviewRepository {
	return &ReviewRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	query := `INSERT INTO reviews (id, user_id, apartment_id, booking_id, rating, cleanliness_rating,
			  location_rating, value_rating, comment, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query, rv.ID, rv.UserID, rv.ApartmentID, rv.BookingID,
		rv.Rating, rv.CleanlinessRating, rv.LocationRating, rv.ValueRating,
		rv.Comment, rv.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrAlreadyReviewed
		}
		return fmt.Errorf("insert review: %w", err)
	}

	return nil
}

func (r *ReviewRepository) ListByApartment(ctx context.Context, apartmentID string) ([]*domain.Review, error) {
	query := `SELECT id, user_id, apartment_id, COALESCE(booking_id::text, ''), rating,
			         cleanliness_rating, location_rating, value_rating, comment, created_at
			  FROM reviews
			  WHERE apartment_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, apartmentID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var res []*domain.Review
	for rows.Next() {
		var rv domain.Review
		if err = rows.Scan(
			&rv.ID, &rv.UserID, &rv.ApartmentID, &rv.BookingID, &rv.Rating,
			&rv.CleanlinessRating, &rv.LocationRating, &rv.ValueRating,
			&rv.Comment, &rv.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		res = append(res, &rv)
	}

	return res, rows.Err()
}
