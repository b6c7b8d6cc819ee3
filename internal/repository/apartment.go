package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/EsHomes/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const apartmentColumns = `id, name, apartment_type, description, price_per_night, size_sqft,
	max_occupancy, bedrooms, bathrooms, status, featured, created_at, updated_at`

type ApartmentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewApartmentRepo(db *dbpg.DB) *ApartmentRepository {
	return &ApartmentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ApartmentRepository) GetByID(ctx context.Context, id string) (*domain.Apartment, error) {
	query := `SELECT ` + apartmentColumns + ` FROM apartments WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get apartment: %w", err)
	}

	a, err := scanApartment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrApartmentNotFound
		}
		return nil, fmt.Errorf("scan apartment: %w", err)
	}

	return a, nil
}

// List returns bookable apartments matching the filter, featured first.
func (r *ApartmentRepository) List(ctx context.Context, f domain.ApartmentFilter) ([]*domain.Apartment, error) {
	conds := []string{"status = ANY($1)"}
	args := []any{pq.Array(domain.BookableStatuses)}

	if f.Bedrooms != nil {
		args = append(args, *f.Bedrooms)
		conds = append(conds, fmt.Sprintf("bedrooms = $%d", len(args)))
	}
	if f.MaxPrice != nil {
		args = append(args, *f.MaxPrice)
		conds = append(conds, fmt.Sprintf("price_per_night <= $%d", len(args)))
	}
	if f.FeaturedOnly {
		conds = append(conds, "featured")
	}

	query := `SELECT ` + apartmentColumns + `
			  FROM apartments
			  WHERE ` + strings.Join(conds, " AND ") + `
			  ORDER BY featured DESC, created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list apartments: %w", err)
	}
	defer rows.Close()

	var res []*domain.Apartment
	for rows.Next() {
		a, err := scanApartment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan apartment: %w", err)
		}
		res = append(res, a)
	}

	return res, rows.Err()
}

func (r *ApartmentRepository) SetStatus(ctx context.Context, id string, status domain.ApartmentStatus) error {
	query := `UPDATE apartments SET status = $2, updated_at = NOW() WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return fmt.Errorf("update apartment status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("apartment rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrApartmentNotFound
	}

	return nil
}

// BookedRanges returns the active booking intervals intersecting [from, to).
func (r *ApartmentRepository) BookedRanges(ctx context.Context, id string, from, to time.Time) ([]domain.DateRange, error) {
	query := `SELECT check_in, check_out
			  FROM bookings
			  WHERE apartment_id = $1
			    AND status = ANY($2)
			    AND check_in < $4
			    AND check_out > $3
			  ORDER BY check_in`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, id, pq.Array(domain.ActiveStatuses), from, to)
	if err != nil {
		return nil, fmt.Errorf("list booked ranges: %w", err)
	}
	defer rows.Close()

	res := make([]domain.DateRange, 0)
	for rows.Next() {
		var dr domain.DateRange
		if err = rows.Scan(&dr.CheckIn, &dr.CheckOut); err != nil {
			return nil, fmt.Errorf("scan booked range: %w", err)
		}
		res = append(res, dr)
	}

	return res, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanApartment(s scanner) (*domain.Apartment, error) {
	var a domain.Apartment
	if err := s.Scan(
		&a.ID, &a.Name, &a.Type, &a.Description, &a.PricePerNight, &a.SizeSqft,
		&a.MaxOccupancy, &a.Bedrooms, &a.Bathrooms, &a.Status, &a.Featured,
		&a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}
