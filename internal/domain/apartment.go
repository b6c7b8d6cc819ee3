package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ApartmentStatus string

const (
	ApartmentStatusAvailable   ApartmentStatus = "available"
	ApartmentStatusOccupied    ApartmentStatus = "occupied"
	ApartmentStatusMaintenance ApartmentStatus = "maintenance"
	ApartmentStatusReserved    ApartmentStatus = "reserved"
)

func (s ApartmentStatus) Valid() bool {
	switch s {
	case ApartmentStatusAvailable, ApartmentStatusOccupied,
		ApartmentStatusMaintenance, ApartmentStatusReserved:
		return true
	}
	return false
}

// Bookable reports whether the apartment accepts new bookings. A reserved
// apartment still takes bookings for dates that do not overlap its stays.
func (s ApartmentStatus) Bookable() bool {
	return s == ApartmentStatusAvailable || s == ApartmentStatusReserved
}

var BookableStatuses = []ApartmentStatus{ApartmentStatusAvailable, ApartmentStatusReserved}

type Apartment struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Type          string          `json:"apartment_type"`
	Description   string          `json:"description"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
	SizeSqft      int             `json:"size_sqft"`
	MaxOccupancy  int             `json:"max_occupancy"`
	Bedrooms      int             `json:"bedrooms"`
	Bathrooms     decimal.Decimal `json:"bathrooms"`
	Status        ApartmentStatus `json:"status"`
	Featured      bool            `json:"featured"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type ApartmentFilter struct {
	Bedrooms     *int
	MaxPrice     *decimal.Decimal
	FeaturedOnly bool
}

// DateRange is a half-open [CheckIn, CheckOut) interval of calendar days.
type DateRange struct {
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
}
