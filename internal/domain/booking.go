package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// ActiveStatuses hold dates on the apartment calendar.
var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

type Booking struct {
	ID                 string          `json:"id"`
	UserID             string          `json:"user_id"`
	ApartmentID        string          `json:"apartment_id"`
	CheckIn            time.Time       `json:"check_in"`
	CheckOut           time.Time       `json:"check_out"`
	Guests             int             `json:"guests"`
	TotalPrice         decimal.Decimal `json:"total_price"`
	Status             BookingStatus   `json:"status"`
	SpecialRequests    string          `json:"special_requests"`
	CancellationReason string          `json:"cancellation_reason"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// Overlaps reports whether the booking intersects [checkIn, checkOut).
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return b.CheckIn.Before(checkOut) && b.CheckOut.After(checkIn)
}

type CreateBookingInput struct {
	ApartmentID     string
	UserID          string
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	SpecialRequests string
}

// BookingDetails is a booking together with the payment transaction created for it.
type BookingDetails struct {
	Booking     Booking     `json:"booking"`
	Transaction Transaction `json:"transaction"`
}

// Date truncates t to its calendar day in UTC.
func Date(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Nights is the whole number of days between the two calendar dates.
func Nights(checkIn, checkOut time.Time) int {
	return int(Date(checkOut).Sub(Date(checkIn)) / (24 * time.Hour))
}

func TotalPrice(pricePerNight decimal.Decimal, nights int) decimal.Decimal {
	return pricePerNight.Mul(decimal.NewFromInt(int64(nights)))
}
