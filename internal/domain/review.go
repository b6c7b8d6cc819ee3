package domain

import "time"

type Review struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	ApartmentID       string    `json:"apartment_id"`
	BookingID         string    `json:"booking_id"`
	Rating            int       `json:"rating"`
	CleanlinessRating int       `json:"cleanliness_rating"`
	LocationRating    int       `json:"location_rating"`
	ValueRating       int       `json:"value_rating"`
	Comment           string    `json:"comment"`
	CreatedAt         time.Time `json:"created_at"`
}

type CreateReviewInput struct {
	BookingID         string
	UserID            string
	Rating            int
	CleanlinessRating int
	LocationRating    int
	ValueRating       int
	Comment           string
}

const (
	MinRating = 1
	MaxRating = 5
)
