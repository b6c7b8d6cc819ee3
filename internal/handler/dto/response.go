package dto

import (
	"time"

	"github.com/stpnv0/EsHomes/internal/domain"
)

type ApartmentResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"apartment_type"`
	Description   string `json:"description"`
	PricePerNight string `json:"price_per_night"`
	SizeSqft      int    `json:"size_sqft"`
	MaxOccupancy  int    `json:"max_occupancy"`
	Bedrooms      int    `json:"bedrooms"`
	Bathrooms     string `json:"bathrooms"`
	Status        string `json:"status"`
	Featured      bool   `json:"featured"`
}

type DateRangeResponse struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

type AvailabilityResponse struct {
	ApartmentID string              `json:"apartment_id"`
	From        string              `json:"from"`
	To          string              `json:"to"`
	Booked      []DateRangeResponse `json:"booked"`
}

type BookingResponse struct {
	ID                 string `json:"id"`
	ApartmentID        string `json:"apartment_id"`
	UserID             string `json:"user_id"`
	CheckIn            string `json:"check_in"`
	CheckOut           string `json:"check_out"`
	Guests             int    `json:"guests"`
	TotalPrice         string `json:"total_price"`
	Status             string `json:"status"`
	SpecialRequests    string `json:"special_requests,omitempty"`
	CancellationReason string `json:"cancellation_reason,omitempty"`
	CreatedAt          string `json:"created_at"`
}

type TransactionResponse struct {
	ID          string `json:"id"`
	TxRef       string `json:"tx_ref"`
	Amount      string `json:"amount"`
	Status      string `json:"status"`
	GatewayTxID string `json:"gateway_tx_id,omitempty"`
}

type BookingDetailsResponse struct {
	Booking     BookingResponse      `json:"booking"`
	Transaction *TransactionResponse `json:"transaction,omitempty"`
}

type CheckoutResponse struct {
	PublicKey      string           `json:"public_key"`
	TxRef          string           `json:"tx_ref"`
	Amount         string           `json:"amount"`
	Currency       string           `json:"currency"`
	RedirectURL    string           `json:"redirect_url"`
	PaymentOptions string           `json:"payment_options"`
	Customer       CustomerResponse `json:"customer"`
}

type CustomerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ReconcileResponse struct {
	TxRef    string `json:"tx_ref"`
	Status   string `json:"status"`
	Reason   string `json:"reason,omitempty"`
	Replayed bool   `json:"replayed"`
}

type ReviewResponse struct {
	ID                string `json:"id"`
	UserID            string `json:"user_id"`
	ApartmentID       string `json:"apartment_id"`
	BookingID         string `json:"booking_id,omitempty"`
	Rating            int    `json:"rating"`
	CleanlinessRating int    `json:"cleanliness_rating"`
	LocationRating    int    `json:"location_rating"`
	ValueRating       int    `json:"value_rating"`
	Comment           string `json:"comment"`
	CreatedAt         string `json:"created_at"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	FirstName      string `json:"first_name,omitempty"`
	LastName       string `json:"last_name,omitempty"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToApartmentResponse(a *domain.Apartment) ApartmentResponse {
	return ApartmentResponse{
		ID:            a.ID,
		Name:          a.Name,
		Type:          a.Type,
		Description:   a.Description,
		PricePerNight: a.PricePerNight.StringFixed(2),
		SizeSqft:      a.SizeSqft,
		MaxOccupancy:  a.MaxOccupancy,
		Bedrooms:      a.Bedrooms,
		Bathrooms:     a.Bathrooms.StringFixed(1),
		Status:        string(a.Status),
		Featured:      a.Featured,
	}
}

func ToAvailabilityResponse(apartmentID string, from, to time.Time, ranges []domain.DateRange) AvailabilityResponse {
	booked := make([]DateRangeResponse, 0, len(ranges))
	for _, r := range ranges {
		booked = append(booked, DateRangeResponse{
			CheckIn:  r.CheckIn.Format(DateLayout),
			CheckOut: r.CheckOut.Format(DateLayout),
		})
	}
	return AvailabilityResponse{
		ApartmentID: apartmentID,
		From:        from.Format(DateLayout),
		To:          to.Format(DateLayout),
		Booked:      booked,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:                 b.ID,
		ApartmentID:        b.ApartmentID,
		UserID:             b.UserID,
		CheckIn:            b.CheckIn.Format(DateLayout),
		CheckOut:           b.CheckOut.Format(DateLayout),
		Guests:             b.Guests,
		TotalPrice:         b.TotalPrice.StringFixed(2),
		Status:             string(b.Status),
		SpecialRequests:    b.SpecialRequests,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
	}
}

func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:     t.ID,
		TxRef:  t.TxRef,
		Amount: t.Amount.StringFixed(2),
		Status: string(t.Status),
	}
	if t.GatewayTxID != nil {
		resp.GatewayTxID = *t.GatewayTxID
	}
	return resp
}

func ToBookingDetailsResponse(d *domain.BookingDetails) BookingDetailsResponse {
	resp := BookingDetailsResponse{Booking: ToBookingResponse(&d.Booking)}
	if d.Transaction.ID != "" {
		tx := ToTransactionResponse(&d.Transaction)
		resp.Transaction = &tx
	}
	return resp
}

func ToCheckoutResponse(s *domain.PaymentSession) CheckoutResponse {
	return CheckoutResponse{
		PublicKey:      s.PublicKey,
		TxRef:          s.TxRef,
		Amount:         s.Amount.StringFixed(2),
		Currency:       s.Currency,
		RedirectURL:    s.RedirectURL,
		PaymentOptions: s.PaymentOptions,
		Customer:       CustomerResponse{Name: s.Customer.Name, Email: s.Customer.Email},
	}
}

func ToReconcileResponse(o *domain.ReconcileOutcome) ReconcileResponse {
	return ReconcileResponse{
		TxRef:    o.Transaction.TxRef,
		Status:   string(o.Transaction.Status),
		Reason:   o.Reason,
		Replayed: o.Replayed,
	}
}

func ToReviewResponse(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:                r.ID,
		UserID:            r.UserID,
		ApartmentID:       r.ApartmentID,
		BookingID:         r.BookingID,
		Rating:            r.Rating,
		CleanlinessRating: r.CleanlinessRating,
		LocationRating:    r.LocationRating,
		ValueRating:       r.ValueRating,
		Comment:           r.Comment,
		CreatedAt:         r.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
