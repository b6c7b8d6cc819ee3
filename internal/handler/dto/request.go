package dto

import "encoding/json"

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

type SetApartmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateBookingRequest struct {
	UserID          string `json:"user_id" binding:"required,uuid"`
	CheckIn         string `json:"check_in" binding:"required"`
	CheckOut        string `json:"check_out" binding:"required"`
	Guests          int    `json:"guests" binding:"required"`
	SpecialRequests string `json:"special_requests" binding:"max=2000"`
}

type CancelBookingRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Reason string `json:"reason" binding:"max=500"`
}

type CreateReviewRequest struct {
	UserID            string `json:"user_id" binding:"required,uuid"`
	Rating            int    `json:"rating" binding:"required"`
	CleanlinessRating int    `json:"cleanliness_rating" binding:"required"`
	LocationRating    int    `json:"location_rating" binding:"required"`
	ValueRating       int    `json:"value_rating" binding:"required"`
	Comment           string `json:"comment" binding:"required,max=5000"`
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required,max=50"`
	Email          string `json:"email" binding:"required,email"`
	FirstName      string `json:"first_name" binding:"max=50"`
	LastName       string `json:"last_name" binding:"max=50"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type VerifyTransactionRequest struct {
	TransactionID string `json:"transaction_id" binding:"required"`
}

// WebhookRequest is the gateway's charge notification. Only the fields the
// reconciler needs are decoded.
type WebhookRequest struct {
	Event string      `json:"event" validate:"required"`
	Data  WebhookData `json:"data" validate:"required"`
}

type WebhookData struct {
	ID     json.Number `json:"id" validate:"required"`
	TxRef  string      `json:"tx_ref" validate:"required"`
	Status string      `json:"status" validate:"required"`
}
