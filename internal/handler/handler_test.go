package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/EsHomes/internal/domain"
	"github.com/stpnv0/EsHomes/internal/handler/dto"
	hmocks "github.com/stpnv0/EsHomes/internal/handler/mocks"
	"github.com/stpnv0/EsHomes/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type services struct {
	catalog  *hmocks.MockCatalogSvc
	bookings *hmocks.MockBookingSvc
	payments *hmocks.MockPaymentSvc
	reviews  *hmocks.MockReviewSvc
	users    *hmocks.MockUserSvc
}

const testWebhookHash = "s3cret"

func setupRouter(t *testing.T) (services, http.Handler) {
	t.Helper()
	s := services{
		catalog:  hmocks.NewMockCatalogSvc(t),
		bookings: hmocks.NewMockBookingSvc(t),
		payments: hmocks.NewMockPaymentSvc(t),
		reviews:  hmocks.NewMockReviewSvc(t),
		users:    hmocks.NewMockUserSvc(t),
	}

	h := NewHandler(s.catalog, s.bookings, s.payments, s.reviews, s.users, Options{
		WebhookHash: testWebhookHash,
		SuccessURL:  "/thank-you",
		FailureURL:  "/profile",
	})

	r := router.InitRouter("test", h)

	return s, r
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func sampleDetails() *domain.BookingDetails {
	bookingID := uuid.New().String()
	return &domain.BookingDetails{
		Booking: domain.Booking{
			ID:          bookingID,
			ApartmentID: uuid.New().String(),
			UserID:      uuid.New().String(),
			CheckIn:     time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
			CheckOut:    time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC),
			Guests:      2,
			TotalPrice:  decimal.RequireFromString("300"),
			Status:      domain.BookingStatusPending,
			CreatedAt:   time.Now(),
		},
		Transaction: domain.Transaction{
			ID:        uuid.New().String(),
			BookingID: &bookingID,
			Amount:    decimal.RequireFromString("300"),
			TxRef:     "ESHOMES-BKG-" + bookingID + "-0A1B2C3D4E",
			Status:    domain.TransactionStatusPending,
		},
	}
}

// --- Apartments ---

func TestHandler_ListApartments_Filters(t *testing.T) {
	s, r := setupRouter(t)

	s.catalog.EXPECT().List(mock.Anything, mock.MatchedBy(func(f domain.ApartmentFilter) bool {
		return f.Bedrooms != nil && *f.Bedrooms == 2 &&
			f.MaxPrice != nil && f.MaxPrice.Equal(decimal.RequireFromString("150.50")) &&
			f.FeaturedOnly
	})).Return([]*domain.Apartment{{
		ID:            "a1",
		Name:          "Lekki Loft",
		PricePerNight: decimal.RequireFromString("100"),
		Bathrooms:     decimal.RequireFromString("1.5"),
		Status:        domain.ApartmentStatusAvailable,
	}}, nil)

	w := doJSON(r, http.MethodGet, "/api/apartments?bedrooms=2&max_price=150.50&featured=true", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ApartmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "100.00", resp[0].PricePerNight)
	assert.Equal(t, "1.5", resp[0].Bathrooms)
}

func TestHandler_ListApartments_BadFilter(t *testing.T) {
	_, r := setupRouter(t)

	for _, q := range []string{"bedrooms=two", "max_price=cheap", "featured=maybe"} {
		w := doJSON(r, http.MethodGet, "/api/apartments?"+q, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}

func TestHandler_GetApartment_NotFound(t *testing.T) {
	s, r := setupRouter(t)

	id := uuid.New().String()
	s.catalog.EXPECT().Get(mock.Anything, id).Return(nil, domain.ErrApartmentNotFound)

	w := doJSON(r, http.MethodGet, "/api/apartments/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetApartment_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/apartments/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SetApartmentStatus_ReservedRejected(t *testing.T) {
	s, r := setupRouter(t)

	id := uuid.New().String()
	s.catalog.EXPECT().SetStatus(mock.Anything, id, domain.ApartmentStatusReserved).Return(domain.ErrInvalidStatus)

	w := doJSON(r, http.MethodPatch, "/api/apartments/"+id+"/status", dto.SetApartmentStatusRequest{Status: "reserved"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetAvailability(t *testing.T) {
	s, r := setupRouter(t)

	id := uuid.New().String()
	from := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)
	s.catalog.EXPECT().Availability(mock.Anything, id, from, to).Return([]domain.DateRange{{
		CheckIn:  time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2025, 7, 13, 0, 0, 0, 0, time.UTC),
	}}, nil)

	w := doJSON(r, http.MethodGet, "/api/apartments/"+id+"/availability?from=2025-07-01&to=2025-07-31", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Booked, 1)
	assert.Equal(t, "2025-07-10", resp.Booked[0].CheckIn)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	s, r := setupRouter(t)

	details := sampleDetails()
	apartmentID := details.Booking.ApartmentID
	userID := details.Booking.UserID

	s.bookings.EXPECT().Create(mock.Anything, domain.CreateBookingInput{
		ApartmentID:     apartmentID,
		UserID:          userID,
		CheckIn:         time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:        time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC),
		Guests:          2,
		SpecialRequests: "late arrival",
	}).Return(details, nil)

	w := doJSON(r, http.MethodPost, "/api/apartments/"+apartmentID+"/bookings", dto.CreateBookingRequest{
		UserID:          userID,
		CheckIn:         "2025-06-10",
		CheckOut:        "2025-06-13",
		Guests:          2,
		SpecialRequests: "late arrival",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "300.00", resp.Booking.TotalPrice)
	assert.Equal(t, "pending", resp.Booking.Status)
	require.NotNil(t, resp.Transaction)
	assert.Equal(t, details.Transaction.TxRef, resp.Transaction.TxRef)
	assert.Equal(t, "300.00", resp.Transaction.Amount)
}

func TestHandler_CreateBooking_BadDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/apartments/"+uuid.New().String()+"/bookings", dto.CreateBookingRequest{
		UserID:   uuid.New().String(),
		CheckIn:  "10/06/2025",
		CheckOut: "2025-06-13",
		Guests:   1,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_ErrorMapping(t *testing.T) {
	cases := map[error]int{
		domain.ErrDateConflict:         http.StatusConflict,
		domain.ErrApartmentUnavailable: http.StatusConflict,
		domain.ErrInvalidDateRange:     http.StatusBadRequest,
		domain.ErrPastCheckIn:          http.StatusBadRequest,
		domain.ErrOccupancyExceeded:    http.StatusBadRequest,
		domain.ErrApartmentNotFound:    http.StatusNotFound,
	}

	for svcErr, code := range cases {
		t.Run(svcErr.Error(), func(t *testing.T) {
			s, r := setupRouter(t)
			s.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, svcErr)

			w := doJSON(r, http.MethodPost, "/api/apartments/"+uuid.New().String()+"/bookings", dto.CreateBookingRequest{
				UserID:   uuid.New().String(),
				CheckIn:  "2025-06-10",
				CheckOut: "2025-06-13",
				Guests:   1,
			})

			assert.Equal(t, code, w.Code)
		})
	}
}

func TestHandler_CancelBooking_NotPending(t *testing.T) {
	s, r := setupRouter(t)

	id, userID := uuid.New().String(), uuid.New().String()
	s.bookings.EXPECT().Cancel(mock.Anything, id, userID, "").Return(nil, domain.ErrBookingNotPending)

	w := doJSON(r, http.MethodPost, "/api/bookings/"+id+"/cancel", dto.CancelBookingRequest{UserID: userID})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetBooking(t *testing.T) {
	s, r := setupRouter(t)

	details := sampleDetails()
	s.bookings.EXPECT().Get(mock.Anything, details.Booking.ID).Return(details, nil)

	w := doJSON(r, http.MethodGet, "/api/bookings/"+details.Booking.ID, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetUserBookings(t *testing.T) {
	s, r := setupRouter(t)

	userID := uuid.New().String()
	d := sampleDetails()
	s.bookings.EXPECT().ListByUser(mock.Anything, userID).Return([]*domain.Booking{&d.Booking}, nil)

	w := doJSON(r, http.MethodGet, "/api/users/"+userID+"/bookings", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_CreateReview_Forbidden(t *testing.T) {
	s, r := setupRouter(t)

	s.reviews.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrForbidden)

	w := doJSON(r, http.MethodPost, "/api/bookings/"+uuid.New().String()+"/reviews", dto.CreateReviewRequest{
		UserID: uuid.New().String(), Rating: 5, CleanlinessRating: 5, LocationRating: 5, ValueRating: 5, Comment: "Great",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Payments ---

func webhookBody(status string) string {
	return `{"event":"charge.completed","data":{"id":4421,"tx_ref":"ESHOMES-BKG-1-0A1B2C3D4E","status":"` + status + `","amount":300,"currency":"NGN"}}`
}

func postWebhook(r http.Handler, body, hash string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if hash != "" {
		req.Header.Set("verif-hash", hash)
	}
	r.ServeHTTP(w, req)
	return w
}

func outcome(status domain.TransactionStatus, reason string, replayed bool) *domain.ReconcileOutcome {
	return &domain.ReconcileOutcome{
		Transaction: &domain.Transaction{TxRef: "ESHOMES-BKG-1-0A1B2C3D4E", Status: status},
		Reason:      reason,
		Replayed:    replayed,
	}
}

func TestHandler_Webhook_Completed(t *testing.T) {
	s, r := setupRouter(t)

	s.payments.EXPECT().HandleWebhook(mock.Anything, domain.PaymentReport{
		Event:         "charge.completed",
		TxRef:         "ESHOMES-BKG-1-0A1B2C3D4E",
		GatewayTxID:   "4421",
		Status:        "successful",
		Authenticated: true,
	}).Return(outcome(domain.TransactionStatusCompleted, "", false), nil)

	w := postWebhook(r, webhookBody("successful"), testWebhookHash)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReconcileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "completed", resp.Status)
	assert.False(t, resp.Replayed)
}

func TestHandler_Webhook_Replayed(t *testing.T) {
	s, r := setupRouter(t)

	s.payments.EXPECT().HandleWebhook(mock.Anything, mock.Anything).
		Return(outcome(domain.TransactionStatusCompleted, "", true), nil)

	w := postWebhook(r, webhookBody("successful"), testWebhookHash)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"replayed":true`)
}

func TestHandler_Webhook_VerificationMismatch(t *testing.T) {
	s, r := setupRouter(t)

	s.payments.EXPECT().HandleWebhook(mock.Anything, mock.Anything).
		Return(outcome(domain.TransactionStatusDeclined, "amount 299.99 does not match 300", false), nil)

	w := postWebhook(r, webhookBody("successful"), testWebhookHash)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "declined")
}

func TestHandler_Webhook_FailedPaymentAccepted(t *testing.T) {
	s, r := setupRouter(t)

	s.payments.EXPECT().HandleWebhook(mock.Anything, mock.Anything).
		Return(outcome(domain.TransactionStatusDeclined, "payment failed", false), nil)

	w := postWebhook(r, webhookBody("failed"), testWebhookHash)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Webhook_BadSignature(t *testing.T) {
	_, r := setupRouter(t)

	for _, hash := range []string{"", "wrong"} {
		w := postWebhook(r, webhookBody("successful"), hash)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}
}

func TestHandler_Webhook_Malformed(t *testing.T) {
	_, r := setupRouter(t)

	bodies := []string{
		`not json`,
		`{"event":"charge.completed"}`,
		`{"event":"charge.completed","data":{"id":1,"status":"successful"}}`,
	}
	for _, b := range bodies {
		w := postWebhook(r, b, testWebhookHash)
		assert.Equal(t, http.StatusBadRequest, w.Code, b)
	}
}

func TestHandler_Webhook_ErrorMapping(t *testing.T) {
	cases := map[error]int{
		domain.ErrTransactionNotFound: http.StatusNotFound,
		domain.ErrGatewayUnreachable:  http.StatusBadGateway,
		domain.ErrGateway:             http.StatusBadGateway,
		domain.ErrInvalidStatus:       http.StatusBadRequest,
	}

	for svcErr, code := range cases {
		t.Run(svcErr.Error(), func(t *testing.T) {
			s, r := setupRouter(t)
			s.payments.EXPECT().HandleWebhook(mock.Anything, mock.Anything).Return(nil, svcErr)

			w := postWebhook(r, webhookBody("successful"), testWebhookHash)

			assert.Equal(t, code, w.Code)
		})
	}
}

func TestHandler_Callback_SuccessRedirect(t *testing.T) {
	s, r := setupRouter(t)

	s.payments.EXPECT().HandleRedirect(mock.Anything, domain.PaymentReport{
		TxRef:       "ESHOMES-BKG-1-0A1B2C3D4E",
		GatewayTxID: "4421",
		Status:      "successful",
	}).Return(outcome(domain.TransactionStatusCompleted, "", false), nil)

	w := doJSON(r, http.MethodGet,
		"/api/payments/callback?status=successful&tx_ref=ESHOMES-BKG-1-0A1B2C3D4E&transaction_id=4421", nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/thank-you?tx_ref=ESHOMES-BKG-1-0A1B2C3D4E", w.Header().Get("Location"))
}

func TestHandler_Callback_CancelledRedirect(t *testing.T) {
	s, r := setupRouter(t)

	s.payments.EXPECT().HandleRedirect(mock.Anything, mock.Anything).
		Return(outcome(domain.TransactionStatusDeclined, "payment was cancelled", false), nil)

	w := doJSON(r, http.MethodGet, "/api/payments/callback?status=cancelled&tx_ref=ESHOMES-BKG-1-0A1B2C3D4E", nil)

	assert.Equal(t, http.StatusFound, w.Code)
	loc, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/profile", loc.Path)
	assert.Equal(t, "payment was cancelled", loc.Query().Get("error"))
}

func TestHandler_Callback_GatewayErrorRedirect(t *testing.T) {
	s, r := setupRouter(t)

	s.payments.EXPECT().HandleRedirect(mock.Anything, mock.Anything).Return(nil, domain.ErrGatewayUnreachable)

	w := doJSON(r, http.MethodGet, "/api/payments/callback?status=successful&tx_ref=x&transaction_id=1", nil)

	assert.Equal(t, http.StatusFound, w.Code)
	loc, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/profile", loc.Path)
	assert.Contains(t, loc.Query().Get("error"), "contact support")
}

func TestHandler_Checkout(t *testing.T) {
	s, r := setupRouter(t)

	txID, userID := uuid.New().String(), uuid.New().String()
	s.payments.EXPECT().Checkout(mock.Anything, txID, userID).Return(&domain.PaymentSession{
		PublicKey: "pk_test",
		TxRef:     "ESHOMES-BKG-1-0A1B2C3D4E",
		Amount:    decimal.RequireFromString("300"),
		Currency:  "NGN",
		Customer:  domain.Customer{Name: "Ada Obi", Email: "ada@example.com"},
	}, nil)

	w := doJSON(r, http.MethodGet, "/api/transactions/"+txID+"/checkout?user_id="+userID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CheckoutResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "300.00", resp.Amount)
	assert.Equal(t, "ada@example.com", resp.Customer.Email)
}

func TestHandler_Checkout_MissingUser(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/transactions/"+uuid.New().String()+"/checkout", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_VerifyTransaction(t *testing.T) {
	s, r := setupRouter(t)

	s.payments.EXPECT().Reverify(mock.Anything, "ESHOMES-BKG-1-0A1B2C3D4E", "4421").
		Return(outcome(domain.TransactionStatusCompleted, "", false), nil)

	w := doJSON(r, http.MethodPost, "/api/transactions/ESHOMES-BKG-1-0A1B2C3D4E/verify",
		dto.VerifyTransactionRequest{TransactionID: "4421"})

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	s, r := setupRouter(t)

	user := &domain.User{ID: uuid.New().String(), Username: "ada", Email: "ada@example.com", CreatedAt: time.Now()}
	s.users.EXPECT().Create(mock.Anything, domain.CreateUserInput{Username: "ada", Email: "ada@example.com"}).Return(user, nil)

	w := doJSON(r, http.MethodPost, "/api/users", dto.CreateUserRequest{Username: "ada", Email: "ada@example.com"})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateUser_Taken(t *testing.T) {
	s, r := setupRouter(t)

	s.users.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrUsernameTaken)

	w := doJSON(r, http.MethodPost, "/api/users", dto.CreateUserRequest{Username: "ada", Email: "ada@example.com"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateUser_BadEmail(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/users", dto.CreateUserRequest{Username: "ada", Email: "nope"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListUsers(t *testing.T) {
	s, r := setupRouter(t)

	s.users.EXPECT().List(mock.Anything).Return([]*domain.User{{ID: "u1"}, {ID: "u2"}}, nil)

	w := doJSON(r, http.MethodGet, "/api/users", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_GetUser(t *testing.T) {
	s, r := setupRouter(t)

	id := uuid.New().String()
	s.users.EXPECT().GetByID(mock.Anything, id).Return(&domain.User{ID: id, Username: "ada"}, nil)

	w := doJSON(r, http.MethodGet, "/api/users/"+id, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ada", resp.Username)
}

func TestHandler_GetUser_NotFound(t *testing.T) {
	s, r := setupRouter(t)

	id := uuid.New().String()
	s.users.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrUserNotFound)

	w := doJSON(r, http.MethodGet, "/api/users/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
