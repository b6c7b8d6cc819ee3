package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stpnv0/EsHomes/internal/domain"
	"github.com/stpnv0/EsHomes/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type CatalogSvc interface {
	List(ctx context.Context, f domain.ApartmentFilter) ([]*domain.Apartment, error)
	Get(ctx context.Context, id string) (*domain.Apartment, error)
	SetStatus(ctx context.Context, id string, status domain.ApartmentStatus) error
	Availability(ctx context.Context, id string, from, to time.Time) ([]domain.DateRange, error)
}

type BookingSvc interface {
	Create(ctx context.Context, in domain.CreateBookingInput) (*domain.BookingDetails, error)
	Get(ctx context.Context, id string) (*domain.BookingDetails, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	Cancel(ctx context.Context, bookingID, userID, reason string) (*domain.Booking, error)
}

type PaymentSvc interface {
	Checkout(ctx context.Context, transactionID, userID string) (*domain.PaymentSession, error)
	HandleWebhook(ctx context.Context, rep domain.PaymentReport) (*domain.ReconcileOutcome, error)
	HandleRedirect(ctx context.Context, rep domain.PaymentReport) (*domain.ReconcileOutcome, error)
	Reverify(ctx context.Context, txRef, gatewayTxID string) (*domain.ReconcileOutcome, error)
}

type ReviewSvc interface {
	Create(ctx context.Context, in domain.CreateReviewInput) (*domain.Review, error)
	ListByApartment(ctx context.Context, apartmentID string) ([]*domain.Review, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Options struct {
	// WebhookHash, when set, must match the verif-hash header of webhooks.
	WebhookHash string
	SuccessURL  string
	FailureURL  string
}

type Handler struct {
	catalogService CatalogSvc
	bookingService BookingSvc
	paymentService PaymentSvc
	reviewService  ReviewSvc
	userService    UserSvc
	opts           Options
	validate       *validator.Validate
}

func NewHandler(
	catalogService CatalogSvc,
	bookingService BookingSvc,
	paymentService PaymentSvc,
	reviewService ReviewSvc,
	userService UserSvc,
	opts Options,
) *Handler {
	return &Handler{
		catalogService: catalogService,
		bookingService: bookingService,
		paymentService: paymentService,
		reviewService:  reviewService,
		userService:    userService,
		opts:           opts,
		validate:       validator.New(),
	}
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Username:       req.Username,
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetUser(c *ginext.Context) {
	id, ok := pathUUID(c, "id", "user")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func pathUUID(c *ginext.Context, name, what string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + what + " id"})
		return "", false
	}
	return id, true
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dto.DateLayout, s)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrApartmentNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrTransactionNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrApartmentUnavailable),
		errors.Is(err, domain.ErrDateConflict),
		errors.Is(err, domain.ErrBookingNotPending),
		errors.Is(err, domain.ErrAlreadyReviewed),
		errors.Is(err, domain.ErrReviewNotAllowed),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrPastCheckIn),
		errors.Is(err, domain.ErrOccupancyExceeded),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidRating):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidSignature):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrGatewayUnreachable),
		errors.Is(err, domain.ErrGateway):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "payment gateway unavailable, try again later"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
