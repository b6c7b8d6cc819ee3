package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EsHomes/internal/domain"
	"github.com/stpnv0/EsHomes/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const defaultCancelReason = "cancelled by guest"

type BookingOptions struct {
	TxRefPrefix string
	PendingTTL  time.Duration
}

type BookingService struct {
	bookingRepo   ports.BookingRepo
	apartmentRepo ports.ApartmentRepo
	txRepo        ports.TransactionRepo
	userRepo      ports.UserRepo
	notifier      ports.BookingNotifier
	opts          BookingOptions
	now           func() time.Time
	logger        logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	apartmentRepo ports.ApartmentRepo,
	txRepo ports.TransactionRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	opts BookingOptions,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:   bookingRepo,
		apartmentRepo: apartmentRepo,
		txRepo:        txRepo,
		userRepo:      userRepo,
		notifier:      notifier,
		opts:          opts,
		now:           time.Now,
		logger:        logger,
	}
}

// Create validates the request, prices the stay and stores a pending booking
// together with its pending payment transaction.
func (s *BookingService) Create(ctx context.Context, in domain.CreateBookingInput) (*domain.BookingDetails, error) {
	checkIn, checkOut := domain.Date(in.CheckIn), domain.Date(in.CheckOut)

	if !checkOut.After(checkIn) {
		return nil, domain.ErrInvalidDateRange
	}
	if checkIn.Before(domain.Date(s.now())) {
		return nil, domain.ErrPastCheckIn
	}
	if in.Guests < 1 {
		return nil, fmt.Errorf("%w: at least one guest is required", domain.ErrValidation)
	}

	apartment, err := s.apartmentRepo.GetByID(ctx, in.ApartmentID)
	if err != nil {
		return nil, fmt.Errorf("check apartment: %w", err)
	}
	if in.Guests > apartment.MaxOccupancy {
		return nil, domain.ErrOccupancyExceeded
	}
	if !apartment.Status.Bookable() {
		return nil, domain.ErrApartmentUnavailable
	}

	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	now := s.now().UTC()
	booking := &domain.Booking{
		ID:              uuid.New().String(),
		UserID:          user.ID,
		ApartmentID:     apartment.ID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          in.Guests,
		TotalPrice:      domain.TotalPrice(apartment.PricePerNight, domain.Nights(checkIn, checkOut)),
		Status:          domain.BookingStatusPending,
		SpecialRequests: in.SpecialRequests,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	tx := &domain.Transaction{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		BookingID: &booking.ID,
		Amount:    booking.TotalPrice,
		TxRef:     domain.NewTxRef(s.opts.TxRefPrefix, booking.ID),
		Status:    domain.TransactionStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err = s.bookingRepo.Create(ctx, booking, tx); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("apartment_id", apartment.ID),
		logger.String("user_id", user.ID),
		logger.String("tx_ref", tx.TxRef),
		logger.String("total_price", booking.TotalPrice.StringFixed(2)),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), user, booking, apartment)

	return &domain.BookingDetails{Booking: *booking, Transaction: *tx}, nil
}

func (s *BookingService) Get(ctx context.Context, id string) (*domain.BookingDetails, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	details := &domain.BookingDetails{Booking: *booking}

	tx, err := s.txRepo.GetByBooking(ctx, id)
	switch {
	case errors.Is(err, domain.ErrTransactionNotFound):
	case err != nil:
		return nil, fmt.Errorf("get transaction: %w", err)
	default:
		details.Transaction = *tx
	}

	return details, nil
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

// Cancel cancels a pending booking on behalf of its owner.
func (s *BookingService) Cancel(ctx context.Context, bookingID, userID, reason string) (*domain.Booking, error) {
	if reason == "" {
		reason = defaultCancelReason
	}

	booking, err := s.bookingRepo.Cancel(ctx, bookingID, userID, reason)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", booking.ID),
		logger.String("user_id", userID),
		logger.String("reason", reason),
	)

	go s.notifyCancelled(context.WithoutCancel(ctx), []*domain.Booking{booking})

	return booking, nil
}

// CancelExpired releases pending bookings whose payment did not arrive within
// the hold TTL.
func (s *BookingService) CancelExpired(ctx context.Context) ([]*domain.Booking, error) {
	cutoff := s.now().UTC().Add(-s.opts.PendingTTL)

	cancelled, err := s.bookingRepo.CancelExpired(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("cancel expired: %w", err)
	}

	if len(cancelled) > 0 {
		s.logger.Info("expired bookings cancelled",
			logger.Int("count", len(cancelled)),
		)

		go s.notifyCancelled(context.WithoutCancel(ctx), cancelled)
	}

	return cancelled, nil
}

// CompleteFinished closes stays whose check-out date has been reached.
func (s *BookingService) CompleteFinished(ctx context.Context) (int64, error) {
	completed, released, err := s.bookingRepo.CompleteFinished(ctx, domain.Date(s.now()))
	if err != nil {
		return completed, fmt.Errorf("complete finished: %w", err)
	}

	if completed > 0 || released > 0 {
		s.logger.Info("finished stays closed",
			logger.Int64("completed", completed),
			logger.Int64("apartments_released", released),
		)
	}

	return completed, nil
}

func (s *BookingService) notifyCancelled(ctx context.Context, bookings []*domain.Booking) {
	for _, b := range bookings {
		user, err := s.userRepo.GetByID(ctx, b.UserID)
		if err != nil {
			s.logger.Error("failed to get user for cancel notification",
				logger.String("user_id", b.UserID),
			)
			continue
		}

		apartment, err := s.apartmentRepo.GetByID(ctx, b.ApartmentID)
		if err != nil {
			s.logger.Error("failed to get apartment for cancel notification",
				logger.String("apartment_id", b.ApartmentID),
			)
			continue
		}

		s.notifier.NotifyBookingCancelled(ctx, user, b, apartment)
	}
}
