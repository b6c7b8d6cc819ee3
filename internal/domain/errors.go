package domain

import "errors"

var (
	ErrApartmentNotFound   = errors.New("apartment not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrTransactionNotFound = errors.New("transaction not found")
)

var (
	ErrApartmentUnavailable = errors.New("apartment is not available for booking")
	ErrDateConflict         = errors.New("apartment is not available for the selected dates")
	ErrBookingNotPending    = errors.New("booking is not in pending status")
	ErrAlreadyReviewed      = errors.New("booking has already been reviewed")
	ErrReviewNotAllowed     = errors.New("booking cannot be reviewed")
)

var (
	ErrUsernameTaken = errors.New("username or email is already taken")
)

var (
	ErrValidation        = errors.New("validation error")
	ErrInvalidDateRange  = errors.New("check-out date must be after check-in date")
	ErrPastCheckIn       = errors.New("check-in date cannot be in the past")
	ErrOccupancyExceeded = errors.New("number of guests exceeds maximum occupancy")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
)

var (
	ErrGatewayUnreachable = errors.New("payment gateway unreachable")
	ErrGateway            = errors.New("payment gateway error")
)

var (
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrForbidden        = errors.New("forbidden")
)
