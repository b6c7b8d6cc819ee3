package handler

import (
	"net/http"

	"github.com/stpnv0/EsHomes/internal/domain"
	"github.com/stpnv0/EsHomes/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateBooking(c *ginext.Context) {
	apartmentID, ok := pathUUID(c, "id", "apartment")
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid check_in, expected YYYY-MM-DD"})
		return
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid check_out, expected YYYY-MM-DD"})
		return
	}

	details, err := h.bookingService.Create(c.Request.Context(), domain.CreateBookingInput{
		ApartmentID:     apartmentID,
		UserID:          req.UserID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingDetailsResponse(details))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id, ok := pathUUID(c, "id", "booking")
	if !ok {
		return
	}

	details, err := h.bookingService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingDetailsResponse(details))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id, ok := pathUUID(c, "id", "booking")
	if !ok {
		return
	}

	var req dto.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), id, req.UserID, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) GetUserBookings(c *ginext.Context) {
	userID, ok := pathUUID(c, "id", "user")
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateReview(c *ginext.Context) {
	bookingID, ok := pathUUID(c, "id", "booking")
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	review, err := h.reviewService.Create(c.Request.Context(), domain.CreateReviewInput{
		BookingID:         bookingID,
		UserID:            req.UserID,
		Rating:            req.Rating,
		CleanlinessRating: req.CleanlinessRating,
		LocationRating:    req.LocationRating,
		ValueRating:       req.ValueRating,
		Comment:           req.Comment,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReviewResponse(review))
}
