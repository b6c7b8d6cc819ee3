package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/EsHomes/internal/domain"
	"github.com/stpnv0/EsHomes/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const defaultCalendarDays = 90

func (h *Handler) ListApartments(c *ginext.Context) {
	var f domain.ApartmentFilter

	if v := c.Query("bedrooms"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid bedrooms"})
			return
		}
		f.Bedrooms = &n
	}
	if v := c.Query("max_price"); v != "" {
		p, err := decimal.NewFromString(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid max_price"})
			return
		}
		f.MaxPrice = &p
	}
	if v := c.Query("featured"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid featured"})
			return
		}
		f.FeaturedOnly = b
	}

	apartments, err := h.catalogService.List(c.Request.Context(), f)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ApartmentResponse, 0, len(apartments))
	for _, a := range apartments {
		resp = append(resp, dto.ToApartmentResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetApartment(c *ginext.Context) {
	id, ok := pathUUID(c, "id", "apartment")
	if !ok {
		return
	}

	apartment, err := h.catalogService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToApartmentResponse(apartment))
}

func (h *Handler) SetApartmentStatus(c *ginext.Context) {
	id, ok := pathUUID(c, "id", "apartment")
	if !ok {
		return
	}

	var req dto.SetApartmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	status := domain.ApartmentStatus(req.Status)
	if err := h.catalogService.SetStatus(c.Request.Context(), id, status); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"id": id, "status": status})
}

// GetAvailability lists booked date ranges. Without from/to it covers the
// next defaultCalendarDays days.
func (h *Handler) GetAvailability(c *ginext.Context) {
	id, ok := pathUUID(c, "id", "apartment")
	if !ok {
		return
	}

	from := domain.Date(time.Now())
	if v := c.Query("from"); v != "" {
		d, err := parseDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid from date, expected YYYY-MM-DD"})
			return
		}
		from = d
	}
	to := from.AddDate(0, 0, defaultCalendarDays)
	if v := c.Query("to"); v != "" {
		d, err := parseDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid to date, expected YYYY-MM-DD"})
			return
		}
		to = d
	}

	ranges, err := h.catalogService.Availability(c.Request.Context(), id, from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(id, from, to, ranges))
}

func (h *Handler) ListReviews(c *ginext.Context) {
	id, ok := pathUUID(c, "id", "apartment")
	if !ok {
		return
	}

	reviews, err := h.reviewService.ListByApartment(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		resp = append(resp, dto.ToReviewResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}
