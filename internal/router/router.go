package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListApartments(c *ginext.Context)
	GetApartment(c *ginext.Context)
	SetApartmentStatus(c *ginext.Context)
	GetAvailability(c *ginext.Context)
	ListReviews(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	CreateReview(c *ginext.Context)
	GetUserBookings(c *ginext.Context)
	Checkout(c *ginext.Context)
	VerifyTransaction(c *ginext.Context)
	PaymentWebhook(c *ginext.Context)
	PaymentCallback(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetUser(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Apartments
		api.GET("/apartments", h.ListApartments)
		api.GET("/apartments/:id", h.GetApartment)
		api.PATCH("/apartments/:id/status", h.SetApartmentStatus)
		api.GET("/apartments/:id/availability", h.GetAvailability)
		api.GET("/apartments/:id/reviews", h.ListReviews)

		// Bookings
		api.POST("/apartments/:id/bookings", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.POST("/bookings/:id/reviews", h.CreateReview)

		// Payments
		api.GET("/transactions/:id/checkout", h.Checkout)
		// :id is the tx_ref here; gin needs one wildcard name per segment.
		api.POST("/transactions/:id/verify", h.VerifyTransaction)
		api.POST("/payments/webhook", h.PaymentWebhook)
		api.GET("/payments/callback", h.PaymentCallback)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)
		api.GET("/users/:id/bookings", h.GetUserBookings)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
