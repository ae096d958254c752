package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListBookings(c *ginext.Context)
	CheckBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	GlobalStats(c *ginext.Context)
	EventStats(c *ginext.Context)
	UserBookings(c *ginext.Context)
}

func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api", auth)
	{
		// Bookings
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/check/:eventId", h.CheckBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings", h.CreateBooking)
		api.DELETE("/bookings/:id", h.CancelBooking)

		// Admin statistics
		admin := api.Group("/admin")
		{
			admin.GET("/stats", h.GlobalStats)
			admin.GET("/stats/:eventId", h.EventStats)
			admin.GET("/users/:userId/bookings", h.UserBookings)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
