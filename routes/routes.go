package routes

import (
	"time"

	"shareit/handlers"
	"shareit/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/bookings")
	{
		bookingGroup.Use(middleware.UserIdentityMiddleware(hb.UserIDHeader))
		bookingGroup.POST("", hb.CreateBooking)
		bookingGroup.GET("", hb.ListBookerBookings)
		bookingGroup.GET("/owner", hb.ListOwnerBookings)
		bookingGroup.GET("/:bookingId", hb.GetBooking)
		bookingGroup.PATCH("/:bookingId", hb.DecideBooking)
	}
}

// RegisterItemRoutes sets up item reads annotated with bookings.
func RegisterItemRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	itemGroup := r.Group("/items")
	{
		itemGroup.Use(middleware.UserIdentityMiddleware(hb.UserIDHeader))
		itemGroup.GET("", hb.ListOwnerItems)
		itemGroup.GET("/:itemId", hb.GetItem)
	}
}

// RegisterHealthRoute registers the health-check and metrics endpoints.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health)
	if hb.Metrics != nil {
		r.GET("/metrics", hb.Metrics)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", hb.UserIDHeader},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterItemRoutes(r, hb)
}
