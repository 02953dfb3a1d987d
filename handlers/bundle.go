// File: shareit/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// UserIDHeader names the header carrying the caller's user ID.
	UserIDHeader string

	// Booking endpoints
	CreateBooking      gin.HandlerFunc
	DecideBooking      gin.HandlerFunc
	GetBooking         gin.HandlerFunc
	ListBookerBookings gin.HandlerFunc
	ListOwnerBookings  gin.HandlerFunc

	// Item endpoints
	GetItem        gin.HandlerFunc
	ListOwnerItems gin.HandlerFunc

	// Operational endpoints
	Health  gin.HandlerFunc
	Metrics gin.HandlerFunc
}
