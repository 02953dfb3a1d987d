package handlers

import (
	"errors"
	"net/http"

	"shareit/services/booking"
	"shareit/utils"

	"github.com/gin-gonic/gin"
)

// statusFor maps a booking error kind to an HTTP status. Forbidden maps to 404
// so that callers cannot probe for bookings they are not allowed to see.
func statusFor(kind booking.ErrorKind) int {
	switch kind {
	case booking.KindNotFound, booking.KindForbidden:
		return http.StatusNotFound
	case booking.KindInvalidState, booking.KindNotAvailable:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as a JSON error response.
func respondError(c *gin.Context, err error) {
	var be *booking.BookingError
	if errors.As(err, &be) {
		utils.JSONError(c, statusFor(be.Kind), be.Message, be.Code)
		return
	}
	getLogger(c).Sugar().Errorf("handlers: unexpected error on %s: %v", c.Request.URL.Path, err)
	utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
}
