package handlers

import (
	"context"
	"net/http"
	"strconv"

	"shareit/middleware"
	"shareit/models"
	"shareit/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the /bookings endpoints.
type BookingHandler struct {
	Service  booking.BookingService
	PageSize int
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(service booking.BookingService, pageSize int) *BookingHandler {
	RegisterValidators()
	return &BookingHandler{Service: service, PageSize: pageSize}
}

// CreateBooking handles POST /bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID := middleware.UserID(c)

	var req models.BookingRequestInput
	if err := c.ShouldBindJSON(&req); err != nil {
		getLogger(c).Warn("invalid booking payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	getLogger(c).Info("create booking", zap.String("userID", userID), zap.String("itemID", req.ItemID))
	view, err := h.Service.CreateBooking(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// DecideBooking handles PATCH /bookings/:bookingId?approved=true|false.
func (h *BookingHandler) DecideBooking(c *gin.Context) {
	userID := middleware.UserID(c)
	bookingID := c.Param("bookingId")

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'approved' must be true or false"})
		return
	}

	getLogger(c).Info("decide booking",
		zap.String("userID", userID), zap.String("bookingID", bookingID), zap.Bool("approved", approved))
	view, err := h.Service.Decide(c.Request.Context(), bookingID, userID, approved)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetBooking handles GET /bookings/:bookingId.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	view, err := h.Service.GetBooking(c.Request.Context(), c.Param("bookingId"), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ListBookerBookings handles GET /bookings.
func (h *BookingHandler) ListBookerBookings(c *gin.Context) {
	h.list(c, h.Service.ListForBooker)
}

// ListOwnerBookings handles GET /bookings/owner.
func (h *BookingHandler) ListOwnerBookings(c *gin.Context) {
	h.list(c, h.Service.ListForOwner)
}

type lister func(ctx context.Context, userID, state string, page models.Page) ([]models.BookingView, error)

func (h *BookingHandler) list(c *gin.Context, fn lister) {
	page, err := pageFromQuery(c, h.PageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	state := c.DefaultQuery("state", "ALL")

	views, err := fn(c.Request.Context(), middleware.UserID(c), state, page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}
