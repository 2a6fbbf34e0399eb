package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"tidyhouse/models"
	"tidyhouse/services/booking"
	"tidyhouse/services/sms"
	"tidyhouse/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the key-protected back office: booking list, manual
// bookings, cancellations and an SMS delivery check.
type AdminHandler struct {
	Manager booking.BookingManager
	SMS     sms.Client
	Logger  *zap.Logger
}

// ListBookings handles GET /admin/bookings.
func (h *AdminHandler) ListBookings(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "100"), 10, 64)

	bookings, err := h.Manager.ListBookings(c.Request.Context(), limit)
	if err != nil {
		h.Logger.Error("failed to list bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}

// CreateManualBooking handles POST /admin/bookings for phone orders.
func (h *AdminHandler) CreateManualBooking(c *gin.Context) {
	var input struct {
		models.BookingConfiguration
		Price int `json:"price"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Manager.CreateManualBooking(c.Request.Context(), input.BookingConfiguration, input.Price)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to create booking", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// CancelBooking handles DELETE /admin/bookings/:bookingID.
func (h *AdminHandler) CancelBooking(c *gin.Context) {
	id := c.Param("bookingID")
	if err := h.Manager.CancelBooking(c.Request.Context(), id); err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, "booking not found", "")
			return
		}
		h.Logger.Error("failed to cancel booking", zap.String("booking", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": id})
}

// SendTestSMS handles POST /admin/sms/test. Used to verify the Twilio
// credentials after a config change.
func (h *AdminHandler) SendTestSMS(c *gin.Context) {
	var input struct {
		To   string `json:"to" binding:"required"`
		Body string `json:"body"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.Body == "" {
		input.Body = "Test message from Tidy House."
	}

	if err := h.SMS.Send(c.Request.Context(), input.To, input.Body); err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to send SMS", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"sent": true})
}
