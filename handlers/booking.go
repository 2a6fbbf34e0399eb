package handlers

import (
	"errors"
	"net/http"

	"tidyhouse/services/booking"
	"tidyhouse/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the multi-step booking session over HTTP.
type BookingHandler struct {
	Svc    booking.SessionService
	Logger *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.SessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

func (h *BookingHandler) sessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", "")
	case errors.Is(err, booking.ErrUnknownField), errors.Is(err, booking.ErrUnknownAddOn):
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
	case errors.Is(err, booking.ErrNotFinalStep):
		utils.JSONError(c, http.StatusConflict, "booking form is not on the final step", "")
	case errors.Is(err, booking.ErrSubmitInFlight):
		utils.JSONError(c, http.StatusConflict, "submission already in progress", "")
	default:
		h.Logger.Error("booking session operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "booking session operation failed", err.Error())
	}
}

// StartSession handles POST /api/booking/session.
func (h *BookingHandler) StartSession(c *gin.Context) {
	resp, err := h.Svc.Start(c.Request.Context())
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetSession handles GET /api/booking/session/:sessionID.
func (h *BookingHandler) GetSession(c *gin.Context) {
	resp, err := h.Svc.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EditField handles PATCH /api/booking/session/:sessionID/field.
func (h *BookingHandler) EditField(c *gin.Context) {
	var input struct {
		Field string `json:"field" binding:"required"`
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Svc.EditField(c.Request.Context(), c.Param("sessionID"), input.Field, input.Value)
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ToggleAddOn handles POST /api/booking/session/:sessionID/addons/:addOnID.
func (h *BookingHandler) ToggleAddOn(c *gin.Context) {
	resp, err := h.Svc.ToggleAddOn(c.Request.Context(), c.Param("sessionID"), c.Param("addOnID"))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// NextStep handles POST /api/booking/session/:sessionID/next. A validation
// failure is 422 with per-field messages; the step does not move.
func (h *BookingHandler) NextStep(c *gin.Context) {
	resp, err := h.Svc.Next(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	if len(resp.Errors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PrevStep handles POST /api/booking/session/:sessionID/back.
func (h *BookingHandler) PrevStep(c *gin.Context) {
	resp, err := h.Svc.Back(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SubmitBooking handles POST /api/booking/session/:sessionID/submit. On
// success the response carries the checkout redirect URL.
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	checkoutURL, resp, err := h.Svc.Submit(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	if resp != nil && len(resp.Errors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, resp)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": checkoutURL})
}
