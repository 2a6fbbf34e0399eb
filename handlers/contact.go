package handlers

import (
	"net/http"

	"tidyhouse/models"
	"tidyhouse/services/notification"
	"tidyhouse/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactHandler forwards contact form submissions to the business inbox.
type ContactHandler struct {
	Mailer *notification.BookingMailer
	Logger *zap.Logger
}

// SubmitContactForm handles POST /api/contact.
func (h *ContactHandler) SubmitContactForm(c *gin.Context) {
	var msg models.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		utils.JSONError(c, http.StatusBadRequest, "name, email and message are required", "")
		return
	}

	if err := h.Mailer.SendContactMessages(c.Request.Context(), msg); err != nil {
		h.Logger.Error("failed to deliver contact message", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to send message", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"sent": true})
}
