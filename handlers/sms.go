package handlers

import (
	"net/http"

	"tidyhouse/services/sms"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SMSWebhookHandler receives inbound Twilio messages and replies through the
// outbound SMS client. The HTTP response is empty TwiML; replying via the
// REST API keeps the reply path identical to reminders.
type SMSWebhookHandler struct {
	Router *sms.CommandRouter
	Client sms.Client
	Logger *zap.Logger
}

// HandleInbound handles POST /webhooks/sms. Twilio posts form-encoded
// From/Body fields for each inbound message.
func (h *SMSWebhookHandler) HandleInbound(c *gin.Context) {
	from := c.PostForm("From")
	body := c.PostForm("Body")
	if from == "" {
		c.String(http.StatusBadRequest, "missing From")
		return
	}

	reply := h.Router.Handle(c.Request.Context(), from, body)
	if err := h.Client.Send(c.Request.Context(), from, reply); err != nil {
		h.Logger.Error("failed to send SMS reply", zap.String("to", from), zap.Error(err))
	}

	c.Data(http.StatusOK, "text/xml", []byte("<Response></Response>"))
}
