package routes

import (
	"net/http"
	"time"

	"tidyhouse/handlers"
	"tidyhouse/middleware"
	"tidyhouse/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterQuoteRoutes registers the stateless price preview endpoints.
func RegisterQuoteRoutes(r *gin.Engine) {
	api := r.Group("/api/quote")
	{
		api.POST("", handlers.PreviewQuote)
		api.GET("/addons", handlers.ListAddOns)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking session flow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.POST("/session", hb.Booking.StartSession)
		bookingGroup.GET("/session/:sessionID", hb.Booking.GetSession)
		bookingGroup.PATCH("/session/:sessionID/field", hb.Booking.EditField)
		bookingGroup.POST("/session/:sessionID/addons/:addOnID", hb.Booking.ToggleAddOn)
		bookingGroup.POST("/session/:sessionID/next", hb.Booking.NextStep)
		bookingGroup.POST("/session/:sessionID/back", hb.Booking.PrevStep)
		bookingGroup.POST("/session/:sessionID/submit", hb.Booking.SubmitBooking)
	}
}

// RegisterWebhookRoutes registers the Stripe and Twilio callbacks. These are
// authenticated by signature (Stripe) rather than session, so they sit
// outside the /api group.
func RegisterWebhookRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	webhooks := r.Group("/webhooks")
	{
		webhooks.POST("/stripe", hb.StripeWebhook.HandleStripeEvent)
		webhooks.POST("/sms", hb.SMSWebhook.HandleInbound)
	}
}

// RegisterContactRoutes registers the contact form endpoint.
func RegisterContactRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/contact", hb.Contact.SubmitContactForm)
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminKeyMiddleware())
		adminGroup.GET("/bookings", hb.Admin.ListBookings)
		adminGroup.POST("/bookings", hb.Admin.CreateManualBooking)
		adminGroup.DELETE("/bookings/:bookingID", hb.Admin.CancelBooking)
		adminGroup.POST("/sms/test", hb.Admin.SendTestSMS)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Tidy House API",
			"checks":  utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Admin-Key", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterQuoteRoutes(r)
	RegisterBookingRoutes(r, hb)
	RegisterWebhookRoutes(r, hb)
	RegisterContactRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
