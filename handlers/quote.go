package handlers

import (
	"net/http"

	"tidyhouse/models"
	"tidyhouse/services/quote"
	"tidyhouse/utils"

	"github.com/gin-gonic/gin"
)

// PreviewQuote handles POST /api/quote. It is stateless: the live price
// widget posts the current configuration on every change and renders the
// returned quote.
func PreviewQuote(c *gin.Context) {
	var cfg models.BookingConfiguration
	if err := c.ShouldBindJSON(&cfg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"quote": quote.Calculate(cfg)})
}

// ListAddOns handles GET /api/quote/addons.
func ListAddOns(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"addOns": quote.Catalog})
}
