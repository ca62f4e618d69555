package handlers

import (
	"net/http"

	businessService "randevio/services/business"
	paymentService "randevio/services/payment"

	"github.com/gin-gonic/gin"
)

// CreatePaymentIntentHandler opens a premium-plan payment for the owner.
func CreatePaymentIntentHandler(svc paymentService.PaymentService, businesses businessService.BusinessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		business := ownBusiness(c, businesses)
		if business == nil {
			return
		}
		var req struct {
			Amount   int64  `json:"amount" binding:"required"`
			Currency string `json:"currency"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		intent, err := svc.CreateIntent(business.ID, req.Amount, req.Currency)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, intent)
	}
}
