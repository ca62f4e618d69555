package handlers

import (
	"errors"
	"net/http"

	"randevio/services/availability"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler returns the booked 30-minute slots for a business day.
// businessId and date are required before any computation happens; staffId
// optionally narrows the calendar to one person. A malformed date is the
// caller's fault; anything else is a server-side failure and stays generic.
func AvailabilityHandler(svc availability.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		businessID := c.Query("businessId")
		date := c.Query("date")
		if businessID == "" || date == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "businessId and date are required"})
			return
		}

		day, err := svc.ForDay(businessID, date, c.Query("staffId"))
		if err != nil {
			if errors.Is(err, availability.ErrInvalidDate) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			zap.L().Error("Failed to compute availability",
				zap.String("businessID", businessID),
				zap.String("date", date),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute availability"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"bookedSlots":       day.BookedSlots,
			"totalAppointments": day.TotalAppointments,
		})
	}
}
