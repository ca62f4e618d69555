package handlers

import (
	"net/http"
	"time"

	businessService "randevio/services/business"
	"randevio/services/dashboard"

	"github.com/gin-gonic/gin"
)

// DashboardHandler returns today's counters and their trends against yesterday.
func DashboardHandler(svc dashboard.Service, businesses businessService.BusinessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		business := ownBusiness(c, businesses)
		if business == nil {
			return
		}
		stats, err := svc.Stats(business.ID, time.Now().UTC())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
