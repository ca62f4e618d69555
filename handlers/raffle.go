package handlers

import (
	"net/http"

	businessService "randevio/services/business"
	raffleService "randevio/services/raffle"

	"github.com/gin-gonic/gin"
)

// DrawRaffleHandler draws the owner's raffle for a month ("YYYY-MM").
func DrawRaffleHandler(svc raffleService.RaffleService, businesses businessService.BusinessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		business := ownBusiness(c, businesses)
		if business == nil {
			return
		}
		var req struct {
			Month string `json:"month" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		draw, err := svc.DrawMonth(business.ID, req.Month)
		if err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, draw)
	}
}

// ListRafflesHandler lists the owner's past draws.
func ListRafflesHandler(svc raffleService.RaffleService, businesses businessService.BusinessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		business := ownBusiness(c, businesses)
		if business == nil {
			return
		}
		draws, err := svc.ListDraws(business.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"draws": draws})
	}
}
