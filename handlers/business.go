package handlers

import (
	"net/http"

	"randevio/middleware"
	"randevio/models"
	businessService "randevio/services/business"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ownBusiness resolves the authenticated owner's business or aborts with 404.
func ownBusiness(c *gin.Context, svc businessService.BusinessService) *models.Business {
	business, err := svc.GetByOwner(c.GetString(middleware.CtxUserID))
	if err != nil {
		zap.L().Error("Failed to resolve owner business", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load business"})
		return nil
	}
	if business == nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "No business registered for this account"})
		return nil
	}
	return business
}

// CreateBusinessHandler registers the owner's business.
func CreateBusinessHandler(svc businessService.BusinessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.Business
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		req.OwnerID = c.GetString(middleware.CtxUserID)

		business, err := svc.Create(req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, business)
	}
}

// GetMyBusinessHandler returns the owner's business profile.
func GetMyBusinessHandler(svc businessService.BusinessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		business := ownBusiness(c, svc)
		if business == nil {
			return
		}
		c.JSON(http.StatusOK, business)
	}
}

// UpdateBusinessHandler patches the owner's business profile.
func UpdateBusinessHandler(svc businessService.BusinessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		business := ownBusiness(c, svc)
		if business == nil {
			return
		}
		var req businessService.UpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		if err := svc.Update(business.ID, req); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// SetWorkingHoursHandler replaces the weekly schedule.
func SetWorkingHoursHandler(svc businessService.BusinessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		business := ownBusiness(c, svc)
		if business == nil {
			return
		}
		var req struct {
			WorkingHours []models.WorkingHour `json:"working_hours" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		if err := svc.SetWorkingHours(business.ID, req.WorkingHours); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
