package handlers

import (
	"net/http"

	"randevio/models"
	businessService "randevio/services/business"

	"github.com/gin-gonic/gin"
)

// AddServiceHandler adds a service to the owner's catalogue.
func AddServiceHandler(svc businessService.BusinessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		business := ownBusiness(c, svc)
		if business == nil {
			return
		}
		var req models.Service
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		service, err := svc.AddService(business.ID, req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, service)
	}
}

// ListServicesHandler lists the owner's catalogue.
func ListServicesHandler(svc businessService.BusinessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		business := ownBusiness(c, svc)
		if business == nil {
			return
		}
		services, err := svc.ListServices(business.ID, false)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"services": services})
	}
}

// UpdateServiceHandler updates a catalogue entry.
func UpdateServiceHandler(svc businessService.BusinessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		business := ownBusiness(c, svc)
		if business == nil {
			return
		}
		var req models.Service
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		req.ID = c.Param("id")
		if err := svc.UpdateService(business.ID, req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// DeleteServiceHandler removes a catalogue entry.
func DeleteServiceHandler(svc businessService.BusinessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		business := ownBusiness(c, svc)
		if business == nil {
			return
		}
		if err := svc.DeleteService(business.ID, c.Param("id")); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// AddStaffHandler adds a staff member.
func AddStaffHandler(svc businessService.BusinessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		business := ownBusiness(c, svc)
		if business == nil {
			return
		}
		var req models.Staff
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		staff, err := svc.AddStaff(business.ID, req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, staff)
	}
}

// ListStaffHandler lists staff members.
func ListStaffHandler(svc businessService.BusinessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		business := ownBusiness(c, svc)
		if business == nil {
			return
		}
		staff, err := svc.ListStaff(business.ID, false)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"staff": staff})
	}
}

// UpdateStaffHandler updates a staff member.
func UpdateStaffHandler(svc businessService.BusinessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		business := ownBusiness(c, svc)
		if business == nil {
			return
		}
		var req models.Staff
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		req.ID = c.Param("id")
		if err := svc.UpdateStaff(business.ID, req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// DeleteStaffHandler removes a staff member.
func DeleteStaffHandler(svc businessService.BusinessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		business := ownBusiness(c, svc)
		if business == nil {
			return
		}
		if err := svc.DeleteStaff(business.ID, c.Param("id")); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
