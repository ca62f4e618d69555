package handlers

import (
	"net/http"
	"strconv"
	"time"

	appointmentRepo "randevio/database/repository/appointment"
	"randevio/models"
	appointmentService "randevio/services/appointment"
	businessService "randevio/services/business"

	"github.com/gin-gonic/gin"
)

// BookAppointmentHandler creates a public booking against a business's
// calendar, addressed by the business's public slug.
func BookAppointmentHandler(svc appointmentService.AppointmentService, businesses businessService.BusinessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		business, err := businesses.GetBySlug(c.Param("slug"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if business == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
			return
		}

		var req appointmentService.BookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		appointment, err := svc.Book(business, req)
		if err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, appointment)
	}
}

// ListAppointmentsHandler pages through the owner's appointments, optionally
// narrowed to one day or status.
func ListAppointmentsHandler(svc appointmentService.AppointmentService, businesses businessService.BusinessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		business := ownBusiness(c, businesses)
		if business == nil {
			return
		}

		criteria := appointmentRepo.ListCriteria{
			Status: models.AppointmentStatus(c.Query("status")),
		}
		criteria.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
		criteria.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
		if date := c.Query("date"); date != "" {
			day, err := time.ParseInLocation("2006-01-02", date, time.UTC)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date: expected YYYY-MM-DD"})
				return
			}
			criteria.Day = &day
		}

		appointments, pagination, err := svc.List(business.ID, criteria)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"appointments": appointments, "pagination": pagination})
	}
}

// UpdateAppointmentStatusHandler advances an appointment's lifecycle.
func UpdateAppointmentStatusHandler(svc appointmentService.AppointmentService, businesses businessService.BusinessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		business := ownBusiness(c, businesses)
		if business == nil {
			return
		}
		var req struct {
			Status models.AppointmentStatus `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		if err := svc.UpdateStatus(business.ID, c.Param("id"), req.Status); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
