package handlers

import (
	"net/http"

	"randevio/models"
	businessService "randevio/services/business"
	reviewService "randevio/services/review"

	"github.com/gin-gonic/gin"
)

// CreateReviewHandler records a customer review for a completed appointment,
// addressed by the business's public slug.
func CreateReviewHandler(svc reviewService.ReviewService, businesses businessService.BusinessService) gin.HandlerFunc {
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

		var req models.Review
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		review, err := svc.Create(business.ID, req)
		if err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, review)
	}
}

// ListReviewsHandler lists the owner's reviews, replies included.
func ListReviewsHandler(svc reviewService.ReviewService, businesses businessService.BusinessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		business := ownBusiness(c, businesses)
		if business == nil {
			return
		}
		reviews, err := svc.ListByBusiness(business.ID, false)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"reviews": reviews})
	}
}

// ReplyReviewHandler stores the owner's reply on a review.
func ReplyReviewHandler(svc reviewService.ReviewService, businesses businessService.BusinessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		business := ownBusiness(c, businesses)
		if business == nil {
			return
		}
		var req struct {
			Reply string `json:"reply" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		if err := svc.Reply(business.ID, c.Param("id"), req.Reply); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
