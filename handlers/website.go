package handlers

import (
	"net/http"

	websiteService "randevio/services/website"

	"github.com/gin-gonic/gin"
)

// SiteHandler serves the public-site payload for a business slug.
func SiteHandler(svc websiteService.WebsiteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		site, err := svc.BuildSite(c.Param("slug"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if site == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
			return
		}
		c.JSON(http.StatusOK, site)
	}
}
