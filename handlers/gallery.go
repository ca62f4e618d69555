package handlers

import (
	"net/http"

	businessService "randevio/services/business"
	mediaService "randevio/services/media"

	"github.com/gin-gonic/gin"
)

// UploadImageHandler uploads a gallery image for the owner's site.
func UploadImageHandler(svc mediaService.MediaService, businesses businessService.BusinessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		business := ownBusiness(c, businesses)
		if business == nil {
			return
		}
		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
			return
		}
		defer file.Close()

		image, err := svc.Upload(business.ID, file, c.PostForm("caption"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, image)
	}
}

// ListGalleryHandler lists the owner's gallery.
func ListGalleryHandler(svc mediaService.MediaService, businesses businessService.BusinessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		business := ownBusiness(c, businesses)
		if business == nil {
			return
		}
		images, err := svc.List(business.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"images": images})
	}
}

// DeleteImageHandler removes a gallery image.
func DeleteImageHandler(svc mediaService.MediaService, businesses businessService.BusinessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		business := ownBusiness(c, businesses)
		if business == nil {
			return
		}
		if err := svc.Delete(business.ID, c.Param("id")); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
