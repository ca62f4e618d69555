package handlers

import (
	"net/http"

	"randevio/middleware"
	"randevio/models"
	userService "randevio/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterHandler handles account registration.
func RegisterHandler(svc userService.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Name     string `json:"name" binding:"required"`
			Email    string `json:"email" binding:"required,email"`
			Phone    string `json:"phone"`
			Password string `json:"password" binding:"required,min=8"`
			Role     string `json:"role"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		user := models.User{Name: req.Name, Email: req.Email, Phone: req.Phone, Role: req.Role}
		auth, err := svc.Register(user, req.Password)
		if err != nil {
			zap.L().Error("Registration failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, auth)
	}
}

// LoginHandler handles credential authentication.
func LoginHandler(svc userService.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		auth, err := svc.Authenticate(req.Email, req.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, auth)
	}
}

// MeHandler returns the authenticated account.
func MeHandler(svc userService.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := svc.GetByID(c.GetString(middleware.CtxUserID))
		if err != nil || user == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// UpdateFCMTokenHandler stores the device push token.
func UpdateFCMTokenHandler(svc userService.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Token string `json:"token" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		if err := svc.UpdateFCMToken(c.GetString(middleware.CtxUserID), req.Token); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// LogoutHandler revokes the current token.
func LogoutHandler(svc userService.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Revoke(c.GetString(middleware.CtxUserID)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
