package routes

import (
	"net/http"
	"time"

	"randevio/handlers"
	"randevio/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)

		// Protected routes (require authentication).
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.MeHandler)
		api.PUT("/fcm-token", hb.UpdateFCMTokenHandler)
		api.POST("/logout", hb.LogoutHandler)
	}
}

// RegisterBusinessRoutes registers the owner-console endpoints.
func RegisterBusinessRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/business")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireOwner())
	{
		api.POST("", hb.CreateBusinessHandler)
		api.GET("", hb.GetMyBusinessHandler)
		api.PATCH("", hb.UpdateBusinessHandler)
		api.PUT("/working-hours", hb.SetWorkingHoursHandler)

		api.POST("/services", hb.AddServiceHandler)
		api.GET("/services", hb.ListServicesHandler)
		api.PUT("/services/:id", hb.UpdateServiceHandler)
		api.DELETE("/services/:id", hb.DeleteServiceHandler)

		api.POST("/staff", hb.AddStaffHandler)
		api.GET("/staff", hb.ListStaffHandler)
		api.PUT("/staff/:id", hb.UpdateStaffHandler)
		api.DELETE("/staff/:id", hb.DeleteStaffHandler)

		api.GET("/dashboard", hb.DashboardHandler)

		api.GET("/appointments", hb.ListAppointmentsHandler)
		api.PATCH("/appointments/:id/status", hb.UpdateAppointmentStatusHandler)

		api.GET("/reviews", hb.ListReviewsHandler)
		api.POST("/reviews/:id/reply", hb.ReplyReviewHandler)

		api.POST("/gallery", hb.UploadImageHandler)
		api.GET("/gallery", hb.ListGalleryHandler)
		api.DELETE("/gallery/:id", hb.DeleteImageHandler)

		api.POST("/raffles/draw", hb.DrawRaffleHandler)
		api.GET("/raffles", hb.ListRafflesHandler)

		api.POST("/payments/intent", hb.CreatePaymentIntentHandler)

		api.GET("/requests", hb.RequestPoolHandler)
		api.POST("/requests/:id/respond", hb.RespondToRequestHandler)
	}
}

// RegisterRequestRoutes registers the customer-side request endpoints.
func RegisterRequestRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/requests")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		api.POST("", hb.CreateRequestHandler)
		api.GET("/mine", hb.MyRequestsHandler)
		api.GET("/:id/responses", hb.RequestResponsesHandler)
		api.POST("/:id/responses/:responseId/accept", hb.AcceptResponseHandler)
	}
}

// RegisterPublicRoutes registers the unauthenticated site and booking endpoints.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/public")
	{
		api.GET("/sites/:slug", hb.SiteHandler)
		api.GET("/availability", hb.AvailabilityHandler)
		api.POST("/sites/:slug/appointments", hb.BookAppointmentHandler)
		api.POST("/sites/:slug/reviews", hb.CreateReviewHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// SetupRoutes applies CORS and mounts every route group.
func SetupRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterBusinessRoutes(r, hb)
	RegisterRequestRoutes(r, hb)
	RegisterPublicRoutes(r, hb)
	RegisterHealthRoute(r)
}
