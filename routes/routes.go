package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"skibook/config"
	"skibook/handlers"
	"skibook/utils"
)

// RegisterSessionRoutes registers the lesson catalog endpoints.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/sessions")
	{
		// Public catalog endpoints.
		api.GET("", hb.Sessions.GetAllSessions)
		api.GET("/:id", hb.Sessions.GetSession)

		// Admin endpoints (open for now, authentication comes later).
		api.POST("", hb.Sessions.CreateSession)
		api.PUT("/:id", hb.Sessions.UpdateSession)
		api.DELETE("/:id", hb.Sessions.DeleteSession)
	}
}

// RegisterBookingRoutes registers the booking workflow endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		// Public endpoint.
		api.POST("", hb.Bookings.CreateBooking)

		// Admin endpoints (open for now, authentication comes later).
		api.GET("", hb.Bookings.GetAllBookings)
		api.GET("/stats", hb.Bookings.GetBookingStats)
		api.GET("/:id", hb.Bookings.GetBooking)
		api.PUT("/:id/status", hb.Bookings.UpdateBookingStatus)
		api.DELETE("/:id", hb.Bookings.DeleteBooking)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "Server is running! 🚀",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"services":  utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.FrontendURL, "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterSessionRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "API endpoint not found"})
	})
}
