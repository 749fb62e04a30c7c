package routes

import (
	"net/http"
	"time"

	"arakucamp/handlers"
	"arakucamp/middleware"
	"arakucamp/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterContentRoutes registers the public marketing-site endpoints.
func RegisterContentRoutes(r *gin.Engine) {
	api := r.Group("/api/content")
	{
		api.GET("/gallery", handlers.GetGallery)
		api.GET("/testimonials", handlers.GetTestimonials)
		api.GET("/pricing", handlers.GetRateCard)
	}
}

// RegisterSupportRoutes registers the guest inquiry endpoint.
func RegisterSupportRoutes(r *gin.Engine) {
	r.POST("/api/support", handlers.SubmitSupportRequest)
}

// RegisterAdminRoutes sets up endpoints for the staff dashboard.
func RegisterAdminRoutes(r *gin.Engine) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware())
		adminGroup.POST("/gallery", handlers.UploadGalleryImage)
		adminGroup.POST("/testimonials", handlers.AddTestimonial)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterContentRoutes(r)
	RegisterSupportRoutes(r)
	RegisterBookingRoutes(r)
	RegisterAdminRoutes(r)
}
