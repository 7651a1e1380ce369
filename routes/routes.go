package routes

import (
	"net/http"
	"time"

	"lstours/handlers"
	"lstours/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPackageRoutes registers the tour package endpoints.
func RegisterPackageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/packages")
	{
		api.GET("", hb.ListPackagesHandler)
		api.GET("/featured", hb.GetFeaturedPackagesHandler)
		api.GET("/region/:region", hb.GetPackagesByRegionHandler)
		api.GET("/slug/:slug", hb.GetPackageBySlugHandler)
		api.GET("/slug/:slug/itinerary", hb.GetPackageItineraryHandler)
	}
}

// RegisterDestinationRoutes registers the destination endpoints.
func RegisterDestinationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/destinations")
	{
		api.GET("", hb.ListDestinationsHandler)
		api.GET("/region/:region", hb.GetDestinationsByRegionHandler)
		api.GET("/slug/:slug", hb.GetDestinationBySlugHandler)
	}
}

// RegisterContentRoutes registers the static page content endpoints.
func RegisterContentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/content")
	{
		api.GET("/services", hb.GetServicesHandler)
		api.GET("/testimonials", hb.GetTestimonialsHandler)
	}
}

// RegisterInquiryRoutes registers inquiry submission and WhatsApp handoffs.
func RegisterInquiryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/inquiries")
	{
		api.POST("", hb.SubmitInquiryHandler)
		api.POST("/quote", hb.QuoteLinkHandler)
		api.POST("/reserve/:slug", hb.ReservationLinkHandler)
		api.POST("/custom-trip", hb.TripRequestLinkHandler)
	}
}

// RegisterSessionRoutes registers the session-scoped catalog view state.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/session/:sid")
	{
		api.GET("/view", hb.GetViewHandler)
		api.PUT("/filters", hb.SetFiltersHandler)
		api.DELETE("/filters", hb.ResetFiltersHandler)
		api.PUT("/filters/page", hb.SetPageHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPackageRoutes(r, hb)
	RegisterDestinationRoutes(r, hb)
	RegisterContentRoutes(r, hb)
	RegisterInquiryRoutes(r, hb)
	RegisterSessionRoutes(r, hb)
	RegisterHealthRoute(r)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
}
