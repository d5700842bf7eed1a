package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"concierge/handlers"
	"concierge/utils"
)

// RegisterResolutionRoutes registers the prompt-resolution endpoints.
func RegisterResolutionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/concierge")
	{
		api.POST("/resolve", hb.ResolveHandler)
		api.POST("/book", hb.BookHandler)
	}
}

// RegisterDirectoryRoutes registers contact-directory and catalog endpoints.
func RegisterDirectoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/contacts", hb.GetContactsHandler)
		api.GET("/contacts/:id/slots", hb.GetContactSlotsHandler)
		api.GET("/services", hb.GetServicesHandler)
	}
}

// RegisterAppointmentRoutes registers appointment endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.GET("", hb.ListAppointmentsHandler)
		api.GET("/:id", hb.GetAppointmentHandler)
		api.DELETE("/:id", hb.CancelAppointmentHandler)
	}
}

// RegisterTraceRoutes registers decision-trace endpoints.
func RegisterTraceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/traces")
	{
		api.GET("", hb.ListTracesHandler)
		api.GET("/:id", hb.GetTraceHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "checks": utils.GetHealthStatus()})
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

	RegisterResolutionRoutes(r, hb)
	RegisterDirectoryRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterTraceRoutes(r, hb)
	RegisterHealthRoute(r)
}
