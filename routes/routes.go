package routes

import (
	"net/http"
	"time"

	"careindex/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterProviderRoutes registers the provider listing, detail, creation,
// and filtered-search endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/providers")
	{
		api.GET("", hb.ListProvidersHandler)
		api.GET("/:id", hb.GetProviderByIDHandler)
		api.POST("", hb.CreateProviderHandler)
		api.POST("/filter", hb.FilterProvidersHandler)
	}
}

// RegisterReferenceRoutes registers the lookup-list endpoints.
func RegisterReferenceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/specialties", hb.ListSpecialtiesHandler)
	r.GET("/insurance-plans", hb.ListInsurancePlansHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "careindex"})
	})
}

// RegisterMetricsRoute exposes Prometheus metrics.
func RegisterMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterProviderRoutes(r, hb)
	RegisterReferenceRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterMetricsRoute(r)
}
