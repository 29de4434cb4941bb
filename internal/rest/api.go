package rest

import (
	"net/http"

	"github.com/dfryer1193/agenda/contacts/application"
	"github.com/dfryer1193/agenda/internal/metrics"
	"github.com/dfryer1193/agenda/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewApi builds the engine with middleware and every route registered.
func NewApi(service *application.ContactService, maxImageBytes int64) *gin.Engine {
	router := gin.New()
	router.Use(middleware.LoggingMiddleware())
	router.Use(metrics.RequestMetricsMiddleware())
	router.Use(gin.CustomRecovery(middleware.HandlePanics()))

	metrics.RegisterMetrics()
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	NewContactsHandler(service, maxImageBytes).RegisterRoutes(router)

	return router
}
