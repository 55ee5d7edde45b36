package handlers

import (
	"net/http"
	"time"

	"agrismart/internal/logger"
	"agrismart/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Options tune the HTTP surface. Zero values are valid.
type Options struct {
	// WSInterval is the state push period when the client does not ask for one.
	WSInterval time.Duration
	// Metrics is served on /metrics when set.
	Metrics http.Handler
}

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	opts     Options
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts Options) *Handler {
	if opts.WSInterval <= 0 || opts.WSInterval > maxInterval {
		opts.WSInterval = defaultInterval
	}
	return &Handler{services: services, log: log, opts: opts}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)
	if h.opts.Metrics != nil {
		router.GET("/metrics", gin.WrapH(h.opts.Metrics))
	}

	h.registerAPIRoutes(router)

	// Live dashboard stream (HTTP upgrade) on the same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.GET("/dashboard", h.getDashboard)
		h.registerTelemetryRoutes(api)
		h.registerChartRoutes(api)
		h.registerNotificationRoutes(api)
		h.registerSprayRoutes(api)
		h.registerControlRoutes(api)
		h.registerLogRoutes(api)
	}
}

func (h *Handler) registerTelemetryRoutes(api *gin.RouterGroup) {
	api.GET("/sensors", h.getSensors)
	api.GET("/sensors/history", h.getSensorHistory)
	api.GET("/weather", h.getWeather)
}

func (h *Handler) registerChartRoutes(api *gin.RouterGroup) {
	charts := api.Group("/charts")
	{
		charts.GET("", h.getCharts)
		// Body example: {"key":"usage"}
		charts.POST("/select", h.selectChart)
	}
}

func (h *Handler) registerNotificationRoutes(api *gin.RouterGroup) {
	notes := api.Group("/notifications")
	{
		notes.GET("", h.getNotifications)
		notes.POST("/read", h.markNotificationsRead)
	}
}

func (h *Handler) registerSprayRoutes(api *gin.RouterGroup) {
	spray := api.Group("/spray")
	{
		spray.GET("", h.getSpray)
		spray.POST("/toggle", h.toggleSpray)
		spray.POST("/stop", h.stopSpray)
	}
}

func (h *Handler) registerControlRoutes(api *gin.RouterGroup) {
	api.GET("/mode", h.getMode)
	// Body example: {"enabled":true}
	api.PUT("/mode/auto", h.setAutoMode)
	api.POST("/camera/refresh", h.refreshCamera)
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("", h.getLogs)
	}
}
