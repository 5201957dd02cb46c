package handlers

import (
	"htcpcp/internal/logger"
	"htcpcp/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "htcpcp/docs"
)

// HTCPCP extension methods (RFC 2324 §2.1). Gin routes any uppercase token
// method, so these register like ordinary verbs.
const (
	methodBrew     = "BREW"
	methodWhen     = "WHEN"
	methodPropfind = "PROPFIND"
)

// Handler wires the HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), protocolHeaders())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)
	router.GET("/", h.registry)

	// Live registry stream (HTTP upgrade) — same port
	router.GET("/ws", h.wsConnect)

	h.registerPotRoutes(router)

	// BREW against anything that is not a pot resource deserves its 418 here.
	router.NoRoute(h.noRoute)

	return router
}

func (h *Handler) registerPotRoutes(r *gin.Engine) {
	coffee := r.Group("/coffee")
	{
		coffee.Handle(methodBrew, "/:pot_id", h.brewCoffee)
		coffee.POST("/:pot_id", h.brewCoffee) // POST alias per RFC 2324 §2.1.1
		coffee.GET("/:pot_id/status", h.getStatus)
		coffee.GET("/:pot_id/history", h.getHistory)
		coffee.Handle(methodPropfind, "/:pot_id/additions", h.listAdditions)
		coffee.Handle(methodWhen, "/:pot_id/stop-milk", h.stopMilk)
	}

	// RFC 7168 — tea-capable pots answer on tea:// resources.
	tea := r.Group("/tea")
	{
		tea.Handle(methodBrew, "/:pot_id", h.brewTea)
		tea.POST("/:pot_id", h.brewTea)
		tea.GET("/:pot_id/status", h.getStatus)
	}
}
