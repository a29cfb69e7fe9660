package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1. Все маршруты, кроме
// health-check, закрыты аутентификацией по API-ключу.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check без аутентификации
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))

	// Маршруты для управления инцидентами
	incidents := protected.Group("/incidents")
	{
		incidents.POST("", h.createIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.POST("/:id/cancel", h.cancelIncident)
		incidents.GET("/:id/timeline", h.getIncidentTimeline)
	}

	// Маршруты для управления юнитами
	units := protected.Group("/units")
	{
		units.POST("", h.createUnit)
		units.GET("", h.listUnits)
		units.PATCH("/:id/location", h.updateUnitLocation)
		units.PATCH("/:id/status", h.updateUnitStatus)
	}

	// Маршруты диспетчеризации: рекомендации и атомарные назначения
	dispatch := protected.Group("/dispatch")
	{
		dispatch.GET("/recommendations/:incidentId", h.getRecommendations)
		dispatch.POST("/assign", h.assign)
		dispatch.POST("/auto-assign/:incidentId", h.autoAssign)
		dispatch.POST("/acknowledge", h.acknowledge)
		dispatch.POST("/respond", h.respond)
		dispatch.POST("/resolve", h.resolve)
		dispatch.GET("/stats", h.getStats)
	}
}
