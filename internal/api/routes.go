package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.Use(requestID())
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.GET("/catalog", h.catalog)
		api.GET("/qr", qrHandler)
		api.GET("/csv-template", csvTemplateHandler)
		api.POST("/cards/:format", h.cardHandler)
		api.POST("/batch", h.batchHandler)
		api.GET("/artifacts/:name", h.artifactHandler)
	}
}
