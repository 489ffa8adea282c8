package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/karimnaderr/speech-to-text-backend/internal/api/v1/handlers"
	"github.com/karimnaderr/speech-to-text-backend/internal/api/v1/services"
)

// RegisterRoutes registers all API routes. Trailing-slash forms of the
// paths are honored through the router's trailing-slash redirect.
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	transcriptHandler := handlers.NewTranscriptHandler(container.TranscriptService)

	router.POST("/transcribe", transcriptHandler.Transcribe)

	transcripts := router.Group("/transcripts")
	{
		transcripts.GET("", transcriptHandler.List)
		transcripts.GET("/:id", transcriptHandler.Get)
	}

	if container.ExportService != nil {
		exportHandler := handlers.NewExportHandler(container.ExportService)
		router.GET("/export", exportHandler.Export)
	}
}

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	TranscriptService services.TranscriptService
	ExportService     services.ExportService
}
