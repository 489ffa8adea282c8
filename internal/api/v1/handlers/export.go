package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karimnaderr/speech-to-text-backend/internal/api/errors"
	"github.com/karimnaderr/speech-to-text-backend/internal/api/middleware"
	"github.com/karimnaderr/speech-to-text-backend/internal/api/v1/services"
)

// ExportHandler handles spreadsheet export of stored transcripts
type ExportHandler struct {
	service services.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(service services.ExportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// Export handles GET /export
//
// @Summary Export transcripts as a spreadsheet
// @Description Downloads all stored transcripts as an xlsx workbook
// @Tags transcripts
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary "xlsx workbook"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	file, err := h.service.Export(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="transcripts.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Status(http.StatusOK)

	if err := file.Write(c.Writer); err != nil {
		middleware.HandleError(c, errors.NewInternalError("Failed to write workbook"))
	}
}
