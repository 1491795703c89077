package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"orion/internal/repository"
	"orion/internal/service"
	"orion/internal/utils"

	"github.com/gin-gonic/gin"
)

type OSDRHandler struct {
	service   service.OSDRService
	stats     repository.StatsRepository
	outputDir string
}

func NewOSDRHandler(service service.OSDRService, stats repository.StatsRepository, outputDir string) *OSDRHandler {
	return &OSDRHandler{service: service, stats: stats, outputDir: outputDir}
}

func (h *OSDRHandler) GetList(c *gin.Context) {
	ctx := c.Request.Context()

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	items := h.service.GetList(ctx, limit)

	h.stats.Hit(ctx, "osdr_list")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(items),
		"items":   items,
	})
}

// Export выгружает развернутый список датасетов файлом.
func (h *OSDRHandler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	format := c.DefaultQuery("format", "xlsx")

	items := h.service.GetList(ctx, limit)
	if len(items) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no dataset items to export"})
		return
	}

	timestamp := time.Now().UTC().Format("20060102_150405")

	// Счетчик инкрементируется только за отданный файл
	switch format {
	case "xlsx", "excel":
		filename := fmt.Sprintf("osdr_export_%s.xlsx", timestamp)
		fullPath := filepath.Join(h.outputDir, filename)
		if err := utils.CreateDatasetExcel(fullPath, items); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create export file"})
			return
		}
		h.stats.Hit(ctx, "osdr_export")
		c.FileAttachment(fullPath, filename)
	case "csv":
		filename := fmt.Sprintf("osdr_export_%s.csv", timestamp)
		fullPath := filepath.Join(h.outputDir, filename)
		if err := utils.WriteDatasetCSV(fullPath, items); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create export file"})
			return
		}
		h.stats.Hit(ctx, "osdr_export")
		c.FileAttachment(fullPath, filename)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported format: " + format})
	}
}
