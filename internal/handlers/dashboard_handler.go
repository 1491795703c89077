package handlers

import (
	"net/http"
	"strconv"
	"time"

	"orion/internal/repository"
	"orion/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	service service.DashboardService
	stats   repository.StatsRepository
}

func NewDashboardHandler(service service.DashboardService, stats repository.StatsRepository) *DashboardHandler {
	return &DashboardHandler{service: service, stats: stats}
}

// GetDashboard отдает весь дашборд одним ответом. Отказавшие источники
// приходят пустыми секциями, запрос не падает никогда.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()

	lat := parseFloatQuery(c, "lat", 55.7558)
	lon := parseFloatQuery(c, "lon", 37.6176)
	trendLimit, _ := strconv.Atoi(c.DefaultQuery("trendLimit", "240"))

	payload := h.service.BuildDashboard(ctx, service.DashboardParams{
		Lat:          lat,
		Lon:          lon,
		TrendLimit:   trendLimit,
		GalleryCount: 24,
		DatasetLimit: 50,
	})

	h.stats.Hit(ctx, "dashboard")

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"data":      payload,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func parseFloatQuery(c *gin.Context, key string, defaultValue float64) float64 {
	raw := c.Query(key)
	if raw == "" {
		return defaultValue
	}
	if val, err := strconv.ParseFloat(raw, 64); err == nil {
		return val
	}
	return defaultValue
}
