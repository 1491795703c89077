package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"orion/internal/clients"
	"orion/internal/repository"
	"orion/internal/service"

	"github.com/gin-gonic/gin"
)

type AstroHandler struct {
	service service.AstroService
	stats   repository.StatsRepository
}

func NewAstroHandler(service service.AstroService, stats repository.StatsRepository) *AstroHandler {
	return &AstroHandler{service: service, stats: stats}
}

// GetEvents отдает астрономические события для точки наблюдения.
// Отсутствие ключей API — ошибка конфигурации и единственный случай,
// когда этот эндпоинт отвечает 500; сбой апстрима дает пустой список.
func (h *AstroHandler) GetEvents(c *gin.Context) {
	ctx := c.Request.Context()

	lat := parseFloatQuery(c, "lat", 55.7558)
	lon := parseFloatQuery(c, "lon", 37.6176)

	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))
	if days < 1 {
		days = 1
	}
	if days > 30 {
		days = 30
	}

	events, err := h.service.GetEvents(ctx, lat, lon, days)
	if err != nil {
		if errors.Is(err, clients.ErrMissingCredentials) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	h.stats.Hit(ctx, "astro_events")

	c.JSON(http.StatusOK, gin.H{
		"events":   events,
		"location": gin.H{"lat": lat, "lon": lon},
		"days":     days,
	})
}
