package handlers

import (
	"net/http"
	"time"

	"orion/internal/repository"
	pkgredis "orion/pkg/redis"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

type SystemHandler struct {
	stats       repository.StatsRepository
	redisClient *redis.Client // nil когда Redis недоступен
}

func NewSystemHandler(stats repository.StatsRepository, redisClient *redis.Client) *SystemHandler {
	return &SystemHandler{stats: stats, redisClient: redisClient}
}

func (h *SystemHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"services": gin.H{
			"iss_api":   "enabled",
			"jwst_api":  "enabled",
			"osdr_api":  "enabled",
			"astro_api": "enabled",
		},
	})
}

// GetStats отдает счетчики обращений и выборку метрик Redis-сервера.
// Без Redis секции server в ответе нет.
func (h *SystemHandler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	hits, err := h.stats.Snapshot(ctx)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"hits": gin.H{},
			"note": "stats unavailable",
		})
		return
	}

	response := gin.H{"hits": hits}

	if h.redisClient != nil {
		server, err := pkgredis.GetServerStats(h.redisClient)
		if err != nil {
			response["note"] = "server info unavailable"
		} else {
			response["server"] = server
		}
	}

	c.JSON(http.StatusOK, response)
}
