package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"orion/internal/repository"
	"orion/internal/service"

	"github.com/gin-gonic/gin"
)

type JWSTHandler struct {
	service service.JWSTService
	stats   repository.StatsRepository
}

func NewJWSTHandler(service service.JWSTService, stats repository.StatsRepository) *JWSTHandler {
	return &JWSTHandler{service: service, stats: stats}
}

// GetFeed — фильтрованная лента изображений. Текстовые фильтры
// обрезаются, фильтр инструмента поднимается в верхний регистр,
// числовые параметры зажимаются в допустимые диапазоны.
func (h *JWSTHandler) GetFeed(c *gin.Context) {
	ctx := c.Request.Context()

	source := c.DefaultQuery("source", "jpg")
	suffix := strings.TrimSpace(c.Query("suffix"))
	program := strings.TrimSpace(c.Query("program"))
	instrument := strings.ToUpper(strings.TrimSpace(c.Query("instrument")))

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	perPage, _ := strconv.Atoi(c.DefaultQuery("perPage", "24"))
	if perPage < 1 {
		perPage = 1
	}
	if perPage > 60 {
		perPage = 60
	}

	items := h.service.GetFeed(ctx, source, suffix, program, instrument, page, perPage)

	h.stats.Hit(ctx, "jwst_feed")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"source":  source,
		"count":   len(items),
		"items":   items,
	})
}
