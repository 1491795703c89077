package handlers

import (
	"net/http"
	"strconv"

	"orion/internal/repository"
	"orion/internal/service"

	"github.com/gin-gonic/gin"
)

type ISSHandler struct {
	service service.ISSService
	stats   repository.StatsRepository
}

func NewISSHandler(service service.ISSService, stats repository.StatsRepository) *ISSHandler {
	return &ISSHandler{service: service, stats: stats}
}

func (h *ISSHandler) GetLast(c *gin.Context) {
	ctx := c.Request.Context()
	h.stats.Hit(ctx, "iss_last")
	c.JSON(http.StatusOK, h.service.GetLast(ctx))
}

func (h *ISSHandler) GetTrend(c *gin.Context) {
	ctx := c.Request.Context()
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "240"))

	h.stats.Hit(ctx, "iss_trend")
	c.JSON(http.StatusOK, h.service.GetTrend(ctx, limit))
}
