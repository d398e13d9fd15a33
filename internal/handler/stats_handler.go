package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/contest-api/internal/handler/dto"
	"github.com/yourusername/contest-api/internal/service"
)

// StatsHandler обрабатывает запросы статистики платформы
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler создает новый обработчик статистики
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// GetPlatformStats возвращает агрегированные показатели платформы
func (h *StatsHandler) GetPlatformStats(c *gin.Context) {
	stats, err := h.statsService.GetPlatformStats()
	if err != nil {
		handleServiceError(c, err, "Stats not found")
		return
	}

	c.JSON(http.StatusOK, dto.NewStatsResponse(stats))
}
