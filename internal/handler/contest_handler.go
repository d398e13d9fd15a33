package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/yourusername/contest-api/internal/domain/entity"
	"github.com/yourusername/contest-api/internal/domain/repository"
	"github.com/yourusername/contest-api/internal/handler/dto"
	"github.com/yourusername/contest-api/internal/service"
)

// ContestHandler обрабатывает запросы, связанные с конкурсами
type ContestHandler struct {
	contestService *service.ContestService
}

// NewContestHandler создает новый обработчик конкурсов
func NewContestHandler(contestService *service.ContestService) *ContestHandler {
	return &ContestHandler{
		contestService: contestService,
	}
}

// CreateContestRequest представляет запрос на создание конкурса.
// Даты принимаются строками RFC 3339, суммы — десятичными строками.
type CreateContestRequest struct {
	Title           string    `json:"title" binding:"required,min=1,max=200"`
	Description     string    `json:"description" binding:"required,min=1"`
	Category        string    `json:"category" binding:"required,oneof=hackathon gaming sports creative prediction custom"`
	CreatorID       string    `json:"creatorId" binding:"required"`
	ContractAddress *string   `json:"contractAddress" binding:"omitempty,max=100"`
	PrizePool       string    `json:"prizePool" binding:"omitempty"`
	EntryFee        string    `json:"entryFee" binding:"omitempty"`
	MaxParticipants int       `json:"maxParticipants" binding:"required,min=1"`
	Status          string    `json:"status" binding:"omitempty,oneof=draft active completed cancelled"`
	PrizeType       string    `json:"prizeType" binding:"omitempty,oneof=winner-takes-all top-three sponsor-funded"`
	StartTime       time.Time `json:"startTime" binding:"required"`
	EndTime         time.Time `json:"endTime" binding:"required"`
}

// parseAmount разбирает десятичную строку суммы; пустая строка означает 0
func parseAmount(field, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s: %q is not a decimal amount", field, value)
	}
	return amount, nil
}

// CreateContest обрабатывает запрос на создание конкурса
func (h *ContestHandler) CreateContest(c *gin.Context) {
	var req CreateContestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contest data", "details": err.Error()})
		return
	}

	prizePool, err := parseAmount("prizePool", req.PrizePool)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contest data", "details": err.Error()})
		return
	}
	entryFee, err := parseAmount("entryFee", req.EntryFee)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contest data", "details": err.Error()})
		return
	}

	contest := &entity.Contest{
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		CreatorID:       req.CreatorID,
		ContractAddress: req.ContractAddress,
		PrizePool:       prizePool,
		EntryFee:        entryFee,
		MaxParticipants: req.MaxParticipants,
		Status:          req.Status,
		PrizeType:       req.PrizeType,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
	}

	created, err := h.contestService.CreateContest(contest)
	if err != nil {
		handleServiceError(c, err, "Contest not found")
		return
	}

	c.JSON(http.StatusOK, dto.NewContestResponse(created))
}

// ListContests возвращает конкурсы по опциональным фильтрам status и category
func (h *ContestHandler) ListContests(c *gin.Context) {
	filters := repository.ContestFilters{
		Status:   c.Query("status"),
		Category: c.Query("category"),
	}

	contests, err := h.contestService.ListContests(filters)
	if err != nil {
		handleServiceError(c, err, "Contest not found")
		return
	}

	c.JSON(http.StatusOK, dto.NewListContestResponse(contests))
}

// GetContest возвращает конкурс по ID
func (h *ContestHandler) GetContest(c *gin.Context) {
	contest, err := h.contestService.GetContestByID(c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Contest not found")
		return
	}

	c.JSON(http.StatusOK, dto.NewContestResponse(contest))
}

// UpdateContestRequest представляет частичное обновление конкурса:
// изменяются только присланные поля
type UpdateContestRequest struct {
	Title           *string    `json:"title" binding:"omitempty,min=1,max=200"`
	Description     *string    `json:"description" binding:"omitempty,min=1"`
	Category        *string    `json:"category" binding:"omitempty,oneof=hackathon gaming sports creative prediction custom"`
	ContractAddress *string    `json:"contractAddress" binding:"omitempty,max=100"`
	PrizePool       *string    `json:"prizePool"`
	EntryFee        *string    `json:"entryFee"`
	MaxParticipants *int       `json:"maxParticipants" binding:"omitempty,min=1"`
	Status          *string    `json:"status" binding:"omitempty,oneof=draft active completed cancelled"`
	PrizeType       *string    `json:"prizeType" binding:"omitempty,oneof=winner-takes-all top-three sponsor-funded"`
	StartTime       *time.Time `json:"startTime"`
	EndTime         *time.Time `json:"endTime"`
}

// UpdateContest обрабатывает частичное обновление конкурса
func (h *ContestHandler) UpdateContest(c *gin.Context) {
	var req UpdateContestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contest data", "details": err.Error()})
		return
	}

	updates := repository.ContestUpdate{
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		ContractAddress: req.ContractAddress,
		MaxParticipants: req.MaxParticipants,
		Status:          req.Status,
		PrizeType:       req.PrizeType,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
	}

	if req.PrizePool != nil {
		amount, err := parseAmount("prizePool", *req.PrizePool)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contest data", "details": err.Error()})
			return
		}
		updates.PrizePool = &amount
	}
	if req.EntryFee != nil {
		amount, err := parseAmount("entryFee", *req.EntryFee)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contest data", "details": err.Error()})
			return
		}
		updates.EntryFee = &amount
	}

	contest, err := h.contestService.UpdateContest(c.Param("id"), updates)
	if err != nil {
		handleServiceError(c, err, "Contest not found")
		return
	}

	c.JSON(http.StatusOK, dto.NewContestResponse(contest))
}

// JoinContestRequest представляет запрос на участие в конкурсе
type JoinContestRequest struct {
	UserID      string  `json:"userId" binding:"required"`
	EntryTxHash *string `json:"entryTxHash" binding:"omitempty,max=100"`
}

// JoinContest обрабатывает запрос на участие в конкурсе
func (h *ContestHandler) JoinContest(c *gin.Context) {
	var req JoinContestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to join contest", "details": err.Error()})
		return
	}

	participant, err := h.contestService.JoinContest(c.Param("id"), req.UserID, req.EntryTxHash)
	if err != nil {
		handleServiceError(c, err, "Contest not found")
		return
	}

	c.JSON(http.StatusOK, dto.NewParticipantResponse(participant))
}

// GetParticipants возвращает участников конкурса
func (h *ContestHandler) GetParticipants(c *gin.Context) {
	participants, err := h.contestService.ListParticipants(c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Contest not found")
		return
	}

	c.JSON(http.StatusOK, dto.NewListParticipantResponse(participants))
}

// GetWinners возвращает призёров конкурса (записи пишет внешний процесс расчёта)
func (h *ContestHandler) GetWinners(c *gin.Context) {
	winners, err := h.contestService.ListWinners(c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Contest not found")
		return
	}

	c.JSON(http.StatusOK, dto.NewListWinnerResponse(winners))
}
