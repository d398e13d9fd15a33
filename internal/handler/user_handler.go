package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/contest-api/internal/handler/dto"
	"github.com/yourusername/contest-api/internal/service"
)

// UserHandler обрабатывает запросы, связанные с пользователями
type UserHandler struct {
	userService    *service.UserService
	contestService *service.ContestService
}

// NewUserHandler создает новый обработчик пользователей
func NewUserHandler(userService *service.UserService, contestService *service.ContestService) *UserHandler {
	return &UserHandler{
		userService:    userService,
		contestService: contestService,
	}
}

// CreateUserRequest представляет запрос на регистрацию пользователя
type CreateUserRequest struct {
	WalletAddress string `json:"walletAddress" binding:"required,max=100"`
	Username      string `json:"username" binding:"omitempty,max=50"`
}

// CreateUser обрабатывает запрос на регистрацию пользователя по wallet-адресу
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user data", "details": err.Error()})
		return
	}

	user, err := h.userService.CreateUser(req.WalletAddress, req.Username)
	if err != nil {
		handleServiceError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// GetUserByWallet возвращает пользователя по wallet-адресу
func (h *UserHandler) GetUserByWallet(c *gin.Context) {
	address := c.Param("address")

	user, err := h.userService.GetUserByWallet(address)
	if err != nil {
		handleServiceError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// GetCreatedContests возвращает конкурсы, созданные пользователем
func (h *UserHandler) GetCreatedContests(c *gin.Context) {
	userID := c.Param("id")

	contests, err := h.contestService.ListUserCreatedContests(userID)
	if err != nil {
		handleServiceError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, dto.NewListContestResponse(contests))
}

// GetParticipatedContests возвращает конкурсы, к которым пользователь присоединялся
func (h *UserHandler) GetParticipatedContests(c *gin.Context) {
	userID := c.Param("id")

	contests, err := h.contestService.ListUserParticipatedContests(userID)
	if err != nil {
		handleServiceError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, dto.NewListContestResponse(contests))
}
