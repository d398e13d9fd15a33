package dto

import (
	"time"

	"github.com/yourusername/contest-api/internal/domain/entity"
)

// UserResponse представляет пользователя в формате для ответа клиенту
type UserResponse struct {
	ID            string    `json:"id"`
	WalletAddress string    `json:"walletAddress"`
	Username      string    `json:"username"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewUserResponse создает DTO для пользователя
func NewUserResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:            user.ID,
		WalletAddress: user.WalletAddress,
		Username:      user.Username,
		CreatedAt:     user.CreatedAt,
	}
}
