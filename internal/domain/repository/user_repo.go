package repository

import (
	"github.com/yourusername/contest-api/internal/domain/entity"
)

// UserRepository определяет методы для работы с пользователями.
// Поиск по wallet-адресу — основной путь; сравнение строгое, без нормализации.
type UserRepository interface {
	// Create сохраняет нового пользователя, генерируя ID и CreatedAt.
	// Повторный wallet-адрес возвращает apperrors.ErrConflict.
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByWallet(walletAddress string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
}
