package service

import (
	"fmt"
	"log"
	"strings"

	"github.com/yourusername/contest-api/internal/domain/entity"
	"github.com/yourusername/contest-api/internal/domain/repository"
	apperrors "github.com/yourusername/contest-api/internal/pkg/errors"
)

// UserService предоставляет методы для работы с пользователями
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService создает новый сервис пользователей
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// CreateUser регистрирует пользователя по wallet-адресу.
// Пустое имя заменяется усечённым wallet-адресом.
func (s *UserService) CreateUser(walletAddress, username string) (*entity.User, error) {
	walletAddress = strings.TrimSpace(walletAddress)
	if walletAddress == "" {
		return nil, fmt.Errorf("%w: walletAddress is required", apperrors.ErrValidation)
	}

	if username == "" {
		username = entity.DefaultUsername(walletAddress)
	}

	user := &entity.User{
		WalletAddress: walletAddress,
		Username:      username,
	}

	if err := s.userRepo.Create(user); err != nil {
		log.Printf("[UserService] Ошибка при создании пользователя wallet=%s: %v", walletAddress, err)
		return nil, err
	}

	return user, nil
}

// GetUserByWallet возвращает пользователя по wallet-адресу (строгое совпадение)
func (s *UserService) GetUserByWallet(walletAddress string) (*entity.User, error) {
	return s.userRepo.GetByWallet(walletAddress)
}

// GetUserByID возвращает пользователя по ID
func (s *UserService) GetUserByID(id string) (*entity.User, error) {
	return s.userRepo.GetByID(id)
}
