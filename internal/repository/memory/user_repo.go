package memory

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/contest-api/internal/domain/entity"
	apperrors "github.com/yourusername/contest-api/internal/pkg/errors"
)

// UserRepo реализует repository.UserRepository поверх Store
type UserRepo struct {
	store *Store
}

// NewUserRepo создает in-memory репозиторий пользователей
func NewUserRepo(store *Store) *UserRepo {
	return &UserRepo{store: store}
}

// Create создает нового пользователя. Проверка уникальности wallet-адреса
// повторяет уникальный индекс postgres-бэкенда, чтобы поведение совпадало.
func (r *UserRepo) Create(user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.users {
		if r.store.users[i].WalletAddress == user.WalletAddress {
			return fmt.Errorf("%w: wallet address already registered", apperrors.ErrConflict)
		}
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	r.store.users = append(r.store.users, *user)
	return nil
}

// GetByID возвращает пользователя по ID
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for i := range r.store.users {
		if r.store.users[i].ID == id {
			user := r.store.users[i]
			return &user, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// GetByWallet возвращает пользователя по wallet-адресу (строгое совпадение)
func (r *UserRepo) GetByWallet(walletAddress string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for i := range r.store.users {
		if r.store.users[i].WalletAddress == walletAddress {
			user := r.store.users[i]
			return &user, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// GetByUsername возвращает пользователя по имени пользователя
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for i := range r.store.users {
		if r.store.users[i].Username == username {
			user := r.store.users[i]
			return &user, nil
		}
	}
	return nil, apperrors.ErrNotFound
}
