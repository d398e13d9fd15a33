package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/yourusername/contest-api/internal/domain/entity"
)

// ContestFilters определяет фильтры для поиска конкурсов.
// Заданные поля объединяются по AND; пустое поле не ограничивает выборку.
type ContestFilters struct {
	Status   string // Фильтр по статусу (draft, active, completed, cancelled)
	Category string // Фильтр по категории (hackathon, gaming, ...)
}

// ContestUpdate описывает частичное обновление конкурса.
// Изменяются только поля с ненулевыми указателями; UpdatedAt
// обновляется при любом изменении.
type ContestUpdate struct {
	Title           *string
	Description     *string
	Category        *string
	ContractAddress *string
	PrizePool       *decimal.Decimal
	EntryFee        *decimal.Decimal
	MaxParticipants *int
	Status          *string
	PrizeType       *string
	StartTime       *time.Time
	EndTime         *time.Time
}

// IsEmpty возвращает true, если ни одно поле не задано
func (u *ContestUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Category == nil &&
		u.ContractAddress == nil && u.PrizePool == nil && u.EntryFee == nil &&
		u.MaxParticipants == nil && u.Status == nil && u.PrizeType == nil &&
		u.StartTime == nil && u.EndTime == nil
}

// ContestRepository определяет методы для работы с конкурсами
type ContestRepository interface {
	// Create сохраняет новый конкурс, генерируя ID и таймстемпы.
	// Пустой статус по умолчанию становится draft.
	Create(contest *entity.Contest) error
	GetByID(id string) (*entity.Contest, error)
	// List возвращает конкурсы, новые (по createdAt) первыми
	List(filters ContestFilters) ([]entity.Contest, error)
	// Update применяет частичное обновление и возвращает обновлённую запись.
	// Легальность перехода статусов не проверяется (любой -> любой).
	// Для несуществующего ID возвращает apperrors.ErrNotFound без записи.
	Update(id string, updates ContestUpdate) (*entity.Contest, error)
	// ListByCreator возвращает конкурсы, созданные пользователем, новые первыми
	ListByCreator(userID string) ([]entity.Contest, error)
	// ListByParticipant возвращает конкурсы, к которым пользователь
	// присоединялся, в порядке новых записей участия
	ListByParticipant(userID string) ([]entity.Contest, error)
}
