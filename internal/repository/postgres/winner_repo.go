package postgres

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yourusername/contest-api/internal/domain/entity"
)

// WinnerRepo реализует repository.WinnerRepository
type WinnerRepo struct {
	db *gorm.DB
}

// NewWinnerRepo создает новый репозиторий призёров
func NewWinnerRepo(db *gorm.DB) *WinnerRepo {
	return &WinnerRepo{db: db}
}

// Create создает запись о призе (пишется внешним процессом расчёта)
func (r *WinnerRepo) Create(winner *entity.ContestWinner) error {
	if winner.ID == "" {
		winner.ID = uuid.NewString()
	}
	return r.db.Create(winner).Error
}

// ListByContest возвращает призёров конкурса по возрастанию позиции
func (r *WinnerRepo) ListByContest(contestID string) ([]entity.ContestWinner, error) {
	var winners []entity.ContestWinner
	err := r.db.Where("contest_id = ?", contestID).
		Order("position ASC").
		Find(&winners).Error
	if err != nil {
		return nil, err
	}
	return winners, nil
}
