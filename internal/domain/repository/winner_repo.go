package repository

import (
	"github.com/yourusername/contest-api/internal/domain/entity"
)

// WinnerRepository определяет методы для работы с записями о призах.
// Записи создаёт внешний процесс расчёта; сервис отдаёт их только на чтение.
type WinnerRepository interface {
	Create(winner *entity.ContestWinner) error
	// ListByContest возвращает призёров конкурса по возрастанию позиции
	ListByContest(contestID string) ([]entity.ContestWinner, error)
}
