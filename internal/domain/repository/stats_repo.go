package repository

import (
	"github.com/shopspring/decimal"
)

// PlatformStats содержит агрегированные показатели платформы
type PlatformStats struct {
	// TotalPrizes — сумма призовых фондов всех конкурсов вне зависимости от статуса
	TotalPrizes decimal.Decimal `json:"totalPrizes"`
	// ActiveContests — количество конкурсов в статусе active
	ActiveContests int64 `json:"activeContests"`
	// TotalParticipants — общее количество записей участия
	TotalParticipants int64 `json:"totalParticipants"`
	// ContestsCompleted — количество конкурсов в статусе completed
	ContestsCompleted int64 `json:"contestsCompleted"`
}

// StatsRepository определяет методы для агрегированной статистики.
// Значения пересчитываются при каждом вызове, без инкрементальных счётчиков.
type StatsRepository interface {
	GetPlatformStats() (*PlatformStats, error)
}
