package postgres

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yourusername/contest-api/internal/domain/entity"
	"github.com/yourusername/contest-api/internal/domain/repository"
)

// StatsRepo реализует repository.StatsRepository
type StatsRepo struct {
	db *gorm.DB
}

// NewStatsRepo создает новый репозиторий статистики
func NewStatsRepo(db *gorm.DB) *StatsRepo {
	return &StatsRepo{db: db}
}

// GetPlatformStats пересчитывает агрегаты по всем таблицам при каждом вызове
func (r *StatsRepo) GetPlatformStats() (*repository.PlatformStats, error) {
	stats := &repository.PlatformStats{
		TotalPrizes: decimal.Zero,
	}

	// SUM по пустой таблице возвращает NULL, поэтому COALESCE
	var totalPrizes decimal.NullDecimal
	err := r.db.Model(&entity.Contest{}).
		Select("COALESCE(SUM(prize_pool), 0)").
		Scan(&totalPrizes).Error
	if err != nil {
		return nil, err
	}
	if totalPrizes.Valid {
		stats.TotalPrizes = totalPrizes.Decimal
	}

	err = r.db.Model(&entity.Contest{}).
		Where("status = ?", entity.ContestStatusActive).
		Count(&stats.ActiveContests).Error
	if err != nil {
		return nil, err
	}

	err = r.db.Model(&entity.ContestParticipant{}).
		Count(&stats.TotalParticipants).Error
	if err != nil {
		return nil, err
	}

	err = r.db.Model(&entity.Contest{}).
		Where("status = ?", entity.ContestStatusCompleted).
		Count(&stats.ContestsCompleted).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}
