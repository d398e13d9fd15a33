package memory

import (
	"github.com/shopspring/decimal"

	"github.com/yourusername/contest-api/internal/domain/entity"
	"github.com/yourusername/contest-api/internal/domain/repository"
)

// StatsRepo реализует repository.StatsRepository поверх Store
type StatsRepo struct {
	store *Store
}

// NewStatsRepo создает in-memory репозиторий статистики
func NewStatsRepo(store *Store) *StatsRepo {
	return &StatsRepo{store: store}
}

// GetPlatformStats пересчитывает агрегаты по всем коллекциям при каждом вызове
func (r *StatsRepo) GetPlatformStats() (*repository.PlatformStats, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	stats := &repository.PlatformStats{
		TotalPrizes:       decimal.Zero,
		TotalParticipants: int64(len(r.store.participants)),
	}

	for _, contest := range r.store.contests {
		stats.TotalPrizes = stats.TotalPrizes.Add(contest.PrizePool)
		switch contest.Status {
		case entity.ContestStatusActive:
			stats.ActiveContests++
		case entity.ContestStatusCompleted:
			stats.ContestsCompleted++
		}
	}

	return stats, nil
}
