package service

import (
	"log"

	"github.com/yourusername/contest-api/internal/domain/repository"
)

// StatsService предоставляет агрегированную статистику платформы
type StatsService struct {
	statsRepo repository.StatsRepository
}

// NewStatsService создает новый сервис статистики
func NewStatsService(statsRepo repository.StatsRepository) *StatsService {
	return &StatsService{
		statsRepo: statsRepo,
	}
}

// GetPlatformStats возвращает агрегаты платформы; значения
// пересчитываются при каждом вызове
func (s *StatsService) GetPlatformStats() (*repository.PlatformStats, error) {
	stats, err := s.statsRepo.GetPlatformStats()
	if err != nil {
		log.Printf("[StatsService] Ошибка при получении статистики платформы: %v", err)
		return nil, err
	}
	return stats, nil
}
