package repository

import (
	"github.com/yourusername/contest-api/internal/domain/entity"
)

// ParticipantRepository определяет методы для работы с записями участия.
// Create — чистый append: вместимость конкурса, его статус и повторные
// записи той же пары (contest, user) здесь не проверяются.
type ParticipantRepository interface {
	Create(participant *entity.ContestParticipant) error
	// ListByContest возвращает участников конкурса, новые (по joinedAt) первыми
	ListByContest(contestID string) ([]entity.ContestParticipant, error)
}
