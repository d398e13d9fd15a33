package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yourusername/contest-api/internal/domain/entity"
)

// ParticipantRepo реализует repository.ParticipantRepository
type ParticipantRepo struct {
	db *gorm.DB
}

// NewParticipantRepo создает новый репозиторий участников
func NewParticipantRepo(db *gorm.DB) *ParticipantRepo {
	return &ParticipantRepo{db: db}
}

// Create создает запись об участии. Чистый append: без проверок
// вместимости, статуса конкурса и повторного участия.
func (r *ParticipantRepo) Create(participant *entity.ContestParticipant) error {
	if participant.ID == "" {
		participant.ID = uuid.NewString()
	}
	if participant.JoinedAt.IsZero() {
		participant.JoinedAt = time.Now()
	}
	return r.db.Create(participant).Error
}

// ListByContest возвращает участников конкурса, новые первыми
func (r *ParticipantRepo) ListByContest(contestID string) ([]entity.ContestParticipant, error) {
	var participants []entity.ContestParticipant
	err := r.db.Where("contest_id = ?", contestID).
		Order("joined_at DESC").
		Find(&participants).Error
	if err != nil {
		return nil, err
	}
	return participants, nil
}
