package memory

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/contest-api/internal/domain/entity"
)

// ParticipantRepo реализует repository.ParticipantRepository поверх Store
type ParticipantRepo struct {
	store *Store
}

// NewParticipantRepo создает in-memory репозиторий участников
func NewParticipantRepo(store *Store) *ParticipantRepo {
	return &ParticipantRepo{store: store}
}

// Create создает запись об участии. Чистый append: без проверок
// вместимости, статуса конкурса и повторного участия.
func (r *ParticipantRepo) Create(participant *entity.ContestParticipant) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if participant.ID == "" {
		participant.ID = uuid.NewString()
	}
	if participant.JoinedAt.IsZero() {
		participant.JoinedAt = time.Now()
	}

	r.store.participants = append(r.store.participants, *participant)
	return nil
}

// ListByContest возвращает участников конкурса, новые первыми
func (r *ParticipantRepo) ListByContest(contestID string) ([]entity.ContestParticipant, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	participants := make([]entity.ContestParticipant, 0)
	for _, p := range r.store.participants {
		if p.ContestID == contestID {
			participants = append(participants, p)
		}
	}

	sort.SliceStable(participants, func(i, j int) bool {
		return participants[i].JoinedAt.After(participants[j].JoinedAt)
	})
	return participants, nil
}
