package memory

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/contest-api/internal/domain/entity"
)

// WinnerRepo реализует repository.WinnerRepository поверх Store
type WinnerRepo struct {
	store *Store
}

// NewWinnerRepo создает in-memory репозиторий призёров
func NewWinnerRepo(store *Store) *WinnerRepo {
	return &WinnerRepo{store: store}
}

// Create создает запись о призе
func (r *WinnerRepo) Create(winner *entity.ContestWinner) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if winner.ID == "" {
		winner.ID = uuid.NewString()
	}
	if winner.CreatedAt.IsZero() {
		winner.CreatedAt = time.Now()
	}

	r.store.winners = append(r.store.winners, *winner)
	return nil
}

// ListByContest возвращает призёров конкурса по возрастанию позиции
func (r *WinnerRepo) ListByContest(contestID string) ([]entity.ContestWinner, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	winners := make([]entity.ContestWinner, 0)
	for _, w := range r.store.winners {
		if w.ContestID == contestID {
			winners = append(winners, w)
		}
	}

	sort.SliceStable(winners, func(i, j int) bool {
		return winners[i].Position < winners[j].Position
	})
	return winners, nil
}
