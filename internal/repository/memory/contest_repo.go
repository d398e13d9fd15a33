package memory

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/contest-api/internal/domain/entity"
	"github.com/yourusername/contest-api/internal/domain/repository"
	apperrors "github.com/yourusername/contest-api/internal/pkg/errors"
)

// ContestRepo реализует repository.ContestRepository поверх Store
type ContestRepo struct {
	store *Store
}

// NewContestRepo создает in-memory репозиторий конкурсов
func NewContestRepo(store *Store) *ContestRepo {
	return &ContestRepo{store: store}
}

// Create создает новый конкурс
func (r *ContestRepo) Create(contest *entity.Contest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if contest.ID == "" {
		contest.ID = uuid.NewString()
	}
	if contest.Status == "" {
		contest.Status = entity.ContestStatusDraft
	}
	if contest.PrizeType == "" {
		contest.PrizeType = entity.PrizeTypeWinnerTakesAll
	}

	now := time.Now()
	if contest.CreatedAt.IsZero() {
		contest.CreatedAt = now
	}
	if contest.UpdatedAt.IsZero() {
		contest.UpdatedAt = now
	}

	r.store.contests = append(r.store.contests, *contest)
	return nil
}

// GetByID возвращает конкурс по ID
func (r *ContestRepo) GetByID(id string) (*entity.Contest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.findLocked(id)
}

// findLocked ищет конкурс без захвата мьютекса; вызывающий держит блокировку
func (r *ContestRepo) findLocked(id string) (*entity.Contest, error) {
	for i := range r.store.contests {
		if r.store.contests[i].ID == id {
			contest := r.store.contests[i]
			return &contest, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// List возвращает конкурсы по фильтрам, новые первыми.
// Заданные status и category применяются совместно (AND).
func (r *ContestRepo) List(filters repository.ContestFilters) ([]entity.Contest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	contests := make([]entity.Contest, 0, len(r.store.contests))
	for _, contest := range r.store.contests {
		if filters.Status != "" && contest.Status != filters.Status {
			continue
		}
		if filters.Category != "" && contest.Category != filters.Category {
			continue
		}
		contests = append(contests, contest)
	}

	sortContestsByCreatedAtDesc(contests)
	return contests, nil
}

// Update применяет частичное обновление: меняются только заданные поля,
// UpdatedAt обновляется всегда. Легальность перехода статусов не проверяется.
func (r *ContestRepo) Update(id string, updates repository.ContestUpdate) (*entity.Contest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.contests {
		if r.store.contests[i].ID != id {
			continue
		}

		contest := &r.store.contests[i]
		if updates.Title != nil {
			contest.Title = *updates.Title
		}
		if updates.Description != nil {
			contest.Description = *updates.Description
		}
		if updates.Category != nil {
			contest.Category = *updates.Category
		}
		if updates.ContractAddress != nil {
			addr := *updates.ContractAddress
			contest.ContractAddress = &addr
		}
		if updates.PrizePool != nil {
			contest.PrizePool = *updates.PrizePool
		}
		if updates.EntryFee != nil {
			contest.EntryFee = *updates.EntryFee
		}
		if updates.MaxParticipants != nil {
			contest.MaxParticipants = *updates.MaxParticipants
		}
		if updates.Status != nil {
			contest.Status = *updates.Status
		}
		if updates.PrizeType != nil {
			contest.PrizeType = *updates.PrizeType
		}
		if updates.StartTime != nil {
			contest.StartTime = *updates.StartTime
		}
		if updates.EndTime != nil {
			contest.EndTime = *updates.EndTime
		}
		contest.UpdatedAt = time.Now()

		updated := *contest
		return &updated, nil
	}

	return nil, apperrors.ErrNotFound
}

// ListByCreator возвращает конкурсы, созданные пользователем, новые первыми
func (r *ContestRepo) ListByCreator(userID string) ([]entity.Contest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	contests := make([]entity.Contest, 0)
	for _, contest := range r.store.contests {
		if contest.CreatorID == userID {
			contests = append(contests, contest)
		}
	}

	sortContestsByCreatedAtDesc(contests)
	return contests, nil
}

// ListByParticipant возвращает конкурсы, к которым пользователь присоединялся,
// в порядке новых записей участия. Повторные записи участия схлопываются.
func (r *ContestRepo) ListByParticipant(userID string) ([]entity.Contest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	// Записи участия пользователя, новые первыми
	joins := make([]entity.ContestParticipant, 0)
	for _, p := range r.store.participants {
		if p.UserID == userID {
			joins = append(joins, p)
		}
	}
	sort.SliceStable(joins, func(i, j int) bool {
		return joins[i].JoinedAt.After(joins[j].JoinedAt)
	})

	seen := make(map[string]bool, len(joins))
	contests := make([]entity.Contest, 0, len(joins))
	for _, p := range joins {
		if seen[p.ContestID] {
			continue
		}
		seen[p.ContestID] = true
		for _, contest := range r.store.contests {
			if contest.ID == p.ContestID {
				contests = append(contests, contest)
				break
			}
		}
	}
	return contests, nil
}

// sortContestsByCreatedAtDesc сортирует конкурсы: новые (по createdAt) первыми
func sortContestsByCreatedAtDesc(contests []entity.Contest) {
	sort.SliceStable(contests, func(i, j int) bool {
		return contests[i].CreatedAt.After(contests[j].CreatedAt)
	})
}
