package postgres

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yourusername/contest-api/internal/domain/entity"
	"github.com/yourusername/contest-api/internal/domain/repository"
	apperrors "github.com/yourusername/contest-api/internal/pkg/errors"
)

// ContestRepo реализует repository.ContestRepository
type ContestRepo struct {
	db *gorm.DB
}

// NewContestRepo создает новый репозиторий конкурсов
func NewContestRepo(db *gorm.DB) *ContestRepo {
	return &ContestRepo{db: db}
}

// Create создает новый конкурс
func (r *ContestRepo) Create(contest *entity.Contest) error {
	if contest.ID == "" {
		contest.ID = uuid.NewString()
	}
	if contest.Status == "" {
		contest.Status = entity.ContestStatusDraft
	}
	if contest.PrizeType == "" {
		contest.PrizeType = entity.PrizeTypeWinnerTakesAll
	}
	return r.db.Create(contest).Error
}

// GetByID возвращает конкурс по ID
func (r *ContestRepo) GetByID(id string) (*entity.Contest, error) {
	var contest entity.Contest
	err := r.db.Where("id = ?", id).First(&contest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &contest, nil
}

// List возвращает конкурсы по фильтрам, новые первыми.
// Заданные status и category применяются совместно (AND).
func (r *ContestRepo) List(filters repository.ContestFilters) ([]entity.Contest, error) {
	query := r.db.Model(&entity.Contest{})

	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}

	var contests []entity.Contest
	err := query.Order("created_at DESC").Find(&contests).Error
	if err != nil {
		return nil, err
	}
	return contests, nil
}

// Update применяет частичное обновление: меняются только заданные поля,
// updated_at обновляется всегда. RowsAffected == 0 означает отсутствие записи.
func (r *ContestRepo) Update(id string, updates repository.ContestUpdate) (*entity.Contest, error) {
	fields := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if updates.Title != nil {
		fields["title"] = *updates.Title
	}
	if updates.Description != nil {
		fields["description"] = *updates.Description
	}
	if updates.Category != nil {
		fields["category"] = *updates.Category
	}
	if updates.ContractAddress != nil {
		fields["contract_address"] = *updates.ContractAddress
	}
	if updates.PrizePool != nil {
		fields["prize_pool"] = *updates.PrizePool
	}
	if updates.EntryFee != nil {
		fields["entry_fee"] = *updates.EntryFee
	}
	if updates.MaxParticipants != nil {
		fields["max_participants"] = *updates.MaxParticipants
	}
	if updates.Status != nil {
		fields["status"] = *updates.Status
	}
	if updates.PrizeType != nil {
		fields["prize_type"] = *updates.PrizeType
	}
	if updates.StartTime != nil {
		fields["start_time"] = *updates.StartTime
	}
	if updates.EndTime != nil {
		fields["end_time"] = *updates.EndTime
	}

	result := r.db.Model(&entity.Contest{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.ErrNotFound
	}

	return r.GetByID(id)
}

// ListByCreator возвращает конкурсы, созданные пользователем, новые первыми
func (r *ContestRepo) ListByCreator(userID string) ([]entity.Contest, error) {
	var contests []entity.Contest
	err := r.db.Where("creator_id = ?", userID).
		Order("created_at DESC").
		Find(&contests).Error
	if err != nil {
		return nil, err
	}
	return contests, nil
}

// ListByParticipant возвращает конкурсы, к которым пользователь присоединялся,
// в порядке новых записей участия (joined_at DESC).
// Повторные записи участия схлопываются: каждый конкурс в ответе один раз.
func (r *ContestRepo) ListByParticipant(userID string) ([]entity.Contest, error) {
	var contests []entity.Contest
	err := r.db.
		Joins("INNER JOIN contest_participants ON contest_participants.contest_id = contests.id").
		Where("contest_participants.user_id = ?", userID).
		Order("contest_participants.joined_at DESC").
		Find(&contests).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(contests))
	unique := contests[:0]
	for _, contest := range contests {
		if seen[contest.ID] {
			continue
		}
		seen[contest.ID] = true
		unique = append(unique, contest)
	}
	return unique, nil
}
