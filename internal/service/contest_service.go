package service

import (
	"fmt"
	"log"

	"github.com/yourusername/contest-api/internal/domain/entity"
	"github.com/yourusername/contest-api/internal/domain/repository"
	apperrors "github.com/yourusername/contest-api/internal/pkg/errors"
)

// ContestService предоставляет методы для работы с конкурсами,
// записями участия и призёрами
type ContestService struct {
	contestRepo     repository.ContestRepository
	participantRepo repository.ParticipantRepository
	winnerRepo      repository.WinnerRepository
}

// NewContestService создает новый сервис конкурсов
func NewContestService(
	contestRepo repository.ContestRepository,
	participantRepo repository.ParticipantRepository,
	winnerRepo repository.WinnerRepository,
) *ContestService {
	return &ContestService{
		contestRepo:     contestRepo,
		participantRepo: participantRepo,
		winnerRepo:      winnerRepo,
	}
}

// CreateContest валидирует и сохраняет новый конкурс.
// Статус по умолчанию — draft, тип приза — winner-takes-all.
func (s *ContestService) CreateContest(contest *entity.Contest) (*entity.Contest, error) {
	if err := validateContestFields(contest); err != nil {
		return nil, err
	}
	if !contest.EndTime.After(contest.StartTime) {
		return nil, fmt.Errorf("%w: endTime must be after startTime", apperrors.ErrValidation)
	}

	if err := s.contestRepo.Create(contest); err != nil {
		log.Printf("[ContestService] Ошибка при создании конкурса creator=%s: %v", contest.CreatorID, err)
		return nil, err
	}
	return contest, nil
}

// validateContestFields проверяет перечисления и границы числовых полей
func validateContestFields(contest *entity.Contest) error {
	if !entity.IsValidContestCategory(contest.Category) {
		return fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, contest.Category)
	}
	if contest.Status != "" && !entity.IsValidContestStatus(contest.Status) {
		return fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, contest.Status)
	}
	if contest.PrizeType != "" && !entity.IsValidPrizeType(contest.PrizeType) {
		return fmt.Errorf("%w: unknown prizeType %q", apperrors.ErrValidation, contest.PrizeType)
	}
	if contest.PrizePool.IsNegative() {
		return fmt.Errorf("%w: prizePool must not be negative", apperrors.ErrValidation)
	}
	if contest.EntryFee.IsNegative() {
		return fmt.Errorf("%w: entryFee must not be negative", apperrors.ErrValidation)
	}
	if contest.MaxParticipants < 1 {
		return fmt.Errorf("%w: maxParticipants must be at least 1", apperrors.ErrValidation)
	}
	return nil
}

// GetContestByID возвращает конкурс по ID
func (s *ContestService) GetContestByID(id string) (*entity.Contest, error) {
	return s.contestRepo.GetByID(id)
}

// ListContests возвращает конкурсы по фильтрам, новые первыми
func (s *ContestService) ListContests(filters repository.ContestFilters) ([]entity.Contest, error) {
	if filters.Status != "" && !entity.IsValidContestStatus(filters.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, filters.Status)
	}
	if filters.Category != "" && !entity.IsValidContestCategory(filters.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, filters.Category)
	}
	return s.contestRepo.List(filters)
}

// UpdateContest применяет частичное обновление конкурса.
// Заданные поля проверяются на принадлежность перечислениям и знак сумм;
// легальность перехода статусов не проверяется (любой -> любой).
func (s *ContestService) UpdateContest(id string, updates repository.ContestUpdate) (*entity.Contest, error) {
	if updates.Category != nil && !entity.IsValidContestCategory(*updates.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, *updates.Category)
	}
	if updates.Status != nil && !entity.IsValidContestStatus(*updates.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, *updates.Status)
	}
	if updates.PrizeType != nil && !entity.IsValidPrizeType(*updates.PrizeType) {
		return nil, fmt.Errorf("%w: unknown prizeType %q", apperrors.ErrValidation, *updates.PrizeType)
	}
	if updates.PrizePool != nil && updates.PrizePool.IsNegative() {
		return nil, fmt.Errorf("%w: prizePool must not be negative", apperrors.ErrValidation)
	}
	if updates.EntryFee != nil && updates.EntryFee.IsNegative() {
		return nil, fmt.Errorf("%w: entryFee must not be negative", apperrors.ErrValidation)
	}
	if updates.MaxParticipants != nil && *updates.MaxParticipants < 1 {
		return nil, fmt.Errorf("%w: maxParticipants must be at least 1", apperrors.ErrValidation)
	}

	return s.contestRepo.Update(id, updates)
}

// JoinContest создает запись об участии пользователя в конкурсе.
// Вместимость и статус конкурса намеренно не проверяются; повторный
// join той же пары создаёт вторую запись.
func (s *ContestService) JoinContest(contestID, userID string, entryTxHash *string) (*entity.ContestParticipant, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", apperrors.ErrValidation)
	}

	participant := &entity.ContestParticipant{
		ContestID:   contestID,
		UserID:      userID,
		EntryTxHash: entryTxHash,
	}

	if err := s.participantRepo.Create(participant); err != nil {
		log.Printf("[ContestService] Ошибка при добавлении участника contest=%s user=%s: %v", contestID, userID, err)
		return nil, err
	}
	return participant, nil
}

// ListParticipants возвращает участников конкурса, новые первыми
func (s *ContestService) ListParticipants(contestID string) ([]entity.ContestParticipant, error) {
	return s.participantRepo.ListByContest(contestID)
}

// ListWinners возвращает призёров конкурса по возрастанию позиции
func (s *ContestService) ListWinners(contestID string) ([]entity.ContestWinner, error) {
	return s.winnerRepo.ListByContest(contestID)
}

// ListUserCreatedContests возвращает конкурсы, созданные пользователем
func (s *ContestService) ListUserCreatedContests(userID string) ([]entity.Contest, error) {
	return s.contestRepo.ListByCreator(userID)
}

// ListUserParticipatedContests возвращает конкурсы, к которым пользователь
// присоединялся, в порядке новых записей участия
func (s *ContestService) ListUserParticipatedContests(userID string) ([]entity.Contest, error) {
	return s.contestRepo.ListByParticipant(userID)
}
