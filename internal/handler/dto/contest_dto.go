package dto

import (
	"time"

	"github.com/yourusername/contest-api/internal/domain/entity"
	"github.com/yourusername/contest-api/internal/domain/repository"
)

// ContestResponse представляет конкурс в формате для ответа клиенту.
// Денежные суммы сериализуются строками, чтобы не терять точность
// numeric(18,8) при передаче через JSON.
type ContestResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	CreatorID       string    `json:"creatorId"`
	ContractAddress *string   `json:"contractAddress"`
	PrizePool       string    `json:"prizePool"`
	EntryFee        string    `json:"entryFee"`
	MaxParticipants int       `json:"maxParticipants"`
	Status          string    `json:"status"`
	PrizeType       string    `json:"prizeType"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ParticipantResponse представляет запись участия в формате для ответа клиенту
type ParticipantResponse struct {
	ID          string    `json:"id"`
	ContestID   string    `json:"contestId"`
	UserID      string    `json:"userId"`
	EntryTxHash *string   `json:"entryTxHash"`
	JoinedAt    time.Time `json:"joinedAt"`
}

// WinnerResponse представляет запись о призе в формате для ответа клиенту
type WinnerResponse struct {
	ID          string    `json:"id"`
	ContestID   string    `json:"contestId"`
	UserID      string    `json:"userId"`
	Position    int       `json:"position"`
	PrizeAmount string    `json:"prizeAmount"`
	PrizeTxHash *string   `json:"prizeTxHash"`
	CreatedAt   time.Time `json:"createdAt"`
}

// StatsResponse представляет агрегаты платформы в формате для ответа клиенту
type StatsResponse struct {
	TotalPrizes       string `json:"totalPrizes"`
	ActiveContests    int64  `json:"activeContests"`
	TotalParticipants int64  `json:"totalParticipants"`
	ContestsCompleted int64  `json:"contestsCompleted"`
}

// NewContestResponse создает DTO для конкурса
func NewContestResponse(contest *entity.Contest) *ContestResponse {
	if contest == nil {
		return nil
	}
	return &ContestResponse{
		ID:              contest.ID,
		Title:           contest.Title,
		Description:     contest.Description,
		Category:        contest.Category,
		CreatorID:       contest.CreatorID,
		ContractAddress: contest.ContractAddress,
		PrizePool:       contest.PrizePool.String(),
		EntryFee:        contest.EntryFee.String(),
		MaxParticipants: contest.MaxParticipants,
		Status:          contest.Status,
		PrizeType:       contest.PrizeType,
		StartTime:       contest.StartTime,
		EndTime:         contest.EndTime,
		CreatedAt:       contest.CreatedAt,
		UpdatedAt:       contest.UpdatedAt,
	}
}

// NewListContestResponse создает слайс DTO для списка конкурсов
func NewListContestResponse(contests []entity.Contest) []*ContestResponse {
	list := make([]*ContestResponse, len(contests))
	for i := range contests {
		list[i] = NewContestResponse(&contests[i])
	}
	return list
}

// NewParticipantResponse создает DTO для записи участия
func NewParticipantResponse(p *entity.ContestParticipant) *ParticipantResponse {
	if p == nil {
		return nil
	}
	return &ParticipantResponse{
		ID:          p.ID,
		ContestID:   p.ContestID,
		UserID:      p.UserID,
		EntryTxHash: p.EntryTxHash,
		JoinedAt:    p.JoinedAt,
	}
}

// NewListParticipantResponse создает слайс DTO для списка участников
func NewListParticipantResponse(participants []entity.ContestParticipant) []*ParticipantResponse {
	list := make([]*ParticipantResponse, len(participants))
	for i := range participants {
		list[i] = NewParticipantResponse(&participants[i])
	}
	return list
}

// NewWinnerResponse создает DTO для записи о призе
func NewWinnerResponse(w *entity.ContestWinner) *WinnerResponse {
	if w == nil {
		return nil
	}
	return &WinnerResponse{
		ID:          w.ID,
		ContestID:   w.ContestID,
		UserID:      w.UserID,
		Position:    w.Position,
		PrizeAmount: w.PrizeAmount.String(),
		PrizeTxHash: w.PrizeTxHash,
		CreatedAt:   w.CreatedAt,
	}
}

// NewListWinnerResponse создает слайс DTO для списка призёров
func NewListWinnerResponse(winners []entity.ContestWinner) []*WinnerResponse {
	list := make([]*WinnerResponse, len(winners))
	for i := range winners {
		list[i] = NewWinnerResponse(&winners[i])
	}
	return list
}

// NewStatsResponse создает DTO для агрегатов платформы
func NewStatsResponse(stats *repository.PlatformStats) *StatsResponse {
	if stats == nil {
		return nil
	}
	return &StatsResponse{
		TotalPrizes:       stats.TotalPrizes.String(),
		ActiveContests:    stats.ActiveContests,
		TotalParticipants: stats.TotalParticipants,
		ContestsCompleted: stats.ContestsCompleted,
	}
}
