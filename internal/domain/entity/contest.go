package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Константы статусов конкурса
const (
	ContestStatusDraft     = "draft"
	ContestStatusActive    = "active"
	ContestStatusCompleted = "completed"
	ContestStatusCancelled = "cancelled"
)

// Константы категорий конкурса
const (
	ContestCategoryHackathon  = "hackathon"
	ContestCategoryGaming     = "gaming"
	ContestCategorySports     = "sports"
	ContestCategoryCreative   = "creative"
	ContestCategoryPrediction = "prediction"
	ContestCategoryCustom     = "custom"
)

// Константы типов распределения призов
const (
	PrizeTypeWinnerTakesAll = "winner-takes-all"
	PrizeTypeTopThree       = "top-three"
	PrizeTypeSponsorFunded  = "sponsor-funded"
)

// Contest представляет конкурс: ограниченное по времени соревнование
// с входным взносом, призовым фондом и лимитом участников.
// Переходы статусов выполняются только по запросу вызывающей стороны:
// конкурс с истёкшим EndTime сохраняет последний установленный статус.
type Contest struct {
	ID              string          `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string          `gorm:"size:200;not null" json:"title"`
	Description     string          `gorm:"type:text;not null" json:"description"`
	Category        string          `gorm:"size:20;not null;index" json:"category"`
	CreatorID       string          `gorm:"type:uuid;not null;index" json:"creatorId"`
	ContractAddress *string         `gorm:"size:100" json:"contractAddress"`
	PrizePool       decimal.Decimal `gorm:"type:numeric(18,8);not null;default:0" json:"prizePool"`
	EntryFee        decimal.Decimal `gorm:"type:numeric(18,8);not null;default:0" json:"entryFee"`
	MaxParticipants int             `gorm:"not null" json:"maxParticipants"`
	Status          string          `gorm:"size:20;not null;default:'draft';index" json:"status"`
	PrizeType       string          `gorm:"size:20;not null;default:'winner-takes-all'" json:"prizeType"`
	StartTime       time.Time       `gorm:"not null" json:"startTime"`
	EndTime         time.Time       `gorm:"not null" json:"endTime"`
	CreatedAt       time.Time       `gorm:"index" json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// TableName определяет имя таблицы для GORM
func (Contest) TableName() string {
	return "contests"
}

// IsActive проверяет, активен ли конкурс
func (c *Contest) IsActive() bool {
	return c.Status == ContestStatusActive
}

// IsCompleted проверяет, завершён ли конкурс
func (c *Contest) IsCompleted() bool {
	return c.Status == ContestStatusCompleted
}

// IsValidContestStatus проверяет принадлежность статуса фиксированному набору.
// Любое другое значение — ошибка валидации, а не молчаливый дефолт.
func IsValidContestStatus(status string) bool {
	switch status {
	case ContestStatusDraft, ContestStatusActive, ContestStatusCompleted, ContestStatusCancelled:
		return true
	}
	return false
}

// IsValidContestCategory проверяет принадлежность категории фиксированному набору
func IsValidContestCategory(category string) bool {
	switch category {
	case ContestCategoryHackathon, ContestCategoryGaming, ContestCategorySports,
		ContestCategoryCreative, ContestCategoryPrediction, ContestCategoryCustom:
		return true
	}
	return false
}

// IsValidPrizeType проверяет принадлежность типа приза фиксированному набору
func IsValidPrizeType(prizeType string) bool {
	switch prizeType {
	case PrizeTypeWinnerTakesAll, PrizeTypeTopThree, PrizeTypeSponsorFunded:
		return true
	}
	return false
}
