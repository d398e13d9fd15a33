package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContestWinner представляет запись о выплате приза.
// Записи создаются внешним процессом расчёта призов; сервис их
// только хранит и отдаёт, никакой логики распределения здесь нет.
type ContestWinner struct {
	ID          string          `gorm:"type:uuid;primaryKey" json:"id"`
	ContestID   string          `gorm:"type:uuid;not null;index" json:"contestId"`
	UserID      string          `gorm:"type:uuid;not null;index" json:"userId"`
	Position    int             `gorm:"not null" json:"position"`
	PrizeAmount decimal.Decimal `gorm:"type:numeric(18,8);not null" json:"prizeAmount"`
	PrizeTxHash *string         `gorm:"size:100" json:"prizeTxHash"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// TableName определяет имя таблицы для GORM
func (ContestWinner) TableName() string {
	return "contest_winners"
}
