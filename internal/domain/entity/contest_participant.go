package entity

import (
	"time"
)

// ContestParticipant представляет запись об участии пользователя в конкурсе.
// Запись создаётся один раз на каждое действие join и после создания неизменяема.
// Уникальность пары (contest, user) на этом уровне не проверяется:
// повторный join создаёт вторую независимую запись.
type ContestParticipant struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	ContestID   string    `gorm:"type:uuid;not null;index" json:"contestId"`
	UserID      string    `gorm:"type:uuid;not null;index" json:"userId"`
	EntryTxHash *string   `gorm:"size:100" json:"entryTxHash"`
	JoinedAt    time.Time `gorm:"index" json:"joinedAt"`
}

// TableName определяет имя таблицы для GORM
func (ContestParticipant) TableName() string {
	return "contest_participants"
}
