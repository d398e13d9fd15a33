package entity

import (
	"strings"
	"time"
)

// Длина префикса wallet-адреса, используемого как имя по умолчанию
const usernamePrefixLen = 8

// User представляет пользователя платформы.
// Идентификация происходит по wallet-адресу; записи создаются при первом
// подключении кошелька и после создания не изменяются и не удаляются.
type User struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	WalletAddress string    `gorm:"size:100;not null;uniqueIndex" json:"walletAddress"`
	Username      string    `gorm:"size:50" json:"username"`
	CreatedAt     time.Time `json:"createdAt"`
}

// TableName определяет имя таблицы для GORM
func (User) TableName() string {
	return "users"
}

// DefaultUsername возвращает отображаемое имя по умолчанию:
// первые 8 символов wallet-адреса с многоточием
func DefaultUsername(walletAddress string) string {
	addr := strings.TrimSpace(walletAddress)
	if len(addr) <= usernamePrefixLen {
		return addr
	}
	return addr[:usernamePrefixLen] + "..."
}
