// Package memory содержит in-memory реализацию репозиториев.
// Поведение идентично postgres-бэкенду за исключением долговечности:
// данные живут только в памяти процесса. Используется в тестах и
// в демонстрационном режиме (storage.backend = "memory").
package memory

import (
	"sync"

	"github.com/yourusername/contest-api/internal/domain/entity"
)

// Store хранит все коллекции под общим RWMutex.
// Репозитории одного бэкенда разделяют один Store, чтобы операции,
// затрагивающие несколько коллекций (например, выборка конкурсов
// по записям участия), видели согласованное состояние.
type Store struct {
	mu           sync.RWMutex
	users        []entity.User
	contests     []entity.Contest
	participants []entity.ContestParticipant
	winners      []entity.ContestWinner
}

// NewStore создает пустое in-memory хранилище
func NewStore() *Store {
	return &Store{}
}
