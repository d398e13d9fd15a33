package service

import (
	"github.com/stretchr/testify/mock"

	"github.com/yourusername/contest-api/internal/domain/entity"
	"github.com/yourusername/contest-api/internal/domain/repository"
)

// ============================================================================
// Моки репозиториев для тестов сервисов
// ============================================================================

// MockUserRepository реализует repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByWallet(walletAddress string) (*entity.User, error) {
	args := m.Called(walletAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*entity.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// MockContestRepository реализует repository.ContestRepository
type MockContestRepository struct {
	mock.Mock
}

func (m *MockContestRepository) Create(contest *entity.Contest) error {
	args := m.Called(contest)
	return args.Error(0)
}

func (m *MockContestRepository) GetByID(id string) (*entity.Contest, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Contest), args.Error(1)
}

func (m *MockContestRepository) List(filters repository.ContestFilters) ([]entity.Contest, error) {
	args := m.Called(filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Contest), args.Error(1)
}

func (m *MockContestRepository) Update(id string, updates repository.ContestUpdate) (*entity.Contest, error) {
	args := m.Called(id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Contest), args.Error(1)
}

func (m *MockContestRepository) ListByCreator(userID string) ([]entity.Contest, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Contest), args.Error(1)
}

func (m *MockContestRepository) ListByParticipant(userID string) ([]entity.Contest, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Contest), args.Error(1)
}

// MockParticipantRepository реализует repository.ParticipantRepository
type MockParticipantRepository struct {
	mock.Mock
}

func (m *MockParticipantRepository) Create(participant *entity.ContestParticipant) error {
	args := m.Called(participant)
	return args.Error(0)
}

func (m *MockParticipantRepository) ListByContest(contestID string) ([]entity.ContestParticipant, error) {
	args := m.Called(contestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ContestParticipant), args.Error(1)
}

// MockWinnerRepository реализует repository.WinnerRepository
type MockWinnerRepository struct {
	mock.Mock
}

func (m *MockWinnerRepository) Create(winner *entity.ContestWinner) error {
	args := m.Called(winner)
	return args.Error(0)
}

func (m *MockWinnerRepository) ListByContest(contestID string) ([]entity.ContestWinner, error) {
	args := m.Called(contestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ContestWinner), args.Error(1)
}

// MockStatsRepository реализует repository.StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) GetPlatformStats() (*repository.PlatformStats, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PlatformStats), args.Error(1)
}
