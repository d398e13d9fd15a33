package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/contest-api/internal/domain/entity"
	"github.com/yourusername/contest-api/internal/domain/repository"
	apperrors "github.com/yourusername/contest-api/internal/pkg/errors"
)

func strPtr(s string) *string { return &s }

func validContest() *entity.Contest {
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	return &entity.Contest{
		Title:           "Summer Hackathon",
		Description:     "Build on-chain",
		Category:        entity.ContestCategoryHackathon,
		CreatorID:       "creator-1",
		PrizePool:       decimal.RequireFromString("100"),
		EntryFee:        decimal.RequireFromString("1.5"),
		MaxParticipants: 50,
		StartTime:       start,
		EndTime:         start.Add(48 * time.Hour),
	}
}

func newContestService(contestRepo *MockContestRepository, participantRepo *MockParticipantRepository, winnerRepo *MockWinnerRepository) *ContestService {
	if contestRepo == nil {
		contestRepo = new(MockContestRepository)
	}
	if participantRepo == nil {
		participantRepo = new(MockParticipantRepository)
	}
	if winnerRepo == nil {
		winnerRepo = new(MockWinnerRepository)
	}
	return NewContestService(contestRepo, participantRepo, winnerRepo)
}

func TestContestService_CreateContest_Success(t *testing.T) {
	// Arrange
	mockRepo := new(MockContestRepository)
	svc := newContestService(mockRepo, nil, nil)

	mockRepo.On("Create", mock.AnythingOfType("*entity.Contest")).Return(nil)

	// Act
	created, err := svc.CreateContest(validContest())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Summer Hackathon", created.Title)
	mockRepo.AssertExpectations(t)
}

func TestContestService_CreateContest_ValidationFailures(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(c *entity.Contest)
	}{
		{"неизвестная категория", func(c *entity.Contest) { c.Category = "esports" }},
		{"неизвестный статус", func(c *entity.Contest) { c.Status = "archived" }},
		{"неизвестный тип приза", func(c *entity.Contest) { c.PrizeType = "split" }},
		{"отрицательный призовой фонд", func(c *entity.Contest) { c.PrizePool = decimal.RequireFromString("-1") }},
		{"отрицательный взнос", func(c *entity.Contest) { c.EntryFee = decimal.RequireFromString("-0.5") }},
		{"maxParticipants меньше 1", func(c *entity.Contest) { c.MaxParticipants = 0 }},
		{"endTime раньше startTime", func(c *entity.Contest) { c.EndTime = c.StartTime.Add(-time.Hour) }},
		{"endTime равен startTime", func(c *entity.Contest) { c.EndTime = c.StartTime }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := new(MockContestRepository)
			svc := newContestService(mockRepo, nil, nil)

			contest := validContest()
			tc.mutate(contest)

			_, err := svc.CreateContest(contest)

			assert.ErrorIs(t, err, apperrors.ErrValidation)
			mockRepo.AssertNotCalled(t, "Create", mock.Anything)
		})
	}
}

func TestContestService_ListContests_InvalidFilterRejected(t *testing.T) {
	mockRepo := new(MockContestRepository)
	svc := newContestService(mockRepo, nil, nil)

	_, err := svc.ListContests(repository.ContestFilters{Status: "archived"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.ListContests(repository.ContestFilters{Category: "esports"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	mockRepo.AssertNotCalled(t, "List", mock.Anything)
}

func TestContestService_ListContests_PassesFiltersThrough(t *testing.T) {
	mockRepo := new(MockContestRepository)
	svc := newContestService(mockRepo, nil, nil)

	filters := repository.ContestFilters{
		Status:   entity.ContestStatusActive,
		Category: entity.ContestCategoryGaming,
	}
	expected := []entity.Contest{{ID: "c1"}, {ID: "c2"}}
	mockRepo.On("List", filters).Return(expected, nil)

	contests, err := svc.ListContests(filters)
	require.NoError(t, err)
	assert.Equal(t, expected, contests)
	mockRepo.AssertExpectations(t)
}

func TestContestService_UpdateContest_ValidatesOnlyProvidedFields(t *testing.T) {
	// Arrange: меняется только заголовок — проверки перечислений не мешают
	mockRepo := new(MockContestRepository)
	svc := newContestService(mockRepo, nil, nil)

	title := "Renamed"
	updates := repository.ContestUpdate{Title: &title}
	expected := &entity.Contest{ID: "c1", Title: title}
	mockRepo.On("Update", "c1", updates).Return(expected, nil)

	// Act
	updated, err := svc.UpdateContest("c1", updates)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
}

func TestContestService_UpdateContest_InvalidFieldRejected(t *testing.T) {
	mockRepo := new(MockContestRepository)
	svc := newContestService(mockRepo, nil, nil)

	badStatus := "archived"
	_, err := svc.UpdateContest("c1", repository.ContestUpdate{Status: &badStatus})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	negative := decimal.RequireFromString("-10")
	_, err = svc.UpdateContest("c1", repository.ContestUpdate{PrizePool: &negative})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	zero := 0
	_, err = svc.UpdateContest("c1", repository.ContestUpdate{MaxParticipants: &zero})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestContestService_UpdateContest_NotFoundPropagated(t *testing.T) {
	mockRepo := new(MockContestRepository)
	svc := newContestService(mockRepo, nil, nil)

	title := "Renamed"
	updates := repository.ContestUpdate{Title: &title}
	mockRepo.On("Update", "missing", updates).Return(nil, apperrors.ErrNotFound)

	_, err := svc.UpdateContest("missing", updates)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestContestService_JoinContest_Success(t *testing.T) {
	// Arrange
	mockParticipants := new(MockParticipantRepository)
	svc := newContestService(nil, mockParticipants, nil)

	mockParticipants.On("Create", mock.AnythingOfType("*entity.ContestParticipant")).Return(nil)

	// Act
	participant, err := svc.JoinContest("c1", "u1", strPtr("0xTX"))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "c1", participant.ContestID)
	assert.Equal(t, "u1", participant.UserID)
	require.NotNil(t, participant.EntryTxHash)
	assert.Equal(t, "0xTX", *participant.EntryTxHash)
	mockParticipants.AssertExpectations(t)
}

func TestContestService_JoinContest_UserIDRequired(t *testing.T) {
	mockParticipants := new(MockParticipantRepository)
	svc := newContestService(nil, mockParticipants, nil)

	_, err := svc.JoinContest("c1", "", nil)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	mockParticipants.AssertNotCalled(t, "Create", mock.Anything)
}

func TestContestService_JoinContest_NoDuplicateCheck(t *testing.T) {
	// Сервис не проверяет повторное участие: два вызова — два Create
	mockParticipants := new(MockParticipantRepository)
	svc := newContestService(nil, mockParticipants, nil)

	mockParticipants.On("Create", mock.AnythingOfType("*entity.ContestParticipant")).Return(nil).Twice()

	_, err := svc.JoinContest("c1", "u1", nil)
	require.NoError(t, err)
	_, err = svc.JoinContest("c1", "u1", nil)
	require.NoError(t, err)

	mockParticipants.AssertExpectations(t)
}

func TestContestService_ListWinners(t *testing.T) {
	mockWinners := new(MockWinnerRepository)
	svc := newContestService(nil, nil, mockWinners)

	expected := []entity.ContestWinner{
		{ID: "w1", Position: 1, PrizeAmount: decimal.RequireFromString("100")},
		{ID: "w2", Position: 2, PrizeAmount: decimal.RequireFromString("50")},
	}
	mockWinners.On("ListByContest", "c1").Return(expected, nil)

	winners, err := svc.ListWinners("c1")
	require.NoError(t, err)
	assert.Equal(t, expected, winners)
}

func TestContestService_ListUserContests(t *testing.T) {
	mockRepo := new(MockContestRepository)
	svc := newContestService(mockRepo, nil, nil)

	created := []entity.Contest{{ID: "c1"}}
	participated := []entity.Contest{{ID: "c2"}, {ID: "c1"}}
	mockRepo.On("ListByCreator", "u1").Return(created, nil)
	mockRepo.On("ListByParticipant", "u1").Return(participated, nil)

	got, err := svc.ListUserCreatedContests("u1")
	require.NoError(t, err)
	assert.Equal(t, created, got)

	got, err = svc.ListUserParticipatedContests("u1")
	require.NoError(t, err)
	assert.Equal(t, participated, got)
}
