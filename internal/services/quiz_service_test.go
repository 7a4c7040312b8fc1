package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumo/internal/repositories"
	"lumo/pkg/utils"
)

func newQuizService(t *testing.T) (QuizServiceInterface, repositories.SessionRepository) {
	t.Helper()
	sessionRepo := repositories.NewInMemorySessionRepository()
	return NewQuizService(sessionRepo, repositories.NewStaticCatalogRepository()), sessionRepo
}

func startSession(t *testing.T, svc QuizServiceInterface) string {
	t.Helper()
	started, err := svc.StartSession(context.Background())
	require.NoError(t, err)
	return started.UserID
}

func TestStartSession(t *testing.T) {
	svc, _ := newQuizService(t)

	started, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, started.UserID)
	assert.Equal(t, 1, started.CurrentQuestion)
	assert.Equal(t, 10, started.TotalQuestions)

	status, err := svc.GetStatus(context.Background(), started.UserID)
	require.NoError(t, err)
	assert.False(t, status.IsCompleted)
	assert.Equal(t, 1, status.CurrentQuestion)
	assert.False(t, status.HasPreferences)
}

func TestGetStep(t *testing.T) {
	svc, _ := newQuizService(t)

	step, err := svc.GetStep(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, step.Step)
	assert.True(t, step.Data.HasNext)

	last, err := svc.GetStep(context.Background(), 10)
	require.NoError(t, err)
	assert.False(t, last.Data.HasNext)

	for _, bad := range []int{0, 11, -3} {
		_, err := svc.GetStep(context.Background(), bad)
		assert.ErrorIs(t, err, utils.ErrInvalidInput, "step %d", bad)
	}
}

func TestRecordResponseValidation(t *testing.T) {
	svc, _ := newQuizService(t)
	userID := startSession(t, svc)

	_, err := svc.RecordResponse(context.Background(), userID, 0, 1)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.RecordResponse(context.Background(), userID, 11, 1)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.RecordResponse(context.Background(), userID, 1, 4)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
	assert.Contains(t, err.Error(), "0, 1, 2, or 3")

	_, err = svc.RecordResponse(context.Background(), userID, 1, -1)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.RecordResponse(context.Background(), "user_missing", 1, 1)
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}

func TestRecordResponseCompletesAfterTen(t *testing.T) {
	svc, _ := newQuizService(t)
	userID := startSession(t, svc)

	for step := 1; step <= 9; step++ {
		result, err := svc.RecordResponse(context.Background(), userID, step, 0)
		require.NoError(t, err)
		assert.False(t, result.IsComplete)
		assert.Equal(t, step+1, result.CurrentQuestion)
		assert.Nil(t, result.Preferences)
	}

	result, err := svc.RecordResponse(context.Background(), userID, 10, 0)
	require.NoError(t, err)
	assert.True(t, result.IsComplete)
	require.NotNil(t, result.Preferences)
	assert.Equal(t, "adventure", result.Preferences.TravelStyle)

	status, err := svc.GetStatus(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, status.IsCompleted)
	assert.Equal(t, 10, status.CurrentQuestion)
	assert.True(t, status.HasPreferences)

	_, err = svc.RecordResponse(context.Background(), userID, 3, 1)
	assert.ErrorIs(t, err, utils.ErrQuizAlreadyCompleted)
}

func TestRecordResponseOverwritesStep(t *testing.T) {
	svc, sessionRepo := newQuizService(t)
	userID := startSession(t, svc)

	_, err := svc.RecordResponse(context.Background(), userID, 1, 0)
	require.NoError(t, err)
	_, err = svc.RecordResponse(context.Background(), userID, 1, 3)
	require.NoError(t, err)

	session, err := sessionRepo.GetByID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 1, session.ResponseCount())
	assert.Equal(t, []int{3}, session.SelectedOptions())

	status, err := svc.GetStatus(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 2, status.CurrentQuestion)
}

func TestGetCurrentStep(t *testing.T) {
	svc, _ := newQuizService(t)
	userID := startSession(t, svc)

	step, err := svc.GetCurrentStep(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 1, step.Step)

	for s := 1; s <= 3; s++ {
		_, err := svc.RecordResponse(context.Background(), userID, s, 1)
		require.NoError(t, err)
	}

	step, err = svc.GetCurrentStep(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 4, step.Step)

	for s := 4; s <= 10; s++ {
		_, err := svc.RecordResponse(context.Background(), userID, s, 1)
		require.NoError(t, err)
	}

	_, err = svc.GetCurrentStep(context.Background(), userID)
	assert.ErrorIs(t, err, utils.ErrQuizAlreadyCompleted)

	_, err = svc.GetCurrentStep(context.Background(), "user_missing")
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}

func TestGetPreferences(t *testing.T) {
	svc, _ := newQuizService(t)
	userID := startSession(t, svc)

	_, err := svc.GetPreferences(context.Background(), userID)
	assert.ErrorIs(t, err, utils.ErrQuizNotCompleted)

	for s := 1; s <= 10; s++ {
		_, err := svc.RecordResponse(context.Background(), userID, s, 1)
		require.NoError(t, err)
	}

	prefs, err := svc.GetPreferences(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, prefs.IsCompleted)
	require.NotNil(t, prefs.Preferences)
	assert.Equal(t, "cultural", prefs.Preferences.TravelStyle)

	_, err = svc.GetPreferences(context.Background(), "user_missing")
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}
