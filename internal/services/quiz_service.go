package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"lumo/internal/models/response_models"
	"lumo/internal/models/store_models"
	"lumo/internal/repositories"
	"lumo/pkg/utils"
)

type QuizServiceInterface interface {
	GetCatalog(ctx context.Context) (*response_models.CatalogResponse, error)
	GetStep(ctx context.Context, stepNumber int) (*store_models.QuizStep, error)
	StartSession(ctx context.Context) (*response_models.StartQuizResponse, error)
	RecordResponse(ctx context.Context, userID string, stepNumber int, selectedOption int) (*response_models.QuizAnswerResponse, error)
	GetCurrentStep(ctx context.Context, userID string) (*store_models.QuizStep, error)
	GetStatus(ctx context.Context, userID string) (*response_models.StatusResponse, error)
	GetPreferences(ctx context.Context, userID string) (*response_models.PreferencesResponse, error)
}

type QuizService struct {
	sessionRepo repositories.SessionRepository
	catalogRepo repositories.CatalogRepository
}

func NewQuizService(
	sessionRepo repositories.SessionRepository,
	catalogRepo repositories.CatalogRepository,
) QuizServiceInterface {
	return &QuizService{
		sessionRepo: sessionRepo,
		catalogRepo: catalogRepo,
	}
}

func (q *QuizService) GetCatalog(ctx context.Context) (*response_models.CatalogResponse, error) {
	return &response_models.CatalogResponse{
		Questions: q.catalogRepo.All(),
		Total:     q.catalogRepo.Count(),
	}, nil
}

func (q *QuizService) GetStep(ctx context.Context, stepNumber int) (*store_models.QuizStep, error) {
	if stepNumber < 1 || stepNumber > q.catalogRepo.Count() {
		return nil, fmt.Errorf("%w: step number must be between 1 and %d", utils.ErrInvalidInput, q.catalogRepo.Count())
	}

	step, ok := q.catalogRepo.ByStep(stepNumber)
	if !ok {
		return nil, utils.ErrStepNotFound
	}
	return step, nil
}

func (q *QuizService) StartSession(ctx context.Context) (*response_models.StartQuizResponse, error) {
	now := time.Now()
	session := &store_models.Session{
		ID:        fmt.Sprintf("user_%d_%s", now.UnixMilli(), strings.Split(uuid.NewString(), "-")[0]),
		Responses: []store_models.StepResponse{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := q.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	return &response_models.StartQuizResponse{
		UserID:          session.ID,
		CurrentQuestion: 1,
		TotalQuestions:  q.catalogRepo.Count(),
	}, nil
}

func (q *QuizService) RecordResponse(ctx context.Context, userID string, stepNumber int, selectedOption int) (*response_models.QuizAnswerResponse, error) {
	total := q.catalogRepo.Count()
	if stepNumber < 1 || stepNumber > total {
		return nil, fmt.Errorf("%w: stepNumber must be between 1 and %d", utils.ErrInvalidInput, total)
	}
	if selectedOption < 0 || selectedOption > 3 {
		return nil, fmt.Errorf("%w: selectedOption must be 0, 1, 2, or 3", utils.ErrInvalidInput)
	}

	session, err := q.sessionRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if session.IsCompleted {
		return nil, utils.ErrQuizAlreadyCompleted
	}

	session.SetResponse(stepNumber, selectedOption)
	session.UpdatedAt = time.Now()

	if session.ResponseCount() >= total {
		session.IsCompleted = true
		session.Preferences = BuildPreferences(session.SelectedOptions())

		if err := q.sessionRepo.Update(ctx, session); err != nil {
			return nil, err
		}

		return &response_models.QuizAnswerResponse{
			UserID:      session.ID,
			IsComplete:  true,
			Preferences: session.Preferences,
		}, nil
	}

	if err := q.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}

	return &response_models.QuizAnswerResponse{
		UserID:          session.ID,
		CurrentQuestion: stepNumber + 1,
		IsComplete:      false,
	}, nil
}

func (q *QuizService) GetCurrentStep(ctx context.Context, userID string) (*store_models.QuizStep, error) {
	session, err := q.sessionRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	current := session.ResponseCount() + 1
	if current > q.catalogRepo.Count() {
		return nil, utils.ErrQuizAlreadyCompleted
	}

	step, ok := q.catalogRepo.ByStep(current)
	if !ok {
		return nil, utils.ErrStepNotFound
	}
	return step, nil
}

func (q *QuizService) GetStatus(ctx context.Context, userID string) (*response_models.StatusResponse, error) {
	session, err := q.sessionRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	total := q.catalogRepo.Count()
	current := session.ResponseCount() + 1
	if current > total {
		current = total
	}

	return &response_models.StatusResponse{
		UserID:          session.ID,
		IsCompleted:     session.IsCompleted,
		CurrentQuestion: current,
		TotalQuestions:  total,
		HasPreferences:  session.Preferences != nil,
	}, nil
}

func (q *QuizService) GetPreferences(ctx context.Context, userID string) (*response_models.PreferencesResponse, error) {
	session, err := q.sessionRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !session.IsCompleted {
		return nil, utils.ErrQuizNotCompleted
	}

	return &response_models.PreferencesResponse{
		UserID:      session.ID,
		Preferences: session.Preferences,
		IsCompleted: session.IsCompleted,
	}, nil
}
