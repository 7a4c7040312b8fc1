package services

import (
	"context"

	"lumo/internal/models/response_models"
	"lumo/internal/repositories"
	"lumo/pkg/utils"
)

type RecommendationServiceInterface interface {
	GetRecommendations(ctx context.Context, userID string) (*response_models.RecommendationsResponse, error)
}

type RecommendationService struct {
	sessionRepo        repositories.SessionRepository
	recommendationRepo repositories.RecommendationRepository
}

func NewRecommendationService(
	sessionRepo repositories.SessionRepository,
	recommendationRepo repositories.RecommendationRepository,
) RecommendationServiceInterface {
	return &RecommendationService{
		sessionRepo:        sessionRepo,
		recommendationRepo: recommendationRepo,
	}
}

func (r *RecommendationService) GetRecommendations(ctx context.Context, userID string) (*response_models.RecommendationsResponse, error) {
	session, err := r.sessionRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !session.IsCompleted {
		return nil, utils.ErrQuizNotCompleted
	}

	if cached, ok := r.recommendationRepo.CachedForUser(userID); ok {
		return &response_models.RecommendationsResponse{
			UserID:          userID,
			Recommendations: cached,
		}, nil
	}

	style := defaultTravelStyle
	if session.Preferences != nil {
		style = session.Preferences.TravelStyle
	}

	recs, ok := r.recommendationRepo.ByStyle(style)
	if !ok {
		recs, _ = r.recommendationRepo.ByStyle(defaultTravelStyle)
	}

	r.recommendationRepo.CacheForUser(userID, recs)

	return &response_models.RecommendationsResponse{
		UserID:          userID,
		Recommendations: recs,
	}, nil
}
