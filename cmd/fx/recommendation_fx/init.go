package recommendation_fx

import (
	"go.uber.org/fx"

	"lumo/internal/repositories"
	"lumo/internal/services"
)

var Module = fx.Provide(provideRecommendationRepo, provideRecommendationService)

func provideRecommendationRepo() repositories.RecommendationRepository {
	return repositories.NewInMemoryRecommendationRepository()
}

func provideRecommendationService(
	sessionRepo repositories.SessionRepository,
	recommendationRepo repositories.RecommendationRepository,
) services.RecommendationServiceInterface {
	return services.NewRecommendationService(sessionRepo, recommendationRepo)
}
