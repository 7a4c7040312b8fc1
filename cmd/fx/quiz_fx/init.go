package quiz_fx

import (
	"go.uber.org/fx"

	"lumo/internal/repositories"
	"lumo/internal/services"
)

var Module = fx.Provide(provideSessionRepo, provideCatalogRepo, provideQuizService)

func provideSessionRepo() repositories.SessionRepository {
	return repositories.NewInMemorySessionRepository()
}

func provideCatalogRepo() repositories.CatalogRepository {
	return repositories.NewStaticCatalogRepository()
}

func provideQuizService(
	sessionRepo repositories.SessionRepository,
	catalogRepo repositories.CatalogRepository,
) services.QuizServiceInterface {
	return services.NewQuizService(sessionRepo, catalogRepo)
}
