package itinerary_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"lumo/internal/infra"
	"lumo/internal/repositories"
	"lumo/internal/services"
	"lumo/pkg/config"
)

var Module = fx.Provide(provideItineraryRepo, provideScraperClient, provideItineraryService)

func provideItineraryRepo() repositories.ItineraryRepository {
	return repositories.NewInMemoryItineraryRepository()
}

func provideScraperClient(cfg *config.Config, logger *zap.Logger) infra.ScraperClient {
	return infra.NewExecScraperClient(cfg.ScraperCommand, logger)
}

func provideItineraryService(
	sessionRepo repositories.SessionRepository,
	itineraryRepo repositories.ItineraryRepository,
	scraper infra.ScraperClient,
	cfg *config.Config,
	logger *zap.Logger,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(sessionRepo, itineraryRepo, scraper, cfg.ScraperTimeout, logger)
}
