package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"lumo/internal/infra"
	"lumo/internal/models/response_models"
	"lumo/internal/models/store_models"
	"lumo/internal/repositories"
	"lumo/pkg/utils"
)

type ItineraryServiceInterface interface {
	GetItinerary(ctx context.Context, userID string, locationName string) (*response_models.ItineraryResponse, error)
}

type ItineraryService struct {
	sessionRepo   repositories.SessionRepository
	itineraryRepo repositories.ItineraryRepository
	scraper       infra.ScraperClient
	timeout       time.Duration
	logger        *zap.Logger
}

func NewItineraryService(
	sessionRepo repositories.SessionRepository,
	itineraryRepo repositories.ItineraryRepository,
	scraper infra.ScraperClient,
	timeout time.Duration,
	logger *zap.Logger,
) ItineraryServiceInterface {
	return &ItineraryService{
		sessionRepo:   sessionRepo,
		itineraryRepo: itineraryRepo,
		scraper:       scraper,
		timeout:       timeout,
		logger:        logger,
	}
}

func (s *ItineraryService) GetItinerary(ctx context.Context, userID string, locationName string) (*response_models.ItineraryResponse, error) {
	locationName = strings.TrimSpace(locationName)
	if locationName == "" {
		return nil, fmt.Errorf("%w: locationName is required", utils.ErrInvalidInput)
	}

	session, err := s.sessionRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !session.IsCompleted {
		return nil, utils.ErrQuizNotCompleted
	}

	if cached, ok := s.itineraryRepo.Get(userID, locationName); ok {
		return &response_models.ItineraryResponse{
			UserID:       userID,
			LocationName: locationName,
			Itinerary:    cached,
		}, nil
	}

	itinerary := s.generate(ctx, session, locationName)
	s.itineraryRepo.Put(itinerary)

	return &response_models.ItineraryResponse{
		UserID:       userID,
		LocationName: locationName,
		Itinerary:    itinerary,
	}, nil
}

// generate asks the scraper for live content under a bounded deadline. Any
// failure, timeout included, degrades to the mock itinerary; the caller
// never sees the scraper error.
func (s *ItineraryService) generate(ctx context.Context, session *store_models.Session, locationName string) *store_models.Itinerary {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	prefs := session.Preferences
	out, err := s.scraper.GenerateItinerary(ctx, infra.ScraperRequest{
		Location: locationName,
		UserPreferences: infra.ScraperPreferences{
			TravelStyle:         prefs.TravelStyle,
			PreferredActivities: prefs.PreferredActivities,
			FoodPreference:      prefs.FoodPreference,
			PacePreference:      prefs.PacePreference,
			AdventureLevel:      prefs.AdventureLevel,
			CulturalInterest:    prefs.CulturalInterest,
		},
	})
	if err != nil {
		s.logger.Warn("scraper failed, using fallback itinerary",
			zap.String("location", locationName),
			zap.Error(err))
		return mockItinerary(session.ID, locationName)
	}

	return buildItinerary(session.ID, locationName, out)
}

func newItineraryID() string {
	return fmt.Sprintf("itinerary_%d", time.Now().UnixMilli())
}

func buildItinerary(userID string, locationName string, out *infra.ScraperOutput) *store_models.Itinerary {
	morning := out.MorningSchedule
	if morning == "" {
		morning = "Start your day with local attractions"
	}
	afternoon := out.AfternoonSchedule
	if afternoon == "" {
		afternoon = "Explore cultural sites and local cuisine"
	}
	evening := out.EveningSchedule
	if evening == "" {
		evening = "Experience evening activities and local culture"
	}

	attractions := out.Attractions
	if attractions == nil {
		attractions = []store_models.Attraction{}
	}
	insights := out.LocalInsights
	if insights == nil {
		insights = []store_models.LocalInsight{}
	}
	events := out.Events
	if events == nil {
		events = []store_models.Event{}
	}

	totalCost := out.TotalEstimatedCost
	if totalCost == nil {
		totalCost = &store_models.CostEstimate{Total: 100}
	}

	return &store_models.Itinerary{
		ID:           newItineraryID(),
		UserID:       userID,
		LocationName: locationName,
		Schedule: store_models.DailySchedule{
			Morning:   morning,
			Afternoon: afternoon,
			Evening:   evening,
		},
		Activities: store_models.ItineraryActivities{
			MainAttractions: attractions,
			LocalInsights:   insights,
			Events:          events,
			Weather:         out.WeatherConditions,
			Transportation:  out.TransportationInfo,
			Restaurants:     out.Restaurants,
		},
		TotalCost:  totalCost,
		TravelTips: out.TravelTips,
		CreatedAt:  time.Now(),
	}
}

func mockItinerary(userID string, locationName string) *store_models.Itinerary {
	return &store_models.Itinerary{
		ID:           newItineraryID(),
		UserID:       userID,
		LocationName: locationName,
		Schedule: store_models.DailySchedule{
			Morning:   "Start your day with a traditional breakfast at a local café, then visit the main attractions.",
			Afternoon: "Explore hidden gems known only to locals, enjoy a leisurely lunch at a family-owned restaurant.",
			Evening:   "Experience the local nightlife and cultural activities, ending with a peaceful evening stroll.",
		},
		Activities: store_models.ItineraryActivities{
			MainAttractions: []store_models.Attraction{
				{Name: "Main Attraction 1", URL: "https://tripadvisor.com/attraction1", Description: "Must-see location"},
				{Name: "Main Attraction 2", URL: "https://tripadvisor.com/attraction2", Description: "Popular spot"},
			},
			LocalInsights: []store_models.LocalInsight{
				{Source: "Reddit r/travel", Tip: "Visit early morning to avoid crowds"},
				{Source: "Local Blog", Tip: "Best food is at the family-owned restaurant on Main St"},
			},
			Events: []store_models.Event{
				{Name: "Local Festival", Dates: "Seasonal", Description: "Traditional celebration"},
			},
		},
		CreatedAt: time.Now(),
	}
}
