package response_models

import (
	"lumo/internal/models/store_models"
)

type StartQuizResponse struct {
	UserID          string `json:"userId"`
	CurrentQuestion int    `json:"currentQuestion"`
	TotalQuestions  int    `json:"totalQuestions"`
}

type QuizAnswerResponse struct {
	UserID          string                    `json:"userId"`
	CurrentQuestion int                       `json:"currentQuestion,omitempty"`
	IsComplete      bool                      `json:"isComplete"`
	Preferences     *store_models.Preferences `json:"preferences,omitempty"`
}

type CatalogResponse struct {
	Questions []store_models.QuizStep `json:"questions"`
	Total     int                     `json:"total"`
}

type StatusResponse struct {
	UserID          string `json:"userId"`
	IsCompleted     bool   `json:"isCompleted"`
	CurrentQuestion int    `json:"currentQuestion"`
	TotalQuestions  int    `json:"totalQuestions"`
	HasPreferences  bool   `json:"hasPreferences"`
}

type PreferencesResponse struct {
	UserID      string                    `json:"userId"`
	Preferences *store_models.Preferences `json:"preferences"`
	IsCompleted bool                      `json:"isCompleted"`
}

type RecommendationsResponse struct {
	UserID          string                        `json:"userId"`
	Recommendations []store_models.Recommendation `json:"recommendations"`
}

type ItineraryResponse struct {
	UserID       string                  `json:"userId"`
	LocationName string                  `json:"locationName"`
	Itinerary    *store_models.Itinerary `json:"itinerary"`
}

type HealthResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Status  string `json:"status"`
}
