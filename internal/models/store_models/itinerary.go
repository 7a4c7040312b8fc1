package store_models

import "time"

type DailySchedule struct {
	Morning   string `json:"morning"`
	Afternoon string `json:"afternoon"`
	Evening   string `json:"evening"`
}

type ItineraryActivities struct {
	MainAttractions []Attraction   `json:"main_attractions"`
	LocalInsights   []LocalInsight `json:"local_insights"`
	Events          []Event        `json:"events"`
	Weather         map[string]any `json:"weather,omitempty"`
	Transportation  map[string]any `json:"transportation,omitempty"`
	Restaurants     map[string]any `json:"restaurants,omitempty"`
}

type CostEstimate struct {
	Total float64 `json:"total"`
}

// Itinerary is built once per (session, location) pair and then reused
// unchanged from the cache.
type Itinerary struct {
	ID           string              `json:"id"`
	UserID       string              `json:"userId"`
	LocationName string              `json:"locationName"`
	Schedule     DailySchedule       `json:"itineraryData"`
	Activities   ItineraryActivities `json:"activities"`
	TotalCost    *CostEstimate       `json:"total_cost,omitempty"`
	TravelTips   []string            `json:"travel_tips,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
}
