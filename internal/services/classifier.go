package services

import (
	"lumo/internal/models/store_models"
)

const defaultTravelStyle = "cultural"

var styleActivities = map[string][]string{
	"adventure": {"hiking", "photography", "natural wonders", "outdoor activities"},
	"cultural":  {"temple visits", "museums", "historical sites", "local markets"},
	"relaxed":   {"spa visits", "meditation", "nature walks", "tea ceremonies"},
	"luxury":    {"fine dining", "spa treatments", "exclusive experiences", "shopping"},
}

// DetermineTravelStyle classifies a full response log by counting how often
// each option index was picked. A coarse heuristic on purpose: the first
// option held more than three times wins, in fixed priority order, and
// everything else (ties included) falls through to the default.
func DetermineTravelStyle(options []int) string {
	var counts [4]int
	for _, opt := range options {
		if opt >= 0 && opt < len(counts) {
			counts[opt]++
		}
	}

	switch {
	case counts[0] > 3:
		return "adventure"
	case counts[1] > 3:
		return "cultural"
	case counts[2] > 3:
		return "relaxed"
	case counts[3] > 3:
		return "luxury"
	}
	return defaultTravelStyle
}

// PreferredActivities resolves the fixed activity list for a style, with a
// generic fallback for anything outside the table.
func PreferredActivities(style string) []string {
	if activities, ok := styleActivities[style]; ok {
		return activities
	}
	return []string{"sightseeing", "dining", "cultural experiences"}
}

// BuildPreferences derives the preference record stored on completion. Only
// the style and activities depend on the answers; the rest are constants.
func BuildPreferences(options []int) *store_models.Preferences {
	style := DetermineTravelStyle(options)
	return &store_models.Preferences{
		TravelStyle:             style,
		PreferredActivities:     PreferredActivities(style),
		AccommodationPreference: "boutique hotels",
		BudgetPriority:          "mid-range",
		PacePreference:          "moderate",
		FoodPreference:          "local cuisine",
		SocialPreference:        "solo exploration",
		AdventureLevel:          "high",
		CulturalInterest:        "high",
	}
}
