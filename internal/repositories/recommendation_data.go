package repositories

import (
	"lumo/internal/models/store_models"
)

// styleRecommendations maps each travel style to its canned recommendation
// list. Lookups for unknown styles fall back to "cultural" in the service.
var styleRecommendations = map[string][]store_models.Recommendation{
	"adventure": {
		{
			ID:                   "rec_adventure_1",
			LocationName:         "Reykjavik, Iceland",
			Country:              "Iceland",
			Description:          "Ideal for your adventurous spirit with stunning natural landscapes and unique experiences.",
			EstimatedBudgetRange: "$150-300/day",
			BestTimeToVisit:      "June-August (Summer) or September-March (Northern Lights)",
			KeyAttractions:       []string{"Blue Lagoon", "Golden Circle", "Northern Lights"},
			MainAttractions: []store_models.Attraction{
				{Name: "Blue Lagoon", URL: "https://www.tripadvisor.com/Attraction_Review-g189970-d324862", Description: "Famous geothermal spa"},
				{Name: "Golden Circle", URL: "https://www.tripadvisor.com/Attraction_Review-g189970-d324863", Description: "Geysers, waterfalls, and national park"},
				{Name: "Northern Lights", URL: "https://www.tripadvisor.com/Attraction_Review-g189970-d324864", Description: "Aurora borealis viewing"},
			},
			Events: []store_models.Event{
				{Name: "Northern Lights Season", Dates: "September-March", Description: "Best aurora viewing"},
				{Name: "Iceland Airwaves", Dates: "November", Description: "Music festival with local bands"},
			},
			LocalInsights: []store_models.LocalInsight{
				{Source: "Reddit r/Iceland", Tip: "Skip Blue Lagoon, go to Sky Lagoon instead - locals prefer it"},
				{Source: "Local Guide", Tip: "Best hot dogs at Bæjarins Beztu Pylsur - Bill Clinton ate here"},
				{Source: "Reddit r/VisitingIceland", Tip: "Rent a car to see Northern Lights away from city lights"},
			},
			Reasoning: "Perfect for high adventure level and cultural interest.",
		},
	},
	"cultural": {
		{
			ID:                   "rec_cultural_1",
			LocationName:         "Kyoto, Japan",
			Country:              "Japan",
			Description:          "Perfect for your dreamy, cultural preferences with ancient temples and serene gardens.",
			EstimatedBudgetRange: "$100-200/day",
			BestTimeToVisit:      "March-May (Cherry Blossom) or October-November (Fall Colors)",
			KeyAttractions:       []string{"Fushimi Inari Shrine", "Arashiyama Bamboo Grove", "Kinkaku-ji (Golden Pavilion)"},
			MainAttractions: []store_models.Attraction{
				{Name: "Fushimi Inari Shrine", URL: "https://www.tripadvisor.com/Attraction_Review-g298564-d324859", Description: "Famous shrine with thousands of torii gates"},
				{Name: "Arashiyama Bamboo Grove", URL: "https://www.tripadvisor.com/Attraction_Review-g298564-d324860", Description: "Serene bamboo forest path"},
				{Name: "Kinkaku-ji (Golden Pavilion)", URL: "https://www.tripadvisor.com/Attraction_Review-g298564-d324861", Description: "Stunning golden temple"},
			},
			Events: []store_models.Event{
				{Name: "Gion Matsuri Festival", Dates: "July", Description: "Traditional festival with parades"},
				{Name: "Cherry Blossom Season", Dates: "Late March-Early April", Description: "Hanami parties in Maruyama Park"},
			},
			LocalInsights: []store_models.LocalInsight{
				{Source: "Reddit r/JapanTravel", Tip: "Visit Fushimi Inari early morning (6-7am) to avoid crowds"},
				{Source: "Local Blog", Tip: "Try the hidden tea house in Arashiyama - locals only know about it"},
				{Source: "Reddit r/Kyoto", Tip: "Best ramen is at Ichiran near Kyoto Station, not the tourist spots"},
			},
			Reasoning: "Matches your preference for cultural experiences and solo exploration.",
		},
	},
	"relaxed": {
		{
			ID:                   "rec_relaxed_1",
			LocationName:         "Ubud, Bali",
			Country:              "Indonesia",
			Description:          "Made for your unhurried pace with rice terraces, spa retreats and slow mornings.",
			EstimatedBudgetRange: "$60-150/day",
			BestTimeToVisit:      "April-October (Dry Season)",
			KeyAttractions:       []string{"Tegallalang Rice Terraces", "Sacred Monkey Forest", "Campuhan Ridge Walk"},
			MainAttractions: []store_models.Attraction{
				{Name: "Tegallalang Rice Terraces", URL: "https://www.tripadvisor.com/Attraction_Review-g297701-d324870", Description: "Iconic terraced rice paddies"},
				{Name: "Sacred Monkey Forest", URL: "https://www.tripadvisor.com/Attraction_Review-g297701-d324871", Description: "Jungle sanctuary and temples"},
				{Name: "Campuhan Ridge Walk", URL: "https://www.tripadvisor.com/Attraction_Review-g297701-d324872", Description: "Easy ridge-top nature walk"},
			},
			Events: []store_models.Event{
				{Name: "Galungan", Dates: "Varies (210-day cycle)", Description: "Island-wide temple celebrations"},
				{Name: "Ubud Food Festival", Dates: "May-June", Description: "Local cuisine and cooking classes"},
			},
			LocalInsights: []store_models.LocalInsight{
				{Source: "Reddit r/bali", Tip: "Walk the rice terraces before 8am - tour buses arrive by 9"},
				{Source: "Local Guide", Tip: "Warungs off Jalan Hanoman serve the best nasi campur"},
				{Source: "Reddit r/indonesia", Tip: "Book spa treatments a day ahead, walk-ins pay double"},
			},
			Reasoning: "Suits a moderate pace with restorative activities and nature.",
		},
	},
	"luxury": {
		{
			ID:                   "rec_luxury_1",
			LocationName:         "Santorini, Greece",
			Country:              "Greece",
			Description:          "Tailored to your refined tastes with caldera views, fine dining and boutique stays.",
			EstimatedBudgetRange: "$250-500/day",
			BestTimeToVisit:      "May-June or September-October (Shoulder Season)",
			KeyAttractions:       []string{"Oia Sunset", "Caldera Cruise", "Akrotiri Ruins"},
			MainAttractions: []store_models.Attraction{
				{Name: "Oia Sunset", URL: "https://www.tripadvisor.com/Attraction_Review-g189433-d324880", Description: "Famous cliffside sunset views"},
				{Name: "Caldera Cruise", URL: "https://www.tripadvisor.com/Attraction_Review-g189433-d324881", Description: "Catamaran tour with hot springs"},
				{Name: "Akrotiri Ruins", URL: "https://www.tripadvisor.com/Attraction_Review-g189433-d324882", Description: "Preserved Bronze Age settlement"},
			},
			Events: []store_models.Event{
				{Name: "Ifestia Festival", Dates: "September", Description: "Volcano reenactment with fireworks"},
				{Name: "Santorini Jazz Festival", Dates: "July", Description: "Open-air concerts by the sea"},
			},
			LocalInsights: []store_models.LocalInsight{
				{Source: "Reddit r/GreeceTravel", Tip: "Watch the sunset from Imerovigli instead of Oia - same view, no crowds"},
				{Source: "Local Sommelier", Tip: "Assyrtiko tastings at Santo Wines beat the tourist wineries"},
				{Source: "Reddit r/travel", Tip: "Stay in Firostefani for caldera views at half the Oia price"},
			},
			Reasoning: "Pairs exclusive experiences with fine dining priorities.",
		},
	},
}
