package repositories

import (
	"sync"

	"lumo/internal/models/store_models"
)

// ItineraryRepository caches generated itineraries keyed by
// (session, location). Entries are immutable once stored.
type ItineraryRepository interface {
	Get(userID string, locationName string) (*store_models.Itinerary, bool)
	Put(itinerary *store_models.Itinerary)
}

type InMemoryItineraryRepository struct {
	mu          sync.RWMutex
	itineraries map[string]*store_models.Itinerary
}

func NewInMemoryItineraryRepository() ItineraryRepository {
	return &InMemoryItineraryRepository{
		itineraries: make(map[string]*store_models.Itinerary),
	}
}

func itineraryKey(userID string, locationName string) string {
	return userID + "_" + locationName
}

func (r *InMemoryItineraryRepository) Get(userID string, locationName string) (*store_models.Itinerary, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	itinerary, ok := r.itineraries[itineraryKey(userID, locationName)]
	return itinerary, ok
}

func (r *InMemoryItineraryRepository) Put(itinerary *store_models.Itinerary) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.itineraries[itineraryKey(itinerary.UserID, itinerary.LocationName)] = itinerary
}
