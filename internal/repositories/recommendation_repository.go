package repositories

import (
	"sync"

	"lumo/internal/models/store_models"
)

// RecommendationRepository combines the static style→recommendations table
// with the per-session cache of resolved lists.
type RecommendationRepository interface {
	ByStyle(style string) ([]store_models.Recommendation, bool)
	CachedForUser(userID string) ([]store_models.Recommendation, bool)
	CacheForUser(userID string, recs []store_models.Recommendation)
}

type InMemoryRecommendationRepository struct {
	mu    sync.RWMutex
	table map[string][]store_models.Recommendation
	cache map[string][]store_models.Recommendation
}

func NewInMemoryRecommendationRepository() RecommendationRepository {
	return &InMemoryRecommendationRepository{
		table: styleRecommendations,
		cache: make(map[string][]store_models.Recommendation),
	}
}

func (r *InMemoryRecommendationRepository) ByStyle(style string) ([]store_models.Recommendation, bool) {
	recs, ok := r.table[style]
	return recs, ok
}

func (r *InMemoryRecommendationRepository) CachedForUser(userID string) ([]store_models.Recommendation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recs, ok := r.cache[userID]
	return recs, ok
}

func (r *InMemoryRecommendationRepository) CacheForUser(userID string, recs []store_models.Recommendation) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cache[userID] = recs
}
