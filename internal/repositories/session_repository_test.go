package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumo/internal/models/store_models"
	"lumo/pkg/utils"
)

func TestInMemorySessionRepository(t *testing.T) {
	repo := NewInMemorySessionRepository()
	ctx := context.Background()

	session := &store_models.Session{
		ID:        "user_1_abc",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, session))

	// Duplicate ids are rejected.
	assert.Error(t, repo.Create(ctx, &store_models.Session{ID: "user_1_abc"}))

	got, err := repo.GetByID(ctx, "user_1_abc")
	require.NoError(t, err)
	assert.Equal(t, session, got)

	_, err = repo.GetByID(ctx, "user_2_def")
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)

	session.IsCompleted = true
	require.NoError(t, repo.Update(ctx, session))

	got, err = repo.GetByID(ctx, "user_1_abc")
	require.NoError(t, err)
	assert.True(t, got.IsCompleted)

	err = repo.Update(ctx, &store_models.Session{ID: "user_2_def"})
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}

func TestStaticCatalogRepository(t *testing.T) {
	repo := NewStaticCatalogRepository()

	assert.Equal(t, 10, repo.Count())
	assert.Len(t, repo.All(), 10)

	for i, step := range repo.All() {
		assert.Equal(t, i+1, step.Step)
		assert.Len(t, step.Data.Options, 4)
		assert.NotEmpty(t, step.Data.Prompt)
		assert.Equal(t, step.Step < 10, step.Data.HasNext)
	}

	step, ok := repo.ByStep(7)
	require.True(t, ok)
	assert.Equal(t, 7, step.Step)

	_, ok = repo.ByStep(11)
	assert.False(t, ok)
}

func TestInMemoryItineraryRepository(t *testing.T) {
	repo := NewInMemoryItineraryRepository()

	_, ok := repo.Get("user_1", "Kyoto")
	assert.False(t, ok)

	itinerary := &store_models.Itinerary{ID: "itinerary_1", UserID: "user_1", LocationName: "Kyoto"}
	repo.Put(itinerary)

	got, ok := repo.Get("user_1", "Kyoto")
	require.True(t, ok)
	assert.Same(t, itinerary, got)

	// Different locations are cached independently.
	_, ok = repo.Get("user_1", "Osaka")
	assert.False(t, ok)
	_, ok = repo.Get("user_2", "Kyoto")
	assert.False(t, ok)
}

func TestInMemoryRecommendationRepository(t *testing.T) {
	repo := NewInMemoryRecommendationRepository()

	for _, style := range []string{"adventure", "cultural", "relaxed", "luxury"} {
		recs, ok := repo.ByStyle(style)
		require.True(t, ok, style)
		assert.NotEmpty(t, recs, style)
	}

	_, ok := repo.ByStyle("wanderlust")
	assert.False(t, ok)

	_, ok = repo.CachedForUser("user_1")
	assert.False(t, ok)

	recs, _ := repo.ByStyle("relaxed")
	repo.CacheForUser("user_1", recs)

	cached, ok := repo.CachedForUser("user_1")
	require.True(t, ok)
	assert.Equal(t, recs, cached)
}
