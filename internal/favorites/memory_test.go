package favorites

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/domain"
)

func TestMemoryStoreFavoriteLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.FindFavorite(ctx, "prop_001", "1")
	assert.ErrorIs(t, err, ErrNotFound)

	rec := domain.FavoriteRecord{
		PropertyID: "prop_001",
		UserID:     "1",
		SavedAt:    time.Now(),
		Priority:   domain.PriorityHigh,
		Notes:      "close to work",
	}
	require.NoError(t, s.InsertFavorite(ctx, rec))

	found, err := s.FindFavorite(ctx, "prop_001", "1")
	require.NoError(t, err)
	assert.Equal(t, "close to work", found.Notes)

	// Same property, different user: separate record space.
	_, err = s.FindFavorite(ctx, "prop_001", "2")
	assert.ErrorIs(t, err, ErrNotFound)

	deleted, err := s.DeleteFavorite(ctx, "prop_001", "1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = s.DeleteFavorite(ctx, "prop_001", "1")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestMemoryStoreListNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	base := time.Now()

	for i, id := range []string{"prop_001", "prop_002", "prop_003"} {
		require.NoError(t, s.InsertFavorite(ctx, domain.FavoriteRecord{
			PropertyID: id,
			UserID:     "1",
			SavedAt:    base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, s.InsertFavorite(ctx, domain.FavoriteRecord{
		PropertyID: "prop_009",
		UserID:     "other",
		SavedAt:    base.Add(time.Hour),
	}))

	records, err := s.ListFavorites(ctx, "1")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "prop_003", records[0].PropertyID)
	assert.Equal(t, "prop_001", records[2].PropertyID)
}

func TestMemoryStorePreferencesUpsertReplaces(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.GetPreferences(ctx, "1")
	assert.ErrorIs(t, err, ErrNotFound)

	first := domain.PreferenceRecord{
		UserID:       "1",
		PropertyType: "apartment",
		Locations:    []string{"Karachi"},
		Budget:       domain.Budget{Min: 1, Max: 3},
		Bedrooms:     domain.IntPtr(3),
	}
	require.NoError(t, s.UpsertPreferences(ctx, first))

	second := domain.PreferenceRecord{
		UserID:       "1",
		PropertyType: "house",
		Budget:       domain.Budget{Min: 2, Max: 5},
	}
	require.NoError(t, s.UpsertPreferences(ctx, second))

	got, err := s.GetPreferences(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "house", got.PropertyType)
	// Whole-record replace: fields absent from the new save are gone.
	assert.Empty(t, got.Locations)
	assert.Nil(t, got.Bedrooms)
}
