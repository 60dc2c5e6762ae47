package favorites

import (
	"context"
	"sort"
	"sync"

	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/domain"
)

// MemoryStore is an in-process Store used by tests and offline demos.
type MemoryStore struct {
	mu          sync.RWMutex
	favorites   []domain.FavoriteRecord
	preferences map[string]domain.PreferenceRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		preferences: make(map[string]domain.PreferenceRecord),
	}
}

func (s *MemoryStore) Close(ctx context.Context) error { return nil }

func (s *MemoryStore) FindFavorite(ctx context.Context, propertyID, userID string) (*domain.FavoriteRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.favorites {
		if rec.PropertyID == propertyID && rec.UserID == userID {
			out := rec
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) InsertFavorite(ctx context.Context, rec domain.FavoriteRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.favorites = append(s.favorites, rec)
	return nil
}

func (s *MemoryStore) DeleteFavorite(ctx context.Context, propertyID, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, rec := range s.favorites {
		if rec.PropertyID == propertyID && rec.UserID == userID {
			s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) ListFavorites(ctx context.Context, userID string) ([]domain.FavoriteRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var records []domain.FavoriteRecord
	for _, rec := range s.favorites {
		if rec.UserID == userID {
			records = append(records, rec)
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].SavedAt.After(records[j].SavedAt)
	})
	return records, nil
}

func (s *MemoryStore) UpsertPreferences(ctx context.Context, rec domain.PreferenceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.preferences[rec.UserID] = rec
	return nil
}

func (s *MemoryStore) GetPreferences(ctx context.Context, userID string) (*domain.PreferenceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.preferences[userID]
	if !ok {
		return nil, ErrNotFound
	}
	out := rec
	return &out, nil
}
