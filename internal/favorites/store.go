package favorites

import (
	"context"
	"errors"

	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/domain"
)

// ErrNotFound marks a lookup that matched no record. Callers translate it
// into a warning status, never a failure.
var ErrNotFound = errors.New("record not found")

// Store persists user favorites and preferences. Implementations must keep
// the (property, user) uniqueness invariant for favorites and perform
// whole-record upserts for preferences. Single-record operations are atomic;
// no multi-record transactions are required.
type Store interface {
	// FindFavorite returns the favorite for the composite key, or ErrNotFound.
	FindFavorite(ctx context.Context, propertyID, userID string) (*domain.FavoriteRecord, error)

	// InsertFavorite stores a new favorite. Callers check for an existing
	// record first; the duplicate-save policy lives above the store.
	InsertFavorite(ctx context.Context, rec domain.FavoriteRecord) error

	// DeleteFavorite removes by composite key and reports whether a record
	// was actually deleted.
	DeleteFavorite(ctx context.Context, propertyID, userID string) (bool, error)

	// ListFavorites returns a user's favorites, most recently saved first.
	ListFavorites(ctx context.Context, userID string) ([]domain.FavoriteRecord, error)

	// UpsertPreferences replaces the user's entire preference record.
	UpsertPreferences(ctx context.Context, rec domain.PreferenceRecord) error

	// GetPreferences returns the user's preference record, or ErrNotFound.
	GetPreferences(ctx context.Context, userID string) (*domain.PreferenceRecord, error)

	Close(ctx context.Context) error
}
