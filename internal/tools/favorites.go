package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/domain"
	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/favorites"
)

// favoritesResult is the common payload shape for favorites and preference
// tools. Status distinguishes expected outcomes (duplicate save, empty list)
// from store failures.
type favoritesResult struct {
	Status    string                  `json:"status"`
	Message   string                  `json:"message"`
	Favorites []domain.FavoriteRecord `json:"favorites,omitempty"`
	Summary   string                  `json:"summary,omitempty"`
}

func storeUnavailable(op string, err error) favoritesResult {
	return favoritesResult{
		Status:  StatusError,
		Message: fmt.Sprintf("The favorites store is unavailable right now (%s failed: %v). Please try again shortly.", op, err),
	}
}

type saveFavoriteInput struct {
	PropertyID string `json:"property_id" validate:"required"`
	UserID     string `json:"user_id"`
	Notes      string `json:"notes"`
	Priority   string `json:"priority" validate:"omitempty,oneof=low medium high"`
}

func saveFavoriteTool(deps Deps) Tool {
	return Tool{
		Name: "save_to_favorites",
		Description: "Save a property to the user's favorites with optional notes and " +
			"priority. Saving the same property twice is reported, not duplicated.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"property_id": map[string]any{
					"type":        "string",
					"description": "ID of the property to save, e.g. 'prop_001'",
				},
				"user_id": map[string]any{
					"type":        "string",
					"description": "User saving the property (defaults to the session user)",
				},
				"notes": map[string]any{
					"type":        "string",
					"description": "Optional notes about why the user likes this property",
				},
				"priority": map[string]any{
					"type":        "string",
					"enum":        []string{"low", "medium", "high"},
					"description": "How interested the user is (default medium)",
				},
			},
			"required": []string{"property_id"},
		},
		run: func(ctx context.Context, args json.RawMessage) (any, error) {
			in, err := decodeArgs[saveFavoriteInput](args)
			if err != nil {
				return nil, err
			}
			userID := in.UserID
			if userID == "" {
				userID = deps.DefaultUserID
			}
			priority := domain.Priority(in.Priority)
			if priority == "" {
				priority = domain.PriorityMedium
			}

			_, err = deps.Favorites.FindFavorite(ctx, in.PropertyID, userID)
			switch {
			case err == nil:
				return favoritesResult{
					Status:  StatusWarning,
					Message: fmt.Sprintf("Property %s is already in your favorites.", in.PropertyID),
				}, nil
			case !errors.Is(err, favorites.ErrNotFound):
				return storeUnavailable("lookup", err), nil
			}

			rec := domain.FavoriteRecord{
				PropertyID: in.PropertyID,
				UserID:     userID,
				SavedAt:    time.Now(),
				Notes:      in.Notes,
				Priority:   priority,
			}
			if err := deps.Favorites.InsertFavorite(ctx, rec); err != nil {
				return storeUnavailable("save", err), nil
			}
			return favoritesResult{
				Status:  StatusSuccess,
				Message: fmt.Sprintf("Property %s saved to your favorites.", in.PropertyID),
			}, nil
		},
	}
}

type userScopedInput struct {
	UserID string `json:"user_id"`
}

func listFavoritesTool(deps Deps) Tool {
	return Tool{
		Name:        "get_favorites",
		Description: "List the user's saved properties, most recently saved first.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"user_id": map[string]any{
					"type":        "string",
					"description": "User whose favorites to list (defaults to the session user)",
				},
			},
		},
		run: func(ctx context.Context, args json.RawMessage) (any, error) {
			in, err := decodeArgs[userScopedInput](args)
			if err != nil {
				return nil, err
			}
			userID := in.UserID
			if userID == "" {
				userID = deps.DefaultUserID
			}

			records, err := deps.Favorites.ListFavorites(ctx, userID)
			if err != nil {
				return storeUnavailable("list", err), nil
			}
			if len(records) == 0 {
				return favoritesResult{
					Status:  StatusSuccess,
					Message: "You haven't saved any properties to favorites yet.",
				}, nil
			}
			return favoritesResult{
				Status:    StatusSuccess,
				Message:   fmt.Sprintf("Found %d favorite properties.", len(records)),
				Favorites: records,
			}, nil
		},
	}
}

type removeFavoriteInput struct {
	PropertyID string `json:"property_id" validate:"required"`
	UserID     string `json:"user_id"`
}

func removeFavoriteTool(deps Deps) Tool {
	return Tool{
		Name:        "remove_from_favorites",
		Description: "Remove a property from the user's favorites.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"property_id": map[string]any{
					"type":        "string",
					"description": "ID of the property to remove",
				},
				"user_id": map[string]any{
					"type":        "string",
					"description": "User whose favorite to remove (defaults to the session user)",
				},
			},
			"required": []string{"property_id"},
		},
		run: func(ctx context.Context, args json.RawMessage) (any, error) {
			in, err := decodeArgs[removeFavoriteInput](args)
			if err != nil {
				return nil, err
			}
			userID := in.UserID
			if userID == "" {
				userID = deps.DefaultUserID
			}

			deleted, err := deps.Favorites.DeleteFavorite(ctx, in.PropertyID, userID)
			if err != nil {
				return storeUnavailable("remove", err), nil
			}
			if !deleted {
				return favoritesResult{
					Status:  StatusWarning,
					Message: fmt.Sprintf("Property %s was not in your favorites.", in.PropertyID),
				}, nil
			}
			return favoritesResult{
				Status:  StatusSuccess,
				Message: fmt.Sprintf("Property %s removed from your favorites.", in.PropertyID),
			}, nil
		},
	}
}

func favoritesSummaryTool(deps Deps) Tool {
	return Tool{
		Name: "get_favorites_summary",
		Description: "Summarize the user's favorites as readable text the assistant " +
			"can relay directly.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"user_id": map[string]any{
					"type":        "string",
					"description": "User whose favorites to summarize (defaults to the session user)",
				},
			},
		},
		run: func(ctx context.Context, args json.RawMessage) (any, error) {
			in, err := decodeArgs[userScopedInput](args)
			if err != nil {
				return nil, err
			}
			userID := in.UserID
			if userID == "" {
				userID = deps.DefaultUserID
			}

			records, err := deps.Favorites.ListFavorites(ctx, userID)
			if err != nil {
				return storeUnavailable("summary", err), nil
			}
			return favoritesResult{
				Status:  StatusSuccess,
				Message: fmt.Sprintf("Summarized %d favorite properties.", len(records)),
				Summary: favorites.FormatSummary(records),
			}, nil
		},
	}
}

type savePreferencesInput struct {
	UserID     string                   `json:"user_id"`
	Preference *domain.PreferenceRecord `json:"user_preference" validate:"required"`
}

func savePreferencesTool(deps Deps) Tool {
	return Tool{
		Name: "save_customer_preferences",
		Description: "Save the user's standing property preferences. Replaces any " +
			"previously saved preferences for the user.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"user_id": map[string]any{
					"type":        "string",
					"description": "User the preferences belong to (defaults to the session user)",
				},
				"user_preference": preferencesSchema(),
			},
			"required": []string{"user_preference"},
		},
		run: func(ctx context.Context, args json.RawMessage) (any, error) {
			in, err := decodeArgs[savePreferencesInput](args)
			if err != nil {
				return nil, err
			}
			rec := *in.Preference
			if rec.UserID == "" {
				rec.UserID = in.UserID
			}
			if rec.UserID == "" {
				rec.UserID = deps.DefaultUserID
			}

			if err := deps.Favorites.UpsertPreferences(ctx, rec); err != nil {
				return storeUnavailable("preferences", err), nil
			}
			return favoritesResult{
				Status:  StatusSuccess,
				Message: "Your preferences have been saved. I'll use them to tailor future searches.",
			}, nil
		},
	}
}
