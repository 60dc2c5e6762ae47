package tools

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/catalog"
	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/domain"
	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/favorites"
	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/provider"
)

func newTestRegistry() (*Registry, *favorites.MemoryStore) {
	favStore := favorites.NewMemoryStore()
	reg := NewRegistry(Deps{
		Catalog:       catalog.New(),
		Favorites:     favStore,
		DefaultUserID: "1",
	})
	return reg, favStore
}

func execute(t *testing.T, reg *Registry, name, args string) map[string]any {
	t.Helper()

	payload, err := reg.Execute(context.Background(), provider.ToolCall{
		ID:   "call_test",
		Name: name,
		Args: args,
	})
	if err != nil {
		t.Fatalf("Execute(%s) failed: %v", name, err)
	}

	var out map[string]any
	if err := json.Unmarshal([]byte(payload), &out); err != nil {
		t.Fatalf("payload is not valid JSON: %v\n%s", err, payload)
	}
	return out
}

func TestRegistryDeclarations(t *testing.T) {
	reg, _ := newTestRegistry()

	if reg.Count() != 9 {
		t.Errorf("expected 9 tools, got %d", reg.Count())
	}

	defs := reg.Declarations()
	if defs[0].Name != "classify_user_intent" {
		t.Errorf("expected classify_user_intent first, got %s", defs[0].Name)
	}
	for _, def := range defs {
		if def.Description == "" {
			t.Errorf("tool %s has no description", def.Name)
		}
		if def.Parameters["type"] != "object" {
			t.Errorf("tool %s parameters are not an object schema", def.Name)
		}
	}
}

func TestExecuteUnknownTool(t *testing.T) {
	reg, _ := newTestRegistry()

	_, err := reg.Execute(context.Background(), provider.ToolCall{Name: "fly_to_moon"})
	if !errors.Is(err, ErrUnknownTool) {
		t.Fatalf("expected ErrUnknownTool, got %v", err)
	}
}

func TestExecuteInvalidArguments(t *testing.T) {
	reg, favStore := newTestRegistry()

	// Missing required property_id: error payload, nothing stored.
	out := execute(t, reg, "save_to_favorites", `{"notes": "nice"}`)
	if out["status"] != StatusError {
		t.Errorf("expected error status, got %v", out["status"])
	}

	records, err := favStore.ListFavorites(context.Background(), "1")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Errorf("validation failure must not write to the store, found %d records", len(records))
	}
}

func TestSearchPropertiesTool(t *testing.T) {
	reg, _ := newTestRegistry()

	payload, err := reg.Execute(context.Background(), provider.ToolCall{
		Name: "search_properties",
		Args: `{"criteria": {"locations": ["Karachi"], "max_price": 2.0}}`,
	})
	if err != nil {
		t.Fatal(err)
	}

	var result domain.SearchResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		t.Fatal(err)
	}
	if result.TotalFound != 2 {
		t.Errorf("expected 2 matches, got %d", result.TotalFound)
	}
	if len(result.SearchCriteria.Locations) != 1 || result.SearchCriteria.Locations[0] != "Karachi" {
		t.Errorf("criteria snapshot lost: %+v", result.SearchCriteria)
	}
}

func TestClassifyIntentTool(t *testing.T) {
	reg, _ := newTestRegistry()

	payload, err := reg.Execute(context.Background(), provider.ToolCall{
		Name: "classify_user_intent",
		Args: `{"user_message": "I want to buy an apartment"}`,
	})
	if err != nil {
		t.Fatal(err)
	}

	var c domain.IntentClassification
	if err := json.Unmarshal([]byte(payload), &c); err != nil {
		t.Fatal(err)
	}
	if c.Intent != domain.IntentBuy {
		t.Errorf("expected buy intent, got %s", c.Intent)
	}
}

func TestSaveFavoriteDuplicateIsWarning(t *testing.T) {
	reg, _ := newTestRegistry()
	args := `{"property_id": "prop_001", "priority": "high"}`

	first := execute(t, reg, "save_to_favorites", args)
	if first["status"] != StatusSuccess {
		t.Fatalf("first save: expected success, got %v (%v)", first["status"], first["message"])
	}

	second := execute(t, reg, "save_to_favorites", args)
	if second["status"] != StatusWarning {
		t.Errorf("duplicate save: expected warning, got %v", second["status"])
	}
}

func TestFavoritesRoundTrip(t *testing.T) {
	reg, _ := newTestRegistry()

	execute(t, reg, "save_to_favorites", `{"property_id": "prop_001"}`)
	execute(t, reg, "save_to_favorites", `{"property_id": "prop_002", "notes": "big garden"}`)

	listed := execute(t, reg, "get_favorites", `{}`)
	if listed["status"] != StatusSuccess {
		t.Fatalf("list failed: %v", listed["message"])
	}
	favs, ok := listed["favorites"].([]any)
	if !ok || len(favs) != 2 {
		t.Fatalf("expected 2 favorites, got %v", listed["favorites"])
	}

	summary := execute(t, reg, "get_favorites_summary", `{}`)
	text, _ := summary["summary"].(string)
	if !strings.Contains(text, "prop_002") {
		t.Errorf("summary missing saved property:\n%s", text)
	}

	removed := execute(t, reg, "remove_from_favorites", `{"property_id": "prop_001"}`)
	if removed["status"] != StatusSuccess {
		t.Errorf("remove: expected success, got %v", removed["status"])
	}

	removedAgain := execute(t, reg, "remove_from_favorites", `{"property_id": "prop_001"}`)
	if removedAgain["status"] != StatusWarning {
		t.Errorf("removing a missing favorite: expected warning, got %v", removedAgain["status"])
	}
}

func TestSavePreferencesTool(t *testing.T) {
	reg, favStore := newTestRegistry()

	out := execute(t, reg, "save_customer_preferences", `{
		"user_preference": {
			"property_type": "apartment",
			"locations": ["Karachi", "Lahore"],
			"budget": {"min": 1.5, "max": 3.0},
			"bedrooms": 3
		}
	}`)
	if out["status"] != StatusSuccess {
		t.Fatalf("expected success, got %v (%v)", out["status"], out["message"])
	}

	rec, err := favStore.GetPreferences(context.Background(), "1")
	if err != nil {
		t.Fatal(err)
	}
	if rec.PropertyType != "apartment" || rec.Budget.Max != 3.0 {
		t.Errorf("stored preferences wrong: %+v", rec)
	}
}

func TestRefineCriteriaTool(t *testing.T) {
	reg, _ := newTestRegistry()

	payload, err := reg.Execute(context.Background(), provider.ToolCall{
		Name: "refine_search_criteria",
		Args: `{"current_criteria": {"max_price": 3.0}, "user_feedback": "too expensive"}`,
	})
	if err != nil {
		t.Fatal(err)
	}

	var out struct {
		UpdatedCriteria domain.SearchCriteria `json:"updated_criteria"`
		ChangesMade     []string              `json:"changes_made"`
	}
	if err := json.Unmarshal([]byte(payload), &out); err != nil {
		t.Fatal(err)
	}
	if out.UpdatedCriteria.MaxPrice == nil || *out.UpdatedCriteria.MaxPrice != 2.4 {
		t.Errorf("expected max price 2.4, got %v", out.UpdatedCriteria.MaxPrice)
	}
	if len(out.ChangesMade) != 1 {
		t.Errorf("expected one change, got %v", out.ChangesMade)
	}
}

func TestPresentPropertiesTool(t *testing.T) {
	reg, _ := newTestRegistry()

	result := catalog.New().Search(domain.SearchCriteria{Locations: []string{"Karachi"}})
	raw, err := json.Marshal(map[string]any{"search_result": result})
	if err != nil {
		t.Fatal(err)
	}

	out := execute(t, reg, "present_properties", string(raw))
	text, _ := out["presentation_text"].(string)
	if !strings.Contains(text, "Found 2 properties") {
		t.Errorf("unexpected presentation text:\n%s", text)
	}
}

// failingStore simulates an unreachable favorites backend.
type failingStore struct{}

var errStoreDown = errors.New("connection refused")

func (failingStore) FindFavorite(ctx context.Context, propertyID, userID string) (*domain.FavoriteRecord, error) {
	return nil, errStoreDown
}
func (failingStore) InsertFavorite(ctx context.Context, rec domain.FavoriteRecord) error {
	return errStoreDown
}
func (failingStore) DeleteFavorite(ctx context.Context, propertyID, userID string) (bool, error) {
	return false, errStoreDown
}
func (failingStore) ListFavorites(ctx context.Context, userID string) ([]domain.FavoriteRecord, error) {
	return nil, errStoreDown
}
func (failingStore) UpsertPreferences(ctx context.Context, rec domain.PreferenceRecord) error {
	return errStoreDown
}
func (failingStore) GetPreferences(ctx context.Context, userID string) (*domain.PreferenceRecord, error) {
	return nil, errStoreDown
}
func (failingStore) Close(ctx context.Context) error { return nil }

func TestStoreFailureIsErrorStatus(t *testing.T) {
	reg := NewRegistry(Deps{
		Catalog:   catalog.New(),
		Favorites: failingStore{},
	})

	out := execute(t, reg, "save_to_favorites", `{"property_id": "prop_001"}`)
	if out["status"] != StatusError {
		t.Errorf("expected error status, got %v", out["status"])
	}
	msg, _ := out["message"].(string)
	if !strings.Contains(msg, "unavailable") {
		t.Errorf("message should explain the store is unavailable: %s", msg)
	}
}
