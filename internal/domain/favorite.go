package domain

import "time"

// Priority ranks how much a user cares about a saved property.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// FavoriteRecord is a property a user saved. At most one record exists per
// (PropertyID, UserID) pair; duplicate saves are warnings, not overwrites.
type FavoriteRecord struct {
	PropertyID string    `json:"property_id" bson:"property_id"`
	UserID     string    `json:"user_id" bson:"user_id"`
	SavedAt    time.Time `json:"saved_at" bson:"saved_at"`
	Notes      string    `json:"notes,omitempty" bson:"notes,omitempty"`
	Priority   Priority  `json:"priority" bson:"priority"`
}

// Budget is a price range in crores.
type Budget struct {
	Min float64 `json:"min" bson:"min"`
	Max float64 `json:"max" bson:"max"`
}

// PreferenceRecord captures a user's standing property preferences. It is
// upserted wholesale per user: a new save replaces the entire prior record.
type PreferenceRecord struct {
	UserID           string   `json:"user_id" bson:"user_id"`
	PropertyType     string   `json:"property_type" bson:"property_type"`
	Locations        []string `json:"locations" bson:"locations"`
	Budget           Budget   `json:"budget" bson:"budget"`
	Bedrooms         *int     `json:"bedrooms,omitempty" bson:"bedrooms,omitempty"`
	Bathrooms        *int     `json:"bathrooms,omitempty" bson:"bathrooms,omitempty"`
	MustHaveFeatures []string `json:"must_have_features,omitempty" bson:"must_have_features,omitempty"`
}
