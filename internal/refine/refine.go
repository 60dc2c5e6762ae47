package refine

import (
	"fmt"
	"strings"

	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/domain"
)

// Result carries the adjusted criteria plus an audit trail of what changed.
type Result struct {
	UpdatedCriteria domain.SearchCriteria `json:"updated_criteria"`
	ChangesMade     []string              `json:"changes_made"`
	Reasoning       string                `json:"reasoning"`
}

// Default price ceilings (crores) when feedback adjusts a budget that was
// never set.
const (
	defaultLowerCeiling = 2.0
	defaultUpperCeiling = 5.0
)

func containsAny(s string, phrases ...string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// Refine maps feedback phrases onto deterministic criteria mutations. All
// matching phrase classes apply cumulatively; unmatched feedback returns the
// criteria untouched with a request for clarification. The input criteria is
// never mutated — callers keep the original for rollback.
func Refine(current domain.SearchCriteria, feedback string) Result {
	lower := strings.ToLower(feedback)
	updated := current.Clone()
	var changes []string

	// Price adjustments.
	if containsAny(lower, "too expensive", "price too high", "over budget", "reduce price") {
		if updated.MaxPrice != nil {
			*updated.MaxPrice *= 0.8
			changes = append(changes, fmt.Sprintf("Reduced max price to %.1f crores", *updated.MaxPrice))
		} else {
			updated.MaxPrice = domain.Float64Ptr(defaultLowerCeiling)
			changes = append(changes, fmt.Sprintf("Set max price to %.1f crores", defaultLowerCeiling))
		}
	} else if containsAny(lower, "increase budget", "higher price", "more expensive") {
		if updated.MaxPrice != nil {
			*updated.MaxPrice *= 1.5
			changes = append(changes, fmt.Sprintf("Increased max price to %.1f crores", *updated.MaxPrice))
		} else {
			updated.MaxPrice = domain.Float64Ptr(defaultUpperCeiling)
			changes = append(changes, fmt.Sprintf("Set max price to %.1f crores", defaultUpperCeiling))
		}
	}

	// Bedroom adjustments.
	if containsAny(lower, "more bedrooms", "need more rooms", "bigger house") {
		if updated.MinBedrooms != nil {
			*updated.MinBedrooms = max(*updated.MinBedrooms+1, 3)
			changes = append(changes, fmt.Sprintf("Increased min bedrooms to %d", *updated.MinBedrooms))
		} else {
			updated.MinBedrooms = domain.IntPtr(3)
			changes = append(changes, "Set min bedrooms to 3")
		}
	} else if containsAny(lower, "fewer bedrooms", "smaller house", "less rooms") {
		if updated.MinBedrooms != nil {
			*updated.MinBedrooms = max(*updated.MinBedrooms-1, 1)
			changes = append(changes, fmt.Sprintf("Reduced min bedrooms to %d", *updated.MinBedrooms))
		} else {
			updated.MinBedrooms = domain.IntPtr(1)
			changes = append(changes, "Set min bedrooms to 1")
		}
	}

	// Location feedback never guesses an area; it asks.
	if containsAny(lower, "different location", "other area", "change location") {
		changes = append(changes, "Please specify which areas you'd prefer")
	}

	// Must-have features, idempotent.
	for _, feature := range []string{"parking", "balcony", "garden"} {
		if containsAny(lower, "need "+feature, "must have "+feature) {
			if !contains(updated.MustHaveFeatures, feature) {
				updated.MustHaveFeatures = append(updated.MustHaveFeatures, feature)
				changes = append(changes, fmt.Sprintf("Added %s as must-have feature", feature))
			}
		}
	}

	// Property type switches.
	if containsAny(lower, "apartment", "flat") {
		updated.PropertyType = domain.StringPtr("apartment")
		changes = append(changes, "Set property type to apartment")
	} else if containsAny(lower, "house", "bungalow", "villa") {
		updated.PropertyType = domain.StringPtr("house")
		changes = append(changes, "Set property type to house")
	}

	var reasoning string
	if len(changes) > 0 {
		reasoning = fmt.Sprintf(
			"Based on your feedback '%s', I've made these adjustments: %s. Let me search for properties with these updated criteria.",
			feedback, strings.Join(changes, ", "))
	} else {
		reasoning = fmt.Sprintf(
			"I understand your feedback '%s', but I need more specific information to adjust the search. Could you tell me what specific changes you'd like to make?",
			feedback)
	}

	return Result{
		UpdatedCriteria: updated,
		ChangesMade:     changes,
		Reasoning:       reasoning,
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
