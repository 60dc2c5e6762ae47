package catalog

import (
	"strings"

	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/domain"
)

// Catalog is an in-memory, read-only property collection queried with
// structured criteria. In production the records would come from an
// external catalog service; the query contract stays the same.
type Catalog struct {
	properties []domain.Property
}

// New returns a catalog over the given listings. An empty argument list
// loads the built-in sample set.
func New(properties ...domain.Property) *Catalog {
	if len(properties) == 0 {
		properties = SampleProperties()
	}
	return &Catalog{properties: properties}
}

// All returns the full candidate set.
func (c *Catalog) All() []domain.Property {
	out := make([]domain.Property, len(c.properties))
	copy(out, c.properties)
	return out
}

// Search filters the catalog against the criteria. Filters apply as
// independent AND predicates, each narrowing the previous stage's output:
// type, location, price, bedrooms, bathrooms, features, availability,
// then truncation to the result cap.
func (c *Catalog) Search(criteria domain.SearchCriteria) domain.SearchResult {
	filtered := c.All()

	if criteria.PropertyType != nil && *criteria.PropertyType != "" {
		want := strings.ToLower(*criteria.PropertyType)
		filtered = keep(filtered, func(p domain.Property) bool {
			return strings.Contains(strings.ToLower(p.PropertyType), want)
		})
	}

	if len(criteria.Locations) > 0 {
		filtered = keep(filtered, func(p domain.Property) bool {
			city := strings.ToLower(p.Location.City)
			area := strings.ToLower(p.Location.Area)
			for _, loc := range criteria.Locations {
				want := strings.ToLower(loc)
				if strings.Contains(city, want) || strings.Contains(area, want) {
					return true
				}
			}
			return false
		})
	}

	if criteria.MinPrice != nil {
		filtered = keep(filtered, func(p domain.Property) bool {
			return p.PriceCrores >= *criteria.MinPrice
		})
	}
	if criteria.MaxPrice != nil {
		filtered = keep(filtered, func(p domain.Property) bool {
			return p.PriceCrores <= *criteria.MaxPrice
		})
	}

	if criteria.MinBedrooms != nil {
		filtered = keep(filtered, func(p domain.Property) bool {
			return p.Features.Bedrooms >= *criteria.MinBedrooms
		})
	}
	if criteria.MaxBedrooms != nil {
		filtered = keep(filtered, func(p domain.Property) bool {
			return p.Features.Bedrooms <= *criteria.MaxBedrooms
		})
	}

	if criteria.MinBathrooms != nil {
		filtered = keep(filtered, func(p domain.Property) bool {
			return p.Features.Bathrooms >= *criteria.MinBathrooms
		})
	}

	if len(criteria.MustHaveFeatures) > 0 {
		filtered = keep(filtered, func(p domain.Property) bool {
			for _, f := range criteria.MustHaveFeatures {
				// Unrecognized feature names are ignored, not errors.
				if !p.HasFeature(strings.ToLower(f)) {
					return false
				}
			}
			return true
		})
	}

	filtered = keep(filtered, func(p domain.Property) bool {
		return p.Available
	})

	if limit := criteria.Limit(); len(filtered) > limit {
		filtered = filtered[:limit]
	}

	return domain.SearchResult{
		Properties:     filtered,
		TotalFound:     len(filtered),
		SearchCriteria: criteria,
	}
}

func keep(in []domain.Property, pred func(domain.Property) bool) []domain.Property {
	out := in[:0:0]
	for _, p := range in {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}
