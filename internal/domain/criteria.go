package domain

// DefaultMaxResults caps a search result when the criteria does not set one.
const DefaultMaxResults = 10

// SearchCriteria is the structured filter a search runs against. All fields
// are optional; nil means "no constraint". Criteria values are never mutated
// in place — refinement returns a fresh copy.
type SearchCriteria struct {
	PropertyType     *string  `json:"property_type,omitempty"`
	Locations        []string `json:"locations,omitempty"`
	MinPrice         *float64 `json:"min_price,omitempty"`
	MaxPrice         *float64 `json:"max_price,omitempty"`
	MinBedrooms      *int     `json:"min_bedrooms,omitempty"`
	MaxBedrooms      *int     `json:"max_bedrooms,omitempty"`
	MinBathrooms     *int     `json:"min_bathrooms,omitempty"`
	MustHaveFeatures []string `json:"must_have_features,omitempty"`
	MaxResults       int      `json:"max_results,omitempty"`
}

// Clone returns a deep copy so refinement can mutate freely while the
// original stays intact for rollback and audit.
func (c SearchCriteria) Clone() SearchCriteria {
	out := c
	if c.PropertyType != nil {
		v := *c.PropertyType
		out.PropertyType = &v
	}
	if c.MinPrice != nil {
		v := *c.MinPrice
		out.MinPrice = &v
	}
	if c.MaxPrice != nil {
		v := *c.MaxPrice
		out.MaxPrice = &v
	}
	if c.MinBedrooms != nil {
		v := *c.MinBedrooms
		out.MinBedrooms = &v
	}
	if c.MaxBedrooms != nil {
		v := *c.MaxBedrooms
		out.MaxBedrooms = &v
	}
	if c.MinBathrooms != nil {
		v := *c.MinBathrooms
		out.MinBathrooms = &v
	}
	out.Locations = append([]string(nil), c.Locations...)
	out.MustHaveFeatures = append([]string(nil), c.MustHaveFeatures...)
	return out
}

// Limit returns the effective result cap.
func (c SearchCriteria) Limit() int {
	if c.MaxResults <= 0 {
		return DefaultMaxResults
	}
	return c.MaxResults
}

// SearchResult pairs the matching properties with the criteria snapshot that
// produced them, so presentation and refinement always operate on a
// consistent pair.
type SearchResult struct {
	Properties     []Property     `json:"properties"`
	TotalFound     int            `json:"total_found"`
	SearchCriteria SearchCriteria `json:"search_criteria"`
}

// Float64Ptr and IntPtr are small helpers for building criteria literals.
func Float64Ptr(v float64) *float64 { return &v }

func IntPtr(v int) *int { return &v }

func StringPtr(v string) *string { return &v }
