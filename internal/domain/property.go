package domain

// Coordinates is an optional lat/lng pair for a property location.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location describes where a property is situated.
type Location struct {
	City        string       `json:"city"`
	Area        string       `json:"area"`
	Address     string       `json:"address"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// Features lists the room counts, size and amenities of a property.
type Features struct {
	Bedrooms  int  `json:"bedrooms"`
	Bathrooms int  `json:"bathrooms"`
	SizeSqft  int  `json:"size_sqft"`
	Parking   bool `json:"parking"`
	Balcony   bool `json:"balcony"`
	Garden    bool `json:"garden"`
	Security  bool `json:"security"`
	Gym       bool `json:"gym"`
	Pool      bool `json:"pool"`
	Elevator  bool `json:"elevator"`
}

// Property is a single catalog listing. Records are immutable once loaded;
// in production they are fetched read-only from an external catalog.
type Property struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	PriceCrores    float64  `json:"price_crores"`
	PropertyType   string   `json:"property_type"` // apartment, house, bungalow, ...
	Location       Location `json:"location"`
	Features       Features `json:"features"`
	Images         []string `json:"images"`
	YearBuilt      *int     `json:"year_built,omitempty"`
	MaintenanceFee *float64 `json:"maintenance_fee,omitempty"`
	Available      bool     `json:"available"`
}

// HasFeature reports whether the property offers the named amenity.
// Unrecognized feature names report true so that unknown tokens in a
// must-have list never filter anything out.
func (p Property) HasFeature(name string) bool {
	switch name {
	case "parking":
		return p.Features.Parking
	case "balcony":
		return p.Features.Balcony
	case "garden":
		return p.Features.Garden
	case "security":
		return p.Features.Security
	case "gym":
		return p.Features.Gym
	case "pool":
		return p.Features.Pool
	case "elevator":
		return p.Features.Elevator
	default:
		return true
	}
}

// FeatureNames returns the amenities the property actually has, in a
// stable order suitable for presentation.
func (p Property) FeatureNames() []string {
	var names []string
	if p.Features.Parking {
		names = append(names, "Parking")
	}
	if p.Features.Balcony {
		names = append(names, "Balcony")
	}
	if p.Features.Garden {
		names = append(names, "Garden")
	}
	if p.Features.Security {
		names = append(names, "Security")
	}
	if p.Features.Gym {
		names = append(names, "Gym")
	}
	if p.Features.Pool {
		names = append(names, "Pool")
	}
	if p.Features.Elevator {
		names = append(names, "Elevator")
	}
	return names
}
