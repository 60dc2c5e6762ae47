package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/domain"
)

type listingFile struct {
	Properties []listing `yaml:"properties"`
}

type listing struct {
	ID             string   `yaml:"id"`
	Title          string   `yaml:"title"`
	Description    string   `yaml:"description"`
	PriceCrores    float64  `yaml:"price_crores"`
	PropertyType   string   `yaml:"property_type"`
	City           string   `yaml:"city"`
	Area           string   `yaml:"area"`
	Address        string   `yaml:"address"`
	Bedrooms       int      `yaml:"bedrooms"`
	Bathrooms      int      `yaml:"bathrooms"`
	SizeSqft       int      `yaml:"size_sqft"`
	Amenities      []string `yaml:"amenities"`
	Images         []string `yaml:"images"`
	YearBuilt      *int     `yaml:"year_built"`
	MaintenanceFee *float64 `yaml:"maintenance_fee"`
	Unavailable    bool     `yaml:"unavailable"`
}

// NewFromFile loads listings from a YAML file.
func NewFromFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file listingFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog file: %w", err)
	}
	if len(file.Properties) == 0 {
		return nil, fmt.Errorf("catalog file %s has no properties", path)
	}

	props := make([]domain.Property, 0, len(file.Properties))
	for _, l := range file.Properties {
		p := domain.Property{
			ID:           l.ID,
			Title:        l.Title,
			Description:  l.Description,
			PriceCrores:  l.PriceCrores,
			PropertyType: l.PropertyType,
			Location: domain.Location{
				City:    l.City,
				Area:    l.Area,
				Address: l.Address,
			},
			Features: domain.Features{
				Bedrooms:  l.Bedrooms,
				Bathrooms: l.Bathrooms,
				SizeSqft:  l.SizeSqft,
			},
			Images:         l.Images,
			YearBuilt:      l.YearBuilt,
			MaintenanceFee: l.MaintenanceFee,
			Available:      !l.Unavailable,
		}
		for _, a := range l.Amenities {
			switch a {
			case "parking":
				p.Features.Parking = true
			case "balcony":
				p.Features.Balcony = true
			case "garden":
				p.Features.Garden = true
			case "security":
				p.Features.Security = true
			case "gym":
				p.Features.Gym = true
			case "pool":
				p.Features.Pool = true
			case "elevator":
				p.Features.Elevator = true
			}
		}
		props = append(props, p)
	}

	return New(props...), nil
}
