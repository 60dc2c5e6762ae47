package catalog

import "github.com/MuhammadAhmed8/real-estate-ai-agent/internal/domain"

// SampleProperties returns the demo listing set used when no catalog file
// is configured.
func SampleProperties() []domain.Property {
	yr := func(v int) *int { return &v }
	fee := func(v float64) *float64 { return &v }

	return []domain.Property{
		{
			ID:           "prop_001",
			Title:        "Luxury 3-Bed Apartment in DHA Phase 5",
			Description:  "Beautiful modern apartment with premium finishes, located in the heart of DHA Phase 5. Close to schools, shopping centers, and main roads.",
			PriceCrores:  2.5,
			PropertyType: "apartment",
			Location: domain.Location{
				City:    "Lahore",
				Area:    "DHA Phase 5",
				Address: "Block A, DHA Phase 5, Lahore",
			},
			Features: domain.Features{
				Bedrooms:  3,
				Bathrooms: 3,
				SizeSqft:  1800,
				Parking:   true,
				Balcony:   true,
				Security:  true,
				Gym:       true,
				Elevator:  true,
			},
			Images:         []string{"https://example.com/prop1_1.jpg", "https://example.com/prop1_2.jpg"},
			YearBuilt:      yr(2020),
			MaintenanceFee: fee(15000),
			Available:      true,
		},
		{
			ID:           "prop_002",
			Title:        "Spacious 4-Bed House in Gulshan Iqbal",
			Description:  "Well-maintained house with large garden, perfect for families. Located near Karachi University and major shopping areas.",
			PriceCrores:  1.8,
			PropertyType: "house",
			Location: domain.Location{
				City:    "Karachi",
				Area:    "Gulshan Iqbal",
				Address: "Block 6, Gulshan Iqbal, Karachi",
			},
			Features: domain.Features{
				Bedrooms:  4,
				Bathrooms: 3,
				SizeSqft:  2200,
				Parking:   true,
				Balcony:   true,
				Garden:    true,
				Security:  true,
			},
			Images:         []string{"https://example.com/prop2_1.jpg", "https://example.com/prop2_2.jpg"},
			YearBuilt:      yr(2018),
			MaintenanceFee: fee(8000),
			Available:      true,
		},
		{
			ID:           "prop_003",
			Title:        "Modern 2-Bed Apartment in F-8 Islamabad",
			Description:  "Contemporary apartment with city views, ideal for young professionals. Close to business district and restaurants.",
			PriceCrores:  3.2,
			PropertyType: "apartment",
			Location: domain.Location{
				City:    "Islamabad",
				Area:    "F-8",
				Address: "F-8/3, Islamabad",
			},
			Features: domain.Features{
				Bedrooms:  2,
				Bathrooms: 2,
				SizeSqft:  1200,
				Parking:   true,
				Balcony:   true,
				Security:  true,
				Gym:       true,
				Pool:      true,
				Elevator:  true,
			},
			Images:         []string{"https://example.com/prop3_1.jpg", "https://example.com/prop3_2.jpg"},
			YearBuilt:      yr(2022),
			MaintenanceFee: fee(20000),
			Available:      true,
		},
		{
			ID:           "prop_004",
			Title:        "Cozy 1-Bed Apartment in Clifton Karachi",
			Description:  "Charming apartment near the beach, perfect for singles or couples. Walking distance to restaurants and cafes.",
			PriceCrores:  1.2,
			PropertyType: "apartment",
			Location: domain.Location{
				City:    "Karachi",
				Area:    "Clifton",
				Address: "Block 2, Clifton, Karachi",
			},
			Features: domain.Features{
				Bedrooms:  1,
				Bathrooms: 1,
				SizeSqft:  800,
				Balcony:   true,
				Security:  true,
			},
			Images:         []string{"https://example.com/prop4_1.jpg"},
			YearBuilt:      yr(2019),
			MaintenanceFee: fee(12000),
			Available:      true,
		},
		{
			ID:           "prop_005",
			Title:        "Family Bungalow in DHA Phase 2",
			Description:  "Large family bungalow with private garden and servant quarters. Perfect for extended families.",
			PriceCrores:  4.5,
			PropertyType: "bungalow",
			Location: domain.Location{
				City:    "Lahore",
				Area:    "DHA Phase 2",
				Address: "Block B, DHA Phase 2, Lahore",
			},
			Features: domain.Features{
				Bedrooms:  5,
				Bathrooms: 4,
				SizeSqft:  3500,
				Parking:   true,
				Balcony:   true,
				Garden:    true,
				Security:  true,
			},
			Images:         []string{"https://example.com/prop5_1.jpg", "https://example.com/prop5_2.jpg"},
			YearBuilt:      yr(2015),
			MaintenanceFee: fee(25000),
			Available:      true,
		},
	}
}
