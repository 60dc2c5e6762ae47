package present

import (
	"fmt"
	"strings"

	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/domain"
)

// PropertySummary condenses one listing for presentation, with derived
// price-per-sqft and pros/cons.
type PropertySummary struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	PriceCrores  float64  `json:"price_crores"`
	Location     string   `json:"location"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    int      `json:"bathrooms"`
	SizeSqft     int      `json:"size_sqft"`
	KeyFeatures  []string `json:"key_features"`
	PricePerSqft float64  `json:"price_per_sqft"`
	Pros         []string `json:"pros"`
	Cons         []string `json:"cons"`
}

// Result is the formatted output for a search result.
type Result struct {
	Summaries        []PropertySummary `json:"summaries"`
	TotalProperties  int               `json:"total_properties"`
	PresentationText string            `json:"presentation_text"`
}

// Value heuristics, in PKR per sqft.
const (
	goodValuePerSqft = 8000
	highValuePerSqft = 15000
)

// Format turns a search result into per-property summaries and a single
// human-readable block the assistant can relay verbatim.
func Format(result domain.SearchResult) Result {
	summaries := make([]PropertySummary, 0, len(result.Properties))
	for _, p := range result.Properties {
		summaries = append(summaries, summarize(p))
	}

	return Result{
		Summaries:        summaries,
		TotalProperties:  len(summaries),
		PresentationText: renderText(summaries),
	}
}

func pricePerSqft(priceCrores float64, sizeSqft int) float64 {
	if sizeSqft == 0 {
		return 0
	}
	// Crores to rupees.
	return priceCrores * 1e7 / float64(sizeSqft)
}

func summarize(p domain.Property) PropertySummary {
	perSqft := pricePerSqft(p.PriceCrores, p.Features.SizeSqft)
	pros, cons := prosAndCons(p, perSqft)

	return PropertySummary{
		ID:           p.ID,
		Title:        p.Title,
		PriceCrores:  p.PriceCrores,
		Location:     fmt.Sprintf("%s, %s", p.Location.Area, p.Location.City),
		Bedrooms:     p.Features.Bedrooms,
		Bathrooms:    p.Features.Bathrooms,
		SizeSqft:     p.Features.SizeSqft,
		KeyFeatures:  p.FeatureNames(),
		PricePerSqft: perSqft,
		Pros:         pros,
		Cons:         cons,
	}
}

func prosAndCons(p domain.Property, perSqft float64) (pros, cons []string) {
	if p.Features.Parking {
		pros = append(pros, "Parking available")
	} else {
		cons = append(cons, "No parking")
	}
	if p.Features.Balcony {
		pros = append(pros, "Balcony included")
	}
	if p.Features.Garden {
		pros = append(pros, "Private garden")
	}
	if p.Features.Security {
		pros = append(pros, "Security system")
	}
	if p.Features.Gym {
		pros = append(pros, "Gym facility")
	}
	if p.Features.Pool {
		pros = append(pros, "Swimming pool")
	}
	if p.Features.Elevator {
		pros = append(pros, "Elevator access")
	}

	if perSqft > 0 && perSqft < goodValuePerSqft {
		pros = append(pros, "Good value for money")
	} else if perSqft > highValuePerSqft {
		cons = append(cons, "Higher price per sqft")
	}

	if p.Features.SizeSqft > 2000 {
		pros = append(pros, "Spacious living area")
	} else if p.Features.SizeSqft < 1000 {
		cons = append(cons, "Compact living space")
	}

	if strings.Contains(p.Location.Area, "DHA") {
		pros = append(pros, "Prime DHA location")
	} else if strings.Contains(p.Location.Area, "Phase") {
		pros = append(pros, "Well-planned area")
	}

	if p.MaintenanceFee != nil {
		if *p.MaintenanceFee < 10000 {
			pros = append(pros, "Low maintenance fees")
		} else if *p.MaintenanceFee > 20000 {
			cons = append(cons, "High maintenance fees")
		}
	}

	return pros, cons
}

func renderText(summaries []PropertySummary) string {
	if len(summaries) == 0 {
		return "No properties found matching your criteria. Let me help you refine your search!"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d properties matching your criteria:\n\n", len(summaries))

	for i, s := range summaries {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, s.Title)
		fmt.Fprintf(&sb, "   Price: %.1f crores (%.0f PKR/sqft)\n", s.PriceCrores, s.PricePerSqft)
		fmt.Fprintf(&sb, "   Location: %s\n", s.Location)
		fmt.Fprintf(&sb, "   Details: %d bed, %d bath, %d sqft\n", s.Bedrooms, s.Bathrooms, s.SizeSqft)
		features := "Basic amenities"
		if len(s.KeyFeatures) > 0 {
			features = strings.Join(s.KeyFeatures, ", ")
		}
		fmt.Fprintf(&sb, "   Features: %s\n", features)

		if len(s.Pros) > 0 {
			sb.WriteString("   Pros:\n")
			for _, pro := range s.Pros {
				fmt.Fprintf(&sb, "     + %s\n", pro)
			}
		}
		if len(s.Cons) > 0 {
			sb.WriteString("   Considerations:\n")
			for _, con := range s.Cons {
				fmt.Fprintf(&sb, "     - %s\n", con)
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Next steps:\n")
	sb.WriteString("- Say 'show me more details about property 1' for specific info\n")
	sb.WriteString("- Say 'too expensive' to adjust your budget\n")
	sb.WriteString("- Say 'I want more bedrooms' to refine your search\n")
	sb.WriteString("- Say 'save property 1' to add to your favorites\n")

	return sb.String()
}
