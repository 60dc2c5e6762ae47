package favorites

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/domain"
)

var titleCaser = cases.Title(language.English)

// FormatSummary renders a user's favorites as assistant-ready text.
func FormatSummary(records []domain.FavoriteRecord) string {
	if len(records) == 0 {
		return "You haven't saved any properties to favorites yet. Start exploring and save the ones you like!"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Your Favorite Properties (%d):\n\n", len(records))

	for i, rec := range records {
		fmt.Fprintf(&sb, "%d. Property ID: %s\n", i+1, rec.PropertyID)
		fmt.Fprintf(&sb, "   Saved: %s\n", rec.SavedAt.Format("2006-01-02 15:04"))
		fmt.Fprintf(&sb, "   Priority: %s\n", titleCaser.String(string(rec.Priority)))
		if rec.Notes != "" {
			fmt.Fprintf(&sb, "   Notes: %s\n", rec.Notes)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Next steps:\n")
	sb.WriteString("- Say 'show me property [ID]' to see details\n")
	sb.WriteString("- Say 'remove property [ID]' to remove from favorites\n")
	sb.WriteString("- Say 'search similar to [ID]' to find similar properties\n")

	return sb.String()
}
