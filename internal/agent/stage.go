package agent

import (
	"strings"

	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/domain"
	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/provider"
)

// Stage tracking is observability only: it labels where the conversation is,
// it never gates which tools run. Inference is deterministic so replaying a
// session yields the same stage sequence.

func stageForTool(name string) (domain.Stage, bool) {
	switch name {
	case "search_properties":
		return domain.StageSearch, true
	case "present_properties":
		return domain.StagePresentation, true
	case "refine_search_criteria":
		return domain.StageRefinement, true
	case "save_to_favorites", "get_favorites", "remove_from_favorites", "get_favorites_summary":
		return domain.StageFavorites, true
	case "save_customer_preferences":
		return domain.StageFollowUp, true
	}
	return "", false
}

// stageAfterCalls advances the stage based on the tools the model chose.
// The last call with a mapped stage wins.
func stageAfterCalls(current domain.Stage, calls []provider.ToolCall) domain.Stage {
	stage := current
	for _, call := range calls {
		if s, ok := stageForTool(call.Name); ok {
			stage = s
		}
	}
	return stage
}

// stageAfterReply advances the stage based on a terminal assistant reply.
func stageAfterReply(current domain.Stage, text string) domain.Stage {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "schedule") || strings.Contains(lower, "visit") || strings.Contains(lower, "viewing"):
		return domain.StageScheduling
	case strings.Contains(lower, "goodbye") || strings.Contains(lower, "bye"):
		return domain.StageClosing
	case current == domain.StageGreeting:
		return domain.StageNeedsAssessment
	}
	return current
}
