package domain

// Stage labels conversational progress on a session. It exists for
// observability and branching in the prompt; routing is driven by the
// presence of tool calls, never by the stage.
type Stage string

const (
	StageGreeting        Stage = "greeting"
	StageNeedsAssessment Stage = "needs_assessment"
	StageSearch          Stage = "search"
	StagePresentation    Stage = "presentation"
	StageRefinement      Stage = "refinement"
	StageFavorites       Stage = "favorites"
	StageFollowUp        Stage = "follow_up"
	StageScheduling      Stage = "scheduling"
	StageClosing         Stage = "closing"
)

// Valid reports whether s is one of the known stages.
func (s Stage) Valid() bool {
	switch s {
	case StageGreeting, StageNeedsAssessment, StageSearch, StagePresentation,
		StageRefinement, StageFavorites, StageFollowUp, StageScheduling, StageClosing:
		return true
	}
	return false
}
