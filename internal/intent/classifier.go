package intent

import (
	"fmt"
	"strings"

	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/domain"
)

// keywordSets is the fixed lexicon, in tie-break priority order: when two
// non-zero scores are equal the earlier declared intent wins.
var keywordSets = []struct {
	intent   domain.Intent
	keywords []string
}{
	{domain.IntentBuy, []string{
		"buy", "purchase", "looking for", "need", "want", "searching for",
		"find me", "show me", "i want", "i need", "looking to buy",
		"interested in", "considering", "planning to buy",
	}},
	{domain.IntentSell, []string{
		"sell", "selling", "put on market", "list", "advertise",
		"get rid of", "dispose of", "unload", "offload",
	}},
	{domain.IntentRent, []string{
		"rent", "rental", "lease", "renting", "temporary",
		"short term", "monthly", "rent out",
	}},
	{domain.IntentGeneralInfo, []string{
		"tell me about", "explain", "how does", "what is", "information",
		"help me understand", "guide me", "advice", "tips",
	}},
}

// Classify scores the message against the keyword sets. Confidence is the
// winning score over the total; an all-zero score yields unknown at 0.
// Deterministic: same message, same outcome.
func Classify(message string) domain.IntentClassification {
	lower := strings.ToLower(message)

	best := domain.IntentUnknown
	bestScore := 0
	total := 0

	for _, set := range keywordSets {
		score := 0
		for _, kw := range set.keywords {
			score += strings.Count(lower, kw)
		}
		total += score
		if score > bestScore {
			bestScore = score
			best = set.intent
		}
	}

	if bestScore == 0 {
		return domain.IntentClassification{
			Intent:     domain.IntentUnknown,
			Confidence: 0,
			Reasoning:  "No clear intent keywords found in the message",
		}
	}

	return domain.IntentClassification{
		Intent:     best,
		Confidence: float64(bestScore) / float64(total),
		Reasoning:  fmt.Sprintf("Detected %d %s-related keywords in the message", bestScore, best),
	}
}
