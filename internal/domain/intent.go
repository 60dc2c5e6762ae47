package domain

// Intent labels what the user wants out of the conversation.
type Intent string

const (
	IntentBuy         Intent = "buy"
	IntentSell        Intent = "sell"
	IntentRent        Intent = "rent"
	IntentGeneralInfo Intent = "general_info"
	IntentUnknown     Intent = "unknown"
)

// IntentClassification is the scored outcome of classifying a user message.
type IntentClassification struct {
	Intent     Intent  `json:"intent"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}
