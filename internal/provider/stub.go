package provider

import (
	"context"
	"time"
)

// StubProvider replays a scripted sequence of responses. It backs offline
// demos and the orchestrator tests.
type StubProvider struct {
	Responses []Response
	// Delay adds artificial latency before each response.
	Delay time.Duration
}

// NewStubProvider returns a stub that walks a short buyer conversation:
// greet, search, then wrap up.
func NewStubProvider() *StubProvider {
	return &StubProvider{
		Responses: []Response{
			{
				Content: "Hi, I'm Sarah from Premier Realty Group. What kind of property are you looking for?",
				Usage:   Usage{PromptTokens: 100, CompletionTokens: 20, TotalTokens: 120},
			},
			{
				Content: "Let me search our listings for you.",
				ToolCalls: []ToolCall{
					{ID: "call_1", Name: "search_properties", Args: `{"criteria": {"property_type": "apartment", "locations": ["Karachi"], "max_price": 2.5, "min_bedrooms": 3, "must_have_features": ["parking"]}}`},
				},
				Usage: Usage{PromptTokens: 200, CompletionTokens: 30, TotalTokens: 230},
			},
			{
				Content: "Here is what I found. Would you like to refine the search or save one to your favorites?",
				Usage:   Usage{PromptTokens: 300, CompletionTokens: 25, TotalTokens: 325},
			},
		},
	}
}

func (m *StubProvider) Chat(ctx context.Context, messages []Message, tools []ToolDefinition) (*Response, error) {
	if m.Delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(m.Delay):
		}
	}

	if len(m.Responses) == 0 {
		return &Response{Content: "Is there anything else I can help you with?", Usage: Usage{}}, nil
	}

	resp := m.Responses[0]
	m.Responses = m.Responses[1:]
	return &resp, nil
}

func (m *StubProvider) Name() string {
	return "stub"
}
