package provider

import (
	"context"
)

// Message represents a chat message.
type Message struct {
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"` // For tool results
}

// Response represents the output from the model.
type Response struct {
	Content   string     `json:"content"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
	Usage     Usage      `json:"usage"`
}

// ToolCall is a request from the model to invoke a named tool.
type ToolCall struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Args string `json:"args"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ToolDefinition declares a callable tool to the model. Parameters is a
// JSON-schema object describing the tool's input.
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// Provider defines the interface for AI model interactions.
type Provider interface {
	// Chat sends the ordered message history and the declared tool set to
	// the model and returns one assistant turn: either terminal text or a
	// batch of tool calls.
	Chat(ctx context.Context, messages []Message, tools []ToolDefinition) (*Response, error)

	// Name returns the provider identifier (e.g., "gemini", "openai").
	Name() string
}

// Message role constants shared across providers and the orchestrator.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)
