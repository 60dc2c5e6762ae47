package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(apiKey, model string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, errors.New("API key is required")
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	if model == "" {
		model = "gemini-2.0-flash"
	}

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

func (p *GeminiProvider) Name() string {
	return "gemini"
}

func (p *GeminiProvider) Chat(ctx context.Context, messages []Message, tools []ToolDefinition) (*Response, error) {
	geminiModel := p.client.GenerativeModel(p.model)

	if len(tools) > 0 {
		decls := make([]*genai.FunctionDeclaration, 0, len(tools))
		for _, t := range tools {
			decls = append(decls, &genai.FunctionDeclaration{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  schemaFromMap(t.Parameters),
			})
		}
		geminiModel.Tools = []*genai.Tool{{FunctionDeclarations: decls}}
	}

	// Gemini takes the system instruction out of band.
	if len(messages) > 0 && messages[0].Role == RoleSystem {
		geminiModel.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(messages[0].Content)},
		}
		messages = messages[1:]
	}

	// The trailing run of tool results forms the parts of the next send;
	// everything before it is chat history.
	split := len(messages)
	for split > 0 && messages[split-1].Role == RoleTool {
		split--
	}
	var sendParts []genai.Part
	if split == len(messages) {
		// Last message is user text.
		split--
		sendParts = []genai.Part{genai.Text(messages[len(messages)-1].Content)}
	} else {
		for _, m := range messages[split:] {
			sendParts = append(sendParts, genai.FunctionResponse{
				Name:     m.ToolCallID,
				Response: map[string]any{"result": m.Content},
			})
		}
	}

	cs := geminiModel.StartChat()
	var history []*genai.Content
	for _, m := range messages[:split] {
		role := "user"
		if m.Role == RoleAssistant {
			role = "model"
		}

		content := &genai.Content{
			Role: role,
		}

		if m.ToolCallID != "" {
			content.Role = "user"
			content.Parts = append(content.Parts, genai.FunctionResponse{
				Name:     m.ToolCallID,
				Response: map[string]any{"result": m.Content},
			})
		} else {
			if m.Content != "" {
				content.Parts = append(content.Parts, genai.Text(m.Content))
			}
			for _, tc := range m.ToolCalls {
				var args map[string]any
				json.Unmarshal([]byte(tc.Args), &args)
				content.Parts = append(content.Parts, genai.FunctionCall{
					Name: tc.Name,
					Args: args,
				})
			}
		}
		history = append(history, content)
	}
	cs.History = history

	resp, err := cs.SendMessage(ctx, sendParts...)
	if err != nil {
		return nil, fmt.Errorf("gemini completion failed: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("no candidates returned")
	}
	cand := resp.Candidates[0]

	var contentStr string
	var toolCalls []ToolCall

	for _, part := range cand.Content.Parts {
		switch v := part.(type) {
		case genai.Text:
			contentStr += string(v)
		case genai.FunctionCall:
			argsBytes, _ := json.Marshal(v.Args)
			toolCalls = append(toolCalls, ToolCall{
				ID:   v.Name,
				Name: v.Name,
				Args: string(argsBytes),
			})
		}
	}

	var usage Usage
	if resp.UsageMetadata != nil {
		usage = Usage{
			PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(resp.UsageMetadata.TotalTokenCount),
		}
	}

	return &Response{
		Content:   contentStr,
		ToolCalls: toolCalls,
		Usage:     usage,
	}, nil
}

// schemaFromMap converts a JSON-schema object into the genai schema type.
// Only the subset the tool contracts use is mapped: object/array nesting,
// scalar types, descriptions, enums and required lists.
func schemaFromMap(m map[string]any) *genai.Schema {
	if m == nil {
		return nil
	}
	s := &genai.Schema{}

	if t, ok := m["type"].(string); ok {
		switch t {
		case "object":
			s.Type = genai.TypeObject
		case "array":
			s.Type = genai.TypeArray
		case "string":
			s.Type = genai.TypeString
		case "number":
			s.Type = genai.TypeNumber
		case "integer":
			s.Type = genai.TypeInteger
		case "boolean":
			s.Type = genai.TypeBoolean
		}
	}
	if d, ok := m["description"].(string); ok {
		s.Description = d
	}
	if props, ok := m["properties"].(map[string]any); ok {
		s.Properties = make(map[string]*genai.Schema, len(props))
		for name, raw := range props {
			if sub, ok := raw.(map[string]any); ok {
				s.Properties[name] = schemaFromMap(sub)
			}
		}
	}
	if items, ok := m["items"].(map[string]any); ok {
		s.Items = schemaFromMap(items)
	}
	if req, ok := m["required"].([]string); ok {
		s.Required = req
	} else if req, ok := m["required"].([]any); ok {
		for _, r := range req {
			if rs, ok := r.(string); ok {
				s.Required = append(s.Required, rs)
			}
		}
	}
	if enum, ok := m["enum"].([]string); ok {
		s.Enum = enum
	}

	return s
}
