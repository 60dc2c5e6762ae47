package tools

import (
	"context"
	"encoding/json"

	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/intent"
)

type classifyIntentInput struct {
	UserMessage string `json:"user_message" validate:"required"`
}

func classifyIntentTool() Tool {
	return Tool{
		Name: "classify_user_intent",
		Description: "Classify what the user wants: buy, sell, rent, or general_info. " +
			"Call this early in the conversation to steer the dialogue.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"user_message": map[string]any{
					"type":        "string",
					"description": "The user's message to classify",
				},
			},
			"required": []string{"user_message"},
		},
		run: func(ctx context.Context, args json.RawMessage) (any, error) {
			in, err := decodeArgs[classifyIntentInput](args)
			if err != nil {
				return nil, err
			}
			return intent.Classify(in.UserMessage), nil
		},
	}
}
