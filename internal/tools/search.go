package tools

import (
	"context"
	"encoding/json"

	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/catalog"
	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/domain"
	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/present"
	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/refine"
)

type searchInput struct {
	Criteria domain.SearchCriteria `json:"criteria"`
}

func searchPropertiesTool(cat *catalog.Catalog) Tool {
	return Tool{
		Name: "search_properties",
		Description: "Search the property catalog with structured criteria. " +
			"Returns matching properties with a snapshot of the criteria used.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"criteria": criteriaSchema(),
			},
			"required": []string{"criteria"},
		},
		run: func(ctx context.Context, args json.RawMessage) (any, error) {
			in, err := decodeArgs[searchInput](args)
			if err != nil {
				return nil, err
			}
			return cat.Search(in.Criteria), nil
		},
	}
}

type presentInput struct {
	SearchResult *domain.SearchResult `json:"search_result" validate:"required"`
}

func presentPropertiesTool() Tool {
	return Tool{
		Name: "present_properties",
		Description: "Format a search result into per-property summaries with pros, cons " +
			"and price-per-sqft, plus a presentation text to relay to the user.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"search_result": searchResultSchema(),
			},
			"required": []string{"search_result"},
		},
		run: func(ctx context.Context, args json.RawMessage) (any, error) {
			in, err := decodeArgs[presentInput](args)
			if err != nil {
				return nil, err
			}
			return present.Format(*in.SearchResult), nil
		},
	}
}

type refineInput struct {
	CurrentCriteria domain.SearchCriteria `json:"current_criteria"`
	UserFeedback    string                `json:"user_feedback" validate:"required"`
}

func refineCriteriaTool() Tool {
	return Tool{
		Name: "refine_search_criteria",
		Description: "Adjust search criteria from user feedback like 'too expensive' or " +
			"'need more bedrooms'. Returns updated criteria and a list of changes made.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"current_criteria": criteriaSchema(),
				"user_feedback": map[string]any{
					"type":        "string",
					"description": "The user's feedback on the previous results",
				},
			},
			"required": []string{"current_criteria", "user_feedback"},
		},
		run: func(ctx context.Context, args json.RawMessage) (any, error) {
			in, err := decodeArgs[refineInput](args)
			if err != nil {
				return nil, err
			}
			return refine.Refine(in.CurrentCriteria, in.UserFeedback), nil
		},
	}
}
