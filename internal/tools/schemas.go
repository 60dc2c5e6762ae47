package tools

// JSON-schema fragments advertised to the model. Providers translate these
// into their native declaration formats, so only the common subset is used:
// type, description, properties, items, required, enum.

func criteriaSchema() map[string]any {
	return map[string]any{
		"type":        "object",
		"description": "Structured search filters. Omit a field to leave it unconstrained.",
		"properties": map[string]any{
			"property_type": map[string]any{
				"type":        "string",
				"description": "Type of property, e.g. 'apartment' or 'house'",
			},
			"locations": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Cities or areas to match, e.g. ['Karachi', 'DHA']",
			},
			"min_price": map[string]any{
				"type":        "number",
				"description": "Minimum price in crores",
			},
			"max_price": map[string]any{
				"type":        "number",
				"description": "Maximum price in crores",
			},
			"min_bedrooms": map[string]any{
				"type":        "integer",
				"description": "Minimum number of bedrooms",
			},
			"max_bedrooms": map[string]any{
				"type":        "integer",
				"description": "Maximum number of bedrooms",
			},
			"min_bathrooms": map[string]any{
				"type":        "integer",
				"description": "Minimum number of bathrooms",
			},
			"must_have_features": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Features the property must have, e.g. ['parking', 'balcony']",
			},
			"max_results": map[string]any{
				"type":        "integer",
				"description": "Cap on returned properties (default 10)",
			},
		},
	}
}

func searchResultSchema() map[string]any {
	return map[string]any{
		"type":        "object",
		"description": "A prior search_properties result, passed back verbatim.",
		"properties": map[string]any{
			"properties": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "object"},
				"description": "Matching property records from search_properties",
			},
			"total_found": map[string]any{
				"type":        "integer",
				"description": "Number of matching properties",
			},
			"search_criteria": criteriaSchema(),
		},
		"required": []string{"properties", "total_found"},
	}
}

func preferencesSchema() map[string]any {
	return map[string]any{
		"type":        "object",
		"description": "The user's standing property preferences.",
		"properties": map[string]any{
			"property_type": map[string]any{
				"type":        "string",
				"description": "Preferred property type",
			},
			"locations": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Preferred cities or areas",
			},
			"budget": map[string]any{
				"type":        "object",
				"description": "Price range in crores",
				"properties": map[string]any{
					"min": map[string]any{"type": "number", "description": "Lower bound in crores"},
					"max": map[string]any{"type": "number", "description": "Upper bound in crores"},
				},
			},
			"bedrooms": map[string]any{
				"type":        "integer",
				"description": "Preferred number of bedrooms",
			},
			"bathrooms": map[string]any{
				"type":        "integer",
				"description": "Preferred number of bathrooms",
			},
			"must_have_features": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Features the user considers essential",
			},
		},
	}
}
