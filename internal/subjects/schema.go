package subjects

import "github.com/EAGLE1309/placecraft-sub002/internal/llm"

// RoadmapSchema defines the JSON schema for roadmap generation.
var RoadmapSchema = &llm.Schema{
	Name:        "subject-roadmap",
	Description: "An ordered learning roadmap for a skill, from fundamentals to advanced topics",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topics": map[string]any{
				"type":        "array",
				"minItems":    1,
				"description": "Ordered roadmap topics, fundamentals first",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"description": "Topic name (2-6 words)",
						},
						"description": map[string]any{
							"type":        "string",
							"description": "What the learner covers in this topic (1-2 sentences)",
						},
					},
					"required":             []any{"title", "description"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"topics"},
		"additionalProperties": false,
	},
}
