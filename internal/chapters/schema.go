package chapters

import "github.com/EAGLE1309/placecraft-sub002/internal/llm"

// ChapterListSchema defines the JSON schema for chapter-list generation.
var ChapterListSchema = &llm.Schema{
	Name:        "chapter-list",
	Description: "An ordered chapter list covering a subject's roadmap",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"chapters": map[string]any{
				"type":        "array",
				"minItems":    1,
				"description": "Ordered chapters, one per roadmap topic, in roadmap order",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"description": "Chapter title (2-8 words)",
						},
						"summary": map[string]any{
							"type":        "string",
							"description": "One-line synopsis of the chapter",
						},
					},
					"required":             []any{"title", "summary"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"chapters"},
		"additionalProperties": false,
	},
}

// ChapterContentSchema defines the JSON schema for chapter-content generation.
var ChapterContentSchema = &llm.Schema{
	Name:        "chapter-content",
	Description: "A chapter's long-form overview and its ordered key concepts",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"overview": map[string]any{
				"type":        "string",
				"description": "Long-form overview of the chapter (3-6 paragraphs)",
			},
			"concepts": map[string]any{
				"type":        "array",
				"minItems":    1,
				"description": "Ordered key concepts of the chapter",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"description": "Concept name (2-6 words)",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Plain-language explanation (2-4 sentences)",
						},
					},
					"required":             []any{"title", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"overview", "concepts"},
		"additionalProperties": false,
	},
}
