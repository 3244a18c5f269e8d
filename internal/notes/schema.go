package notes

import "github.com/EAGLE1309/placecraft-sub002/internal/llm"

// NotesSchema defines the JSON schema for study-notes generation.
var NotesSchema = &llm.Schema{
	Name:        "study-notes",
	Description: "Markdown study notes for one chapter",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"content": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "The complete study notes in Markdown",
			},
		},
		"required":             []any{"content"},
		"additionalProperties": false,
	},
}
