package sentiment

import "github.com/abhisek/showdown/internal/llm"

// LabelSchema is the answer shape asked of hosted models.
var LabelSchema = llm.NewSchema("sentiment-label",
	"Binary sentiment of a piece of text with the model's confidence",
	map[string]any{
		"type": "object",
		"properties": map[string]any{
			"label": map[string]any{
				"type":        "string",
				"enum":        []any{"POSITIVE", "NEGATIVE"},
				"description": "The literal sentiment of the text",
			},
			"confidence": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     1,
				"description": "Probability that the label is correct, between 0 and 1",
			},
		},
		"required":             []any{"label", "confidence"},
		"additionalProperties": false,
	})
