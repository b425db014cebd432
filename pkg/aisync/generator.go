package aisync

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"
)

// Generator abstracts the generative-language backend. Implementations
// return either free text (advisory prompts) or raw JSON text constrained by
// a schema (design generation and editing).
type Generator interface {
	// GenerateText runs an advisory prompt and returns prose.
	GenerateText(ctx context.Context, system, user string) (string, error)

	// GenerateJSON runs a prompt whose output must be a single JSON
	// document matching schema, returned as raw text for downstream
	// validation. The schema constrains the model; it does not replace the
	// payload validation on receipt.
	GenerateJSON(ctx context.Context, system, user string, schema *jsonschema.Schema) (string, error)
}

// designPayloadSchema describes the design document the model must return.
// Kept deliberately looser than the receipt-side validation: the hex-color
// and range rules are enforced by ValidateConnection, not delegated to the
// model's constrained decoding.
func designPayloadSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"parts": {
				Type: "array",
				Items: &jsonschema.Schema{
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"id":            {Type: "integer"},
						"type":          {Type: "string"},
						"name":          {Type: "string"},
						"customColor":   {Type: "string"},
						"functionality": {Type: "string"},
						"technology":    {Type: "string"},
						"version":       {Type: "string"},
						"capacity":      {Type: "string"},
						"sla":           {Type: "string"},
						"x":             {Type: "number"},
						"y":             {Type: "number"},
					},
					Required: []string{"type", "name"},
				},
			},
			"connections": {
				Type: "array",
				Items: &jsonschema.Schema{
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"from":        {Type: "integer"},
						"to":          {Type: "integer"},
						"linkType":    {Type: "string"},
						"color":       {Type: "string"},
						"strokeWidth": {Type: "integer"},
						"dashArray":   {Type: "string"},
					},
					Required: []string{"from", "to", "linkType", "color"},
				},
			},
			"description": {Type: "string"},
		},
		Required: []string{"parts", "connections", "description"},
	}
}
