package aisync

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"google.golang.org/genai"
)

var _ Generator = (*GeminiGenerator)(nil)

// DefaultGeminiModel is the model used when none is configured.
const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiGenerator implements Generator using the Google Gemini API.
type GeminiGenerator struct {
	Client *genai.Client

	// Model should not start with "models/".
	Model string
}

// NewGeminiGenerator builds a generator over an API-key client.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if model == "" {
		model = DefaultGeminiModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("aisync: create gemini client: %w", err)
	}
	return &GeminiGenerator{Client: client, Model: model}, nil
}

func (g *GeminiGenerator) GenerateText(ctx context.Context, system, user string) (string, error) {
	return g.generate(ctx, system, user, nil)
}

func (g *GeminiGenerator) GenerateJSON(ctx context.Context, system, user string, schema *jsonschema.Schema) (string, error) {
	return g.generate(ctx, system, user, schema)
}

func (g *GeminiGenerator) generate(ctx context.Context, system, user string, schema *jsonschema.Schema) (string, error) {
	cfg := &genai.GenerateContentConfig{}
	if system != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(system)},
		}
	}
	if schema != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = geminiConvSchema(schema)
	}

	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{genai.NewPartFromText(user)},
	}}
	resp, err := g.Client.Models.GenerateContent(ctx, g.Model, contents, cfg)
	if err != nil {
		return "", classifyUpstream(err)
	}
	if len(resp.Candidates) == 0 {
		return "", newError(KindTransport, "no candidates in response")
	}
	cand := resp.Candidates[0]
	if cand.FinishReason != genai.FinishReasonStop && cand.FinishReason != genai.FinishReasonUnspecified {
		return "", newError(KindTransport, "unexpected finish reason: %s", cand.FinishReason)
	}
	if cand.Content == nil {
		return "", newError(KindTransport, "empty candidate content")
	}
	var sb strings.Builder
	for _, p := range cand.Content.Parts {
		if p.Text != "" {
			sb.WriteString(p.Text)
		}
	}
	return sb.String(), nil
}

// geminiConvSchema converts the portable JSON schema into the Gemini API's
// schema representation.
func geminiConvSchema(schema *jsonschema.Schema) *genai.Schema {
	if schema == nil {
		return nil
	}
	gs := &genai.Schema{
		Format:      schema.Format,
		Description: schema.Description,
		Items:       geminiConvSchema(schema.Items),
		Required:    schema.Required,
	}
	for _, v := range schema.Enum {
		gs.Enum = append(gs.Enum, fmt.Sprintf("%v", v))
	}
	if n := len(schema.Properties); n > 0 {
		gs.Properties = make(map[string]*genai.Schema, n)
		for k, prop := range schema.Properties {
			gs.Properties[k] = geminiConvSchema(prop)
		}
	}
	switch schema.Type {
	case "object":
		gs.Type = genai.TypeObject
	case "array":
		gs.Type = genai.TypeArray
	case "string":
		gs.Type = genai.TypeString
	case "number":
		gs.Type = genai.TypeNumber
	case "integer":
		gs.Type = genai.TypeInteger
	case "boolean":
		gs.Type = genai.TypeBoolean
	}
	return gs
}
