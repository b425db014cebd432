package aisync

import (
	"context"
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
)

var _ Generator = (*OpenAIGenerator)(nil)

// DefaultOpenAIModel is the model used when none is configured.
const DefaultOpenAIModel = "gpt-4o-mini"

// OpenAIGenerator implements Generator using the OpenAI chat completions
// API. It exists so deployments without Gemini access can run the same
// design-sync pipeline; both backends feed the identical validation path.
type OpenAIGenerator struct {
	Client *openai.Client
	Model  string
}

// NewOpenAIGenerator builds a generator over an API-key client. baseURL is
// optional and supports OpenAI-compatible endpoints.
func NewOpenAIGenerator(apiKey, model, baseURL string) *OpenAIGenerator {
	if model == "" {
		model = DefaultOpenAIModel
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	client := openai.NewClient(opts...)
	return &OpenAIGenerator{Client: &client, Model: model}
}

func (g *OpenAIGenerator) GenerateText(ctx context.Context, system, user string) (string, error) {
	params := g.chatParams(system, user)
	resp, err := g.Client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", classifyUpstream(err)
	}
	return openaiChoiceText(resp)
}

func (g *OpenAIGenerator) GenerateJSON(ctx context.Context, system, user string, schema *jsonschema.Schema) (string, error) {
	params := g.chatParams(system, user)
	params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
		OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
			JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
				Name:   "design_document",
				Schema: openaiConvSchema(schema),
				Strict: param.NewOpt(false),
			},
		},
	}
	resp, err := g.Client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", classifyUpstream(err)
	}
	return openaiChoiceText(resp)
}

func (g *OpenAIGenerator) chatParams(system, user string) openai.ChatCompletionNewParams {
	var msgs []openai.ChatCompletionMessageParamUnion
	if system != "" {
		msgs = append(msgs, openai.SystemMessage(system))
	}
	msgs = append(msgs, openai.UserMessage(user))
	return openai.ChatCompletionNewParams{
		Model:    g.Model,
		Messages: msgs,
	}
}

func openaiChoiceText(resp *openai.ChatCompletion) (string, error) {
	if len(resp.Choices) == 0 {
		return "", newError(KindTransport, "no choices in response")
	}
	choice := resp.Choices[0]
	if choice.Message.Refusal != "" {
		return "", newError(KindTransport, "request refused: %s", choice.Message.Refusal)
	}
	if choice.Message.Content == "" {
		return "", newError(KindTransport, "empty completion content")
	}
	return choice.Message.Content, nil
}

// openaiConvSchema renders the portable schema as the plain map the OpenAI
// json_schema response format expects.
func openaiConvSchema(schema *jsonschema.Schema) map[string]any {
	b, err := json.Marshal(schema)
	if err != nil {
		return map[string]any{"type": "object"}
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return map[string]any{"type": "object"}
	}
	return m
}
