// Package aisync reconciles AI-proposed design data with the live design
// graph: it classifies chat messages, drives the generative backend, and
// validates the returned document before anything touches the typed model.
//
// The pipeline is all-or-nothing. A response with one invalid connection is
// rejected whole; the graph is never left with a partial application.
package aisync

import (
	"context"
	"strings"

	"github.com/archmind/archmind/pkg/design"
)

// ChatRequest is one message against a design surface.
type ChatRequest struct {
	Message     string              `json:"message"`
	Category    string              `json:"category,omitempty"`
	Parts       []design.Part       `json:"parts"`
	Connections []design.Connection `json:"connections"`
	DesignType  string              `json:"designType,omitempty"`
}

// ChatResponse carries the assistant's prose plus, for design-generation
// categories, the validated design data.
type ChatResponse struct {
	Response   string      `json:"response"`
	DesignData *SyncResult `json:"designData,omitempty"`
	Intent     Intent      `json:"intent"`
}

// Service runs the design-sync protocol over a Generator.
type Service struct {
	Gen Generator

	// IsBuiltinLinkType reports whether a link type id belongs to the fixed
	// built-in set; everything else found in model output is extracted as a
	// custom link type.
	IsBuiltinLinkType func(id string) bool

	// ColorFor resolves fallback part colors, typically
	// design.Catalog.ColorFor.
	ColorFor ColorFunc
}

// Chat dispatches a request to the matching pipeline. An explicit category
// takes precedence; otherwise the intent classifier decides.
func (s *Service) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, newError(KindInput, "message is required")
	}

	intent := s.resolveIntent(req)
	switch intent {
	case IntentGenerate:
		res, err := s.GenerateDesign(ctx, req.Message, req.DesignType)
		if err != nil {
			return nil, err
		}
		return &ChatResponse{Response: res.Description, DesignData: res, Intent: intent}, nil

	case IntentEdit:
		res, err := s.EditDesign(ctx, req.Message, req.Parts, req.Connections)
		if err != nil {
			return nil, err
		}
		return &ChatResponse{Response: res.Description, DesignData: res, Intent: intent}, nil

	case IntentAnalysis:
		text, err := s.Gen.GenerateText(ctx, systemExpert, analysisPrompt(req.Parts, req.Connections))
		if err != nil {
			return nil, asSyncError(err)
		}
		return &ChatResponse{Response: text, Intent: intent}, nil

	case IntentSuggestion:
		prompt := suggestionsPrompt(req.Parts, req.Connections)
		if strings.Contains(strings.ToLower(req.Message), "part") {
			prompt = partRecommendationsPrompt(req.Parts, req.Message)
		}
		text, err := s.Gen.GenerateText(ctx, systemExpert, prompt)
		if err != nil {
			return nil, asSyncError(err)
		}
		return &ChatResponse{Response: text, Intent: intent}, nil

	case IntentTroubleshooting:
		text, err := s.Gen.GenerateText(ctx, systemExpert, troubleshootingPrompt(req.Message, req.Parts))
		if err != nil {
			return nil, asSyncError(err)
		}
		return &ChatResponse{Response: text, Intent: intent}, nil

	default:
		text, err := s.Gen.GenerateText(ctx, systemExpert, advicePrompt(req.Message, req.Parts, req.Connections))
		if err != nil {
			return nil, asSyncError(err)
		}
		return &ChatResponse{Response: text, Intent: IntentAdvice}, nil
	}
}

// resolveIntent honors an explicit request category before falling back to
// keyword classification over the message and design context.
func (s *Service) resolveIntent(req ChatRequest) Intent {
	switch req.Category {
	case "analysis":
		return IntentAnalysis
	case "suggestion":
		return IntentSuggestion
	case "troubleshooting":
		return IntentTroubleshooting
	case "designGeneration":
		if len(req.Parts) > 0 {
			return IntentEdit
		}
		return IntentGenerate
	case "", "prototypingAdvice", "auto":
		return ClassifyIntent(req.Message, len(req.Parts) > 0)
	default:
		return IntentAdvice
	}
}

// GenerateDesign asks the backend for a complete design from requirements
// and validates it into a SyncResult.
func (s *Service) GenerateDesign(ctx context.Context, requirements, designType string) (*SyncResult, error) {
	text, err := s.Gen.GenerateJSON(ctx, systemExpert, generatePrompt(requirements, designType), designPayloadSchema())
	if err != nil {
		return nil, asSyncError(err)
	}
	payload, err := ParseDesignPayload(text)
	if err != nil {
		return nil, err
	}
	return BuildGenerate(payload, s.IsBuiltinLinkType, s.ColorFor)
}

// EditDesign asks the backend for the full modified design and validates it
// into a SyncResult, preserving existing part ids.
func (s *Service) EditDesign(ctx context.Context, request string, parts []design.Part, conns []design.Connection) (*SyncResult, error) {
	text, err := s.Gen.GenerateJSON(ctx, systemExpert, editPrompt(request, parts, conns), designPayloadSchema())
	if err != nil {
		return nil, asSyncError(err)
	}
	payload, err := ParseDesignPayload(text)
	if err != nil {
		return nil, err
	}
	return BuildEdit(payload, parts, s.IsBuiltinLinkType, s.ColorFor)
}

// asSyncError passes typed errors through and classifies anything else as
// an upstream failure.
func asSyncError(err error) error {
	if _, ok := err.(*Error); ok {
		return err
	}
	return classifyUpstream(err)
}
