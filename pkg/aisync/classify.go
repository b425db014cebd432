package aisync

import "strings"

// Intent is the coarse classification of a chat message, selecting the
// prompt template and response handling downstream. It is a keyword
// dispatcher, not a parser; misclassification is possible and tolerated.
type Intent string

const (
	IntentGenerate        Intent = "generate"
	IntentEdit            Intent = "edit"
	IntentAdvice          Intent = "advice"
	IntentAnalysis        Intent = "analysis"
	IntentSuggestion      Intent = "suggestion"
	IntentTroubleshooting Intent = "troubleshooting"
)

// Keyword groups, matched case-insensitively as substrings.
var (
	resetKeywords = []string{
		"start over", "start from scratch", "from scratch", "new design",
		"reset", "clear everything", "clear the design",
	}
	generateKeywords = []string{
		"design a", "design an", "create a", "create an", "generate",
		"build a", "build an", "architecture for", "system for",
	}
	editKeywords = []string{
		"add", "remove", "delete", "change", "modify", "update",
		"replace", "connect", "disconnect", "rename",
	}
	analysisKeywords = []string{
		"analyze", "analyse", "analysis", "efficiency", "bottleneck", "evaluate",
	}
	suggestionKeywords = []string{
		"suggest", "recommend", "improve", "optimize", "optimise",
	}
	troubleshootingKeywords = []string{
		"troubleshoot", "not working", "broken", "failing", "debug", "diagnose",
	}
)

// ClassifyIntent maps a message to an intent given whether a non-empty
// design already exists.
//
// Precedence: reset keywords force a regeneration even over an existing
// design; with context, edit or generation keywords imply an edit; without
// context, generation keywords imply a fresh generation. Edit keywords
// without any design context deliberately fall through to the advice path —
// there is nothing to edit yet. The remaining categories only steer the
// advisory prompt choice.
func ClassifyIntent(message string, hasDesign bool) Intent {
	m := strings.ToLower(message)

	if containsAny(m, resetKeywords) {
		return IntentGenerate
	}
	if hasDesign && (containsAny(m, editKeywords) || containsAny(m, generateKeywords)) {
		return IntentEdit
	}
	if !hasDesign && containsAny(m, generateKeywords) {
		return IntentGenerate
	}
	if containsAny(m, troubleshootingKeywords) {
		return IntentTroubleshooting
	}
	if containsAny(m, analysisKeywords) {
		return IntentAnalysis
	}
	if containsAny(m, suggestionKeywords) {
		return IntentSuggestion
	}
	return IntentAdvice
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
