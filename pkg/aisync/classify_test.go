package aisync_test

import (
	"testing"

	"github.com/archmind/archmind/pkg/aisync"
)

// These tests pin the current heuristic, not an ideal classifier. The
// keyword dispatcher is allowed to misfire; what matters is that it misfires
// the same way tomorrow.
func TestClassifyIntent(t *testing.T) {
	cases := []struct {
		name      string
		message   string
		hasDesign bool
		want      aisync.Intent
	}{
		{"generate without context", "design a warehouse automation system", false, aisync.IntentGenerate},
		{"generation keywords with context become edit", "create a payment service", true, aisync.IntentEdit},
		{"edit with context", "add a redis cache between the gateway and the user service", true, aisync.IntentEdit},
		{"remove with context", "remove the legacy queue", true, aisync.IntentEdit},
		// Edit keywords without any design context fall through to advice:
		// there is nothing to edit yet.
		{"remove without context is advice", "remove the legacy queue", false, aisync.IntentAdvice},
		{"reset forces generate over context", "start over with a new design for a chat app", true, aisync.IntentGenerate},
		{"reset without context", "reset and build something simpler", false, aisync.IntentGenerate},
		{"analysis", "can you analyze the bottlenecks here?", false, aisync.IntentAnalysis},
		{"suggestion", "what would you recommend for caching?", false, aisync.IntentSuggestion},
		{"troubleshooting", "the pipeline is not working, help me debug it", false, aisync.IntentTroubleshooting},
		{"plain question", "what is the difference between kafka and rabbitmq?", false, aisync.IntentAdvice},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := aisync.ClassifyIntent(tc.message, tc.hasDesign); got != tc.want {
				t.Fatalf("ClassifyIntent(%q, %v) = %s, want %s", tc.message, tc.hasDesign, got, tc.want)
			}
		})
	}
}
