package cli

import (
	"reflect"
	"testing"
)

func TestApplyJQ_SingleResult(t *testing.T) {
	v := map[string]any{"parts": []any{
		map[string]any{"name": "GW"},
		map[string]any{"name": "DB"},
	}}

	out, err := ApplyJQ(".parts | length", v)
	if err != nil {
		t.Fatalf("ApplyJQ error: %v", err)
	}
	if out != 2 {
		t.Errorf("result = %v (%T), want 2", out, out)
	}
}

func TestApplyJQ_MultipleResults(t *testing.T) {
	v := map[string]any{"parts": []any{
		map[string]any{"name": "GW"},
		map[string]any{"name": "DB"},
	}}

	out, err := ApplyJQ(".parts[].name", v)
	if err != nil {
		t.Fatalf("ApplyJQ error: %v", err)
	}
	want := []any{"GW", "DB"}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("result = %v, want %v", out, want)
	}
}

func TestApplyJQ_StructInput(t *testing.T) {
	type part struct {
		Name string `json:"name"`
	}
	v := struct {
		Parts []part `json:"parts"`
	}{Parts: []part{{Name: "Cache"}}}

	out, err := ApplyJQ(".parts[0].name", v)
	if err != nil {
		t.Fatalf("ApplyJQ error: %v", err)
	}
	if out != "Cache" {
		t.Errorf("result = %v, want Cache", out)
	}
}

func TestApplyJQ_InvalidExpression(t *testing.T) {
	if _, err := ApplyJQ(".[", map[string]any{}); err == nil {
		t.Error("ApplyJQ should fail for an invalid expression")
	}
}

func TestApplyJQ_NoResults(t *testing.T) {
	out, err := ApplyJQ(".parts[]?", map[string]any{})
	if err != nil {
		t.Fatalf("ApplyJQ error: %v", err)
	}
	if out != nil {
		t.Errorf("result = %v, want nil", out)
	}
}
