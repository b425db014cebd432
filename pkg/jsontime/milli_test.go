package jsontime

import (
	"encoding/json"
	"testing"
	"time"
)

func TestMilli_MarshalJSON(t *testing.T) {
	tm := time.Date(2026, 3, 9, 14, 5, 0, 0, time.UTC)
	ep := Milli(tm)

	data, err := json.Marshal(ep)
	if err != nil {
		t.Fatalf("MarshalJSON error: %v", err)
	}

	var got int64
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal result error: %v", err)
	}
	if got != tm.UnixMilli() {
		t.Errorf("MarshalJSON = %d, want %d", got, tm.UnixMilli())
	}
}

func TestMilli_UnmarshalJSON(t *testing.T) {
	ms := int64(1772978700000)
	data, _ := json.Marshal(ms)

	var ep Milli
	if err := json.Unmarshal(data, &ep); err != nil {
		t.Fatalf("UnmarshalJSON error: %v", err)
	}

	if !ep.Time().Equal(time.UnixMilli(ms)) {
		t.Errorf("UnmarshalJSON = %v, want %v", ep.Time(), time.UnixMilli(ms))
	}
}

func TestMilli_UnmarshalJSON_RejectsString(t *testing.T) {
	var ep Milli
	if err := json.Unmarshal([]byte(`"2026-03-09T14:05:00Z"`), &ep); err == nil {
		t.Error("UnmarshalJSON should reject non-numeric timestamps")
	}
}

func TestMilli_RoundTrip(t *testing.T) {
	original := NowEpochMilli()

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	var restored Milli
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}

	// Sub-millisecond precision is lost on the wire; compare at
	// millisecond level.
	if original.Time().UnixMilli() != restored.Time().UnixMilli() {
		t.Errorf("RoundTrip: original=%v, restored=%v", original, restored)
	}
}

func TestMilli_ZeroValue(t *testing.T) {
	var zero Milli
	if !zero.IsZero() {
		t.Error("zero Milli should report IsZero")
	}
	if zero.String() == "" {
		t.Error("String() should not be empty")
	}
	if NowEpochMilli().IsZero() {
		t.Error("NowEpochMilli should not be zero")
	}
}
