package cli

import "testing"

func TestFormatCost(t *testing.T) {
	tests := []struct {
		cost string
		unit string
		want string
	}{
		{"", "", ""},
		{"", "EUR", ""},
		{"12.50", "EUR", "12.50 EUR"},
		{"40", "", "40 USD"},
		{"about 100", "USD", "about 100 USD"},
	}

	for _, tt := range tests {
		if got := FormatCost(tt.cost, tt.unit); got != tt.want {
			t.Errorf("FormatCost(%q, %q) = %q, want %q", tt.cost, tt.unit, got, tt.want)
		}
	}
}
