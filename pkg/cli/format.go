package cli

// FormatCost renders a part's free-form cost with its currency unit for
// display. The cost string is shown as entered; a missing unit defaults to
// USD, matching the bill-of-materials export.
func FormatCost(cost, unit string) string {
	if cost == "" {
		return ""
	}
	if unit == "" {
		unit = "USD"
	}
	return cost + " " + unit
}
