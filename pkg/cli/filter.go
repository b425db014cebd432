package cli

import (
	"encoding/json"
	"fmt"

	"github.com/itchyny/gojq"
)

// ApplyJQ runs a jq expression over a value and returns the results. The
// value is round-tripped through JSON so struct output filters the same way
// its serialized form reads. A single result is returned bare; multiple
// results come back as a slice.
func ApplyJQ(expr string, v any) (any, error) {
	query, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid jq expression %q: %w", expr, err)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize value for filtering: %w", err)
	}
	var plain any
	if err := json.Unmarshal(data, &plain); err != nil {
		return nil, fmt.Errorf("failed to serialize value for filtering: %w", err)
	}

	var results []any
	iter := query.Run(plain)
	for {
		out, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := out.(error); ok {
			return nil, fmt.Errorf("jq evaluation failed: %w", err)
		}
		results = append(results, out)
	}

	switch len(results) {
	case 0:
		return nil, nil
	case 1:
		return results[0], nil
	default:
		return results, nil
	}
}
