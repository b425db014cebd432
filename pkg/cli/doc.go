// Package cli provides common CLI utilities for the archmind command-line
// tool.
//
// This package includes:
//   - Configuration management (contexts for AI providers)
//   - Output formatting (JSON, YAML, table)
//   - Request file loading (YAML/JSON)
//   - jq-style filtering of structured output
//
// Configuration is stored in ~/.archmind/ directory, supporting multiple
// contexts similar to kubectl.
//
// Example usage:
//
//	// Load the tool configuration
//	cfg, err := cli.LoadConfig()
//
//	// Resolve credentials
//	ctx, err := cfg.ResolveContext("")
//
//	// Output result
//	cli.Output(result, cli.OutputOptions{
//	    Format: cli.FormatJSON,
//	    File:   outputPath,
//	})
package cli
