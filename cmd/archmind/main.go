// Package main is the entry point for the archmind CLI.
//
// Usage:
//
//	archmind [flags] <command> [subcommand] [args]
//
// Commands:
//
//	serve      - Run the design editor API server
//	chat       - One-shot AI design chat from the terminal
//	sample     - Emit the bundled sample design
//	arrange    - Auto-arrange a design file
//	export     - Export a design (bom, doc, parts)
//	classify   - Classify a chat message's intent
//	config     - Configuration management (contexts)
//	version    - Show version information
package main

import (
	"fmt"
	"os"

	"github.com/archmind/archmind/cmd/archmind/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
