package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/archmind/archmind/pkg/aisync"
	"github.com/archmind/archmind/pkg/cli"
)

var (
	// Global flags
	verbose     bool
	contextName string

	// Global configuration (loaded at init time)
	globalConfig *cli.Config
)

var rootCmd = &cobra.Command{
	Use:   "archmind",
	Short: "Visual architecture designs from the command line",
	Long: `archmind - design-graph engine behind the visual architecture editor.

The serve command hosts the editor API; the rest work on design files
offline or talk to the AI backend directly.

Configuration is stored in ~/.archmind/config.yaml as named contexts,
each holding an AI provider (gemini or openai) and its credentials.

Examples:
  # Configure a provider context
  archmind config add-context dev --provider gemini --api-key YOUR_KEY
  archmind config use-context dev

  # Run the editor API server
  archmind serve --listen :8080

  # Generate a design from the terminal
  archmind chat "design a ride sharing platform" -o design.json

  # Export a bill of materials from a design file
  archmind export bom design.json`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&contextName, "context", "c", "", "configuration context to use")
}

// configLoadErr stores the error from cli.LoadConfig() for deferred
// reporting, so commands that never touch config still run.
var configLoadErr error

func initConfig() {
	cfg, err := cli.LoadConfig()
	if err != nil {
		configLoadErr = err
		return
	}
	globalConfig = cfg
}

// GetConfig returns the global configuration.
func GetConfig() (*cli.Config, error) {
	if globalConfig == nil {
		if configLoadErr != nil {
			return nil, fmt.Errorf("config not available: %w", configLoadErr)
		}
		cfg, err := cli.LoadConfig()
		if err != nil {
			return nil, fmt.Errorf("config not available: %w", err)
		}
		globalConfig = cfg
	}
	return globalConfig, nil
}

// IsVerbose returns whether verbose mode is enabled.
func IsVerbose() bool {
	return verbose
}

// newGenerator builds the AI backend from the active context, with
// environment variables taking precedence for containerized deployments.
func newGenerator(ctx context.Context) (aisync.Generator, error) {
	provider := os.Getenv("ARCHMIND_PROVIDER")
	apiKey := ""
	model := os.Getenv("ARCHMIND_MODEL")
	baseURL := os.Getenv("ARCHMIND_BASE_URL")

	if cfg, err := GetConfig(); err == nil {
		if cc, err := cfg.ResolveContext(contextName); err == nil {
			if provider == "" {
				provider = cc.Provider
			}
			apiKey = cc.APIKey
			if model == "" {
				model = cc.Model
			}
			if baseURL == "" {
				baseURL = cc.BaseURL
			}
		} else if contextName != "" {
			return nil, err
		}
	}

	switch provider {
	case "openai":
		if key := os.Getenv("OPENAI_API_KEY"); key != "" {
			apiKey = key
		}
		if apiKey == "" {
			return nil, fmt.Errorf("no OpenAI API key configured (set OPENAI_API_KEY or run 'archmind config add-context')")
		}
		return aisync.NewOpenAIGenerator(apiKey, model, baseURL), nil

	case "gemini", "":
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			apiKey = key
		}
		if apiKey == "" {
			return nil, fmt.Errorf("no Gemini API key configured (set GEMINI_API_KEY or run 'archmind config add-context')")
		}
		return aisync.NewGeminiGenerator(ctx, apiKey, model)

	default:
		return nil, fmt.Errorf("unknown provider %q (want gemini or openai)", provider)
	}
}
