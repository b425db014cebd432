package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/archmind/archmind/pkg/cli"
)

var (
	configProvider string
	configAPIKey   string
	configModel    string
	configBaseURL  string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management (contexts)",
}

var configAddContextCmd = &cobra.Command{
	Use:   "add-context <name>",
	Short: "Add a provider context",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := GetConfig()
		if err != nil {
			return err
		}
		if err := cfg.AddContext(args[0], &cli.Context{
			Provider: configProvider,
			APIKey:   configAPIKey,
			Model:    configModel,
			BaseURL:  configBaseURL,
		}); err != nil {
			return err
		}
		if cfg.CurrentContext == "" {
			if err := cfg.UseContext(args[0]); err != nil {
				return err
			}
		}
		cli.PrintSuccess("Context %q added", args[0])
		return nil
	},
}

var configUseContextCmd = &cobra.Command{
	Use:   "use-context <name>",
	Short: "Switch the current context",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := GetConfig()
		if err != nil {
			return err
		}
		if err := cfg.UseContext(args[0]); err != nil {
			return err
		}
		cli.PrintSuccess("Switched to context %q", args[0])
		return nil
	},
}

var configDeleteContextCmd = &cobra.Command{
	Use:   "delete-context <name>",
	Short: "Delete a context",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := GetConfig()
		if err != nil {
			return err
		}
		if err := cfg.DeleteContext(args[0]); err != nil {
			return err
		}
		cli.PrintSuccess("Context %q deleted", args[0])
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured contexts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := GetConfig()
		if err != nil {
			return err
		}
		tbl := cli.NewTable("NAME", "PROVIDER", "MODEL", "API KEY")
		for _, name := range cfg.ListContexts() {
			ctx := cfg.Contexts[name]
			marker := name
			if name == cfg.CurrentContext {
				marker = name + " *"
			}
			tbl.AddRow(marker, ctx.Provider, ctx.Model, cli.MaskAPIKey(ctx.APIKey))
		}
		fmt.Print(tbl.Render())
		return nil
	},
}

func init() {
	configAddContextCmd.Flags().StringVar(&configProvider, "provider", "gemini", "AI provider (gemini or openai)")
	configAddContextCmd.Flags().StringVar(&configAPIKey, "api-key", "", "provider API key")
	configAddContextCmd.Flags().StringVar(&configModel, "model", "", "model override")
	configAddContextCmd.Flags().StringVar(&configBaseURL, "base-url", "", "base URL for OpenAI-compatible endpoints")
	configCmd.AddCommand(configAddContextCmd)
	configCmd.AddCommand(configUseContextCmd)
	configCmd.AddCommand(configDeleteContextCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}
