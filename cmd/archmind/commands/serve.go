package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/archmind/archmind/pkg/aisync"
	"github.com/archmind/archmind/pkg/design"
	"github.com/archmind/archmind/pkg/server"
)

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the design editor API server",
	Long: `Run the HTTP API that hosts design sessions for the editor front
end: AI chat, design CRUD, auto-layout, undo/redo, exports, and a
WebSocket event feed on /api/events.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		gen, err := newGenerator(cmd.Context())
		if err != nil {
			return err
		}

		listen := serveListen
		if listen == "" {
			if cfg, cerr := GetConfig(); cerr == nil && cfg.Listen != "" {
				listen = cfg.Listen
			} else {
				listen = ":8080"
			}
		}

		// A throwaway workspace supplies the built-in registry and catalog
		// the AI pipeline validates against; sessions get their own.
		ref := design.NewWorkspace()
		svc := &aisync.Service{
			Gen:               gen,
			IsBuiltinLinkType: ref.Registry.IsBuiltin,
			ColorFor:          ref.Catalog.ColorFor,
		}

		log := slog.New(slog.NewTextHandler(os.Stderr, nil))
		return server.New(svc, log).ListenAndServe(listen)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveListen, "listen", "l", "", "listen address (default :8080)")
	rootCmd.AddCommand(serveCmd)
}
