package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/archmind/archmind/pkg/aisync"
	"github.com/archmind/archmind/pkg/cli"
	"github.com/archmind/archmind/pkg/design"
	"github.com/archmind/archmind/pkg/design/codec"
)

var (
	chatDesignFile string
	chatCategory   string
	chatOutput     string
)

var chatCmd = &cobra.Command{
	Use:   "chat <message>",
	Short: "One-shot AI design chat from the terminal",
	Long: `Send one message through the design-sync pipeline. Advisory
messages print the assistant's answer; design-generating messages write
the resulting design document.

With --design, the message is interpreted against an existing design
file (edits keep part ids stable).`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		message := strings.Join(args, " ")

		gen, err := newGenerator(cmd.Context())
		if err != nil {
			return err
		}

		ws := design.NewWorkspace()
		if chatDesignFile != "" {
			f, err := os.Open(chatDesignFile)
			if err != nil {
				return err
			}
			doc, err := codec.DecodeDocument(f)
			f.Close()
			if err != nil {
				return err
			}
			ws.Load(doc.Parts, doc.Connections, doc.CustomLinkTypes, doc.CustomComponents)
		}

		svc := &aisync.Service{
			Gen:               gen,
			IsBuiltinLinkType: ws.Registry.IsBuiltin,
			ColorFor:          ws.Catalog.ColorFor,
		}
		resp, err := svc.Chat(cmd.Context(), aisync.ChatRequest{
			Message:     message,
			Category:    chatCategory,
			Parts:       ws.Graph.Parts(),
			Connections: ws.Graph.Connections(),
		})
		if err != nil {
			return err
		}

		fmt.Println(resp.Response)
		if resp.DesignData == nil {
			return nil
		}

		ws.ApplySync(resp.DesignData.Parts, resp.DesignData.Connections, resp.DesignData.CustomLinkTypes)
		out := chatOutput
		if out == "" {
			out = codec.DefaultFilename
		}
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := codec.EncodeDocument(f, codec.FromWorkspace(ws)); err != nil {
			return err
		}
		cli.PrintSuccess("Design written to %s (%d parts, %d connections)",
			out, ws.Graph.PartCount(), ws.Graph.ConnectionCount())
		return nil
	},
}

func init() {
	chatCmd.Flags().StringVarP(&chatDesignFile, "design", "d", "", "existing design file to edit or discuss")
	chatCmd.Flags().StringVar(&chatCategory, "category", "", "force a category (analysis, suggestion, troubleshooting, designGeneration)")
	chatCmd.Flags().StringVarP(&chatOutput, "output", "o", "", "output file for generated designs")
	rootCmd.AddCommand(chatCmd)
}
