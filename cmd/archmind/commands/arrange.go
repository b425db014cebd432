package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/archmind/archmind/pkg/design"
	"github.com/archmind/archmind/pkg/design/codec"
)

var arrangeMode string

var arrangeCmd = &cobra.Command{
	Use:   "arrange <design.json>",
	Short: "Auto-arrange a design file",
	Long: `Reposition all parts of a design file with one of the layout
strategies (hierarchical, spatial, grid) and write the result back.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		doc, err := codec.DecodeDocument(f)
		f.Close()
		if err != nil {
			return err
		}
		if len(doc.Parts) == 0 {
			return fmt.Errorf("design has no parts to arrange")
		}

		mode := design.LayoutMode(arrangeMode)
		switch mode {
		case design.LayoutHierarchical, design.LayoutSpatial, design.LayoutGrid:
		default:
			return fmt.Errorf("unknown layout mode %q (want hierarchical, spatial, or grid)", arrangeMode)
		}

		doc.Parts = design.Arrange(doc.Parts, doc.Connections, mode)

		out, err := os.Create(path)
		if err != nil {
			return err
		}
		defer out.Close()
		return codec.EncodeDocument(out, doc)
	},
}

func init() {
	arrangeCmd.Flags().StringVarP(&arrangeMode, "mode", "m", "hierarchical", "layout mode (hierarchical, spatial, grid)")
	rootCmd.AddCommand(arrangeCmd)
}
