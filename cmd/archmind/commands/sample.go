package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/archmind/archmind/pkg/cli"
	"github.com/archmind/archmind/pkg/design"
	"github.com/archmind/archmind/pkg/design/codec"
)

var sampleOutput string

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Emit the bundled sample design",
	Long:  `Write the e-commerce sample design document to a file or stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ws := design.NewWorkspace()
		ws.LoadSample()
		doc := codec.FromWorkspace(ws)

		if sampleOutput == "" || sampleOutput == "-" {
			return codec.EncodeDocument(os.Stdout, doc)
		}
		f, err := os.Create(sampleOutput)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := codec.EncodeDocument(f, doc); err != nil {
			return err
		}
		cli.PrintSuccess("Sample design written to %s", sampleOutput)
		return nil
	},
}

func init() {
	sampleCmd.Flags().StringVarP(&sampleOutput, "output", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(sampleCmd)
}
