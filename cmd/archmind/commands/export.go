package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/archmind/archmind/pkg/cli"
	"github.com/archmind/archmind/pkg/design"
	"github.com/archmind/archmind/pkg/design/codec"
)

var (
	exportOutput string
	exportJQ     string
	exportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a design (bom, doc, parts)",
}

var exportBOMCmd = &cobra.Command{
	Use:   "bom <design.json>",
	Short: "Export a bill of materials as CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDesign(args[0])
		if err != nil {
			return err
		}
		w, closeFn, err := outputWriter(exportOutput)
		if err != nil {
			return err
		}
		defer closeFn()
		if err := codec.WriteBOM(w, doc.Parts); err != nil {
			return err
		}
		for unit, total := range codec.TotalCost(doc.Parts) {
			cli.PrintInfo("Total cost: %.2f %s", total, unit)
		}
		return nil
	},
}

var exportDocCmd = &cobra.Command{
	Use:   "doc <design.json>",
	Short: "Export an architecture document as markdown",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDesign(args[0])
		if err != nil {
			return err
		}
		registry := design.NewRegistry(design.BuiltinLinkTypes())
		registry.SetCustoms(doc.CustomLinkTypes)

		w, closeFn, err := outputWriter(exportOutput)
		if err != nil {
			return err
		}
		defer closeFn()
		return codec.WriteArchitectureDoc(w, doc.Parts, doc.Connections, registry)
	},
}

var exportPartsCmd = &cobra.Command{
	Use:   "parts <design.json>",
	Short: "List a design's parts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDesign(args[0])
		if err != nil {
			return err
		}

		if exportJQ != "" {
			filtered, err := cli.ApplyJQ(exportJQ, doc)
			if err != nil {
				return err
			}
			// Filtered output is arbitrarily shaped; the table renderer
			// does not apply.
			format := cli.OutputFormat(exportFormat)
			if format == cli.FormatTable {
				format = cli.FormatYAML
			}
			return cli.Output(filtered, cli.OutputOptions{Format: format, File: exportOutput})
		}

		if cli.OutputFormat(exportFormat) == cli.FormatTable {
			tbl := cli.NewTable("ID", "NAME", "TYPE", "TECHNOLOGY", "COST")
			for _, p := range doc.Parts {
				tbl.AddRow(fmt.Sprintf("%d", p.ID), p.Name, p.Type, p.Technology, cli.FormatCost(p.Cost, p.CostUnit))
			}
			fmt.Print(tbl.Render())
			return nil
		}
		return cli.Output(doc.Parts, cli.OutputOptions{Format: cli.OutputFormat(exportFormat), File: exportOutput})
	},
}

func loadDesign(path string) (codec.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return codec.Document{}, err
	}
	defer f.Close()
	return codec.DecodeDocument(f)
}

func outputWriter(path string) (*os.File, func(), error) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func init() {
	exportCmd.PersistentFlags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
	exportPartsCmd.Flags().StringVar(&exportJQ, "jq", "", "jq expression to filter the document")
	exportPartsCmd.Flags().StringVarP(&exportFormat, "format", "f", "table", "output format (table, yaml, json)")
	exportCmd.AddCommand(exportBOMCmd)
	exportCmd.AddCommand(exportDocCmd)
	exportCmd.AddCommand(exportPartsCmd)
	rootCmd.AddCommand(exportCmd)
}
