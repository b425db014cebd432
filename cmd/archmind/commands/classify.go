package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/archmind/archmind/pkg/aisync"
)

var classifyHasDesign bool

var classifyCmd = &cobra.Command{
	Use:   "classify <message>",
	Short: "Classify a chat message's intent",
	Long: `Run the offline keyword classifier over a message and print the
intent the chat pipeline would dispatch it to. Useful for debugging why
a message generated a design instead of advice.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		message := strings.Join(args, " ")
		intent := aisync.ClassifyIntent(message, classifyHasDesign)
		fmt.Println(intent)
	},
}

func init() {
	classifyCmd.Flags().BoolVar(&classifyHasDesign, "has-design", false, "classify as if a design is already open")
	rootCmd.AddCommand(classifyCmd)
}
