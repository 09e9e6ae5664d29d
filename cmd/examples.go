package cmd

import (
	"fmt"

	"github.com/iksnae/exoquery/internal"
	"github.com/spf13/cobra"
)

// examplesCmd represents the examples command
var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "List example questions",
	Long:  `List the example questions. In chat, run one with /example <n>.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for i, q := range internal.ExampleQuestions {
			if _, err := fmt.Fprintf(out, "%d. %s\n", i+1, q); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(examplesCmd)
}
