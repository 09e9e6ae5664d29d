package cmd

import (
	"fmt"

	"github.com/iksnae/exoquery/internal/render"
	"github.com/spf13/cobra"
)

// clearCmd represents the clear command
var clearCmd = &cobra.Command{
	Use:   "clear <session-id>",
	Short: "Ask the backend to forget a session's context",
	Long: `Ask the backend to drop the conversational context kept for a session.

This is best effort: the backend's answer is not checked and the command
always succeeds. Run with --verbose to see what happened.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.NewClient().Clear(cmd.Context(), args[0])
		render.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Requested clear for session %s", args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
}
