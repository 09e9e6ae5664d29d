package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/exoquery/internal"
	"github.com/spf13/cobra"
)

// healthyStatus is what GET /health reports when the backend is ready
const healthyStatus = "healthy"

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check that the query backend is configured and reachable",
	Long: `Check the health of exoquery by verifying:
  • Configuration (file, backend URL, timeout, locale)
  • Backend reachability
  • Backend status reported by /health

This command is useful for debugging connection issues.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, sectionStyle.Render("🔭 Exoquery Health Check"))
		fmt.Fprintln(out)

		// Step 1: Configuration
		fmt.Fprintln(out, infoStyle.Render("Step 1: Loading configuration..."))
		if cfg.File != "" {
			fmt.Fprintln(out, successStyle.Render("✅ Config file loaded"))
			fmt.Fprintf(out, "   File: %s\n", cfg.File)
		} else {
			fmt.Fprintln(out, successStyle.Render("✅ Using defaults (no config file)"))
		}
		if verbose {
			fmt.Fprintf(out, "   Backend: %s\n", cfg.BackendURL)
			fmt.Fprintf(out, "   Timeout: %s\n", cfg.Timeout)
			fmt.Fprintf(out, "   Locale: %s\n", cfg.Locale)
		}
		fmt.Fprintln(out)

		// Step 2: Backend
		fmt.Fprintln(out, infoStyle.Render("Step 2: Contacting backend..."))
		client := cfg.NewClient()
		status, err := client.Health(cmd.Context())
		if err != nil {
			fmt.Fprintln(out, errorStyle.Render("❌ Backend unreachable"))
			fmt.Fprintf(out, "   %s\n", internal.UserMessage(err))
			if verbose {
				fmt.Fprintf(out, "   Error details: %v\n", err)
			}
			return errors.New("health check failed")
		}
		fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("✅ Backend reachable at %s", client.BaseURL())))
		fmt.Fprintln(out)

		// Step 3: Status
		fmt.Fprintln(out, infoStyle.Render("Step 3: Checking backend status..."))
		healthy := status == healthyStatus
		if healthy {
			fmt.Fprintln(out, successStyle.Render("✅ Backend reports "+status))
		} else {
			fmt.Fprintln(out, warningStyle.Render(fmt.Sprintf("⚠️  Backend reports %q", status)))
		}
		fmt.Fprintln(out)

		// Summary
		fmt.Fprintln(out, sectionStyle.Render("📊 Summary"))
		fmt.Fprintln(out)
		if healthy {
			fmt.Fprintln(out, successStyle.Render("✅ exoquery is ready"))
			return nil
		}
		fmt.Fprintln(out, warningStyle.Render("⚠️  Backend is up but not reporting healthy; questions may fail"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
}
