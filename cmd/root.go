package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/exoquery/internal"
	"github.com/iksnae/exoquery/internal/render"
	"github.com/iksnae/exoquery/internal/viz"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	cfgFile string
	version string = "dev"
	commit  string = "unknown"
	date    string = "unknown"

	// cfg is loaded before any subcommand runs
	cfg *internal.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "exoquery",
	Short: "Ask questions about exoplanets in natural language",
	Long: `A terminal front-end for the exoplanet query service.

Questions are sent to the backend, which turns them into SQL over the
confirmed-planets catalog and answers with rows plus a visualization hint.
Answers are rendered as KPIs, bar, line and scatter charts, or tables.

Quick Start:
  exoquery ask "How many planets have been discovered?"
  exoquery chat                          # Interactive session
  exoquery examples                      # Questions to try

Configuration is read from $HOME/.exoquery.yaml (or --config), then
EXOQUERY_* environment variables, then flags.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		internal.SetVerbose(verbose)

		loaded, err := internal.LoadConfig(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}
		cfg = loaded
		if cfg.NoColor {
			render.DisableColor()
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	flags.StringVar(&cfgFile, "config", "", "Config file (default $HOME/.exoquery.yaml)")
	flags.String("backend", "", "Backend base URL (default "+internal.DefaultBackendURL+")")
	flags.Duration("timeout", 0, fmt.Sprintf("Request timeout (default %s)", internal.DefaultTimeout))
	flags.String("locale", "", "Locale for number formatting (default en)")
	flags.Bool("no-color", false, "Disable colored output")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// newRenderer builds a renderer for the configured locale
func newRenderer() (*render.Renderer, error) {
	tag, err := cfg.LanguageTag()
	if err != nil {
		return nil, err
	}
	return render.NewRenderer(viz.NewFormatter(tag)), nil
}

// snapshot captures a transcript for rendering or export
func snapshot(t *internal.Transcript) *internal.Session {
	s := t.Snapshot()
	s.Metadata.BackendURL = cfg.BackendURL
	return s
}
