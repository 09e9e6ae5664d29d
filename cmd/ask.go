package cmd

import (
	"fmt"
	"strings"

	"github.com/iksnae/exoquery/internal"
	"github.com/iksnae/exoquery/internal/export"
	"github.com/iksnae/exoquery/internal/render"
	"github.com/spf13/cobra"
)

var (
	askFormat  string
	askShowSQL bool
	askSession string
)

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask <question...>",
	Short: "Ask a single question and print the answer",
	Long: `Send one question to the backend and render the answer.

A backend failure is shown as an error entry and is not a command failure.
Use --format to print the transcript as json, jsonl, yaml or md instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var exporter export.Exporter
		if askFormat != "" {
			e, err := export.NewExporter(askFormat)
			if err != nil {
				return err
			}
			exporter = e
		}

		renderer, err := newRenderer()
		if err != nil {
			return err
		}

		var opts []internal.TranscriptOption
		if askSession != "" {
			opts = append(opts, internal.WithIDGenerator(internal.StaticID(askSession)))
		}
		transcript := internal.NewTranscript(cfg.NewClient(), opts...)
		defer transcript.Close()

		question := strings.Join(args, " ")
		err = render.ShowProgress(cmd.ErrOrStderr(), render.LoadingMessage, func() error {
			return transcript.Submit(cmd.Context(), question)
		})
		if err != nil {
			return err
		}
		internal.LogInfo("session %s", transcript.SessionID())

		session := snapshot(transcript)
		out := cmd.OutOrStdout()
		if exporter != nil {
			return exporter.Export(session, out)
		}

		var open render.Disclosures
		if askShowSQL {
			for i, msg := range session.Messages {
				if msg.Kind == internal.MessageResult {
					open.Toggle(i + 1)
				}
			}
		}
		_, err = fmt.Fprintln(out, renderer.Transcript(session, &open))
		return err
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
	askCmd.Flags().StringVarP(&askFormat, "format", "f", "", "Output format instead of rendering: json, jsonl, yaml, md")
	askCmd.Flags().BoolVar(&askShowSQL, "sql", false, "Show the generated SQL")
	askCmd.Flags().StringVar(&askSession, "session", "", "Continue an existing session id instead of starting a new one")
}
