package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/iksnae/exoquery/internal"
	"github.com/iksnae/exoquery/internal/export"
	"github.com/iksnae/exoquery/internal/render"
	"github.com/spf13/cobra"
)

const chatHelp = `Commands:
  /clear          Start over (the backend forgets the conversation)
  /sql <n>        Show or hide the SQL of result n
  /example <n>    Ask example question n
  /export <path>  Save the transcript (.json, .jsonl, .yaml, .md, .db)
  /help           Show this help
  /quit           Leave`

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive question session",
	Long: `Ask questions one after another in a single session, so follow-up
questions can refer to earlier answers.

` + chatHelp,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		renderer, err := newRenderer()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		r := &repl{
			transcript: internal.NewTranscript(cfg.NewClient()),
			renderer:   renderer,
			in:         cmd.InOrStdin(),
			out:        cmd.OutOrStdout(),
			status:     cmd.ErrOrStderr(),
		}
		defer r.transcript.Close()
		return r.run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

// repl drives a transcript from line input. Disclosure state lives here,
// next to the view, and never in the transcript.
type repl struct {
	transcript *internal.Transcript
	renderer   *render.Renderer
	open       render.Disclosures

	in     io.Reader
	out    io.Writer
	status io.Writer
}

func (r *repl) run(ctx context.Context) error {
	fmt.Fprintln(r.out, r.renderer.Welcome())
	fmt.Fprintln(r.out)
	render.PrintInfo(r.out, fmt.Sprintf("Session %s. Type a question, or /help for commands.", r.transcript.SessionID()))

	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, "\n› ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			if quit := r.command(ctx, line); quit {
				return nil
			}
			continue
		}
		r.ask(ctx, line)
		if ctx.Err() != nil {
			return nil
		}
	}
	fmt.Fprintln(r.out)
	return scanner.Err()
}

// ask submits question and prints the entries it produced
func (r *repl) ask(ctx context.Context, question string) {
	before := r.transcript.Len()

	err := render.ShowProgress(r.status, render.LoadingMessage, func() error {
		return r.transcript.Submit(ctx, question)
	})

	switch {
	case errors.Is(err, internal.ErrAwaiting):
		render.PrintWarning(r.out, "Still waiting for the previous answer")
		return
	case err != nil:
		render.PrintWarning(r.out, err.Error())
		return
	}

	// The question itself is at before; only its outcome is new to the reader.
	messages := r.transcript.Messages()
	for i := before + 1; i < len(messages); i++ {
		fmt.Fprintln(r.out, r.renderer.Entry(i+1, messages[i], &r.open))
	}
}

// command runs a slash command and reports whether the session should end
func (r *repl) command(ctx context.Context, line string) bool {
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "/quit", "/exit":
		return true

	case "/help":
		fmt.Fprintln(r.out, chatHelp)

	case "/clear":
		r.transcript.Clear(ctx)
		r.open.Reset()
		render.PrintSuccess(r.out, "Conversation cleared")
		fmt.Fprintln(r.out, r.renderer.Welcome())

	case "/sql":
		r.toggleSQL(arg)

	case "/example":
		n, err := strconv.Atoi(arg)
		question, ok := internal.ExampleQuestion(n)
		if err != nil || !ok {
			render.PrintWarning(r.out, fmt.Sprintf("Pick an example between 1 and %d", len(internal.ExampleQuestions)))
			return false
		}
		fmt.Fprintf(r.out, "› %s\n", question)
		r.ask(ctx, question)

	case "/export":
		if arg == "" {
			render.PrintWarning(r.out, "Usage: /export <path>")
			return false
		}
		session := snapshot(r.transcript)
		format, err := export.WriteFile(session, arg)
		if err != nil {
			render.PrintError(r.out, err.Error())
			return false
		}
		render.PrintSuccess(r.out, fmt.Sprintf("Exported %d entries to %s (%s)", len(session.Messages), arg, format))

	default:
		render.PrintWarning(r.out, fmt.Sprintf("Unknown command %s (try /help)", name))
	}
	return false
}

func (r *repl) toggleSQL(arg string) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		render.PrintWarning(r.out, "Usage: /sql <n>")
		return
	}

	messages := r.transcript.Messages()
	if n < 1 || n > len(messages) || messages[n-1].Kind != internal.MessageResult {
		render.PrintWarning(r.out, fmt.Sprintf("Entry %d is not a result", n))
		return
	}

	r.open.Toggle(n)
	fmt.Fprintln(r.out, r.renderer.Entry(n, messages[n-1], &r.open))
}
