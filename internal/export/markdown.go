package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/iksnae/exoquery/internal"
	"github.com/iksnae/exoquery/internal/viz"
)

// MarkdownExporter exports sessions in Markdown format
type MarkdownExporter struct{}

// Export exports a session to Markdown format
func (e *MarkdownExporter) Export(session *internal.Session, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# Session %s\n\n", session.ID)

	if session.Metadata.BackendURL != "" {
		_, _ = fmt.Fprintf(w, "**Backend:** %s  \n", session.Metadata.BackendURL)
	}
	if session.Metadata.CreatedAt != "" {
		_, _ = fmt.Fprintf(w, "**Started:** %s  \n", session.Metadata.CreatedAt)
	}
	_, _ = fmt.Fprintf(w, "**Messages:** %d\n\n", len(session.Messages))

	_, _ = fmt.Fprintf(w, "---\n\n")

	for i, msg := range session.Messages {
		timestamp := ""
		if msg.Timestamp != "" {
			timestamp = fmt.Sprintf(" (%s)", msg.Timestamp)
		}

		switch msg.Kind {
		case internal.MessageUser:
			_, _ = fmt.Fprintf(w, "**Question:**%s\n\n%s\n\n", timestamp, escapeMarkdown(msg.Text))
		case internal.MessageError:
			_, _ = fmt.Fprintf(w, "**Error:**%s\n\n> %s\n\n", timestamp, escapeMarkdown(msg.Text))
		case internal.MessageResult:
			writeResult(w, msg.Result, timestamp)
		}

		if i < len(session.Messages)-1 {
			_, _ = fmt.Fprintf(w, "---\n\n")
		}
	}

	return nil
}

func writeResult(w io.Writer, res *internal.Result, timestamp string) {
	if res == nil {
		return
	}

	title := "Query Results"
	spec := res.Visualization
	if spec != nil && spec.Title != "" {
		title = spec.Title
	}
	_, _ = fmt.Fprintf(w, "### %s%s\n\n", escapeMarkdown(title), timestamp)
	if spec != nil && spec.Description != "" {
		_, _ = fmt.Fprintf(w, "%s\n\n", escapeMarkdown(spec.Description))
	}

	cached := ""
	if res.Cached {
		cached = " (cached)"
	}
	_, _ = fmt.Fprintf(w, "**Rows:** %d%s\n\n", res.RowCount, cached)

	if spec != nil && len(spec.Rows) > 0 {
		// Every kind is exported as its underlying rows.
		plan := viz.Dispatch(&viz.Spec{Kind: viz.KindTable, Rows: spec.Rows})
		writeTable(w, plan.Table)
	}

	if res.SQL != "" {
		_, _ = fmt.Fprintf(w, "```sql\n%s\n```\n\n", res.SQL)
	}
}

func writeTable(w io.Writer, t *viz.TablePlan) {
	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(escapeCells(t.Headers), " | "))
	rule := make([]string, len(t.Headers))
	for i := range rule {
		rule[i] = "---"
	}
	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(rule, " | "))
	for _, line := range t.Cells {
		_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(escapeCells(line), " | "))
	}
	if t.Truncated() {
		_, _ = fmt.Fprintf(w, "\n_Showing %d of %d rows_\n", len(t.Cells), t.Total)
	}
	_, _ = fmt.Fprintf(w, "\n")
}

func escapeCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.ReplaceAll(c, "|", "\\|")
	}
	return out
}

// escapeMarkdown escapes markdown special characters
func escapeMarkdown(text string) string {
	// Basic escaping - preserve code blocks
	lines := strings.Split(text, "\n")
	var result []string
	inCodeBlock := false

	for _, line := range lines {
		if strings.HasPrefix(line, "```") {
			inCodeBlock = !inCodeBlock
			result = append(result, line)
		} else if inCodeBlock {
			result = append(result, line)
		} else {
			line = strings.ReplaceAll(line, "**", "\\*\\*")
			line = strings.ReplaceAll(line, "__", "\\_\\_")
			result = append(result, line)
		}
	}

	return strings.Join(result, "\n")
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
