package render

import (
	"fmt"
	"strings"

	"github.com/iksnae/exoquery/internal"
)

const (
	// LoadingMessage accompanies the spinner while a question is in flight
	LoadingMessage = "Querying the cosmos..."

	showSQLLabel = "▸ View SQL Query"
	hideSQLLabel = "▾ Hide SQL Query"
)

// Card renders one result. showSQL expands the query text disclosure.
func (r *Renderer) Card(m DisplayModel, showSQL bool) string {
	var b strings.Builder

	badges := []string{}
	if m.Cached {
		badges = append(badges, cachedBadgeStyle.Render("⚡ Cached"))
	}
	badges = append(badges, rowsBadgeStyle.Render(fmt.Sprintf("%d rows", m.RowCount)))

	b.WriteString(titleStyle.Render(m.Title))
	b.WriteString("  ")
	b.WriteString(strings.Join(badges, "  "))
	if m.Description != "" {
		b.WriteString("\n")
		b.WriteString(descriptionStyle.Render(m.Description))
	}

	b.WriteString("\n\n")
	b.WriteString(r.Plan(m.Plan))
	b.WriteString("\n\n")

	if showSQL {
		b.WriteString(mutedStyle.Render(hideSQLLabel))
		b.WriteString("\n")
		b.WriteString(sqlStyle.Render(m.SQL))
	} else {
		b.WriteString(mutedStyle.Render(showSQLLabel))
	}

	return cardStyle.Render(b.String())
}

// Result presents and renders a result
func (r *Renderer) Result(res *internal.Result, showSQL bool) string {
	return r.Card(r.presenter.Present(res), showSQL)
}

// Transcript renders a session snapshot. Entries are numbered from 1 so
// result cards can be addressed when toggling their disclosure.
func (r *Renderer) Transcript(s *internal.Session, open *Disclosures) string {
	if len(s.Messages) == 0 && !s.Loading {
		return r.Welcome()
	}

	blocks := make([]string, 0, len(s.Messages)+1)
	for i, msg := range s.Messages {
		blocks = append(blocks, r.Entry(i+1, msg, open))
	}
	if s.Loading {
		blocks = append(blocks, progressStyle.Render("⠋")+" "+LoadingMessage)
	}
	return strings.Join(blocks, "\n\n")
}

// Entry renders transcript entry n (1-based)
func (r *Renderer) Entry(n int, msg internal.Message, open *Disclosures) string {
	label := mutedStyle.Render(fmt.Sprintf("[%d]", n))
	switch msg.Kind {
	case internal.MessageUser:
		return label + " " + userMessageStyle.Render("› "+msg.Text)
	case internal.MessageResult:
		return label + "\n" + r.Result(msg.Result, open.IsOpen(n))
	default:
		return label + "\n" + errorBoxStyle.Render(msg.Text)
	}
}

// Welcome is shown while the transcript is empty
func (r *Renderer) Welcome() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Explore the Cosmos"))
	b.WriteString("\n")
	b.WriteString(descriptionStyle.Render("Ask questions about exoplanets in natural language."))
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("Try an example:"))
	for i, q := range internal.ExampleQuestions {
		fmt.Fprintf(&b, "\n  %d. %s", i+1, q)
	}
	return b.String()
}
