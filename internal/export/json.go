package export

import (
	"encoding/json"
	"io"

	"github.com/iksnae/exoquery/internal"
)

// JSONExporter writes the whole transcript as one indented document.
// HTML escaping is off so SQL comparisons stay readable.
type JSONExporter struct{}

// Export writes session as JSON
func (e *JSONExporter) Export(session *internal.Session, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	return enc.Encode(counted(session))
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}

// counted returns a shallow copy of session whose message count matches its log
func counted(session *internal.Session) *internal.Session {
	out := *session
	out.Metadata.MessageCount = len(session.Messages)
	return &out
}
