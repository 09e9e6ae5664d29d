package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iksnae/exoquery/internal"
)

// JSONLExporter exports sessions in JSONL format (one entry per line)
type JSONLExporter struct{}

type jsonlEntry struct {
	Session string `json:"session"`
	Index   int    `json:"index"`
	internal.Message
}

// Export exports a session to JSONL format
func (e *JSONLExporter) Export(session *internal.Session, w io.Writer) error {
	enc := json.NewEncoder(w)

	for i, msg := range session.Messages {
		entry := jsonlEntry{Session: session.ID, Index: i + 1, Message: msg}
		if err := enc.Encode(entry); err != nil {
			return fmt.Errorf("failed to encode message %d: %w", i+1, err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
