package internal

import "github.com/iksnae/exoquery/internal/viz"

// MessageKind tags a transcript entry
type MessageKind string

const (
	MessageUser   MessageKind = "user"
	MessageResult MessageKind = "result"
	MessageError  MessageKind = "error"
)

// Result is a successful answer from the backend
type Result struct {
	SQL           string    `json:"sql" yaml:"sql"`
	RowCount      int       `json:"row_count" yaml:"row_count"`
	Cached        bool      `json:"cached" yaml:"cached"`
	Visualization *viz.Spec `json:"visualization,omitempty" yaml:"visualization,omitempty"`
}

// Message is one transcript entry. Text is set for user and error entries,
// Result for result entries.
type Message struct {
	Kind      MessageKind `json:"kind" yaml:"kind"`
	Text      string      `json:"text,omitempty" yaml:"text,omitempty"`
	Result    *Result     `json:"result,omitempty" yaml:"result,omitempty"`
	Timestamp string      `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
}

// Session is a point-in-time snapshot of a transcript
type Session struct {
	ID       string    `json:"id" yaml:"id"`
	Messages []Message `json:"messages" yaml:"messages"`
	Loading  bool      `json:"loading" yaml:"loading"`
	Metadata Metadata  `json:"metadata" yaml:"metadata"`
}

// Metadata contains additional session information
type Metadata struct {
	CreatedAt    string `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	BackendURL   string `json:"backend_url,omitempty" yaml:"backend_url,omitempty"`
	MessageCount int    `json:"message_count" yaml:"message_count"`
}
