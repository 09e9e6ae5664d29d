package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/iksnae/exoquery/internal"
)

func TestJSONLExporter_Export(t *testing.T) {
	tests := []struct {
		name    string
		session *internal.Session
		want    []string
	}{
		{
			name:    "empty session",
			session: internal.CreateTestSessionWithMessages("test1", nil),
			want:    []string{},
		},
		{
			name:    "session with messages",
			session: internal.CreateTestSession("test2"),
			want: []string{
				`"kind":"user"`,
				`"kind":"result"`,
				`"kind":"error"`,
				`"text":"parse error"`,
				`"session":"test2"`,
			},
		},
		{
			name: "session without timestamp",
			session: internal.CreateTestSessionWithMessages("test3", []internal.Message{
				{Kind: internal.MessageUser, Text: "Hello"},
			}),
			want: []string{
				`"kind":"user"`,
				`"text":"Hello"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := (&JSONLExporter{}).Export(tt.session, &buf); err != nil {
				t.Fatalf("JSONLExporter.Export() error = %v", err)
			}

			output := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(output, want) {
					t.Errorf("Output should contain %q, got: %s", want, output)
				}
			}

			lines := strings.Split(strings.TrimSpace(output), "\n")
			if len(tt.session.Messages) == 0 {
				if output != "" {
					t.Errorf("empty session should produce no output, got %q", output)
				}
				return
			}
			if len(lines) != len(tt.session.Messages) {
				t.Fatalf("got %d lines, want %d", len(lines), len(tt.session.Messages))
			}

			for i, line := range lines {
				var entry map[string]any
				if err := json.Unmarshal([]byte(line), &entry); err != nil {
					t.Errorf("Line %d is not valid JSON: %v\nLine: %s", i+1, err, line)
					continue
				}
				if entry["index"] != float64(i+1) {
					t.Errorf("Line %d index = %v, want %d", i+1, entry["index"], i+1)
				}
			}
		})
	}
}

func TestJSONLExporter_NoTimestampField(t *testing.T) {
	session := internal.CreateTestSessionWithMessages("test", []internal.Message{
		{Kind: internal.MessageUser, Text: "Hello"},
	})

	var buf bytes.Buffer
	if err := (&JSONLExporter{}).Export(session, &buf); err != nil {
		t.Fatalf("JSONLExporter.Export() error = %v", err)
	}
	if strings.Contains(buf.String(), "timestamp") {
		t.Errorf("Output should omit an empty timestamp, got: %s", buf.String())
	}
}

func TestJSONLExporter_Extension(t *testing.T) {
	exporter := &JSONLExporter{}
	if got := exporter.Extension(); got != "jsonl" {
		t.Errorf("JSONLExporter.Extension() = %v, want jsonl", got)
	}
}
