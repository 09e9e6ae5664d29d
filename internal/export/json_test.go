package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/iksnae/exoquery/internal"
	"github.com/iksnae/exoquery/internal/viz"
)

func TestJSONExporter_Export(t *testing.T) {
	tests := []struct {
		name    string
		session *internal.Session
	}{
		{name: "basic session", session: internal.CreateTestSession("test1")},
		{name: "empty session", session: internal.CreateTestSessionWithMessages("test2", nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := (&JSONExporter{}).Export(tt.session, &buf); err != nil {
				t.Fatalf("JSONExporter.Export() error = %v", err)
			}

			output := buf.String()
			var session internal.Session
			if err := json.Unmarshal([]byte(output), &session); err != nil {
				t.Fatalf("Output is not valid JSON: %v\nOutput: %s", err, output)
			}
			if session.ID != tt.session.ID {
				t.Errorf("session ID = %q, want %q", session.ID, tt.session.ID)
			}
			if len(session.Messages) != len(tt.session.Messages) {
				t.Errorf("got %d messages, want %d", len(session.Messages), len(tt.session.Messages))
			}
			if !strings.Contains(output, "  ") {
				t.Errorf("Output should be pretty-printed with indentation")
			}
		})
	}
}

func TestJSONExporter_PreservesRows(t *testing.T) {
	session := internal.CreateTestSessionWithMessages("rows", []internal.Message{{
		Kind: internal.MessageResult,
		Result: &internal.Result{Visualization: &viz.Spec{
			Kind: viz.KindTable,
			Rows: []*viz.Row{viz.NewRow("pl_name", "Kepler-22 b", "pl_rade", 2.1, "disc_year", 2011)},
		}},
	}})

	var buf bytes.Buffer
	if err := (&JSONExporter{}).Export(session, &buf); err != nil {
		t.Fatalf("JSONExporter.Export() error = %v", err)
	}

	output := buf.String()
	name := strings.Index(output, `"pl_name"`)
	radius := strings.Index(output, `"pl_rade"`)
	year := strings.Index(output, `"disc_year"`)
	if name < 0 || !(name < radius && radius < year) {
		t.Errorf("row keys should keep their order, got: %s", output)
	}
}

func TestJSONExporter_Extension(t *testing.T) {
	exporter := &JSONExporter{}
	if got := exporter.Extension(); got != "json" {
		t.Errorf("JSONExporter.Extension() = %v, want json", got)
	}
}

func TestJSONExporter_SQLNotEscaped(t *testing.T) {
	session := internal.CreateTestSessionWithMessages("sql", []internal.Message{{
		Kind:   internal.MessageResult,
		Result: &internal.Result{SQL: "SELECT pl_name FROM pscomppars WHERE pl_eqt < 300 AND pl_rade > 1"},
	}})
	session.Metadata.MessageCount = 0

	var buf bytes.Buffer
	if err := (&JSONExporter{}).Export(session, &buf); err != nil {
		t.Fatalf("JSONExporter.Export() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "pl_eqt < 300 AND pl_rade > 1") {
		t.Errorf("SQL should be written verbatim, got: %s", output)
	}
	if !strings.Contains(output, `"message_count": 1`) {
		t.Errorf("message count should match the log, got: %s", output)
	}
	if session.Metadata.MessageCount != 0 {
		t.Error("Export should not modify the session")
	}
}
