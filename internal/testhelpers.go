package internal

import (
	"github.com/iksnae/exoquery/internal/viz"
)

const testTimestamp = "2024-01-01T00:00:00Z"

// CreateTestSession creates a session holding one answered question and
// one failed question
func CreateTestSession(id string) *Session {
	return CreateTestSessionWithMessages(id, []Message{
		{Kind: MessageUser, Text: "How many Earth-sized planets have been discovered?", Timestamp: testTimestamp},
		{Kind: MessageResult, Result: CreateTestResult(), Timestamp: testTimestamp},
		{Kind: MessageUser, Text: "Show me everything", Timestamp: testTimestamp},
		{Kind: MessageError, Text: "parse error", Timestamp: testTimestamp},
	})
}

// CreateTestSessionWithMessages creates a test session with custom messages
func CreateTestSessionWithMessages(id string, messages []Message) *Session {
	return &Session{
		ID:       id,
		Messages: messages,
		Metadata: Metadata{
			CreatedAt:    testTimestamp,
			BackendURL:   "http://localhost:8000",
			MessageCount: len(messages),
		},
	}
}

// CreateTestResult creates a KPI result with one row
func CreateTestResult() *Result {
	return &Result{
		SQL:      "SELECT COUNT(*) AS count FROM pscomppars WHERE pl_rade BETWEEN 0.8 AND 1.25",
		RowCount: 1,
		Visualization: &viz.Spec{
			Kind:  viz.KindKPI,
			Title: "Earth-sized planets",
			Rows:  []*viz.Row{viz.NewRow("count", 42)},
		},
	}
}
