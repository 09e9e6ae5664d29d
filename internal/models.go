package internal

import (
	"encoding/json"

	"github.com/iksnae/exoquery/internal/viz"
)

// AskRequest is the body of POST /ask
type AskRequest struct {
	Question  string `json:"question"`
	SessionID string `json:"session_id"`
}

// AskResponse is the body returned by POST /ask
type AskResponse struct {
	Success       bool            `json:"success"`
	SQL           string          `json:"sql,omitempty"`
	RowCount      int             `json:"row_count,omitempty"`
	Cached        bool            `json:"cached,omitempty"`
	Visualization json.RawMessage `json:"visualization,omitempty"`
	Error         string          `json:"error,omitempty"`
}

// HealthResponse is the body returned by GET /health
type HealthResponse struct {
	Status string `json:"status"`
}

// ToResult converts a response to its outcome: a Result on success,
// an ApplicationError otherwise. The descriptor is decoded on its own so a
// malformed one only costs the chart, never the answer.
func (r *AskResponse) ToResult() (*Result, error) {
	if !r.Success {
		return nil, &ApplicationError{Message: r.Error}
	}
	spec, err := viz.ParseSpec(r.Visualization)
	if err != nil {
		LogWarn("%v", err)
	}
	return &Result{
		SQL:           r.SQL,
		RowCount:      r.RowCount,
		Cached:        r.Cached,
		Visualization: spec,
	}, nil
}
