package internal

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/iksnae/exoquery/internal/viz"
)

func TestAskResponse_ToResult(t *testing.T) {
	body := `{"success":true,"sql":"SELECT 1","row_count":3,"cached":true,"visualization":{"type":"table","data":[{"b":1,"a":2}]}}`

	var resp AskResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	res, err := resp.ToResult()
	if err != nil {
		t.Fatalf("ToResult() error = %v", err)
	}
	if res.SQL != "SELECT 1" || res.RowCount != 3 || !res.Cached {
		t.Errorf("ToResult() = %+v", res)
	}
	if res.Visualization == nil || res.Visualization.Kind != viz.KindTable {
		t.Fatalf("visualization = %+v", res.Visualization)
	}
	if keys := viz.Keys(res.Visualization.Rows[0]); len(keys) != 2 || keys[0] != "b" || keys[1] != "a" {
		t.Errorf("row keys = %v, want [b a]", keys)
	}
}

func TestAskResponse_ToResultFailure(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "with message", body: `{"success":false,"error":"parse error"}`, want: "parse error"},
		{name: "without message", body: `{"success":false}`, want: FallbackErrorMessage},
		{name: "missing success", body: `{"sql":"SELECT 1"}`, want: FallbackErrorMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp AskResponse
			if err := json.Unmarshal([]byte(tt.body), &resp); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}

			res, err := resp.ToResult()
			if res != nil {
				t.Errorf("ToResult() result = %+v, want nil", res)
			}
			var appErr *ApplicationError
			if !errors.As(err, &appErr) {
				t.Fatalf("ToResult() error = %v, want *ApplicationError", err)
			}
			if got := UserMessage(err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAskRequest_Wire(t *testing.T) {
	data, err := json.Marshal(AskRequest{Question: "q", SessionID: "session_1"})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if want := `{"question":"q","session_id":"session_1"}`; string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestAskResponse_ToResultMalformedVisualization(t *testing.T) {
	body := `{"success":true,"sql":"SELECT 1","row_count":2,"visualization":{"type":"scatter","title":"Radius","data":[[1,2]]}}`

	var resp AskResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	res, err := resp.ToResult()
	if err != nil {
		t.Fatalf("ToResult() error = %v, want a degraded result", err)
	}
	if res.SQL != "SELECT 1" || res.RowCount != 2 {
		t.Errorf("ToResult() = %+v", res)
	}
	if res.Visualization == nil || res.Visualization.Title != "Radius" {
		t.Fatalf("visualization = %+v, want title kept", res.Visualization)
	}
	if !viz.Dispatch(res.Visualization).Empty() {
		t.Error("malformed rows should dispatch to the empty plan")
	}
}
