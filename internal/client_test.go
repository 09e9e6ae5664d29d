package internal

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/iksnae/exoquery/internal/viz"
	"github.com/iksnae/exoquery/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_AskSuccess(t *testing.T) {
	backend := testutil.NewBackend(t, testutil.JSONResponse(testutil.KPIResponse))
	client := NewClient(backend.URL)

	result, err := client.Ask(context.Background(), "How many?", "session_1")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Contains(t, result.SQL, "SELECT COUNT(*)")
	assert.Equal(t, 1, result.RowCount)
	assert.False(t, result.Cached)
	require.NotNil(t, result.Visualization)
	assert.Equal(t, viz.KindKPI, result.Visualization.Kind)

	reqs := backend.RequestsTo("/ask")
	require.Len(t, reqs, 1)
	assert.Equal(t, "How many?", reqs[0].Body["question"])
	assert.Equal(t, "session_1", reqs[0].SessionID)
}

func TestClient_AskMalformedVisualization(t *testing.T) {
	for _, data := range []string{`"oops"`, `[[1,2]]`} {
		t.Run(data, func(t *testing.T) {
			body := strings.Replace(testutil.MalformedDataResponse, `"oops"`, data, 1)
			backend := testutil.NewBackend(t, testutil.JSONResponse(body))

			result, err := NewClient(backend.URL).Ask(context.Background(), "names?", "s")
			require.NoError(t, err)
			require.NotNil(t, result)

			assert.Equal(t, "SELECT pl_name FROM pscomppars", result.SQL)
			assert.Equal(t, 7, result.RowCount)
			assert.True(t, result.Cached)
			require.NotNil(t, result.Visualization)
			assert.Equal(t, "Planet names", result.Visualization.Title)
			assert.True(t, viz.Dispatch(result.Visualization).Empty())
		})
	}
}

func TestClient_AskApplicationError(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"server text", testutil.ParseErrorResponse, "parse error"},
		{"no text", testutil.SilentFailureResponse, FallbackErrorMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := testutil.NewBackend(t, testutil.JSONResponse(tt.body))
			_, err := NewClient(backend.URL).Ask(context.Background(), "q", "s")

			var appErr *ApplicationError
			require.True(t, errors.As(err, &appErr), "want ApplicationError, got %T", err)
			assert.Equal(t, tt.want, appErr.UserMessage())
		})
	}
}

func TestClient_AskServerErrorWithJSONBody(t *testing.T) {
	backend := testutil.NewBackend(t, func(string, string) (int, string) {
		return http.StatusInternalServerError, `{"detail":"agent crashed"}`
	})

	_, err := NewClient(backend.URL).Ask(context.Background(), "q", "s")

	var appErr *ApplicationError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, FallbackErrorMessage, appErr.UserMessage())
}

func TestClient_AskUnparseableBody(t *testing.T) {
	backend := testutil.NewBackend(t, func(string, string) (int, string) {
		return http.StatusBadGateway, "<html>bad gateway</html>"
	})

	_, err := NewClient(backend.URL).Ask(context.Background(), "q", "s")

	var tErr *TransportError
	require.True(t, errors.As(err, &tErr))
	assert.Equal(t, ConnectivityMessage, UserMessage(err))
}

func TestClient_AskUnreachable(t *testing.T) {
	client := NewClient(testutil.UnreachableURL(t), WithTimeout(2*time.Second))

	result, err := client.Ask(context.Background(), "q", "s")
	assert.Nil(t, result)

	var tErr *TransportError
	require.True(t, errors.As(err, &tErr))
	assert.Equal(t, "ask", tErr.Op)
	assert.Equal(t, ConnectivityMessage, UserMessage(err))
	assert.NotContains(t, UserMessage(err), "refused")
}

func TestClient_Clear(t *testing.T) {
	backend := testutil.NewBackend(t, testutil.JSONResponse(testutil.KPIResponse))
	NewClient(backend.URL+"/").Clear(context.Background(), "session_42")

	reqs := backend.RequestsTo("/clear/")
	require.Len(t, reqs, 1)
	assert.Equal(t, "session_42", reqs[0].SessionID)
	assert.Equal(t, http.MethodPost, reqs[0].Method)
}

func TestClient_ClearSwallowsFailures(t *testing.T) {
	backend := testutil.NewBackend(t, testutil.JSONResponse(testutil.KPIResponse))
	backend.FailClear(http.StatusInternalServerError)

	assert.NotPanics(t, func() {
		NewClient(backend.URL).Clear(context.Background(), "s")
		NewClient(testutil.UnreachableURL(t)).Clear(context.Background(), "s")
		NewClient("http://[::1]:namedport").Clear(context.Background(), "s")
	})
}

func TestClient_Health(t *testing.T) {
	backend := testutil.NewBackend(t, testutil.JSONResponse(testutil.KPIResponse))

	status, err := NewClient(backend.URL).Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", status)

	_, err = NewClient(testutil.UnreachableURL(t)).Health(context.Background())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "health"))
}

func TestClient_BaseURLTrimsSlash(t *testing.T) {
	assert.Equal(t, "http://example.test", NewClient("http://example.test/").BaseURL())
}
