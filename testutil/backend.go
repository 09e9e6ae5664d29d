package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
)

// Request is a call received by a Backend
type Request struct {
	Method    string
	Path      string
	SessionID string
	Body      map[string]interface{}
}

// AskHandler produces the raw response for an ask request
type AskHandler func(question, sessionID string) (status int, body string)

// Backend is an in-process stand-in for the query service
type Backend struct {
	*httptest.Server

	mu        sync.Mutex
	requests  []Request
	ask       AskHandler
	clearCode int
}

// NewBackend starts a backend that answers /ask with handler. It is shut
// down when the test ends.
func NewBackend(t *testing.T, handler AskHandler) *Backend {
	t.Helper()
	b := &Backend{ask: handler, clearCode: http.StatusOK}

	r := mux.NewRouter()
	r.HandleFunc("/ask", b.handleAsk).Methods(http.MethodPost)
	r.HandleFunc("/clear/{session_id}", b.handleClear).Methods(http.MethodPost)
	r.HandleFunc("/health", b.handleHealth).Methods(http.MethodGet)

	b.Server = httptest.NewServer(r)
	t.Cleanup(b.Close)
	return b
}

// JSONResponse answers every question with the same body
func JSONResponse(body string) AskHandler {
	return func(string, string) (int, string) {
		return http.StatusOK, body
	}
}

// FailClear makes /clear respond with the given status
func (b *Backend) FailClear(status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clearCode = status
}

// Requests returns the calls received so far
func (b *Backend) Requests() []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Request, len(b.requests))
	copy(out, b.requests)
	return out
}

// RequestsTo returns the calls received for a path prefix such as "/ask"
func (b *Backend) RequestsTo(path string) []Request {
	var out []Request
	for _, r := range b.Requests() {
		if len(r.Path) >= len(path) && r.Path[:len(path)] == path {
			out = append(out, r)
		}
	}
	return out
}

func (b *Backend) record(req Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.requests = append(b.requests, req)
}

func (b *Backend) handleAsk(w http.ResponseWriter, r *http.Request) {
	data, _ := io.ReadAll(r.Body)
	var body map[string]interface{}
	_ = json.Unmarshal(data, &body)

	question, _ := body["question"].(string)
	sessionID, _ := body["session_id"].(string)
	b.record(Request{Method: r.Method, Path: r.URL.Path, SessionID: sessionID, Body: body})

	status, resp := b.ask(question, sessionID)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, resp)
}

func (b *Backend) handleClear(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]
	b.record(Request{Method: r.Method, Path: r.URL.Path, SessionID: sessionID})

	b.mu.Lock()
	code := b.clearCode
	b.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = io.WriteString(w, `{"status":"cleared"}`)
}

func (b *Backend) handleHealth(w http.ResponseWriter, r *http.Request) {
	b.record(Request{Method: r.Method, Path: r.URL.Path})
	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, `{"status":"healthy"}`)
}

// UnreachableURL returns a URL nothing listens on
func UnreachableURL(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	return url
}
