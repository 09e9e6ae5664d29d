package cmd

import (
	"strings"
	"testing"

	"github.com/iksnae/exoquery/internal"
	"github.com/iksnae/exoquery/testutil"
)

func TestHealthcheckCommand(t *testing.T) {
	backend := testutil.NewBackend(t, testutil.JSONResponse(testutil.KPIResponse))

	stdout, _, err := execute(t, "", "healthcheck", "--backend", backend.URL, "--verbose")
	if err != nil {
		t.Fatalf("healthcheck failed: %v", err)
	}

	for _, want := range []string{
		"Using defaults (no config file)",
		"Backend: " + backend.URL,
		"Backend reachable at " + backend.URL,
		"Backend reports healthy",
		"exoquery is ready",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output should contain %q, got:\n%s", want, stdout)
		}
	}
	if n := len(backend.RequestsTo("/health")); n != 1 {
		t.Errorf("got %d /health requests, want 1", n)
	}
}

func TestHealthcheckCommand_Unreachable(t *testing.T) {
	stdout, _, err := execute(t, "", "healthcheck", "--backend", testutil.UnreachableURL(t))
	if err == nil {
		t.Fatal("healthcheck against an unreachable backend should fail")
	}
	if !strings.Contains(stdout, "Backend unreachable") || !strings.Contains(stdout, internal.ConnectivityMessage) {
		t.Errorf("output should explain the failure, got:\n%s", stdout)
	}
}

func TestHealthcheckCommand_Help(t *testing.T) {
	stdout, _, err := execute(t, "", "healthcheck", "--help")
	if err != nil {
		t.Fatalf("healthcheck --help failed: %v", err)
	}
	if stdout == "" {
		t.Error("healthcheck --help should produce output")
	}
}
