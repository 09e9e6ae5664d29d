package cmd

import (
	"strings"
	"testing"

	"github.com/iksnae/exoquery/testutil"
)

func TestClearCommand(t *testing.T) {
	backend := testutil.NewBackend(t, testutil.JSONResponse(testutil.KPIResponse))

	stdout, _, err := execute(t, "", "clear", "--backend", backend.URL, "session_abc")
	if err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if !strings.Contains(stdout, "session_abc") {
		t.Errorf("output should name the session, got: %s", stdout)
	}

	clears := backend.RequestsTo("/clear/")
	if len(clears) != 1 || clears[0].SessionID != "session_abc" {
		t.Errorf("clear requests = %+v", clears)
	}
}

func TestClearCommand_AlwaysSucceeds(t *testing.T) {
	backend := testutil.NewBackend(t, testutil.JSONResponse(testutil.KPIResponse))
	backend.FailClear(500)

	if _, _, err := execute(t, "", "clear", "--backend", backend.URL, "s"); err != nil {
		t.Errorf("clear with a failing backend should succeed, got: %v", err)
	}
	if _, _, err := execute(t, "", "clear", "--backend", testutil.UnreachableURL(t), "s"); err != nil {
		t.Errorf("clear with an unreachable backend should succeed, got: %v", err)
	}
}

func TestClearCommand_RequiresSessionID(t *testing.T) {
	if _, _, err := execute(t, "", "clear"); err == nil {
		t.Error("clear without a session id should fail")
	}
}
