package export

import (
	"bytes"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/iksnae/exoquery/internal"
	_ "modernc.org/sqlite"
)

func openExport(t *testing.T, session *internal.Session) *sql.DB {
	t.Helper()

	var buf bytes.Buffer
	if err := (&SQLiteExporter{}).Export(session, &buf); err != nil {
		t.Fatalf("SQLiteExporter.Export() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "export.db")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		t.Fatalf("Failed to open export: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSQLiteExporter_Export(t *testing.T) {
	db := openExport(t, internal.CreateTestSession("test1"))

	var id, backend string
	var count int
	if err := db.QueryRow("SELECT id, backend_url, message_count FROM sessions").Scan(&id, &backend, &count); err != nil {
		t.Fatalf("query sessions: %v", err)
	}
	if id != "test1" || backend != "http://localhost:8000" || count != 4 {
		t.Errorf("session row = (%q, %q, %d)", id, backend, count)
	}

	rows, err := db.Query("SELECT seq, kind, text, sql, row_count, visualization FROM messages ORDER BY seq")
	if err != nil {
		t.Fatalf("query messages: %v", err)
	}
	defer rows.Close()

	var kinds []string
	for rows.Next() {
		var (
			seq      int
			kind     string
			text     sql.NullString
			query    sql.NullString
			rowCount sql.NullInt64
			spec     sql.NullString
		)
		if err := rows.Scan(&seq, &kind, &text, &query, &rowCount, &spec); err != nil {
			t.Fatalf("scan: %v", err)
		}
		kinds = append(kinds, kind)

		if kind == string(internal.MessageResult) {
			if !query.Valid || rowCount.Int64 != 1 || !spec.Valid {
				t.Errorf("result row %d = (%v, %v, %v)", seq, query, rowCount, spec)
			}
		} else if query.Valid {
			t.Errorf("row %d (%s) should have NULL sql", seq, kind)
		}
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("rows: %v", err)
	}

	want := []string{"user", "result", "user", "error"}
	if len(kinds) != len(want) {
		t.Fatalf("got kinds %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kinds[%d] = %q, want %q", i, kinds[i], want[i])
		}
	}
}

func TestSQLiteExporter_EmptySession(t *testing.T) {
	db := openExport(t, internal.CreateTestSessionWithMessages("empty", nil))

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM messages").Scan(&n); err != nil {
		t.Fatalf("count messages: %v", err)
	}
	if n != 0 {
		t.Errorf("got %d messages, want 0", n)
	}
}

func TestSQLiteExporter_Extension(t *testing.T) {
	exporter := &SQLiteExporter{}
	if got := exporter.Extension(); got != "db" {
		t.Errorf("SQLiteExporter.Extension() = %v, want db", got)
	}
}
