package export

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/iksnae/exoquery/internal"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE sessions (
	id            TEXT PRIMARY KEY,
	created_at    TEXT,
	backend_url   TEXT,
	message_count INTEGER NOT NULL
);
CREATE TABLE messages (
	session_id    TEXT NOT NULL REFERENCES sessions(id),
	seq           INTEGER NOT NULL,
	kind          TEXT NOT NULL,
	text          TEXT,
	sql           TEXT,
	row_count     INTEGER,
	cached        INTEGER,
	visualization TEXT,
	timestamp     TEXT,
	PRIMARY KEY (session_id, seq)
);`

// SQLiteExporter exports sessions as a SQLite database file. The database
// is built in a temporary file and then streamed to the writer.
type SQLiteExporter struct{}

// Export exports a session to a SQLite database
func (e *SQLiteExporter) Export(session *internal.Session, w io.Writer) error {
	tmp, err := os.CreateTemp("", "exoquery-*.db")
	if err != nil {
		return fmt.Errorf("failed to create temp database: %w", err)
	}
	path := tmp.Name()
	_ = tmp.Close()
	defer func() { _ = os.Remove(path) }()

	if err := writeDatabase(path, session); err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to reopen database: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("failed to copy database: %w", err)
	}
	return nil
}

func writeDatabase(path string, session *internal.Session) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(
		"INSERT INTO sessions (id, created_at, backend_url, message_count) VALUES (?, ?, ?, ?)",
		session.ID, session.Metadata.CreatedAt, session.Metadata.BackendURL, len(session.Messages),
	); err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO messages
		(session_id, seq, kind, text, sql, row_count, cached, visualization, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, msg := range session.Messages {
		var (
			query    sql.NullString
			rowCount sql.NullInt64
			cached   sql.NullBool
			spec     sql.NullString
		)
		if res := msg.Result; res != nil {
			query = sql.NullString{String: res.SQL, Valid: true}
			rowCount = sql.NullInt64{Int64: int64(res.RowCount), Valid: true}
			cached = sql.NullBool{Bool: res.Cached, Valid: true}
			if res.Visualization != nil {
				data, err := json.Marshal(res.Visualization)
				if err != nil {
					return fmt.Errorf("failed to encode visualization %d: %w", i+1, err)
				}
				spec = sql.NullString{String: string(data), Valid: true}
			}
		}

		if _, err := stmt.Exec(session.ID, i+1, string(msg.Kind), msg.Text, query, rowCount, cached, spec, msg.Timestamp); err != nil {
			return fmt.Errorf("failed to insert message %d: %w", i+1, err)
		}
	}

	return tx.Commit()
}

// Extension returns the file extension for this format
func (e *SQLiteExporter) Extension() string {
	return "db"
}
