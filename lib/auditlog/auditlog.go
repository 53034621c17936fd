package auditlog

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE attempts (
	registration_no TEXT NOT NULL,
	attempt INTEGER NOT NULL,
	state TEXT NOT NULL,
	detail TEXT NOT NULL,
	at INTEGER NOT NULL
);
CREATE INDEX attempts_by_registration ON attempts (registration_no);
`

// Log is a sqlite journal of every acquisition attempt. Retries are never
// silent: each network round trip lands here whether it succeeded or not.
type Log struct {
	db *sql.DB
}

func Open(path string) (*Log, error) {
	if path != ":memory:" {
		err := os.MkdirAll(filepath.Dir(path), 0755)
		if err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	_, err = db.Exec(schema)
	if err != nil && !strings.Contains(err.Error(), "already exists") {
		db.Close()
		return nil, err
	}
	return &Log{db: db}, nil
}

func (l *Log) Record(ctx context.Context, registrationNo string, attempt int, state, detail string) error {
	_, err := l.db.ExecContext(
		ctx,
		`INSERT INTO attempts (registration_no, attempt, state, detail, at) VALUES (?, ?, ?, ?, ?)`,
		registrationNo, attempt, state, detail, time.Now().Unix(),
	)
	return err
}

type Attempt struct {
	RegistrationNo string
	Attempt        int
	State          string
	Detail         string
	At             time.Time
}

func (l *Log) Attempts(ctx context.Context, registrationNo string) ([]Attempt, error) {
	rows, err := l.db.QueryContext(
		ctx,
		`SELECT registration_no, attempt, state, detail, at FROM attempts
		 WHERE registration_no = ? ORDER BY at, attempt`,
		registrationNo,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		var a Attempt
		var at int64
		err = rows.Scan(&a.RegistrationNo, &a.Attempt, &a.State, &a.Detail, &at)
		if err != nil {
			return nil, err
		}
		a.At = time.Unix(at, 0)
		out = append(out, a)
	}
	return out, rows.Err()
}

func (l *Log) Close() error {
	return l.db.Close()
}
