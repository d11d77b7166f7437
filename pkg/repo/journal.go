package repo

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	_ "modernc.org/sqlite"

	"github.com/skynet2/beancount-telegram-importer/pkg/database"
)

const schema = `
CREATE TABLE IF NOT EXISTS outcomes (
	seq          INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id       TEXT    NOT NULL,
	message_id   INTEGER NOT NULL,
	message_date INTEGER NOT NULL,
	state        TEXT    NOT NULL,
	reason       TEXT    NOT NULL DEFAULT '',
	destination  TEXT    NOT NULL DEFAULT '',
	raw          TEXT    NOT NULL DEFAULT '',
	error        TEXT    NOT NULL DEFAULT '',
	created_at   INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_outcomes_message_id ON outcomes(message_id);
`

// Journal keeps every per-message outcome of live runs so skipped messages
// can be reconciled by hand later.
type Journal struct {
	db *sql.DB
}

func NewJournal(dbPath string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create journal directory")
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open journal")
	}

	if _, err = db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to create journal schema")
	}

	return &Journal{
		db: db,
	}, nil
}

func (j *Journal) Close() error {
	return j.db.Close()
}

func (j *Journal) Record(
	ctx context.Context,
	runID string,
	outcome *database.Outcome,
) error {
	errText := ""
	if outcome.Err != nil {
		errText = outcome.Err.Error()
	}

	_, err := j.db.ExecContext(ctx, `INSERT INTO outcomes
	(run_id, message_id, message_date, state, reason, destination, raw, error, created_at)
	VALUES (?,?,?,?,?,?,?,?,?)`,
		runID,
		outcome.MessageID,
		outcome.MessageDate.Unix(),
		outcome.State.String(),
		string(outcome.Reason),
		outcome.Destination,
		outcome.Raw,
		errText,
		time.Now().UTC().Unix(),
	)

	return errors.WithStack(err)
}

// Entries returns the latest journal rows, newest first.
func (j *Journal) Entries(ctx context.Context, limit int) ([]*database.JournalEntry, error) {
	return j.query(ctx, `SELECT seq, run_id, message_id, message_date, state, reason, destination, raw, error, created_at
	FROM outcomes ORDER BY seq DESC LIMIT ?`, limit)
}

// Skipped returns messages whose most recent outcome is a skip, oldest first.
func (j *Journal) Skipped(ctx context.Context) ([]*database.JournalEntry, error) {
	return j.query(ctx, `SELECT seq, run_id, message_id, message_date, state, reason, destination, raw, error, created_at
	FROM outcomes o
	WHERE o.state = ? AND o.seq = (SELECT MAX(seq) FROM outcomes WHERE message_id = o.message_id)
	ORDER BY o.message_id`, database.OutcomeSkipped.String())
}

func (j *Journal) query(ctx context.Context, query string, args ...interface{}) ([]*database.JournalEntry, error) {
	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var entries []*database.JournalEntry
	for rows.Next() {
		var (
			entry       database.JournalEntry
			messageDate int64
			createdAt   int64
		)

		if err = rows.Scan(&entry.Seq, &entry.RunID, &entry.MessageID, &messageDate, &entry.State,
			&entry.Reason, &entry.Destination, &entry.Raw, &entry.Error, &createdAt); err != nil {
			return nil, errors.WithStack(err)
		}

		entry.MessageDate = time.Unix(messageDate, 0).UTC()
		entry.CreatedAt = time.Unix(createdAt, 0).UTC()
		entries = append(entries, &entry)
	}

	return entries, errors.WithStack(rows.Err())
}
