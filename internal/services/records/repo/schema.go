package repo

import (
	"context"

	"viewlog/internal/modkit/repokit"
	perr "viewlog/internal/platform/errors"
)

// schema is applied at startup; the unique constraint on (post_date, subject)
// is the storage level dedup guarantee and must never be relaxed
const schema = `
CREATE TABLE IF NOT EXISTS records (
	id         uuid PRIMARY KEY,
	filename   text NOT NULL,
	subject    text NOT NULL,
	post_date  date NOT NULL,
	seen_time  timestamptz NOT NULL,
	created_at timestamptz NOT NULL DEFAULT now(),
	CONSTRAINT records_post_date_subject_key UNIQUE (post_date, subject)
);
CREATE INDEX IF NOT EXISTS records_filename_idx ON records (filename);
CREATE INDEX IF NOT EXISTS records_seen_time_idx ON records (seen_time);
`

// EnsureSchema creates the records table and its indexes if missing
func EnsureSchema(ctx context.Context, q repokit.Queryer) error {
	if _, err := q.Exec(ctx, schema); err != nil {
		return perr.FromPostgres(err, "ensure records schema")
	}
	return nil
}
