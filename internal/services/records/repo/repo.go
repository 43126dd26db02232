// Package repo provides the records repository implementation
package repo

import (
	"context"
	"fmt"
	"strings"

	"viewlog/internal/modkit/repokit"
	perr "viewlog/internal/platform/errors"
	"viewlog/internal/platform/store"
	"viewlog/internal/services/records/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the records repository
type Storage interface {
	InsertBatch(ctx context.Context, xs []domain.Record) (inserted, skipped int64, err error)
	CountByFilename(ctx context.Context) ([]domain.FilenameCount, error)
	DailyCounts(ctx context.Context, w domain.Window, subject string) ([]domain.DailyCount, error)
	CountRecordsBetween(ctx context.Context, w domain.Window) (int64, error)
	CountDistinctSubjectsBetween(ctx context.Context, w domain.Window) (int64, error)
	CountDistinctPostDatesBetween(ctx context.Context, w domain.Window) (int64, error)
}

// insertChunk caps multi-VALUES statement size; 5 args per record keeps this
// well under the pg parameter ceiling
const insertChunk = 1000

// InsertBatch implements Storage. Duplicate (post_date, subject) pairs are
// skipped by the unique constraint, never overwritten; the split between
// inserted and skipped comes from the command tag
func (s *pg) InsertBatch(ctx context.Context, xs []domain.Record) (int64, int64, error) {
	if len(xs) == 0 {
		return 0, 0, nil
	}

	var inserted int64
	for start := 0; start < len(xs); start += insertChunk {
		end := min(start+insertChunk, len(xs))
		chunk := xs[start:end]

		var sb strings.Builder
		sb.WriteString(`INSERT INTO records (id, filename, subject, post_date, seen_time) VALUES `)

		args := make([]any, 0, len(chunk)*5)
		for i, rec := range chunk {
			if i > 0 {
				sb.WriteByte(',')
			}
			base := i*5 + 1
			fmt.Fprintf(&sb, "($%d,$%d,$%d,$%d,$%d)", base, base+1, base+2, base+3, base+4)
			args = append(args, rec.ID, rec.Filename, rec.Subject, rec.PostDate, rec.SeenTime)
		}
		sb.WriteString(` ON CONFLICT ON CONSTRAINT records_post_date_subject_key DO NOTHING`)

		tag, err := s.q.Exec(ctx, sb.String(), args...)
		if err != nil {
			return inserted, 0, perr.FromPostgres(err, "insert records batch")
		}
		inserted += tag.RowsAffected()
	}
	return inserted, int64(len(xs)) - inserted, nil
}

// CountByFilename implements Storage
func (s *pg) CountByFilename(ctx context.Context) ([]domain.FilenameCount, error) {
	const q = `
		SELECT filename, COUNT(*)
		FROM records
		GROUP BY filename
		ORDER BY filename ASC`

	rows, err := store.Many(ctx, s.q, func(r store.Row) (domain.FilenameCount, error) {
		var fc domain.FilenameCount
		err := r.Scan(&fc.Filename, &fc.Count)
		return fc, err
	}, q)
	if err != nil {
		return nil, perr.FromPostgres(err, "count by filename")
	}
	return rows, nil
}

// DailyCounts implements Storage. Groups by post_date over the half-open
// window; days with no records are absent and zero-filled by the caller
func (s *pg) DailyCounts(ctx context.Context, w domain.Window, subject string) ([]domain.DailyCount, error) {
	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	sb.WriteString(`
		SELECT post_date, COUNT(*)
		FROM records
		WHERE post_date >= ` + arg(w.Since) + ` AND post_date < ` + arg(w.Until) + `
	`)
	if subject != "" {
		sb.WriteString("  AND subject = " + arg(subject) + "\n")
	}
	sb.WriteString(`GROUP BY post_date ORDER BY post_date ASC`)

	rows, err := store.Many(ctx, s.q, func(r store.Row) (domain.DailyCount, error) {
		var dc domain.DailyCount
		err := r.Scan(&dc.Day, &dc.Count)
		return dc, err
	}, sb.String(), args...)
	if err != nil {
		return nil, perr.FromPostgres(err, "daily counts")
	}
	return rows, nil
}

// CountRecordsBetween implements Storage, counting on seen_time
func (s *pg) CountRecordsBetween(ctx context.Context, w domain.Window) (int64, error) {
	const q = `SELECT COUNT(*) FROM records WHERE seen_time >= $1 AND seen_time < $2`
	n, err := store.Scalar[int64](ctx, s.q, q, w.Since, w.Until)
	if err != nil {
		return 0, perr.FromPostgres(err, "count records")
	}
	return n, nil
}

// CountDistinctSubjectsBetween implements Storage, counting on seen_time
func (s *pg) CountDistinctSubjectsBetween(ctx context.Context, w domain.Window) (int64, error) {
	const q = `SELECT COUNT(DISTINCT subject) FROM records WHERE seen_time >= $1 AND seen_time < $2`
	n, err := store.Scalar[int64](ctx, s.q, q, w.Since, w.Until)
	if err != nil {
		return 0, perr.FromPostgres(err, "count distinct subjects")
	}
	return n, nil
}

// CountDistinctPostDatesBetween implements Storage, counting on post_date
func (s *pg) CountDistinctPostDatesBetween(ctx context.Context, w domain.Window) (int64, error) {
	const q = `SELECT COUNT(DISTINCT post_date) FROM records WHERE post_date >= $1 AND post_date < $2`
	n, err := store.Scalar[int64](ctx, s.q, q, w.Since, w.Until)
	if err != nil {
		return 0, perr.FromPostgres(err, "count distinct post dates")
	}
	return n, nil
}
