// Package service contains the ingestion pipeline and record queries
package service

import (
	"context"
	"encoding/csv"
	"io"
	"strings"

	"github.com/google/uuid"

	"viewlog/internal/core/subject"
	"viewlog/internal/core/timeparse"
	"viewlog/internal/modkit/repokit"
	perr "viewlog/internal/platform/errors"
	"viewlog/internal/services/records/domain"
	"viewlog/internal/services/records/repo"
)

// Service defines the records service contract
type Service interface {
	domain.IngestPort
	domain.ReadPort
}

// Config for the records service
type Config struct {
	// MaxRejected caps the per-row rejection detail a receipt carries, 0 means
	// all; RejectedTotal is never capped
	MaxRejected int
}

// Svc implements the records service
type Svc struct {
	Repo   repo.Storage
	binder repokit.Binder[repo.Storage]
	db     repokit.TxRunner
	cfg    Config
}

// New constructs a records service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Storage], cfg Config) *Svc {
	if db == nil {
		panic("records.Service requires a non nil TxRunner")
	}
	return &Svc{
		Repo:   binder.Bind(db),
		binder: binder,
		db:     db,
		cfg:    cfg,
	}
}

// Ingest implements domain.IngestPort.
//
// The post date comes from the filename and a bad filename fails the whole
// run. Rows that fail timestamp normalization are collected and reported, not
// fatal. The batch goes to storage only after the stream is fully consumed,
// so an upstream read failure never leaves a partial insert behind
func (s *Svc) Ingest(ctx context.Context, filename string, csvStream io.Reader) (domain.IngestReceipt, error) {
	postDate, err := timeparse.PostDate(filename)
	if err != nil {
		return domain.IngestReceipt{}, err
	}

	rd := csv.NewReader(csvStream)
	rd.FieldsPerRecord = -1
	rd.TrimLeadingSpace = true

	header, err := rd.Read()
	if err == io.EOF {
		return domain.IngestReceipt{}, perr.ValidationErrf("file %q has no header row", filename)
	}
	if err != nil {
		return domain.IngestReceipt{}, perr.Wrapf(err, perr.ErrorCodeValidation, "file %q: unreadable header", filename)
	}

	nameIdx, timeIdx := -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "name":
			nameIdx = i
		case "time":
			timeIdx = i
		}
	}
	if nameIdx < 0 || timeIdx < 0 {
		return domain.IngestReceipt{}, perr.ValidationErrf("file %q: header must contain Name and Time columns", filename)
	}

	var (
		batch         []domain.Record
		rejected      []domain.RejectedRow
		rejectedTotal int
		line          = 1 // header consumed
	)

	// the cap bounds the detail list only; every rejection stays counted
	reject := func(row domain.RejectedRow) {
		rejectedTotal++
		if s.cfg.MaxRejected > 0 && len(rejected) >= s.cfg.MaxRejected {
			return
		}
		rejected = append(rejected, row)
	}

	for {
		row, err := rd.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			// a broken stream must not turn into a partial insert
			return domain.IngestReceipt{}, perr.Wrapf(err, perr.ErrorCodeValidation,
				"file %q: csv read failed at line %d", filename, line)
		}
		if nameIdx >= len(row) || timeIdx >= len(row) {
			reject(domain.RejectedRow{Line: line, Reason: "row is missing Name or Time column"})
			continue
		}

		name := subject.Normalize(row[nameIdx])
		rawTime := strings.TrimSpace(row[timeIdx])
		if name == "" {
			reject(domain.RejectedRow{Line: line, RawTime: rawTime, Reason: "empty subject name"})
			continue
		}

		seen, err := timeparse.Normalize(rawTime, postDate)
		if err != nil {
			reject(domain.RejectedRow{Line: line, Subject: name, RawTime: rawTime, Reason: perr.Root(err).Error()})
			continue
		}

		batch = append(batch, domain.Record{
			ID:       uuid.NewString(),
			Filename: filename,
			Subject:  name,
			PostDate: postDate,
			SeenTime: seen,
		})
	}

	// one transaction for the whole batch so a chunked insert can't land partially
	var inserted, skipped int64
	if err := repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		var err error
		inserted, skipped, err = s.binder.Bind(q).InsertBatch(ctx, batch)
		return err
	}); err != nil {
		return domain.IngestReceipt{}, err
	}

	return domain.IngestReceipt{
		Filename:      filename,
		PostDate:      postDate.Format("2006-01-02"),
		Inserted:      inserted,
		Skipped:       skipped,
		RejectedTotal: rejectedTotal,
		Rejected:      rejected,
	}, nil
}

// CountByFilename implements domain.ReadPort
func (s *Svc) CountByFilename(ctx context.Context) ([]domain.FilenameCount, error) {
	return s.Repo.CountByFilename(ctx)
}

// DailyCounts implements domain.ReadPort
func (s *Svc) DailyCounts(ctx context.Context, w domain.Window, subject string) ([]domain.DailyCount, error) {
	return s.Repo.DailyCounts(ctx, w, subject)
}

// CountRecordsBetween implements domain.ReadPort
func (s *Svc) CountRecordsBetween(ctx context.Context, w domain.Window) (int64, error) {
	return s.Repo.CountRecordsBetween(ctx, w)
}

// CountDistinctSubjectsBetween implements domain.ReadPort
func (s *Svc) CountDistinctSubjectsBetween(ctx context.Context, w domain.Window) (int64, error) {
	return s.Repo.CountDistinctSubjectsBetween(ctx, w)
}

// CountDistinctPostDatesBetween implements domain.ReadPort
func (s *Svc) CountDistinctPostDatesBetween(ctx context.Context, w domain.Window) (int64, error) {
	return s.Repo.CountDistinctPostDatesBetween(ctx, w)
}
