// Command viewlog-ingest loads one CSV export into the records store from the
// shell, useful for backfills without going through the HTTP upload
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	goflags "github.com/jessevdk/go-flags"

	"viewlog/internal/platform/config"
	"viewlog/internal/platform/logger"
	"viewlog/internal/platform/store"
	recordsrepo "viewlog/internal/services/records/repo"
	recordssvc "viewlog/internal/services/records/service"
)

type options struct {
	File string `short:"f" long:"file" required:"true" description:"CSV export file to ingest"`
	Name string `short:"n" long:"name" description:"Override the filename used for post-date extraction (defaults to the file's base name)"`

	MaxRejected int  `long:"max-rejected" default:"100" description:"Cap on rejected rows reported in the receipt, 0 for all"`
	Quiet       bool `short:"q" long:"quiet" description:"Only log warnings and errors"`
}

func main() {
	var opts options
	parser := goflags.NewParser(&opts, goflags.Default)
	parser.Name = "viewlog-ingest"
	parser.LongDescription = "Ingest a viewer CSV export (named MM_DD_YYYY-<suffix>) into the records store."

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok && flagsErr.Type == goflags.ErrHelp {
			return
		}
		os.Exit(2)
	}

	if opts.Quiet {
		logger.Init(logger.Options{Level: "warn"})
	}
	l := logger.Named("ingest")

	if err := run(context.Background(), opts, l); err != nil {
		l.Fatal().Err(err).Msg("ingest failed")
	}
}

func run(ctx context.Context, opts options, l *logger.Logger) error {
	pgCfg := config.New().Prefix("VIEWLOG_PGSQL_")

	st, err := store.Open(ctx, store.Config{
		AppName: "viewlog-ingest",
		PG: store.PGConfig{
			Enabled:  true,
			URL:      pgCfg.MustString("DBURL"),
			MaxConns: int32(pgCfg.MayInt("MAX_CONNS", 2)),
			LogSQL:   pgCfg.MayBool("LOG_SQL", false),
		},
	}, store.WithLogger(*l))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	if err := recordsrepo.EnsureSchema(ctx, st.PG); err != nil {
		return fmt.Errorf("schema bootstrap: %w", err)
	}

	f, err := os.Open(opts.File)
	if err != nil {
		return fmt.Errorf("open csv: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			l.Warn().Err(err).Msg("close csv")
		}
	}()

	name := opts.Name
	if name == "" {
		name = filepath.Base(opts.File)
	}

	svc := recordssvc.New(st.PG, recordsrepo.NewPG(), recordssvc.Config{MaxRejected: opts.MaxRejected})

	receipt, err := svc.Ingest(ctx, name, f)
	if err != nil {
		return err
	}

	evt := l.Info().
		Str("filename", receipt.Filename).
		Str("post_date", receipt.PostDate).
		Int64("inserted", receipt.Inserted).
		Int64("skipped_duplicates", receipt.Skipped).
		Int("rejected", receipt.RejectedTotal)
	evt.Msg("ingest complete")

	for _, row := range receipt.Rejected {
		l.Warn().
			Int("line", row.Line).
			Str("subject", row.Subject).
			Str("raw_time", row.RawTime).
			Str("reason", row.Reason).
			Msg("row rejected")
	}
	if overflow := receipt.RejectedTotal - len(receipt.Rejected); overflow > 0 {
		l.Warn().Int("count", overflow).Msg("further rejected rows omitted from the receipt detail")
	}
	return nil
}
