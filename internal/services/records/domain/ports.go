package domain

import (
	"context"
	"io"
)

// IngestPort consumes uploaded CSV streams and persists their rows
type IngestPort interface {
	Ingest(ctx context.Context, filename string, csv io.Reader) (IngestReceipt, error)
}

// ReadPort queries persisted records; analytics builds on this surface
type ReadPort interface {
	CountByFilename(ctx context.Context) ([]FilenameCount, error)
	DailyCounts(ctx context.Context, w Window, subject string) ([]DailyCount, error)
	CountRecordsBetween(ctx context.Context, w Window) (int64, error)
	CountDistinctSubjectsBetween(ctx context.Context, w Window) (int64, error)
	CountDistinctPostDatesBetween(ctx context.Context, w Window) (int64, error)
}
