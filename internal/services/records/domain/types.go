// Package domain defines the types and interfaces for the records service
package domain

import "time"

// Record is one observation of a subject being seen on a given post's date
type Record struct {
	ID       string // uuid
	Filename string
	Subject  string
	PostDate time.Time // midnight UTC
	SeenTime time.Time
}

// RejectedRow is a row that failed timestamp normalization and was skipped
type RejectedRow struct {
	Line    int    `json:"line"`
	Subject string `json:"subject,omitempty"`
	RawTime string `json:"raw_time"`
	Reason  string `json:"reason"`
}

// IngestReceipt summarizes one ingestion run. RejectedTotal counts every
// rejected row; Rejected carries the per-row detail up to the configured cap
type IngestReceipt struct {
	Filename      string        `json:"filename"`
	PostDate      string        `json:"post_date"`
	Inserted      int64         `json:"inserted"`
	Skipped       int64         `json:"skipped_duplicates"`
	RejectedTotal int           `json:"rejected_total"`
	Rejected      []RejectedRow `json:"rejected_rows,omitempty"`
}

// FilenameCount pairs an upload filename with its stored record count
type FilenameCount struct {
	Filename string `json:"filename"`
	Count    int64  `json:"count"`
}

// Window is a half-open [Since, Until) time range
type Window struct {
	Since time.Time
	Until time.Time
}

// DailyCount is one day's record count inside a window
type DailyCount struct {
	Day   time.Time
	Count int64
}
