package timeparse

import (
	"testing"
	"time"

	perr "viewlog/internal/platform/errors"
)

func TestPostDate_ValidFilenames(t *testing.T) {
	t.Parallel()

	cases := []struct {
		filename string
		want     time.Time
	}{
		{"05_01_2024-viewers.csv", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{"12_31_2023-export", time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)},
		{"02_29_2024-leap.csv", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"1_2_2024-short.csv", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		// only the first hyphen matters for the split
		{"07_04_2024-multi-part-suffix.csv", time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC)},
	}

	for _, c := range cases {
		got, err := PostDate(c.filename)
		if err != nil {
			t.Fatalf("PostDate(%q) unexpected error: %v", c.filename, err)
		}
		if !got.Equal(c.want) {
			t.Fatalf("PostDate(%q) = %v, want %v", c.filename, got, c.want)
		}
	}
}

func TestPostDate_Malformed(t *testing.T) {
	t.Parallel()

	cases := []string{
		"",
		"viewers.csv",
		"05_01-short.csv",           // only two date parts
		"05_01_2024_extra-long.csv", // four date parts
		"xx_01_2024-bad.csv",        // non numeric month
		"05_yy_2024-bad.csv",        // non numeric day
		"05_01_zzzz-bad.csv",        // non numeric year
		"13_01_2024-badmonth.csv",   // month 13
		"02_30_2024-badday.csv",     // Feb 30
		"00_10_2024-zeromonth.csv",
	}

	for _, filename := range cases {
		_, err := PostDate(filename)
		if err == nil {
			t.Fatalf("PostDate(%q) expected error, got none", filename)
		}
		if !perr.IsCode(err, perr.ErrorCodeInvalidFilename) {
			t.Fatalf("PostDate(%q) error code = %v, want invalid filename", filename, perr.CodeOf(err))
		}
	}
}
