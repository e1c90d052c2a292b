package cmd

import (
	"testing"
	"time"

	"github.com/snapsweep/snapsweep/archive"
)

func TestSeedDirName(t *testing.T) {
	tests := []struct {
		name     string
		ts       time.Time
		expected string
	}{
		{
			name:     "morning timestamp",
			ts:       time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC),
			expected: "20240115_093000",
		},
		{
			name:     "single digit fields are zero padded",
			ts:       time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC),
			expected: "20240203_040506",
		},
		{
			name:     "end of year",
			ts:       time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC),
			expected: "20231231_235959",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := seedDirName(tt.ts)
			if got != tt.expected {
				t.Errorf("seedDirName(%v) = %q, expected %q", tt.ts, got, tt.expected)
			}
		})
	}
}

func TestSeedDirName_ParsesAsCandidate(t *testing.T) {
	// Seeded names must round-trip through the sweep's candidate parser
	ts := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
	name := seedDirName(ts)

	c, ok, err := archive.ParseCandidate("archive", name)
	if err != nil || !ok {
		t.Fatalf("ParseCandidate(%q) ok=%v err=%v", name, ok, err)
	}
	wantDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	if !c.Date.Equal(wantDate) {
		t.Errorf("Parsed date = %v, expected %v", c.Date, wantDate)
	}
}
