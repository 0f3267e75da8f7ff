package models

import (
	"testing"
	"time"
)

func TestParseTimeFilter(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeFilter
		wantErr bool
	}{
		{"Last 24 hours", "24h", TimeFilterLast24Hours, false},
		{"Last 7 days", "7d", TimeFilterLast7Days, false},
		{"Last 30 days", "30d", TimeFilterLast30Days, false},
		{"Last year", "1y", TimeFilterLastYear, false},
		{"Any time", "any", TimeFilterAnyTime, false},
		{"Unknown", "fortnight", "", true},
		{"Empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeFilter(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTimeFilter(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseTimeFilter(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPublishedAfter(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		filter TimeFilter
		want   string
	}{
		{"24 hours back", TimeFilterLast24Hours, "2025-03-14T12:00:00Z"},
		{"7 days back", TimeFilterLast7Days, "2025-03-08T12:00:00Z"},
		{"30 days back", TimeFilterLast30Days, "2025-02-13T12:00:00Z"},
		{"365 days back", TimeFilterLastYear, "2024-03-15T12:00:00Z"},
		{"Any time has no bound", TimeFilterAnyTime, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.PublishedAfter(now); got != tt.want {
				t.Errorf("PublishedAfter() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDaysBack(t *testing.T) {
	if days, ok := TimeFilterLast7Days.DaysBack(); !ok || days != 7 {
		t.Errorf("DaysBack() = %d, %v, want 7, true", days, ok)
	}
	if _, ok := TimeFilterAnyTime.DaysBack(); ok {
		t.Error("DaysBack() for any-time filter should report no window")
	}
}
