package models

import (
	"fmt"
	"time"
)

// TimeFilter restricts a search to videos published within a recent window.
type TimeFilter string

const (
	TimeFilterLast24Hours TimeFilter = "24h"
	TimeFilterLast7Days   TimeFilter = "7d"
	TimeFilterLast30Days  TimeFilter = "30d"
	TimeFilterLastYear    TimeFilter = "1y"
	TimeFilterAnyTime     TimeFilter = "any"
)

var timeFilterDays = map[TimeFilter]int{
	TimeFilterLast24Hours: 1,
	TimeFilterLast7Days:   7,
	TimeFilterLast30Days:  30,
	TimeFilterLastYear:    365,
}

// ParseTimeFilter maps a config/flag value to a TimeFilter.
func ParseTimeFilter(s string) (TimeFilter, error) {
	f := TimeFilter(s)
	switch f {
	case TimeFilterLast24Hours, TimeFilterLast7Days, TimeFilterLast30Days, TimeFilterLastYear, TimeFilterAnyTime:
		return f, nil
	}
	return "", fmt.Errorf("unknown time filter %q (valid: 24h, 7d, 30d, 1y, any)", s)
}

// DaysBack returns how many days the filter looks back, or false for "any".
func (f TimeFilter) DaysBack() (int, bool) {
	days, ok := timeFilterDays[f]
	return days, ok
}

// PublishedAfter returns the RFC 3339 lower bound for the publish time, or an
// empty string when the filter does not constrain it.
func (f TimeFilter) PublishedAfter(now time.Time) string {
	days, ok := timeFilterDays[f]
	if !ok {
		return ""
	}
	return now.UTC().AddDate(0, 0, -days).Format(time.RFC3339)
}

func (f TimeFilter) String() string {
	switch f {
	case TimeFilterLast24Hours:
		return "Last 24 hours"
	case TimeFilterLast7Days:
		return "Last 7 days"
	case TimeFilterLast30Days:
		return "Last 30 days"
	case TimeFilterLastYear:
		return "Last year"
	default:
		return "Any time"
	}
}
