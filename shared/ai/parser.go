package ai

import (
	"strings"

	"caption-digest/internal/models"
)

const (
	shortMarker    = "SHORT SUMMARY:"
	detailedMarker = "DETAILED SUMMARY:"
	perVideoMarker = "VIDEO SUMMARIES:"

	fallbackShort    = "No short summary available"
	fallbackDetailed = "No detailed summary available"
	fallbackPerVideo = "Individual video summaries not available"
)

// ParseSummary splits raw model output into its three sections. It never
// fails: a missing marker degrades that section to fixed fallback text.
// Markers are expected in order; out-of-order markers produce best-effort
// slices, never a panic.
func ParseSummary(content string) models.Summary {
	return models.Summary{
		Short:    sliceBetween(content, shortMarker, detailedMarker, fallbackShort),
		Detailed: sliceBetween(content, detailedMarker, perVideoMarker, fallbackDetailed),
		PerVideo: sliceAfter(content, perVideoMarker, fallbackPerVideo),
	}
}

func sliceBetween(content, startMarker, endMarker, fallback string) string {
	start := strings.Index(content, startMarker)
	if start < 0 {
		return fallback
	}
	start += len(startMarker)
	end := len(content)
	if idx := strings.Index(content, endMarker); idx >= 0 && idx >= start {
		end = idx
	}
	return strings.TrimSpace(content[start:end])
}

func sliceAfter(content, marker, fallback string) string {
	idx := strings.Index(content, marker)
	if idx < 0 {
		return fallback
	}
	return strings.TrimSpace(content[idx+len(marker):])
}
