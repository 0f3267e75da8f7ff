package youtube

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"caption-digest/internal/models"
)

// captionStrategy is one way of obtaining caption text for a video. A
// strategy succeeds only when it returns non-blank text; blank results and
// errors both fall through to the next strategy.
type captionStrategy struct {
	name string
	fn   func(ctx context.Context, videoID string) (string, error)
}

// Extractor retrieves caption text for a video through an ordered strategy
// chain: watch-page scrape, standard timedtext, then auto-generated (ASR)
// timedtext. One attempt per strategy per call; no retries or backoff.
type Extractor struct {
	httpClient       *http.Client
	lang             string
	watchBaseURL     string
	timedTextBaseURL string
	strategies       []captionStrategy
}

func NewExtractor() *Extractor {
	e := &Extractor{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		lang:             "en",
		watchBaseURL:     defaultWatchBaseURL,
		timedTextBaseURL: defaultTimedTextBaseURL,
	}
	e.strategies = []captionStrategy{
		{name: "watch-page scrape", fn: e.scrapeWatchPage},
		{name: "timedtext", fn: func(ctx context.Context, videoID string) (string, error) {
			return e.fetchTimedText(ctx, videoID, "")
		}},
		{name: "timedtext asr", fn: func(ctx context.Context, videoID string) (string, error) {
			return e.fetchTimedText(ctx, videoID, "asr")
		}},
	}
	return e
}

// Extract runs the strategy chain. It never returns an error: when every
// strategy comes up empty the result carries Found=false and a notice naming
// the video.
func (e *Extractor) Extract(ctx context.Context, videoID string) models.CaptionResult {
	for _, strategy := range e.strategies {
		text, err := strategy.fn(ctx, videoID)
		if err != nil {
			log.Printf("Caption strategy %q failed for video %s: %v", strategy.name, videoID, err)
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		return models.CaptionResult{VideoID: videoID, Text: text, Found: true}
	}

	return models.CaptionResult{
		VideoID: videoID,
		Text:    CaptionsUnavailableNotice(videoID),
		Found:   false,
	}
}

// CaptionsUnavailableNotice is the text reported for a video whose captions
// could not be retrieved by any strategy.
func CaptionsUnavailableNotice(videoID string) string {
	return fmt.Sprintf("Could not retrieve captions for video %s. The video may not have captions available or they may be disabled by the creator.", videoID)
}
