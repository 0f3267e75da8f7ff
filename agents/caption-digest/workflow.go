package captiondigest

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"caption-digest/agents/caption-digest/youtube"
	"caption-digest/internal/models"
	"caption-digest/shared/ai"
)

var (
	ErrMissingYouTubeKey = errors.New("YouTube API key is not set")
	ErrMissingSummaryKey = errors.New("summarization API key is not set")
)

const (
	noCaptionsShort    = "No captions available for the selected videos."
	noCaptionsDetailed = "The selected videos don't have available captions to summarize."
)

// Overridable for tests that pin the search window.
var timeNow = time.Now

type searcher interface {
	Search(ctx context.Context, query string, maxResults int64, publishedAfter string) ([]models.Video, error)
}

type captionExtractor interface {
	Extract(ctx context.Context, videoID string) models.CaptionResult
}

type trackResolver interface {
	ListTracks(ctx context.Context, videoID string) ([]models.CaptionTrack, error)
	DownloadTrack(ctx context.Context, track models.CaptionTrack, bearerToken string) (string, error)
}

// Workflow runs a full digest pass: search, per-video caption retrieval with
// an official-track fallback, aggregation, and summarization.
type Workflow struct {
	youtubeAPIKey string
	summaryAPIKey string
	bearerToken   string

	searcher   searcher
	extractor  captionExtractor
	tracks     trackResolver
	summarizer ai.Summarizer
}

func NewWorkflow(youtubeAPIKey, summaryAPIKey, bearerToken string, s searcher, e captionExtractor, t trackResolver, sum ai.Summarizer) *Workflow {
	return &Workflow{
		youtubeAPIKey: youtubeAPIKey,
		summaryAPIKey: summaryAPIKey,
		bearerToken:   bearerToken,
		searcher:      s,
		extractor:     e,
		tracks:        t,
		summarizer:    sum,
	}
}

// Run executes the digest for one search. A search failure is fatal; caption
// and summarization failures degrade the result instead of aborting it.
func (w *Workflow) Run(ctx context.Context, params models.SearchParameters) (*models.SearchResults, error) {
	if w.youtubeAPIKey == "" {
		return nil, ErrMissingYouTubeKey
	}
	if w.summaryAPIKey == "" {
		return nil, ErrMissingSummaryKey
	}

	publishedAfter := params.TimeFilter.PublishedAfter(timeNow())
	videos, err := w.searcher.Search(ctx, params.Query, int64(params.MaxResults), publishedAfter)
	if err != nil {
		return nil, fmt.Errorf("video search failed: %w", err)
	}

	// The API treats maxResults as a hint, not a promise.
	if len(videos) > params.MaxResults {
		videos = videos[:params.MaxResults]
	}

	results := &models.SearchResults{Videos: videos}
	if len(videos) == 0 {
		return results, nil
	}

	var aggregated strings.Builder
	var found int
	for i, video := range videos {
		log.Printf("Retrieving captions %d/%d: %s", i+1, len(videos), video.Title)

		result := w.extractor.Extract(ctx, video.ID)
		if !result.Found {
			result = w.officialTrackFallback(ctx, video.ID, params.UseOAuth)
		}
		if !result.Found {
			log.Printf("No captions found for video %s", video.ID)
			continue
		}

		found++
		fmt.Fprintf(&aggregated, "=== Video: %s ===\n%s\n\n", video.Title, result.Text)
	}

	results.CaptionsText = strings.TrimSpace(aggregated.String())

	if found == 0 {
		short := noCaptionsShort
		detailed := noCaptionsDetailed
		results.ShortSummary = &short
		results.DetailedSummary = &detailed
		return results, nil
	}

	content, err := w.summarizer.Summarize(ctx, results.CaptionsText, params.ModelID)
	if err != nil {
		short := "Error generating summary: " + err.Error()
		results.ShortSummary = &short
		return results, fmt.Errorf("summarization failed: %w", err)
	}

	summary := ai.ParseSummary(content)
	results.ShortSummary = &summary.Short
	results.DetailedSummary = &summary.Detailed
	results.VideoSummaries = &summary.PerVideo
	return results, nil
}

// officialTrackFallback tries the captions API after the unauthenticated
// strategies come up empty. Listing works with the API key alone; the bearer
// token only matters for the download itself.
func (w *Workflow) officialTrackFallback(ctx context.Context, videoID string, useOAuth bool) models.CaptionResult {
	missing := models.CaptionResult{
		VideoID: videoID,
		Text:    youtube.CaptionsUnavailableNotice(videoID),
	}
	if w.tracks == nil {
		return missing
	}

	tracks, err := w.tracks.ListTracks(ctx, videoID)
	if err != nil {
		log.Printf("Caption track listing failed for video %s: %v", videoID, err)
		return missing
	}
	if len(tracks) == 0 {
		return missing
	}

	youtube.SortTracks(tracks)

	bearer := ""
	if useOAuth {
		bearer = w.bearerToken
	}
	text, err := w.tracks.DownloadTrack(ctx, tracks[0], bearer)
	if err != nil {
		log.Printf("Caption track download failed for video %s: %v", videoID, err)
		return missing
	}
	if strings.TrimSpace(text) == "" {
		return missing
	}

	return models.CaptionResult{VideoID: videoID, Text: text, Found: true}
}
