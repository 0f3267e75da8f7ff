package youtube

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"caption-digest/internal/models"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const defaultCaptionsBaseURL = "https://www.googleapis.com/youtube/v3/captions"

// CaptionClient resolves official caption tracks: listing through the Data
// API and downloading through the track-id-keyed endpoint.
type CaptionClient struct {
	service    *youtube.Service
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewCaptionClient(ctx context.Context, apiKey string) (*CaptionClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("YouTube API key is required")
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &CaptionClient{
		service: service,
		apiKey:  apiKey,
		baseURL: defaultCaptionsBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// ListTracks lists the caption tracks of a video. The call is key-auth only;
// the bearer credential, when present, applies to downloads alone.
func (c *CaptionClient) ListTracks(ctx context.Context, videoID string) ([]models.CaptionTrack, error) {
	response, err := c.service.Captions.List([]string{"snippet"}, videoID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list caption tracks for video %s: %w", videoID, err)
	}

	tracks := make([]models.CaptionTrack, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Snippet == nil {
			continue
		}
		tracks = append(tracks, models.CaptionTrack{
			ID:           item.Id,
			Language:     item.Snippet.Language,
			TrackKind:    item.Snippet.TrackKind,
			IsAutoSynced: item.Snippet.IsAutoSynced,
			Status:       item.Snippet.Status,
		})
	}

	return tracks, nil
}

// DownloadTrack fetches one caption track's XML content and returns the plain
// text. The endpoint is undocumented for key-only access and may reject it;
// bearerToken, when non-empty, is attached as an Authorization header.
func (c *CaptionClient) DownloadTrack(ctx context.Context, track models.CaptionTrack, bearerToken string) (string, error) {
	url := fmt.Sprintf("%s/%s?key=%s", c.baseURL, track.ID, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create track download request: %w", err)
	}
	if bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+bearerToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download caption track %s: %w", track.ID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("caption track download returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read caption track body: %w", err)
	}

	return parseTimedTextXML(string(body))
}

// SortTracks orders tracks best-first: English before other languages, manual
// before auto-synced, "standard" kind before the rest. Stable, so upstream
// order breaks remaining ties.
func SortTracks(tracks []models.CaptionTrack) {
	sort.SliceStable(tracks, func(i, j int) bool {
		return trackSortKey(tracks[i]) < trackSortKey(tracks[j])
	})
}

func trackSortKey(t models.CaptionTrack) int {
	key := 0
	if t.Language != "en" {
		key |= 4
	}
	if t.IsAutoSynced {
		key |= 2
	}
	if t.TrackKind != "standard" {
		key |= 1
	}
	return key
}
