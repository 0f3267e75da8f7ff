package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	defaultWatchBaseURL = "https://www.youtube.com/watch"

	// Desktop browser user agent; the watch page serves a reduced payload
	// without the embedded player response otherwise.
	watchPageUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	trackListMarker = `"playerCaptionsTracklistRenderer"`
	captionsStart   = `"captions":{`
	captionsEnd     = `"videoDetails"`
)

var markupTagPattern = regexp.MustCompile(`<[^>]*>`)

// captionsPayload mirrors the slice of the embedded player response that
// carries the track list. Only the first track's base URL is consumed.
type captionsPayload struct {
	PlayerCaptionsTracklistRenderer struct {
		CaptionTracks []struct {
			BaseURL      string `json:"baseUrl"`
			LanguageCode string `json:"languageCode"`
		} `json:"captionTracks"`
	} `json:"playerCaptionsTracklistRenderer"`
}

// scrapeWatchPage fetches the public watch page and pulls caption text out of
// the embedded player response. The page is never decoded as one JSON
// document; only the bounded captions fragment is.
func (e *Extractor) scrapeWatchPage(ctx context.Context, videoID string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.watchBaseURL+"?v="+videoID, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create watch page request: %w", err)
	}
	req.Header.Set("User-Agent", watchPageUserAgent)

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch watch page for video %s: %w", videoID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("watch page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse watch page HTML: %w", err)
	}

	var baseURL string
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		content := s.Text()
		if !strings.Contains(content, trackListMarker) {
			return true
		}
		url, err := firstTrackBaseURL(content)
		if err != nil {
			log.Printf("Warning: Failed to parse caption track list for video %s: %v", videoID, err)
			return true
		}
		baseURL = url
		return false
	})

	if baseURL == "" {
		return "", fmt.Errorf("no caption track list found on watch page for video %s", videoID)
	}

	body, err := e.get(ctx, baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch caption track: %w", err)
	}

	return cleanCaptionMarkup(body), nil
}

// firstTrackBaseURL extracts the first caption track URL from a script body.
// The captions fragment is cut out by its known delimiters and only that
// fragment is JSON-decoded.
func firstTrackBaseURL(script string) (string, error) {
	start := strings.Index(script, captionsStart)
	if start < 0 {
		return "", fmt.Errorf("captions object not found")
	}
	fragment := script[start+len(captionsStart):]

	if end := strings.Index(fragment, captionsEnd); end >= 0 {
		fragment = fragment[:end]
	}
	fragment = "{" + strings.TrimRight(strings.TrimSpace(fragment), ",") + "}"

	// The fragment keeps the captions object's own closing brace, so a
	// trailing token may follow the decoded value; Decode stops after the
	// first complete object.
	var payload captionsPayload
	if err := json.NewDecoder(strings.NewReader(fragment)).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode captions fragment: %w", err)
	}

	tracks := payload.PlayerCaptionsTracklistRenderer.CaptionTracks
	if len(tracks) == 0 || tracks[0].BaseURL == "" {
		return "", fmt.Errorf("caption track list is empty")
	}
	return tracks[0].BaseURL, nil
}

// cleanCaptionMarkup strips tags from a timedtext document and undoes the XML
// entity escapes, leaving plain caption text.
func cleanCaptionMarkup(content string) string {
	text := markupTagPattern.ReplaceAllString(content, " ")
	text = strings.ReplaceAll(text, "&amp;", "&")
	text = strings.ReplaceAll(text, "&quot;", `"`)
	text = strings.ReplaceAll(text, "&#39;", "'")
	text = strings.ReplaceAll(text, "  ", " ")
	return strings.TrimSpace(text)
}
