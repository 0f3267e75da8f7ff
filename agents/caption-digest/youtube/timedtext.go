package youtube

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

const defaultTimedTextBaseURL = "https://www.youtube.com/api/timedtext"

// json3TextPattern pulls the repeated "text":"..." fields out of the json3
// payload. Deliberately a regex, not a strict JSON decode: the format is
// undocumented and adjacent fields vary between videos.
var json3TextPattern = regexp.MustCompile(`"text":"(.*?)"`)

// timedTextURL builds the undocumented endpoint URL. kind is "" for standard
// captions or "asr" for auto-generated ones; format is "json3" or "" for the
// default XML document.
func timedTextURL(baseURL, videoID, lang, kind, format string) string {
	params := url.Values{}
	params.Set("lang", lang)
	params.Set("v", videoID)
	if kind != "" {
		params.Set("kind", kind)
	}
	if format != "" {
		params.Set("fmt", format)
	}
	return baseURL + "?" + params.Encode()
}

// fetchTimedText tries the json3 form first and retries the same endpoint
// without the format parameter (XML) when the fetch itself fails. A fetch
// that succeeds with an empty payload yields blank text without the retry.
func (e *Extractor) fetchTimedText(ctx context.Context, videoID, kind string) (string, error) {
	body, err := e.get(ctx, timedTextURL(e.timedTextBaseURL, videoID, e.lang, kind, "json3"))
	if err == nil {
		return parseJSON3Captions(body), nil
	}

	body, xmlErr := e.get(ctx, timedTextURL(e.timedTextBaseURL, videoID, e.lang, kind, ""))
	if xmlErr != nil {
		return "", fmt.Errorf("timedtext fetch failed (json3: %v): %w", err, xmlErr)
	}
	return parseTimedTextXML(body)
}

func (e *Extractor) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	return string(body), nil
}

// parseJSON3Captions extracts and joins the caption text fields, undoing the
// JSON string escapes the payload uses.
func parseJSON3Captions(content string) string {
	var b strings.Builder
	for _, match := range json3TextPattern.FindAllStringSubmatch(content, -1) {
		text := match[1]
		text = strings.ReplaceAll(text, `\n`, " ")
		text = strings.ReplaceAll(text, `\"`, `"`)
		text = strings.ReplaceAll(text, `\r`, "")
		text = strings.ReplaceAll(text, `\\`, `\`)
		b.WriteString(text)
		b.WriteString(" ")
	}
	return strings.TrimSpace(b.String())
}

// parseTimedTextXML streams over the XML document and joins the trimmed
// contents of every <text> element with single spaces.
func parseTimedTextXML(content string) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(content))
	// Caption documents declare no charset and occasionally carry bare
	// entities; read them as-is.
	decoder.Strict = false

	var b strings.Builder
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse caption XML: %w", err)
		}

		start, ok := token.(xml.StartElement)
		if !ok || start.Name.Local != "text" {
			continue
		}

		var text string
		if err := decoder.DecodeElement(&text, &start); err != nil {
			return "", fmt.Errorf("failed to decode caption text element: %w", err)
		}
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			b.WriteString(trimmed)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String()), nil
}
