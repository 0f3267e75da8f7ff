package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTimedTextURL(t *testing.T) {
	tests := []struct {
		name   string
		kind   string
		format string
		want   string
	}{
		{"Standard json3", "", "json3", "https://tt.example/api?fmt=json3&lang=en&v=abc123"},
		{"Standard xml", "", "", "https://tt.example/api?lang=en&v=abc123"},
		{"ASR json3", "asr", "json3", "https://tt.example/api?fmt=json3&kind=asr&lang=en&v=abc123"},
		{"ASR xml", "asr", "", "https://tt.example/api?kind=asr&lang=en&v=abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := timedTextURL("https://tt.example/api", "abc123", "en", tt.kind, tt.format)
			if got != tt.want {
				t.Errorf("timedTextURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseJSON3Captions(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "Simple events",
			content: `{"events":[{"segs":[{"text":"hello"}]},{"segs":[{"text":"world"}]}]}`,
			want:    "hello world",
		},
		{
			name:    "Escaped newline becomes space",
			content: `{"text":"line one\nline two"}`,
			want:    "line one line two",
		},
		{
			name:    "Escaped backslash collapsed",
			content: `{"text":"back\\slash"}`,
			want:    `back\slash`,
		},
		{
			name:    "Carriage returns dropped",
			content: `{"text":"a\rb"}`,
			want:    "ab",
		},
		{
			name:    "No text fields",
			content: `{"events":[]}`,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseJSON3Captions(tt.content); got != tt.want {
				t.Errorf("parseJSON3Captions() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseTimedTextXML(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantErr bool
	}{
		{
			name:    "Two text elements",
			content: `<?xml version="1.0"?><transcript><text start="0" dur="2"> first line </text><text start="2" dur="3">second line</text></transcript>`,
			want:    "first line second line",
		},
		{
			name:    "Entities decoded",
			content: `<transcript><text>Tom &amp; Jerry</text></transcript>`,
			want:    "Tom & Jerry",
		},
		{
			name:    "Empty document",
			content: `<transcript></transcript>`,
			want:    "",
		},
		{
			name:    "Blank elements skipped",
			content: `<transcript><text>  </text><text>kept</text></transcript>`,
			want:    "kept",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTimedTextXML(tt.content)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseTimedTextXML() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseTimedTextXML() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFetchTimedTextXMLFallback(t *testing.T) {
	// json3 form 404s; the retry without fmt returns XML.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("fmt") == "json3" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`<transcript><text>from xml</text></transcript>`))
	}))
	defer server.Close()

	e := NewExtractor()
	e.timedTextBaseURL = server.URL

	text, err := e.fetchTimedText(context.Background(), "vid1", "")
	if err != nil {
		t.Fatalf("fetchTimedText() failed: %v", err)
	}
	if text != "from xml" {
		t.Errorf("fetchTimedText() = %q, want %q", text, "from xml")
	}
}

func TestFetchTimedTextEmptyJSON3DoesNotRetryXML(t *testing.T) {
	var xmlHits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("fmt") == "json3" {
			w.Write([]byte(`{}`))
			return
		}
		xmlHits++
		w.Write([]byte(`<transcript><text>xml</text></transcript>`))
	}))
	defer server.Close()

	e := NewExtractor()
	e.timedTextBaseURL = server.URL

	text, err := e.fetchTimedText(context.Background(), "vid1", "")
	if err != nil {
		t.Fatalf("fetchTimedText() failed: %v", err)
	}
	if text != "" {
		t.Errorf("fetchTimedText() = %q, want blank", text)
	}
	if xmlHits != 0 {
		t.Errorf("XML endpoint was hit %d times after a successful json3 fetch", xmlHits)
	}
}

func TestFetchTimedTextBothFormsFail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer server.Close()

	e := NewExtractor()
	e.timedTextBaseURL = server.URL

	if _, err := e.fetchTimedText(context.Background(), "vid1", ""); err == nil {
		t.Error("fetchTimedText() succeeded, want error when both forms fail")
	}
}
