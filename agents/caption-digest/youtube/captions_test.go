package youtube

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"caption-digest/internal/models"
)

func track(lang string, autoSynced bool, kind string) models.CaptionTrack {
	return models.CaptionTrack{
		ID:           fmt.Sprintf("%s-%v-%s", lang, autoSynced, kind),
		Language:     lang,
		TrackKind:    kind,
		IsAutoSynced: autoSynced,
	}
}

func TestSortTracks(t *testing.T) {
	enManualStandard := track("en", false, "standard")
	frManualStandard := track("fr", false, "standard")
	enAutoStandard := track("en", true, "standard")
	enManualASR := track("en", false, "asr")

	// The English, manual, standard-kind track must sort first in any
	// permutation of the set that contains one.
	permutations := [][]models.CaptionTrack{
		{enManualStandard, frManualStandard, enAutoStandard},
		{frManualStandard, enManualStandard, enAutoStandard},
		{enAutoStandard, frManualStandard, enManualStandard},
		{frManualStandard, enAutoStandard, enManualStandard},
		{enManualASR, enAutoStandard, enManualStandard, frManualStandard},
	}

	for i, perm := range permutations {
		t.Run(fmt.Sprintf("Permutation%d", i), func(t *testing.T) {
			tracks := make([]models.CaptionTrack, len(perm))
			copy(tracks, perm)
			SortTracks(tracks)
			if tracks[0].ID != enManualStandard.ID {
				t.Errorf("first track after sort = %s, want %s", tracks[0].ID, enManualStandard.ID)
			}
		})
	}

	t.Run("PriorityOrder", func(t *testing.T) {
		// Language outranks sync mode, which outranks kind.
		tracks := []models.CaptionTrack{
			track("fr", false, "standard"),
			track("en", true, "asr"),
			track("en", true, "standard"),
			track("en", false, "asr"),
		}
		SortTracks(tracks)

		wantOrder := []string{
			"en-false-asr",
			"en-true-standard",
			"en-true-asr",
			"fr-false-standard",
		}
		for i, want := range wantOrder {
			if tracks[i].ID != want {
				t.Errorf("tracks[%d] = %s, want %s", i, tracks[i].ID, want)
			}
		}
	})

	t.Run("StableOnTies", func(t *testing.T) {
		first := track("en", false, "standard")
		second := track("en", false, "standard")
		second.ID = "second"
		tracks := []models.CaptionTrack{first, second}
		SortTracks(tracks)
		if tracks[0].ID != first.ID {
			t.Error("equal tracks were reordered")
		}
	})
}

func TestDownloadTrack(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if r.URL.Query().Get("key") != "yt-key" {
			t.Errorf("download missing API key, query = %s", r.URL.RawQuery)
		}
		fmt.Fprint(w, `<transcript><text>official track text</text></transcript>`)
	}))
	defer server.Close()

	client := &CaptionClient{
		apiKey:     "yt-key",
		baseURL:    server.URL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}

	t.Run("WithoutBearer", func(t *testing.T) {
		text, err := client.DownloadTrack(context.Background(), track("en", false, "standard"), "")
		if err != nil {
			t.Fatalf("DownloadTrack() failed: %v", err)
		}
		if text != "official track text" {
			t.Errorf("DownloadTrack() = %q", text)
		}
		if gotAuth != "" {
			t.Errorf("Authorization header sent without a token: %q", gotAuth)
		}
	})

	t.Run("WithBearer", func(t *testing.T) {
		_, err := client.DownloadTrack(context.Background(), track("en", false, "standard"), "oauth-token")
		if err != nil {
			t.Fatalf("DownloadTrack() failed: %v", err)
		}
		if gotAuth != "Bearer oauth-token" {
			t.Errorf("Authorization = %q, want Bearer oauth-token", gotAuth)
		}
	})
}

func TestDownloadTrackErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer server.Close()

	client := &CaptionClient{
		apiKey:     "yt-key",
		baseURL:    server.URL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}

	if _, err := client.DownloadTrack(context.Background(), track("en", false, "standard"), ""); err == nil {
		t.Error("DownloadTrack() succeeded on a 403 response")
	}
}
