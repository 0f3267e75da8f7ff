package models

// CaptionTrack describes one caption track listed by the official captions API.
type CaptionTrack struct {
	ID           string `json:"id"`
	Language     string `json:"language"`
	TrackKind    string `json:"track_kind"`
	IsAutoSynced bool   `json:"is_auto_synced"`
	Status       string `json:"status"`
}

// CaptionResult is the outcome of caption extraction for one video. Found
// distinguishes a video with empty captions from one where every strategy
// came up empty; in the latter case Text holds a human-readable notice.
type CaptionResult struct {
	VideoID string `json:"video_id"`
	Text    string `json:"text"`
	Found   bool   `json:"found"`
}

// Summary is the parsed three-section output of the summarization model.
// Every field is always populated; absent sections carry fallback text.
type Summary struct {
	Short    string `json:"short"`
	Detailed string `json:"detailed"`
	PerVideo string `json:"per_video"`
}
