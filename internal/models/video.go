package models

import "time"

// Video is one search hit from the YouTube Data API.
type Video struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ThumbnailURL string    `json:"thumbnail_url"`
	PublishedAt  time.Time `json:"published_at"`
	ChannelTitle string    `json:"channel_title"`
}

// SearchParameters describes one search-and-summarize request.
type SearchParameters struct {
	Query      string     `json:"query"`
	TimeFilter TimeFilter `json:"time_filter"`
	MaxResults int        `json:"max_results"`
	ModelID    string     `json:"model_id"`
	UseOAuth   bool       `json:"use_oauth"`
}

// SearchResults is the final output of one workflow run. The summary fields
// are nil only when the workflow never produced summary text for that field.
type SearchResults struct {
	Videos          []Video `json:"videos"`
	CaptionsText    string  `json:"captions_text"`
	ShortSummary    *string `json:"short_summary,omitempty"`
	DetailedSummary *string `json:"detailed_summary,omitempty"`
	VideoSummaries  *string `json:"video_summaries,omitempty"`
}
