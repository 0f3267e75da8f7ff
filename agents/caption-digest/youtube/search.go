// Package youtube implements the video search client, the multi-strategy
// caption extraction engine, and the official caption track resolver.
package youtube

import (
	"context"
	"fmt"
	"log"
	"time"

	"caption-digest/internal/models"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// SearchClient wraps the YouTube Data API v3 search surface.
type SearchClient struct {
	service *youtube.Service
}

func NewSearchClient(ctx context.Context, apiKey string) (*SearchClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("YouTube API key is required")
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &SearchClient{service: service}, nil
}

// Search runs one first-page video search. Items that are not videos
// (channel or playlist hits) are filtered out, not treated as errors.
// publishedAfter is an RFC 3339 lower bound, or empty for no bound.
func (c *SearchClient) Search(ctx context.Context, query string, maxResults int64, publishedAfter string) ([]models.Video, error) {
	call := c.service.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(maxResults).
		Context(ctx)
	if publishedAfter != "" {
		call = call.PublishedAfter(publishedAfter)
	}

	response, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to search videos: %w", err)
	}

	videos := make([]models.Video, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}

		video := models.Video{
			ID:           item.Id.VideoId,
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			ChannelTitle: item.Snippet.ChannelTitle,
		}
		if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.High != nil {
			video.ThumbnailURL = item.Snippet.Thumbnails.High.Url
		}
		if publishedAt, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
			video.PublishedAt = publishedAt
		}

		videos = append(videos, video)
	}

	log.Printf("Search for %q returned %d items (%d videos)", query, len(response.Items), len(videos))

	return videos, nil
}
