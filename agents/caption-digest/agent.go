// Package captiondigest searches YouTube for recent videos on a standing
// query, retrieves their captions, and turns them into a summarized digest.
package captiondigest

import (
	"context"
	"fmt"
	"log"
	"time"

	"caption-digest/agents/caption-digest/youtube"
	"caption-digest/internal/models"
	"caption-digest/shared/ai"
	"caption-digest/shared/config"
	"caption-digest/shared/email"
	"caption-digest/shared/storage"
)

// Agent wires the digest workflow into the scheduler: each run executes the
// configured standing query and emails a digest of videos not seen before.
type Agent struct {
	config      *config.Config
	workflow    *Workflow
	emailSender *email.Sender
	tracker     *storage.DigestTracker
}

func NewAgent(cfg *config.Config) *Agent {
	return &Agent{config: cfg}
}

func (a *Agent) Name() string {
	return "Caption Digest"
}

func (a *Agent) Initialize() error {
	log.Printf("Initializing %s...", a.Name())
	ctx := context.Background()

	if a.workflow == nil {
		searchClient, err := youtube.NewSearchClient(ctx, a.config.YouTube.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create search client: %w", err)
		}

		captionClient, err := youtube.NewCaptionClient(ctx, a.config.YouTube.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create caption client: %w", err)
		}

		summarizer, err := a.buildSummarizer(ctx)
		if err != nil {
			return err
		}

		a.workflow = NewWorkflow(
			a.config.YouTube.APIKey,
			a.config.SummarizerAPIKey(),
			a.bearerToken(),
			searchClient,
			youtube.NewExtractor(),
			captionClient,
			summarizer,
		)
		log.Println("Digest workflow initialized")
	}

	if a.emailSender == nil {
		a.emailSender = email.NewSender(&a.config.Email)
		log.Println("Email sender initialized")
	}

	if a.tracker == nil {
		// Remember digested videos for 7 days to avoid resending them.
		tracker, err := storage.NewDigestTracker("data", 7*24*time.Hour)
		if err != nil {
			return fmt.Errorf("failed to create digest tracker: %w", err)
		}
		a.tracker = tracker
		log.Printf("Digest tracker initialized (%d videos tracked)", tracker.Count())
	}

	return nil
}

func (a *Agent) buildSummarizer(ctx context.Context) (ai.Summarizer, error) {
	switch a.config.Summarizer.Provider {
	case "gemini":
		client, err := ai.NewGeminiClient(ctx, a.config.Summarizer.GeminiAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return ai.NewOpenRouterClient(a.config.Summarizer.OpenRouterAPIKey, ai.OpenRouterOptions{
			BaseURL:  a.config.Summarizer.BaseURL,
			Referer:  a.config.Summarizer.Referer,
			AppTitle: a.config.Summarizer.AppTitle,
		}), nil
	}
}

// bearerToken resolves the credential attached to official caption track
// downloads: a saved OAuth access token when one exists, otherwise the raw
// configured client ID.
func (a *Agent) bearerToken() string {
	if a.config.YouTube.TokenFile != "" {
		if tok, err := youtube.TokenFromFile(a.config.YouTube.TokenFile); err == nil && tok.AccessToken != "" {
			return tok.AccessToken
		}
	}
	return a.config.YouTube.OAuthClientID
}

// RunOnce executes the standing query once. The returned summary describes the
// run for monitoring; a non-nil error alongside a non-empty summary marks a
// partial failure (captions retrieved but summarization failed).
func (a *Agent) RunOnce(ctx context.Context) (string, error) {
	filter, err := models.ParseTimeFilter(a.config.Digest.TimeFilter)
	if err != nil {
		return "", err
	}

	params := models.SearchParameters{
		Query:      a.config.Digest.Query,
		TimeFilter: filter,
		MaxResults: a.config.Digest.MaxResults,
		ModelID:    a.config.Summarizer.Model,
		UseOAuth:   a.config.Digest.UseOAuth,
	}

	results, runErr := a.workflow.Run(ctx, params)
	if runErr != nil && results == nil {
		return "", runErr
	}

	newVideos := a.filterNewVideos(results.Videos)
	log.Printf("Digest run found %d videos (%d new)", len(results.Videos), len(newVideos))

	summary := fmt.Sprintf("%d videos found, %d new", len(results.Videos), len(newVideos))
	if runErr != nil {
		return summary, runErr
	}

	if len(newVideos) == 0 {
		log.Println("No new videos, skipping digest email")
		return summary + ", no digest sent", nil
	}

	sent := false
	if a.config.Email.Enabled {
		report := &models.DigestReport{
			Query:  params.Query,
			Date:   time.Now(),
			Videos: newVideos,
		}
		if results.ShortSummary != nil {
			report.ShortSummary = *results.ShortSummary
		}
		if results.DetailedSummary != nil {
			report.DetailedSummary = *results.DetailedSummary
		}
		if results.VideoSummaries != nil {
			report.VideoSummaries = *results.VideoSummaries
		}

		if err := a.emailSender.SendDigest(report); err != nil {
			return summary, fmt.Errorf("failed to send digest email: %w", err)
		}
		log.Println("Digest email sent")
		sent = true
	}

	ids := make([]string, len(newVideos))
	for i, video := range newVideos {
		ids[i] = video.ID
	}
	if err := a.tracker.MarkDigested(ids); err != nil {
		log.Printf("Warning: failed to mark videos as digested: %v", err)
	}

	if sent {
		return summary + ", digest sent", nil
	}
	return summary + ", email disabled", nil
}

// Digest runs the workflow for an ad-hoc set of parameters without touching
// the tracker or sending email. Initialize must have been called.
func (a *Agent) Digest(ctx context.Context, params models.SearchParameters) (*models.SearchResults, error) {
	return a.workflow.Run(ctx, params)
}

func (a *Agent) filterNewVideos(videos []models.Video) []models.Video {
	var fresh []models.Video
	for _, video := range videos {
		if a.tracker.IsDigested(video.ID) {
			continue
		}
		fresh = append(fresh, video)
	}
	return fresh
}
