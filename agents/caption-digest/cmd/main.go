package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	captiondigest "caption-digest/agents/caption-digest"
	"caption-digest/internal/models"
	"caption-digest/shared/config"
	"caption-digest/shared/scheduler"
)

func main() {
	once := flag.Bool("once", false, "run a single digest and exit")
	query := flag.String("query", "", "search query (overrides digest.query)")
	max := flag.Int("max", 0, "maximum videos to digest (overrides digest.max_results)")
	window := flag.String("window", "", "publish window: 24h, 7d, 30d, 1y or any (overrides digest.time_filter)")
	model := flag.String("model", "", "summarization model ID (overrides summarizer.model)")
	oauth := flag.Bool("oauth", false, "attach the OAuth credential to caption track downloads")
	listModels := flag.Bool("models", false, "list known summarization models and exit")
	flag.Parse()

	if *listModels {
		printModels()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	applyOverrides(cfg, *query, *max, *window, *model, *oauth)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	agent := captiondigest.NewAgent(cfg)

	if *once {
		if err := agent.Initialize(); err != nil {
			log.Fatalf("Failed to initialize agent: %v", err)
		}
		runOnce(ctx, agent, cfg)
		return
	}

	fmt.Println("Starting scheduler...")
	if err := scheduler.New(cfg, agent).Start(ctx); err != nil {
		log.Fatalf("Scheduler failed: %v", err)
	}
}

func runOnce(ctx context.Context, agent *captiondigest.Agent, cfg *config.Config) {
	filter, err := models.ParseTimeFilter(cfg.Digest.TimeFilter)
	if err != nil {
		log.Fatalf("Invalid time filter: %v", err)
	}

	params := models.SearchParameters{
		Query:      cfg.Digest.Query,
		TimeFilter: filter,
		MaxResults: cfg.Digest.MaxResults,
		ModelID:    cfg.Summarizer.Model,
		UseOAuth:   cfg.Digest.UseOAuth,
	}

	results, err := agent.Digest(ctx, params)
	if err != nil && results == nil {
		log.Fatalf("Digest run failed: %v", err)
	}

	fmt.Printf("Found %d videos for %q (%s)\n\n", len(results.Videos), params.Query, filter)
	for _, video := range results.Videos {
		fmt.Printf("  %s - %s\n", video.ID, video.Title)
	}

	printSection("SHORT SUMMARY", results.ShortSummary)
	printSection("DETAILED SUMMARY", results.DetailedSummary)
	printSection("VIDEO SUMMARIES", results.VideoSummaries)

	if err != nil {
		log.Fatalf("Digest run failed: %v", err)
	}
}

func printSection(title string, content *string) {
	if content == nil {
		return
	}
	fmt.Printf("\n=== %s ===\n%s\n", title, *content)
}

func applyOverrides(cfg *config.Config, query string, max int, window, model string, oauth bool) {
	if query != "" {
		cfg.Digest.Query = query
	}
	if max > 0 {
		cfg.Digest.MaxResults = max
	}
	if window != "" {
		cfg.Digest.TimeFilter = window
	}
	if model != "" {
		cfg.Summarizer.Model = model
	}
	if oauth {
		cfg.Digest.UseOAuth = true
	}
}

func printModels() {
	fmt.Println("Known summarization models:")
	for _, m := range models.KnownModels {
		tier := "free"
		if m.IsPaid {
			tier = "paid"
		}
		fmt.Printf("  %-45s %s, %s context, %s\n", m.ID, m.ProviderName, m.ContextWindow, tier)
	}
}
