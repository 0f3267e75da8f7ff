package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"caption-digest/shared/config"
	"caption-digest/shared/monitoring"

	"github.com/robfig/cron/v3"
)

// Agent is a unit of scheduled work. RunOnce returns a human-readable summary
// of what the run did; a non-nil error with a non-empty summary signals a
// partial failure (some work completed), while an error with an empty summary
// is critical.
type Agent interface {
	Name() string
	Initialize() error
	RunOnce(ctx context.Context) (string, error)
}

// Scheduler runs an agent on a cron schedule and reports outcomes to the
// monitor backing the health endpoints.
type Scheduler struct {
	config  *config.Config
	monitor *monitoring.Monitor
	agent   Agent
	cron    *cron.Cron
}

func New(cfg *config.Config, agent Agent) *Scheduler {
	return &Scheduler{
		config:  cfg,
		monitor: monitoring.NewMonitor(),
		agent:   agent,
		// Prevent overlapping runs
		cron: cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	if err := s.agent.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize agent: %w", err)
	}

	healthServer := monitoring.NewHealthServer(s.monitor, fmt.Sprintf("%d", s.config.Monitoring.HealthPort))
	healthServer.Start()

	_, err := s.cron.AddFunc(s.config.Schedule, func() {
		if err := s.RunOnce(ctx); err != nil {
			log.Printf("Error running scheduled job for %s: %v", s.agent.Name(), err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	log.Printf("Scheduler started for %s with schedule: %s", s.agent.Name(), s.config.Schedule)
	s.cron.Start()

	<-ctx.Done()
	log.Printf("Scheduler stopped for %s", s.agent.Name())
	s.cron.Stop()
	return ctx.Err()
}

func (s *Scheduler) RunOnce(ctx context.Context) error {
	startTime := time.Now()
	agentName := s.agent.Name()

	log.Printf("Starting %s run...", agentName)

	summary, err := s.agent.RunOnce(ctx)
	duration := time.Since(startTime)

	if err != nil {
		if summary != "" {
			s.monitor.RecordPartialFailure(fmt.Errorf("%s partial failure: %w", agentName, err), duration)
			return nil
		}
		s.monitor.RecordCriticalFailure(fmt.Errorf("%s failed: %w", agentName, err), duration)
		return fmt.Errorf("%s run failed: %w", agentName, err)
	}

	s.monitor.RecordSuccess(summary, duration)
	return nil
}
