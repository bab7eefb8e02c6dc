package scheduler

import (
	"context"
	"fmt"
	"time"

	datasource "stock-backend/src/data_source"
	"stock-backend/src/helpers"
	"stock-backend/src/interfaces"
	"stock-backend/src/logger"
	"stock-backend/src/models"

	"github.com/robfig/cron/v3"
)

// Scheduler owns the recurring jobs: quote polling, the daily cache reset and
// the optional index reload.
type Scheduler struct {
	Cron   *cron.Cron
	Poller *datasource.Poller
	Index  interfaces.IIndexLoader // optional
	Config *models.MConfig
	Errors *helpers.ErrorHandler
	Logger *logger.Logger
	Ctx    context.Context
}

// -----------------------------------------------------------------------------

func NewScheduler(
	ctx context.Context,
	cfg *models.MConfig,
	poller *datasource.Poller,
	index interfaces.IIndexLoader,
	log *logger.Logger,
) (*Scheduler, error) {
	loc, err := time.LoadLocation(cfg.Schedule.Timezone)
	if err != nil {
		return nil, fmt.Errorf("schedule timezone: %w", err)
	}

	named := log.Named("Scheduler")
	adapter := cronLogger{named}
	return &Scheduler{
		Cron: cron.New(
			cron.WithSeconds(),
			cron.WithLocation(loc),
			cron.WithLogger(adapter),
			cron.WithChain(cron.Recover(adapter), cron.SkipIfStillRunning(adapter)),
		),
		Poller: poller,
		Index:  index,
		Config: cfg,
		Errors: helpers.NewErrorHandler(named),
		Logger: named,
		Ctx:    ctx,
	}, nil
}

// -----------------------------------------------------------------------------

// RegisterAll adds the poll, reset and (if configured) index reload jobs.
func (s *Scheduler) RegisterAll() error {
	every := fmt.Sprintf("@every %ds", s.Config.DataSource.UpdateIntervalSeconds)
	if _, err := s.Cron.AddFunc(every, s.pollJob); err != nil {
		return fmt.Errorf("register poll job: %w", err)
	}
	if _, err := s.Cron.AddFunc(s.Config.Schedule.ResetCron, s.resetJob); err != nil {
		return fmt.Errorf("register reset job: %w", err)
	}
	if s.Config.Schedule.IndexReloadCron != "" && s.Index != nil {
		if _, err := s.Cron.AddFunc(s.Config.Schedule.IndexReloadCron, s.reloadJob); err != nil {
			return fmt.Errorf("register index reload job: %w", err)
		}
	}
	return nil
}

// -----------------------------------------------------------------------------

func (s *Scheduler) Start() {
	s.Cron.Start()
	s.Logger.Info("Scheduler started with %d jobs", len(s.Cron.Entries()))
}

// -----------------------------------------------------------------------------

// Stop prevents new runs and waits up to wait for running jobs.
func (s *Scheduler) Stop(wait time.Duration) {
	done := s.Cron.Stop()
	select {
	case <-done.Done():
		s.Logger.Info("Scheduler stopped")
	case <-time.After(wait):
		s.Logger.Warning("Scheduler stop timed out after %s, jobs still running", wait)
	}
}

// -----------------------------------------------------------------------------
// Jobs
// -----------------------------------------------------------------------------

func (s *Scheduler) pollJob() {
	res := s.Poller.Poll(s.Ctx)
	if n := len(res.Failed); n > 0 {
		s.Errors.Handle(fmt.Errorf("%d of %d symbols failed", n, len(s.Poller.Symbols)), "poll job")
	}
}

func (s *Scheduler) resetJob() {
	s.Poller.Reset()
}

func (s *Scheduler) reloadJob() {
	if err := s.Index.Load(s.Ctx); err != nil {
		s.Errors.Handle(err, "scheduled index reload")
		return
	}
	if err := s.Index.LoadGraph(s.Ctx); err != nil {
		s.Errors.Handle(err, "scheduled graph refresh")
	}
}

// -----------------------------------------------------------------------------

// cronLogger routes cron's own messages through the application logger.
type cronLogger struct {
	log *logger.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.log.Debug("cron: %s %v", msg, keysAndValues)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.log.Error("cron: %s: %v %v", msg, err, keysAndValues)
}
