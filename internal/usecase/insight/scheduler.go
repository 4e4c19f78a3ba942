package insight

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler runs the insight job on a cron schedule. A tick that fires while
// the previous run is still going is skipped.
type Scheduler struct {
	cron   *cron.Cron
	ctx    context.Context
	cancel context.CancelFunc
	logger *zap.Logger
}

// NewScheduler registers svc.Run under schedule, interpreted in loc
func NewScheduler(svc Service, schedule string, loc *time.Location, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = time.Local
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithChain(cron.Recover(cronLogger{logger}), cron.SkipIfStillRunning(cronLogger{logger})),
		),
		ctx:    ctx,
		cancel: cancel,
		logger: logger,
	}

	_, err := s.cron.AddFunc(schedule, func() {
		// Run logs its own failures
		if _, err := svc.Run(s.ctx); err != nil {
			logger.Debug("scheduled insight run ended with error", zap.Error(err))
		}
	})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("invalid insight schedule %q: %w", schedule, err)
	}

	return s, nil
}

// Start begins firing the schedule in the background
func (s *Scheduler) Start() {
	s.cron.Start()
	for _, e := range s.cron.Entries() {
		s.logger.Info("insight job scheduled", zap.Time("next_run", e.Next))
	}
}

// Stop cancels any in-flight run and waits for it to return or for ctx to end
func (s *Scheduler) Stop(ctx context.Context) {
	s.cancel()
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.logger.Warn("insight job did not stop in time")
	}
}

// cronLogger routes cron's internal logging to zap
type cronLogger struct {
	l *zap.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Debug(msg, zap.Any("details", keysAndValues))
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Error(msg, zap.Error(err), zap.Any("details", keysAndValues))
}
