// Package scheduler runs background jobs on cron schedules.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Pinger checks connectivity to a backing service.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheck pings the store on a schedule and logs when connectivity is
// lost or restored.
type HealthCheck struct {
	pinger  Pinger
	log     *logrus.Logger
	timeout time.Duration
	cron    *cron.Cron

	mu        sync.Mutex
	healthy   bool
	onRecover []func(ctx context.Context) error
}

// NewHealthCheck registers the ping job on schedule (standard cron syntax or
// @every). healthy is the state observed at startup; when it is false the first
// successful ping counts as a recovery.
func NewHealthCheck(pinger Pinger, log *logrus.Logger, schedule string, healthy bool) (*HealthCheck, error) {
	hc := &HealthCheck{
		pinger:  pinger,
		log:     log,
		timeout: 10 * time.Second,
		cron:    cron.New(),
		healthy: healthy,
	}
	if _, err := hc.cron.AddFunc(schedule, hc.Run); err != nil {
		return nil, fmt.Errorf("invalid health check schedule %q: %w", schedule, err)
	}
	return hc, nil
}

// OnRecover registers fn to run after connectivity comes back. Register hooks
// before Start.
func (hc *HealthCheck) OnRecover(fn func(ctx context.Context) error) {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	hc.onRecover = append(hc.onRecover, fn)
}

// Start begins running the job in the background.
func (hc *HealthCheck) Start() {
	hc.cron.Start()
}

// Stop halts scheduling and waits for a running check to finish.
func (hc *HealthCheck) Stop() {
	<-hc.cron.Stop().Done()
}

// Healthy reports the result of the latest check.
func (hc *HealthCheck) Healthy() bool {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	return hc.healthy
}

// Run performs one ping.
func (hc *HealthCheck) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), hc.timeout)
	defer cancel()
	err := hc.pinger.Ping(ctx)

	hc.mu.Lock()
	was := hc.healthy
	hc.healthy = err == nil
	hooks := hc.onRecover
	hc.mu.Unlock()

	switch {
	case err != nil && was:
		hc.log.Errorf("Database ping failed: %v", err)
	case err != nil:
		hc.log.Debugf("Database still unreachable: %v", err)
	case !was:
		hc.log.Info("Database connection restored")
		for _, fn := range hooks {
			if err := fn(ctx); err != nil {
				hc.log.Warnf("Recovery task failed: %v", err)
			}
		}
	default:
		hc.log.Debug("Database ping ok")
	}
}
