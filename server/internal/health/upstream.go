package health

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Pinger reports whether a remote dependency answers. HealthPing returns nil
// when it does.
type Pinger interface {
	HealthPing(ctx context.Context) error
}

// PingerFunc adapts a function to Pinger.
type PingerFunc func(ctx context.Context) error

// HealthPing calls f.
func (f PingerFunc) HealthPing(ctx context.Context) error { return f(ctx) }

const defaultProbeTimeout = 2 * time.Second

// UpstreamChecker probes one dependency through a Pinger.
type UpstreamChecker struct {
	name         string
	pinger       Pinger
	healthy      atomic.Bool
	log          zerolog.Logger
	probeTimeout time.Duration
}

// NewUpstreamChecker returns a checker that is unhealthy until its first successful probe.
func NewUpstreamChecker(name string, p Pinger, log zerolog.Logger, probeTimeout time.Duration) *UpstreamChecker {
	if probeTimeout <= 0 {
		probeTimeout = defaultProbeTimeout
	}
	return &UpstreamChecker{name: name, pinger: p, log: log, probeTimeout: probeTimeout}
}

// Name returns the checker name.
func (c *UpstreamChecker) Name() string { return c.name }

// IsHealthy returns the cached result of the last probe.
func (c *UpstreamChecker) IsHealthy() bool { return c.healthy.Load() }

// Start probes every interval until ctx is done.
func (c *UpstreamChecker) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	c.probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.probe(ctx)
		}
	}
}

func (c *UpstreamChecker) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()

	if err := c.pinger.HealthPing(probeCtx); err != nil {
		if ctx.Err() == nil {
			c.log.Error().Stack().
				Str("checker", c.name).
				Err(err).
				Msg("health check failed")
		}
		c.healthy.Store(false)
		return
	}
	c.healthy.Store(true)
}
