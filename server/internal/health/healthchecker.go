// Package health tracks whether the services the front-end depends on are reachable.
package health

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Checker is implemented by per-dependency probes.
type Checker interface {
	Name() string
	IsHealthy() bool
	Start(ctx context.Context, interval time.Duration)
}

// ServiceChecker folds dependency checkers into one service-level flag.
type ServiceChecker struct {
	healthy atomic.Bool
	deps    []Checker
	log     zerolog.Logger

	mu   sync.Mutex
	down []string
}

// NewServiceChecker returns a checker that reports unhealthy until its first evaluation.
func NewServiceChecker(log zerolog.Logger, deps ...Checker) *ServiceChecker {
	return &ServiceChecker{deps: deps, log: log}
}

// IsHealthy returns the cached service health.
func (h *ServiceChecker) IsHealthy() bool { return h.healthy.Load() }

// Down lists the dependencies that failed the last evaluation.
func (h *ServiceChecker) Down() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.down...)
}

// Start evaluates dependency health every interval until ctx is done.
func (h *ServiceChecker) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	h.evaluate()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.evaluate()
		}
	}
}

func (h *ServiceChecker) evaluate() {
	var down []string
	for _, c := range h.deps {
		if !c.IsHealthy() {
			down = append(down, c.Name())
		}
	}
	h.mu.Lock()
	h.down = down
	h.mu.Unlock()

	now := len(down) == 0
	if prev := h.healthy.Swap(now); prev == now {
		return
	}
	if now {
		h.log.Info().Msg("service health: UP")
	} else {
		h.log.Error().Strs("down", down).Msg("service health: DOWN")
	}
}
