// ABOUTME: Connectivity prober answering whether the network is reachable
// ABOUTME: Memoizes one HEAD probe result process-wide for a fixed window

package connectivity

import (
	"context"
	"sync"
	"time"

	"webfetch-api/core/domain"
	"webfetch-api/core/interfaces"
)

const (
	// DefaultProbeURL is an always-up endpoint
	DefaultProbeURL = "https://www.google.com"

	// DefaultTimeout bounds a single probe
	DefaultTimeout = 3 * time.Second

	// DefaultTTL is how long a probe result is reused
	DefaultTTL = 60 * time.Second
)

// Options configures a Prober
type Options struct {
	ProbeURL string
	Timeout  time.Duration
	TTL      time.Duration

	// Now overrides the clock; nil means time.Now
	Now func() time.Time
}

// Prober implements interfaces.ConnectivityChecker
type Prober struct {
	client interfaces.HTTPClient
	logger interfaces.Logger
	opts   Options

	// mu is held across a probe so concurrent callers share one result
	mu    sync.Mutex
	state *domain.ConnectivityState
}

// NewProber creates a prober issuing HEAD requests through client
func NewProber(client interfaces.HTTPClient, logger interfaces.Logger, opts Options) *Prober {
	if opts.ProbeURL == "" {
		opts.ProbeURL = DefaultProbeURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Prober{
		client: client,
		logger: logger,
		opts:   opts,
	}
}

// Check reports whether the probe endpoint answered with a status below 300.
// A result younger than the TTL is returned without probing again.
func (p *Prober) Check(ctx context.Context) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.opts.Now()
	if p.state != nil && now.Sub(p.state.CheckedAt) < p.opts.TTL {
		return p.state.IsConnected
	}

	connected := p.probe(ctx)
	p.state = &domain.ConnectivityState{IsConnected: connected, CheckedAt: now}
	return connected
}

func (p *Prober) probe(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, p.opts.Timeout)
	defer cancel()

	resp, err := p.client.Head(ctx, p.opts.ProbeURL)
	if err != nil {
		if p.logger != nil {
			p.logger.Debug("Connectivity probe failed", map[string]interface{}{
				"probe_url": p.opts.ProbeURL,
				"error":     err.Error(),
			})
		}
		return false
	}
	defer resp.Body().Close()

	return resp.StatusCode() < 300
}

// State returns the memoized probe result, if any
func (p *Prober) State() (domain.ConnectivityState, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == nil {
		return domain.ConnectivityState{}, false
	}
	return *p.state, true
}

// Reset forgets the memoized result so the next Check probes again
func (p *Prober) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = nil
}
