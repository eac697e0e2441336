// Package health serves liveness and readiness probes.
//
// Every probe runs in its own goroutine. A probe flips to unhealthy after
// FailureThreshold consecutive failures and back after SuccessThreshold
// consecutive successes.
package health

import (
	"context"
	"net/http"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"
)

// CheckFunc returns nil when the checked component is healthy.
type CheckFunc func(ctx context.Context) error

// Thresholds control probe flapping.
type Thresholds struct {
	Failure int
	Success int
}

// DefaultThresholds are used by AddLivenessCheck and AddReadinessCheck.
var DefaultThresholds = Thresholds{Failure: 3, Success: 1}

type probe struct {
	name       string
	timeout    time.Duration
	check      CheckFunc
	thresholds Thresholds

	healthy atomic.Bool
	lastErr atomic.Pointer[error]

	// Owned by the probe goroutine.
	fails int
	oks   int
}

func newProbe(name string, timeout time.Duration, check CheckFunc, th Thresholds) *probe {
	if th.Failure <= 0 {
		th.Failure = DefaultThresholds.Failure
	}
	if th.Success <= 0 {
		th.Success = DefaultThresholds.Success
	}
	p := &probe{name: name, timeout: timeout, check: check, thresholds: th}
	p.healthy.Store(true)
	return p
}

// run executes the check once. It reports whether the health state changed.
func (p *probe) run(ctx context.Context) (changed bool) {
	checkCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err := p.check(checkCtx)
	p.lastErr.Store(&err)

	was := p.healthy.Load()
	if err != nil {
		p.oks = 0
		p.fails++
		if p.fails >= p.thresholds.Failure {
			p.healthy.Store(false)
		}
	} else {
		p.fails = 0
		p.oks++
		if p.oks >= p.thresholds.Success {
			p.healthy.Store(true)
		}
	}
	return was != p.healthy.Load()
}

// failure returns the reason the probe is unhealthy, or "".
func (p *probe) failure() string {
	if p.healthy.Load() {
		return ""
	}
	if e := p.lastErr.Load(); e != nil && *e != nil {
		return (*e).Error()
	}
	return "check is unhealthy"
}

func (p *probe) loop(ctx context.Context, interval time.Duration) {
	lg := zctx.From(ctx).With(zap.String("check", p.name))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if p.run(ctx) {
			if reason := p.failure(); reason != "" {
				lg.Warn("Health check failing", zap.String("reason", reason))
			} else {
				lg.Info("Health check recovered")
			}
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Health tracks the liveness and readiness of the server.
type Health struct {
	ready atomic.Bool

	mu        sync.RWMutex
	liveness  []*probe
	readiness []*probe
	cancel    context.CancelFunc
	done      sync.WaitGroup
}

// New creates a Health that is not ready until SetReady(true).
func New() *Health {
	return &Health{}
}

// AddLivenessCheck registers a check of process health.
func (h *Health) AddLivenessCheck(name string, timeout time.Duration, check CheckFunc) {
	h.AddLivenessCheckWith(name, timeout, check, DefaultThresholds)
}

// AddLivenessCheckWith is AddLivenessCheck with custom thresholds.
func (h *Health) AddLivenessCheckWith(name string, timeout time.Duration, check CheckFunc, th Thresholds) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.liveness = append(h.liveness, newProbe(name, timeout, check, th))
}

// AddReadinessCheck registers a check of a dependency needed to serve
// traffic.
func (h *Health) AddReadinessCheck(name string, timeout time.Duration, check CheckFunc) {
	h.AddReadinessCheckWith(name, timeout, check, DefaultThresholds)
}

// AddReadinessCheckWith is AddReadinessCheck with custom thresholds.
func (h *Health) AddReadinessCheckWith(name string, timeout time.Duration, check CheckFunc, th Thresholds) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.readiness = append(h.readiness, newProbe(name, timeout, check, th))
}

// Start runs every registered check each interval until Stop or ctx is done.
func (h *Health) Start(ctx context.Context, interval time.Duration) {
	ctx, cancel := context.WithCancel(ctx)

	h.mu.Lock()
	h.cancel = cancel
	probes := slices.Concat(h.liveness, h.readiness)
	h.mu.Unlock()

	for _, p := range probes {
		h.done.Add(1)
		go func() {
			defer h.done.Done()
			p.loop(ctx, interval)
		}()
	}
}

// Stop cancels the checks and waits for them to return. It is safe to call
// more than once.
func (h *Health) Stop() {
	h.mu.Lock()
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
	h.mu.Unlock()
	h.done.Wait()
}

// SetReady marks the server as ready or draining.
func (h *Health) SetReady(ready bool) {
	h.ready.Store(ready)
}

// IsReady reports whether the server is marked ready and every readiness
// check passes.
func (h *Health) IsReady() bool {
	if !h.ready.Load() {
		return false
	}
	for _, p := range h.snapshot(false) {
		if !p.healthy.Load() {
			return false
		}
	}
	return true
}

func (h *Health) snapshot(liveness bool) []*probe {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if liveness {
		return slices.Clone(h.liveness)
	}
	return slices.Clone(h.readiness)
}

// LiveEndpoint serves /livez.
func (h *Health) LiveEndpoint(w http.ResponseWriter, _ *http.Request) {
	writeStatus(w, failures(h.snapshot(true)))
}

// ReadyEndpoint serves /readyz.
func (h *Health) ReadyEndpoint(w http.ResponseWriter, _ *http.Request) {
	f := failures(h.snapshot(false))
	if !h.ready.Load() {
		f = append(f, failure{name: "_readiness", reason: "service is not ready"})
	}
	writeStatus(w, f)
}

type failure struct {
	name   string
	reason string
}

func failures(probes []*probe) []failure {
	var out []failure
	for _, p := range probes {
		if reason := p.failure(); reason != "" {
			out = append(out, failure{name: p.name, reason: reason})
		}
	}
	return out
}

// writeStatus writes {"status":"ok"} or {"status":"unhealthy","checks":{...}}.
func writeStatus(w http.ResponseWriter, failed []failure) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	status := http.StatusOK
	e.ObjStart()
	e.FieldStart("status")
	if len(failed) == 0 {
		e.Str("ok")
	} else {
		status = http.StatusServiceUnavailable
		e.Str("unhealthy")
		e.FieldStart("checks")
		e.ObjStart()
		for _, f := range failed {
			e.FieldStart(f.name)
			e.Str(f.reason)
		}
		e.ObjEnd()
	}
	e.ObjEnd()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}
