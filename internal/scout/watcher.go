package scout

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/comebackscout/comeback-scout/internal/models"
	"github.com/comebackscout/comeback-scout/internal/notify"
)

// API is the backend surface the watcher polls.
type API interface {
	LiveMatches(ctx context.Context) ([]models.Match, error)
	Alerts(ctx context.Context) ([]models.Alert, error)
	CheckComebacks(ctx context.Context) (int, error)
}

// OSNotifier sends OS-level notifications. *notify.Desktop implements it.
type OSNotifier interface {
	Send(ctx context.Context, n notify.Notification) error
}

// Options configures a Watcher.
type Options struct {
	MatchInterval time.Duration // live-match poll cadence (default 10s)
	AlertInterval time.Duration // alert poll cadence (default 15s)
}

// Watcher runs the two polling loops. Each loop is a single goroutine, so a
// tick handler always runs to completion before the next tick of the same
// loop; the two loops interleave freely. Shared snapshot state is
// mutex-guarded, and a poll that resolves after the watcher is stopped never
// commits.
type Watcher struct {
	backend  API
	detector *Detector
	perm     *notify.Permission
	toasts   *notify.Toaster
	desktop  OSNotifier
	logger   *slog.Logger
	opts     Options

	mu      sync.RWMutex
	matches []models.Match
	alerts  []models.Alert
}

// NewWatcher creates a watcher. desktop may be nil (OS notifications
// unavailable).
func NewWatcher(backend API, perm *notify.Permission, toasts *notify.Toaster, desktop OSNotifier, opts Options, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.MatchInterval <= 0 {
		opts.MatchInterval = 10 * time.Second
	}
	if opts.AlertInterval <= 0 {
		opts.AlertInterval = 15 * time.Second
	}
	return &Watcher{
		backend:  backend,
		detector: &Detector{},
		perm:     perm,
		toasts:   toasts,
		desktop:  desktop,
		logger:   logger,
		opts:     opts,
	}
}

// Run polls until ctx is cancelled. Both pollers fire once immediately so
// the display fills without waiting for the first interval.
func (w *Watcher) Run(ctx context.Context) {
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		w.loop(ctx, w.opts.MatchInterval, w.pollMatches)
	}()
	go func() {
		defer wg.Done()
		w.loop(ctx, w.opts.AlertInterval, w.pollAlerts)
	}()

	wg.Wait()
	w.logger.Info("watcher stopped")
}

// loop runs fn immediately, then on every tick until ctx is cancelled.
// Cancelling ctx stops the ticker; this is the teardown that prevents
// post-stop state mutation.
func (w *Watcher) loop(ctx context.Context, every time.Duration, fn func(context.Context)) {
	fn(ctx)

	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			fn(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// pollMatches fetches the live slate and replaces local state wholesale.
// On failure the prior snapshot stays visible (stale-but-available); the
// next tick is the retry.
func (w *Watcher) pollMatches(ctx context.Context) {
	matches, err := w.backend.LiveMatches(ctx)
	if err != nil {
		w.logger.Warn("match poll failed, keeping previous snapshot", "error", err)
		return
	}
	if ctx.Err() != nil {
		return // resolved after teardown, drop it
	}

	w.mu.Lock()
	w.matches = matches
	w.mu.Unlock()
}

// pollAlerts runs one alert cycle: trigger the backend recomputation, then
// fetch the alert list. The two steps commit atomically — if either fails
// the cycle is abandoned, the baseline stays untouched, and the next tick
// retries both.
func (w *Watcher) pollAlerts(ctx context.Context) {
	if _, err := w.backend.CheckComebacks(ctx); err != nil {
		w.logger.Warn("comeback check failed, abandoning cycle", "error", err)
		return
	}

	alerts, err := w.backend.Alerts(ctx)
	if err != nil {
		w.logger.Warn("alert fetch failed, abandoning cycle", "error", err)
		return
	}
	if ctx.Err() != nil {
		return // resolved after teardown, drop it
	}

	w.mu.Lock()
	w.alerts = alerts
	newest := w.detector.Observe(alerts)
	w.mu.Unlock()

	if newest != nil {
		w.announce(ctx, *newest)
	}
}

// announce surfaces a newly detected alert: toast always, OS notification
// only when permission is granted.
func (w *Watcher) announce(ctx context.Context, alert models.Alert) {
	msg := fmt.Sprintf("%s down %s vs %s — %.0f%% comeback chance at %d'",
		alert.TeamName, alert.Score, alert.Opponent, alert.Probability, alert.Minute)
	w.toasts.Push("alert", msg)

	if !w.perm.Allowed() || w.desktop == nil {
		return
	}
	_ = w.desktop.Send(ctx, notify.Notification{
		Title: "Comeback brewing: " + alert.TeamName,
		Body:  msg,
	})
}

// Matches returns the latest live-match snapshot.
func (w *Watcher) Matches() []models.Match {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]models.Match, len(w.matches))
	copy(out, w.matches)
	return out
}

// Alerts returns the latest alert snapshot.
func (w *Watcher) Alerts() []models.Alert {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]models.Alert, len(w.alerts))
	copy(out, w.alerts)
	return out
}

// Baseline exposes the detector baseline (for status display).
func (w *Watcher) Baseline() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.detector.Baseline()
}
