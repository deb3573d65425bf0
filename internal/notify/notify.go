// Package notify delivers comeback alerts to the user through two side
// channels: OS desktop notifications (permission-gated) and in-app toasts
// (always on). Network and send failures are logged, never fatal.
package notify

import (
	"context"
	"log/slog"
	"os/exec"
	"sync"
	"time"
)

// Notification is an OS-level notification payload.
type Notification struct {
	Title string
	Body  string
	Icon  string // icon name or path, may be empty
}

// --------------------------------------------------------------------------
// Toaster — in-app toast feed
// --------------------------------------------------------------------------

// toastKeep bounds the in-memory toast history.
const toastKeep = 20

// Toast is one in-app message.
type Toast struct {
	Level   string // "info" | "alert" | "error"
	Message string
	At      time.Time
}

// Toaster keeps a bounded feed of recent toasts and mirrors them to the log.
type Toaster struct {
	mu     sync.Mutex
	recent []Toast
	logger *slog.Logger
}

// NewToaster creates a toast feed.
func NewToaster(logger *slog.Logger) *Toaster {
	if logger == nil {
		logger = slog.Default()
	}
	return &Toaster{logger: logger}
}

// Push records a toast and logs it.
func (t *Toaster) Push(level, message string) {
	t.mu.Lock()
	t.recent = append(t.recent, Toast{Level: level, Message: message, At: time.Now()})
	if len(t.recent) > toastKeep {
		t.recent = t.recent[len(t.recent)-toastKeep:]
	}
	t.mu.Unlock()

	t.logger.Info("toast", "level", level, "message", message)
}

// Recent returns a copy of the toast history, oldest first.
func (t *Toaster) Recent() []Toast {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Toast, len(t.recent))
	copy(out, t.recent)
	return out
}

// --------------------------------------------------------------------------
// Desktop — OS notification sender
// --------------------------------------------------------------------------

// Desktop sends OS notifications via notify-send.
// Nil-safe: when the binary is unavailable, all methods are no-ops.
type Desktop struct {
	binary string
	logger *slog.Logger
}

// NewDesktop creates a desktop sender. Returns nil when notify-send is not
// on PATH (OS notifications unavailable — the permission prompt resolves to
// denied).
func NewDesktop(logger *slog.Logger) *Desktop {
	path, err := exec.LookPath("notify-send")
	if err != nil {
		return nil
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Desktop{binary: path, logger: logger}
}

// Send emits one OS notification.
func (d *Desktop) Send(ctx context.Context, n Notification) error {
	if d == nil {
		return nil // no-op when unavailable
	}

	args := []string{"--app-name", "Comeback Scout"}
	if n.Icon != "" {
		args = append(args, "--icon", n.Icon)
	}
	args = append(args, n.Title, n.Body)

	if err := exec.CommandContext(ctx, d.binary, args...).Run(); err != nil {
		d.logger.Warn("desktop notification failed", "error", err)
		return err
	}
	return nil
}
