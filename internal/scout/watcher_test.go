package scout

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/comebackscout/comeback-scout/internal/models"
	"github.com/comebackscout/comeback-scout/internal/notify"
)

// Mocks

type MockAPI struct {
	LiveMatchesFunc    func(ctx context.Context) ([]models.Match, error)
	AlertsFunc         func(ctx context.Context) ([]models.Alert, error)
	CheckComebacksFunc func(ctx context.Context) (int, error)
}

func (m *MockAPI) LiveMatches(ctx context.Context) ([]models.Match, error) {
	if m.LiveMatchesFunc != nil {
		return m.LiveMatchesFunc(ctx)
	}
	return nil, nil
}

func (m *MockAPI) Alerts(ctx context.Context) ([]models.Alert, error) {
	if m.AlertsFunc != nil {
		return m.AlertsFunc(ctx)
	}
	return nil, nil
}

func (m *MockAPI) CheckComebacks(ctx context.Context) (int, error) {
	if m.CheckComebacksFunc != nil {
		return m.CheckComebacksFunc(ctx)
	}
	return 0, nil
}

type MockDesktop struct {
	sent []notify.Notification
}

func (m *MockDesktop) Send(ctx context.Context, n notify.Notification) error {
	m.sent = append(m.sent, n)
	return nil
}

func newTestWatcher(backend API, perm *notify.Permission, desktop OSNotifier) (*Watcher, *notify.Toaster) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	toasts := notify.NewToaster(logger)
	return NewWatcher(backend, perm, toasts, desktop, Options{}, logger), toasts
}

func alertToasts(toasts *notify.Toaster) int {
	n := 0
	for _, tst := range toasts.Recent() {
		if tst.Level == "alert" {
			n++
		}
	}
	return n
}

// Tests

func TestPollMatches_ReplacesStateWholesale(t *testing.T) {
	backend := &MockAPI{
		LiveMatchesFunc: func(ctx context.Context) ([]models.Match, error) {
			return []models.Match{{ID: "m1"}, {ID: "m2"}}, nil
		},
	}
	w, _ := newTestWatcher(backend, &notify.Permission{}, nil)

	w.pollMatches(context.Background())
	if got := w.Matches(); len(got) != 2 {
		t.Fatalf("matches = %d, want 2", len(got))
	}

	backend.LiveMatchesFunc = func(ctx context.Context) ([]models.Match, error) {
		return []models.Match{{ID: "m3"}}, nil
	}
	w.pollMatches(context.Background())

	got := w.Matches()
	if len(got) != 1 || got[0].ID != "m3" {
		t.Fatalf("matches not replaced wholesale: %+v", got)
	}
}

func TestPollMatches_FailureKeepsPriorState(t *testing.T) {
	backend := &MockAPI{
		LiveMatchesFunc: func(ctx context.Context) ([]models.Match, error) {
			return []models.Match{{ID: "m1"}}, nil
		},
	}
	w, _ := newTestWatcher(backend, &notify.Permission{}, nil)
	w.pollMatches(context.Background())

	backend.LiveMatchesFunc = func(ctx context.Context) ([]models.Match, error) {
		return nil, errors.New("connection refused")
	}
	w.pollMatches(context.Background())

	got := w.Matches()
	if len(got) != 1 || got[0].ID != "m1" {
		t.Fatalf("stale snapshot lost on failure: %+v", got)
	}
}

func TestPollAlerts_FirstCycleEstablishesBaseline(t *testing.T) {
	backend := &MockAPI{
		AlertsFunc: func(ctx context.Context) ([]models.Alert, error) {
			return alerts(3), nil
		},
	}
	w, toasts := newTestWatcher(backend, &notify.Permission{}, nil)

	w.pollAlerts(context.Background())

	if n := alertToasts(toasts); n != 0 {
		t.Errorf("first cycle fired %d alert toasts, want 0", n)
	}
	if w.Baseline() != 3 {
		t.Errorf("baseline = %d, want 3", w.Baseline())
	}
}

func TestPollAlerts_GrowthFiresExactlyOneNotification(t *testing.T) {
	list := alerts(3)
	backend := &MockAPI{
		AlertsFunc: func(ctx context.Context) ([]models.Alert, error) {
			return list, nil
		},
	}
	perm := &notify.Permission{}
	perm.Request(true)
	desktop := &MockDesktop{}
	w, toasts := newTestWatcher(backend, perm, desktop)

	w.pollAlerts(context.Background()) // baseline 3

	list = alerts(5)
	list[0].TeamName = "Liverpool"
	w.pollAlerts(context.Background())

	if n := alertToasts(toasts); n != 1 {
		t.Fatalf("alert toasts = %d, want exactly 1", n)
	}
	if len(desktop.sent) != 1 {
		t.Fatalf("desktop notifications = %d, want exactly 1", len(desktop.sent))
	}
	if got := desktop.sent[0].Title; got != "Comeback brewing: Liverpool" {
		t.Errorf("notification title = %q, does not reference first alert", got)
	}

	// Same count again: silence.
	w.pollAlerts(context.Background())
	if n := alertToasts(toasts); n != 1 {
		t.Errorf("repeat count fired extra notifications: %d", n)
	}
}

func TestPollAlerts_DeniedPermissionStillToastsAndUpdatesBaseline(t *testing.T) {
	list := alerts(2)
	backend := &MockAPI{
		AlertsFunc: func(ctx context.Context) ([]models.Alert, error) {
			return list, nil
		},
	}
	perm := &notify.Permission{}
	perm.Request(false) // denied
	desktop := &MockDesktop{}
	w, toasts := newTestWatcher(backend, perm, desktop)

	w.pollAlerts(context.Background())
	list = alerts(4)
	w.pollAlerts(context.Background())

	if len(desktop.sent) != 0 {
		t.Errorf("denied permission must suppress OS notifications, got %d", len(desktop.sent))
	}
	if n := alertToasts(toasts); n != 1 {
		t.Errorf("toast must still fire when denied, got %d", n)
	}
	if w.Baseline() != 4 {
		t.Errorf("baseline = %d, want 4", w.Baseline())
	}
}

func TestPollAlerts_CheckFailureAbandonsCycle(t *testing.T) {
	alertsCalled := false
	backend := &MockAPI{
		CheckComebacksFunc: func(ctx context.Context) (int, error) {
			return 0, errors.New("boom")
		},
		AlertsFunc: func(ctx context.Context) ([]models.Alert, error) {
			alertsCalled = true
			return alerts(5), nil
		},
	}
	w, toasts := newTestWatcher(backend, &notify.Permission{}, nil)

	w.pollAlerts(context.Background())

	if alertsCalled {
		t.Error("alert fetch must be skipped when the recompute step fails")
	}
	if w.Baseline() != 0 {
		t.Errorf("baseline = %d, want 0 after abandoned cycle", w.Baseline())
	}
	if n := alertToasts(toasts); n != 0 {
		t.Errorf("abandoned cycle fired %d toasts", n)
	}
}

func TestPollAlerts_FetchFailureLeavesBaselineUntouched(t *testing.T) {
	backend := &MockAPI{
		AlertsFunc: func(ctx context.Context) ([]models.Alert, error) {
			return alerts(3), nil
		},
	}
	w, _ := newTestWatcher(backend, &notify.Permission{}, nil)
	w.pollAlerts(context.Background()) // baseline 3

	backend.AlertsFunc = func(ctx context.Context) ([]models.Alert, error) {
		return nil, errors.New("timeout")
	}
	w.pollAlerts(context.Background())

	if w.Baseline() != 3 {
		t.Errorf("baseline = %d, want 3 after failed fetch", w.Baseline())
	}
	if got := w.Alerts(); len(got) != 3 {
		t.Errorf("alert snapshot lost on failure: %d", len(got))
	}
}

// A fetch that resolves after teardown must not mutate state.
func TestTeardown_LateResolutionDropped(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	backend := &MockAPI{
		LiveMatchesFunc: func(ctx context.Context) ([]models.Match, error) {
			cancel() // teardown happens while the request is in flight
			return []models.Match{{ID: "late"}}, nil
		},
		AlertsFunc: func(ctx context.Context) ([]models.Alert, error) {
			return alerts(3), nil
		},
	}
	w, _ := newTestWatcher(backend, &notify.Permission{}, nil)

	w.pollMatches(ctx)
	if len(w.Matches()) != 0 {
		t.Error("late match resolution mutated state after teardown")
	}
}

func TestTeardown_LateAlertResolutionDropped(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	backend := &MockAPI{
		AlertsFunc: func(ctx context.Context) ([]models.Alert, error) {
			cancel()
			return alerts(3), nil
		},
	}
	w, _ := newTestWatcher(backend, &notify.Permission{}, nil)

	w.pollAlerts(ctx)
	if w.Baseline() != 0 {
		t.Errorf("late alert resolution committed baseline %d after teardown", w.Baseline())
	}
	if len(w.Alerts()) != 0 {
		t.Error("late alert resolution mutated state after teardown")
	}
}
