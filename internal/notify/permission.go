package notify

import "sync"

// PermissionState tracks whether the user has allowed OS notifications.
type PermissionState int

const (
	// Unrequested is the initial state; OS notifications are suppressed.
	Unrequested PermissionState = iota
	// Granted enables the desktop side channel.
	Granted
	// Denied suppresses OS notifications permanently; toasts still fire.
	Denied
)

func (s PermissionState) String() string {
	switch s {
	case Granted:
		return "granted"
	case Denied:
		return "denied"
	default:
		return "unrequested"
	}
}

// Permission is the notification permission state machine:
//
//	unrequested → (user action) → granted | denied
//
// The transition is user-gesture-driven only; once granted or denied the
// state is final — there is no automatic re-prompt.
type Permission struct {
	mu    sync.Mutex
	state PermissionState
}

// Request resolves an unrequested permission. Calls after the first one are
// no-ops; the resulting state is returned either way.
func (p *Permission) Request(granted bool) PermissionState {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == Unrequested {
		if granted {
			p.state = Granted
		} else {
			p.state = Denied
		}
	}
	return p.state
}

// State returns the current permission state.
func (p *Permission) State() PermissionState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Allowed reports whether OS notifications may be emitted.
func (p *Permission) Allowed() bool {
	return p.State() == Granted
}
