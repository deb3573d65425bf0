package scout

import "github.com/comebackscout/comeback-scout/internal/models"

// Detect is the novelty heuristic: given the previous alert count and the
// freshly fetched list (newest first), it returns the newest alert when the
// list grew, and the next baseline count.
//
// The very first successful poll (prevCount == 0) only establishes the
// baseline and never notifies. Alerts carry no client-side identity, so
// growth is inferred from length alone; a burst of several new alerts in one
// interval surfaces only the first element. The baseline is always
// overwritten, whether or not a notification fired.
func Detect(prevCount int, alerts []models.Alert) (*models.Alert, int) {
	count := len(alerts)
	if count > prevCount && prevCount > 0 {
		newest := alerts[0]
		return &newest, count
	}
	return nil, count
}

// Detector owns the baseline across polling cycles, keeping the otherwise
// ambient previous-count state explicit and independently testable.
type Detector struct {
	prev int
}

// Observe runs Detect against the detector's baseline and commits the new
// count. Only called after a fully successful alert cycle — failed cycles
// leave the baseline untouched.
func (d *Detector) Observe(alerts []models.Alert) *models.Alert {
	newest, next := Detect(d.prev, alerts)
	d.prev = next
	return newest
}

// Baseline returns the current alert-count baseline.
func (d *Detector) Baseline() int {
	return d.prev
}
