// Package deferred holds a single pending, cancellable delayed transition.
//
// Game code never blocks or spawns timers. It schedules an Action and asks
// Due on each tick with the tick's clock reading.
package deferred

import "time"

// Action is at most one pending transition of kind K.
type Action[K comparable] struct {
	kind K
	at   time.Time
	set  bool
}

// Schedule replaces any pending transition with kind due at at.
func (a *Action[K]) Schedule(kind K, at time.Time) {
	a.kind = kind
	a.at = at
	a.set = true
}

// Cancel drops the pending transition, if any.
func (a *Action[K]) Cancel() {
	var zero K
	a.kind = zero
	a.at = time.Time{}
	a.set = false
}

// Pending reports whether a transition is scheduled.
func (a *Action[K]) Pending() bool { return a.set }

// Kind returns the scheduled kind and whether one is set.
func (a *Action[K]) Kind() (K, bool) { return a.kind, a.set }

// At returns the fire time of the pending transition.
func (a *Action[K]) At() time.Time { return a.at }

// Due consumes and returns the pending transition if now has reached its
// fire time.
func (a *Action[K]) Due(now time.Time) (K, bool) {
	if !a.set || now.Before(a.at) {
		var zero K
		return zero, false
	}
	kind := a.kind
	a.Cancel()
	return kind, true
}

// Shift moves the fire time by d. Used to discount paused time.
func (a *Action[K]) Shift(d time.Duration) {
	if a.set {
		a.at = a.at.Add(d)
	}
}
