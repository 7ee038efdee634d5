package deferred

import (
	"testing"
	"time"
)

type step int

const (
	advance step = iota + 1
	regenerate
)

func TestAction_FiresOnce(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var a Action[step]
	a.Schedule(advance, t0.Add(time.Second))

	if _, ok := a.Due(t0.Add(999 * time.Millisecond)); ok {
		t.Fatal("fired before its time")
	}
	kind, ok := a.Due(t0.Add(time.Second))
	if !ok || kind != advance {
		t.Fatalf("Due = %v, %v; want advance, true", kind, ok)
	}
	if _, ok := a.Due(t0.Add(time.Hour)); ok {
		t.Error("fired twice")
	}
}

func TestAction_ScheduleOverwrites(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var a Action[step]
	a.Schedule(regenerate, t0.Add(4*time.Second))
	a.Schedule(regenerate, t0.Add(200*time.Millisecond))

	if _, ok := a.Due(t0.Add(300 * time.Millisecond)); !ok {
		t.Fatal("replacement schedule did not fire")
	}
	if _, ok := a.Due(t0.Add(5 * time.Second)); ok {
		t.Error("stale schedule fired")
	}
}

func TestAction_CancelAndShift(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var a Action[step]
	a.Schedule(advance, t0.Add(time.Second))
	a.Shift(3 * time.Second)
	if !a.At().Equal(t0.Add(4 * time.Second)) {
		t.Errorf("At() = %v after shift", a.At())
	}
	a.Cancel()
	if a.Pending() {
		t.Error("still pending after Cancel")
	}
	if _, ok := a.Due(t0.Add(time.Hour)); ok {
		t.Error("cancelled action fired")
	}
}
