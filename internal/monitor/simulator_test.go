package monitor

import (
	"context"
	"testing"
	"time"
)

// scriptedRoller replays fixed values so arrivals and lifespans are exact.
type scriptedRoller struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *scriptedRoller) Float64() float64 {
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *scriptedRoller) Intn(n int) int {
	v := r.ints[r.ii%len(r.ints)] % n
	r.ii++
	return v
}

func testSimulator(store *Store, roller Roller) *Simulator {
	return NewSimulator(store, SimulatorConfig{
		Interval:    10 * time.Second,
		Probability: 0.2,
		MinLifespan: 10 * time.Second,
		MaxLifespan: 40 * time.Second,
		Roller:      roller,
		Now:         func() time.Time { return time.Unix(1700000000, 0) },
	})
}

func TestSimulator_StepNoArrival(t *testing.T) {
	store := NewStore()
	sim := testSimulator(store, &scriptedRoller{floats: []float64{0.9}, ints: []int{0}})

	sim.step()

	if store.Len() != 0 {
		t.Errorf("store has %d sessions, want 0 on a failed trial", store.Len())
	}
}

func TestSimulator_StepArrival(t *testing.T) {
	store := NewStore()
	sim := testSimulator(store, &scriptedRoller{floats: []float64{0.1}, ints: []int{0}})

	sim.step()

	snap := store.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("store has %d sessions, want 1", len(snap))
	}

	sess := snap[0]
	if sess.ID == "" {
		t.Error("session must get a fresh id")
	}
	if sess.Status != StatusOnHold {
		t.Errorf("status = %q, want %q", sess.Status, StatusOnHold)
	}
	if sess.Sentiment != SentimentNeutral {
		t.Errorf("sentiment = %q, want %q", sess.Sentiment, SentimentNeutral)
	}
	if sess.CallerName != "Incoming Call..." {
		t.Errorf("callerName = %q, want placeholder", sess.CallerName)
	}
	if sess.Intent != "Unknown" {
		t.Errorf("intent = %q, want Unknown", sess.Intent)
	}
	if sess.Duration != 0 {
		t.Errorf("duration = %d, want 0", sess.Duration)
	}
	if !sess.StartTime.Equal(time.Unix(1700000000, 0)) {
		t.Errorf("startTime = %v, want the injected clock value", sess.StartTime)
	}
}

func TestSimulator_UniqueIDs(t *testing.T) {
	store := NewStore()
	sim := testSimulator(store, &scriptedRoller{floats: []float64{0.0}, ints: []int{0}})

	for i := 0; i < 10; i++ {
		sim.step()
	}
	if store.Len() != 10 {
		t.Errorf("store has %d sessions, want 10 distinct ids", store.Len())
	}
}

func TestSimulator_LifespanBounds(t *testing.T) {
	store := NewStore()
	sim := testSimulator(store, &scriptedRoller{floats: []float64{0}, ints: []int{0, 30, 999}})

	for _, want := range []time.Duration{
		10 * time.Second, // roll 0
		40 * time.Second, // roll 30
		17 * time.Second, // roll 999 % 31 = 7 -> wraps inside [10s, 40s]
	} {
		if got := sim.lifespan(); got != want {
			t.Errorf("lifespan = %v, want %v", got, want)
		}
	}
}

// faultyRoller panics on its first draw, then behaves.
type faultyRoller struct {
	fired bool
}

func (r *faultyRoller) Float64() float64 {
	if !r.fired {
		r.fired = true
		panic("roller fault")
	}
	return 0.0
}

func (r *faultyRoller) Intn(n int) int { return 0 }

func TestSimulator_StepRecoversFromFault(t *testing.T) {
	store := NewStore()
	sim := testSimulator(store, &faultyRoller{})

	// A fault in one arrival check must not propagate or kill the feed.
	sim.step()
	if store.Len() != 0 {
		t.Fatalf("store has %d sessions after the faulty step, want 0", store.Len())
	}

	// The next scheduled step runs normally.
	sim.step()
	if store.Len() != 1 {
		t.Errorf("store has %d sessions, want 1 from the recovered feed", store.Len())
	}
}

func TestSimulator_HangupRacesOperatorEnd(t *testing.T) {
	store := NewStore()
	d := NewDispatcher(store)
	sim := testSimulator(store, &scriptedRoller{floats: []float64{0.0}, ints: []int{0}})

	sim.step()
	id := store.Snapshot()[0].ID

	// Operator ends one second before the scheduled hang-up would fire.
	if err := d.End(id); err != nil {
		t.Fatalf("end: %v", err)
	}

	// The scheduled hang-up still fires; it must be a harmless no-op.
	sim.hangup(id)

	if store.Len() != 0 {
		t.Error("store should stay empty after both removals")
	}
}

func TestSimulator_HangupRetiresSession(t *testing.T) {
	store := NewStore()
	sim := testSimulator(store, &scriptedRoller{floats: []float64{0.0}, ints: []int{0}})

	sim.step()
	id := store.Snapshot()[0].ID

	sim.hangup(id)

	if _, ok := store.Get(id); ok {
		t.Error("session should be gone after its lifespan")
	}
	sim.mu.Lock()
	_, pending := sim.timers[id]
	sim.mu.Unlock()
	if pending {
		t.Error("hang-up timer should be forgotten after firing")
	}
}

func TestSimulator_StopCancelsPendingTimers(t *testing.T) {
	store := NewStore()
	sim := NewSimulator(store, SimulatorConfig{
		Interval:    time.Hour, // never fires on its own in this test
		Probability: 1.0,
		MinLifespan: time.Hour,
		MaxLifespan: time.Hour,
		Roller:      &scriptedRoller{floats: []float64{0.0}, ints: []int{0}},
	})

	sim.Start(context.Background())
	sim.step()
	sim.Stop()

	sim.mu.Lock()
	n := len(sim.timers)
	sim.mu.Unlock()
	if n != 0 {
		t.Errorf("%d timers still pending after Stop", n)
	}
}
