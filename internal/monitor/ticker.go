package monitor

import (
	"context"
	"log"
	"time"
)

// Ticker advances every live session's duration once per interval.
type Ticker struct {
	store    *Store
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
}

func NewTicker(store *Store, interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = time.Second
	}
	return &Ticker{store: store, interval: interval}
}

func (t *Ticker) Start(ctx context.Context) {
	ctx, t.cancel = context.WithCancel(ctx)
	t.done = make(chan struct{})
	go t.run(ctx)
}

// Stop cancels further ticks and waits for an in-flight tick to finish.
func (t *Ticker) Stop() {
	if t.cancel == nil {
		return
	}
	t.cancel()
	<-t.done
}

func (t *Ticker) run(ctx context.Context) {
	defer close(t.done)

	tick := time.NewTicker(t.interval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			t.tick()
		}
	}
}

// A fault in one tick must not kill the schedule; log it and let the next
// tick run.
func (t *Ticker) tick() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("⚠️ ticker fault: %v", r)
		}
	}()
	t.store.AdvanceDurations()
}
