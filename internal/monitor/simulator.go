package monitor

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Roller is the simulator's source of randomness. *rand.Rand satisfies it;
// tests supply a fixed sequence instead.
type Roller interface {
	Float64() float64
	Intn(n int) int
}

// Simulator stands in for a real inbound-call feed. On each arrival
// interval it draws one Bernoulli trial; on success it injects a fresh
// on-hold session and schedules its hang-up after a uniform lifespan.
type Simulator struct {
	store       *Store
	interval    time.Duration
	probability float64
	minLifespan time.Duration
	maxLifespan time.Duration
	rng         Roller
	now         func() time.Time

	mu     sync.Mutex
	timers map[string]*time.Timer

	cancel context.CancelFunc
	done   chan struct{}
}

type SimulatorConfig struct {
	Interval    time.Duration
	Probability float64
	MinLifespan time.Duration
	MaxLifespan time.Duration
	Roller      Roller           // nil: time-seeded math/rand
	Now         func() time.Time // nil: time.Now
}

func NewSimulator(store *Store, cfg SimulatorConfig) *Simulator {
	if cfg.Interval <= 0 {
		cfg.Interval = 10 * time.Second
	}
	if cfg.MinLifespan <= 0 {
		cfg.MinLifespan = 10 * time.Second
	}
	if cfg.MaxLifespan < cfg.MinLifespan {
		cfg.MaxLifespan = cfg.MinLifespan
	}
	if cfg.Roller == nil {
		cfg.Roller = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Simulator{
		store:       store,
		interval:    cfg.Interval,
		probability: cfg.Probability,
		minLifespan: cfg.MinLifespan,
		maxLifespan: cfg.MaxLifespan,
		rng:         cfg.Roller,
		now:         cfg.Now,
		timers:      make(map[string]*time.Timer),
	}
}

func (s *Simulator) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	go s.run(ctx)
}

// Stop cancels the arrival schedule and every pending hang-up timer.
func (s *Simulator) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
}

func (s *Simulator) run(ctx context.Context) {
	defer close(s.done)

	tick := time.NewTicker(s.interval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			s.step()
		}
	}
}

// step is one arrival check. Split out so tests can drive the simulator
// without real time.
func (s *Simulator) step() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("⚠️ simulator fault: %v", r)
		}
	}()

	if s.rng.Float64() >= s.probability {
		return
	}

	sess := s.synthesize()
	lifespan := s.lifespan()

	s.store.Upsert(sess)
	s.scheduleHangup(sess.ID, lifespan)

	log.Printf("📞 simulated call %s from %s (hangs up in %s)",
		sess.ID, sess.CallerNumber, lifespan)
}

func (s *Simulator) synthesize() CallSession {
	return CallSession{
		ID:           uuid.NewString(),
		CallerNumber: s.randomNumber(),
		CallerName:   "Incoming Call...",
		Intent:       "Unknown",
		Sentiment:    SentimentNeutral,
		Status:       StatusOnHold,
		StartTime:    s.now(),
	}
}

func (s *Simulator) randomNumber() string {
	return fmt.Sprintf("+1 %03d-%03d-%04d",
		200+s.rng.Intn(800), s.rng.Intn(1000), s.rng.Intn(10000))
}

func (s *Simulator) lifespan() time.Duration {
	spreadSec := int((s.maxLifespan - s.minLifespan) / time.Second)
	return s.minLifespan + time.Duration(s.rng.Intn(spreadSec+1))*time.Second
}

func (s *Simulator) scheduleHangup(id string, after time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timers[id] = time.AfterFunc(after, func() { s.hangup(id) })
}

// hangup retires a simulated call at the end of its lifespan. The session
// may already be gone if an operator ended it first; Remove tolerates that.
func (s *Simulator) hangup(id string) {
	s.mu.Lock()
	delete(s.timers, id)
	s.mu.Unlock()

	if s.store.Remove(id) {
		log.Printf("📴 simulated call %s hung up", id)
	}
}
