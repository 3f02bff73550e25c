// Package monitor is the live-call monitoring core: an in-memory session
// store, a duration ticker, a simulated arrival feed, operator actions and
// display stats. The store is the single source of truth; everything else
// reads or mutates it through its locked operations.
package monitor

import (
	"context"
	"time"
)

type Options struct {
	TickInterval       time.Duration
	ArrivalInterval    time.Duration
	ArrivalProbability float64
	MinLifespan        time.Duration
	MaxLifespan        time.Duration

	TotalAgents     int
	AvailableAgents int

	// OnEnded receives every session that leaves the store, whether by
	// operator action or simulated hang-up. Optional.
	OnEnded func(CallSession)

	// Test seams; nil means real randomness and wall clock.
	Roller Roller
	Now    func() time.Time
}

// Core owns the store and the two periodic activities and ties their
// lifecycles together.
type Core struct {
	store      *Store
	dispatcher *Dispatcher
	stats      *Aggregator
	ticker     *Ticker
	simulator  *Simulator
}

func NewCore(opts Options) *Core {
	store := NewStore()
	if opts.OnEnded != nil {
		store.OnRemove(opts.OnEnded)
	}

	return &Core{
		store:      store,
		dispatcher: NewDispatcher(store),
		stats:      NewAggregator(store, opts.TotalAgents, opts.AvailableAgents),
		ticker:     NewTicker(store, opts.TickInterval),
		simulator: NewSimulator(store, SimulatorConfig{
			Interval:    opts.ArrivalInterval,
			Probability: opts.ArrivalProbability,
			MinLifespan: opts.MinLifespan,
			MaxLifespan: opts.MaxLifespan,
			Roller:      opts.Roller,
			Now:         opts.Now,
		}),
	}
}

// Start launches the ticker and the simulated feed. Each stops on ctx
// cancellation or on Stop.
func (c *Core) Start(ctx context.Context) {
	c.ticker.Start(ctx)
	c.simulator.Start(ctx)
}

func (c *Core) Stop() {
	c.simulator.Stop()
	c.ticker.Stop()
}

func (c *Core) Store() *Store           { return c.store }
func (c *Core) Actions() *Dispatcher    { return c.dispatcher }
func (c *Core) Sessions() []CallSession { return c.store.Snapshot() }
func (c *Core) Stats() Stats            { return c.stats.Stats() }
