package monitor

type Stats struct {
	ActiveCalls     int `json:"activeCalls"`
	WaitingCalls    int `json:"waitingCalls"`
	TotalAgents     int `json:"totalAgents"`
	AvailableAgents int `json:"availableAgents"`
}

// Aggregator derives display stats from the store. Agent capacity is
// configuration passed through for the dashboard, not derived from
// session data.
type Aggregator struct {
	store           *Store
	totalAgents     int
	availableAgents int
}

func NewAggregator(store *Store, totalAgents, availableAgents int) *Aggregator {
	if availableAgents > totalAgents {
		availableAgents = totalAgents
	}
	if availableAgents < 0 {
		availableAgents = 0
	}
	return &Aggregator{
		store:           store,
		totalAgents:     totalAgents,
		availableAgents: availableAgents,
	}
}

// Stats counts from a single snapshot so the numbers are mutually
// consistent even while the store is being mutated.
func (a *Aggregator) Stats() Stats {
	st := Stats{
		TotalAgents:     a.totalAgents,
		AvailableAgents: a.availableAgents,
	}

	for _, sess := range a.store.Snapshot() {
		switch sess.Status {
		case StatusActive:
			st.ActiveCalls++
		case StatusOnHold:
			st.WaitingCalls++
		case StatusTransferring:
			// counted in neither bucket
		}
	}
	return st
}
