package calllog

import (
	"context"
	"sync"
)

// Memory keeps the newest cap entries in process memory. Used when no
// archive DSN is configured, and in tests.
type Memory struct {
	mu      sync.RWMutex
	cap     int
	entries []Entry // newest first
}

func NewMemory(cap int) *Memory {
	if cap < 1 {
		cap = 500
	}
	return &Memory{cap: cap}
}

func (m *Memory) Record(_ context.Context, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append([]Entry{e}, m.entries...)
	if len(m.entries) > m.cap {
		m.entries = m.entries[:m.cap]
	}
	return nil
}

func (m *Memory) List(_ context.Context, f Filter) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := make([]Entry, 0, len(m.entries))
	for _, e := range m.entries {
		if f.Sentiment != "" && e.Sentiment != f.Sentiment {
			continue
		}
		if f.Intent != "" && e.Intent != f.Intent {
			continue
		}
		res = append(res, e)
	}
	return res, nil
}
