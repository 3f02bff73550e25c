package monitor

import (
	"errors"
	"sort"
	"sync"
)

var ErrNotFound = errors.New("call not found")

type EventKind string

const (
	EventUpdated EventKind = "call_update"
	EventRemoved EventKind = "call_removed"
)

type Event struct {
	Kind    EventKind
	Session CallSession
}

type Subscriber chan Event

// Store holds the current set of live call sessions. It is the only shared
// mutable state of the core; every mutation and multi-record read goes
// through its lock.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]CallSession
	subs     []Subscriber
	onRemove func(CallSession)
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]CallSession),
	}
}

// OnRemove registers a hook invoked once for every session that is actually
// deleted, whatever triggered the deletion. Set it before the core starts.
func (s *Store) OnRemove(fn func(CallSession)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onRemove = fn
}

func (s *Store) Upsert(sess CallSession) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sess.ID] = sess
	s.notify(Event{Kind: EventUpdated, Session: sess})
}

// Remove deletes the session if present and reports whether it did. Removing
// an id that is already gone is a no-op: a simulated hang-up racing an
// operator's end lands here twice.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	var hook func(CallSession)
	if ok {
		delete(s.sessions, id)
		s.notify(Event{Kind: EventRemoved, Session: sess})
		hook = s.onRemove
	}
	s.mu.Unlock()

	if hook != nil {
		hook(sess)
	}
	return ok
}

func (s *Store) Get(id string) (CallSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	return sess, ok
}

// Snapshot returns a point-in-time copy of every session, ordered by start
// time then id. Later mutations do not touch the returned slice.
func (s *Store) Snapshot() []CallSession {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]CallSession, 0, len(s.sessions))
	for _, sess := range s.sessions {
		res = append(res, sess)
	}
	sort.Slice(res, func(i, j int) bool {
		if !res[i].StartTime.Equal(res[j].StartTime) {
			return res[i].StartTime.Before(res[j].StartTime)
		}
		return res[i].ID < res[j].ID
	})
	return res
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// AdvanceDurations adds one second to every session under a single lock
// hold, so each session present at the tick boundary is advanced exactly
// once.
func (s *Store) AdvanceDurations() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, sess := range s.sessions {
		sess.Duration++
		s.sessions[id] = sess
	}
}

// mutate runs fn against the named session and commits the result if fn
// returns nil. The read-modify-write happens under one lock hold.
func (s *Store) mutate(id string, fn func(*CallSession) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}
	if err := fn(&sess); err != nil {
		return err
	}
	s.sessions[id] = sess
	s.notify(Event{Kind: EventUpdated, Session: sess})
	return nil
}

func (s *Store) Subscribe() Subscriber {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(Subscriber, 16)
	s.subs = append(s.subs, ch)
	return ch
}

func (s *Store) Unsubscribe(sub Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, ssub := range s.subs {
		if ssub == sub {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			close(ssub)
			break
		}
	}
}

// notify requires s.mu held. Slow subscribers drop events rather than
// blocking the store.
func (s *Store) notify(ev Event) {
	for _, sub := range s.subs {
		select {
		case sub <- ev:
		default:
		}
	}
}
