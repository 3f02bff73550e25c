package monitor

import "fmt"

// TransitionError reports an operator action whose precondition was not met
// by the session's current status. The store is left untouched.
type TransitionError struct {
	Action string
	Status Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s a call that is %s", e.Action, e.Status)
}

// Dispatcher applies operator commands to sessions, validating state
// transitions. It is the only writer of Status and the operator flags after
// a session has been created.
type Dispatcher struct {
	store *Store
}

func NewDispatcher(store *Store) *Dispatcher {
	return &Dispatcher{store: store}
}

// Answer takes a waiting call: on_hold → active.
func (d *Dispatcher) Answer(id string) error {
	return d.store.mutate(id, func(c *CallSession) error {
		if c.Status != StatusOnHold {
			return &TransitionError{Action: "answer", Status: c.Status}
		}
		c.Status = StatusActive
		return nil
	})
}

// Hold parks an active call: active → on_hold.
func (d *Dispatcher) Hold(id string) error {
	return d.store.mutate(id, func(c *CallSession) error {
		if c.Status != StatusActive {
			return &TransitionError{Action: "hold", Status: c.Status}
		}
		c.Status = StatusOnHold
		return nil
	})
}

// End removes the call whatever its status. Ending a call that is already
// gone succeeds: the operator and the simulated hang-up may race for it.
func (d *Dispatcher) End(id string) error {
	d.store.Remove(id)
	return nil
}

// ToggleMute flips the mute flag of an active call.
func (d *Dispatcher) ToggleMute(id string) error {
	return d.store.mutate(id, func(c *CallSession) error {
		if c.Status != StatusActive {
			return &TransitionError{Action: "mute", Status: c.Status}
		}
		c.Muted = !c.Muted
		return nil
	})
}

// ToggleListen flips the listen-in flag of an active call.
func (d *Dispatcher) ToggleListen(id string) error {
	return d.store.mutate(id, func(c *CallSession) error {
		if c.Status != StatusActive {
			return &TransitionError{Action: "listen", Status: c.Status}
		}
		c.Listening = !c.Listening
		return nil
	})
}
