package store

import "sync"

// Listener is told about every successful transition, in dispatch order.
// Listeners run on the dispatching goroutine and must not call Dispatch.
type Listener func(prev, next State, action Action)

// Store holds the current snapshot
type Store struct {
	dispatchMu sync.Mutex // serializes reduce + notify

	mu        sync.RWMutex
	state     State
	listeners map[int]Listener
	nextID    int
}

// New creates a store with an empty initial state
func New() *Store {
	return &Store{listeners: make(map[int]Listener)}
}

// Snapshot returns the current state
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies action and notifies listeners. A reducer error is returned
// without changing state or notifying anyone.
func (s *Store) Dispatch(action Action) error {
	_, err := s.Apply(action)
	return err
}

// Apply is Dispatch that also returns the state produced by this action,
// whatever is dispatched after it
func (s *Store) Apply(action Action) (State, error) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.RLock()
	prev := s.state
	s.mu.RUnlock()

	next, err := Reduce(prev, action)
	if err != nil {
		return prev, err
	}

	s.mu.Lock()
	s.state = next
	listeners := make([]Listener, 0, len(s.listeners))
	for id := 0; id < s.nextID; id++ {
		if l, ok := s.listeners[id]; ok {
			listeners = append(listeners, l)
		}
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(prev, next, action)
	}
	return next, nil
}

// Subscribe registers a listener and returns a function that removes it
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}
