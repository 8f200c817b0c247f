package notify

import (
	"sync"
	"time"
)

// Level classifies an operator notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Event is one operator-facing notification. Events are immutable once
// published.
type Event struct {
	Level   Level     `json:"level"`
	Source  string    `json:"source"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

// Subscriber receives the full event snapshot after each publish.
type Subscriber func(events []Event)

// maxEvents caps the retained history so the store never grows unbounded.
const maxEvents = 100

// Store is an in-memory pub/sub notification store. Each publish produces a
// fresh snapshot slice, so subscribers and Snapshot callers can never observe
// a mutation of a slice they already hold.
type Store struct {
	mu          sync.Mutex
	events      []Event
	subscribers map[int]Subscriber
	nextID      int
}

func NewStore() *Store {
	return &Store{
		subscribers: make(map[int]Subscriber),
	}
}

// Publish records an event and notifies all subscribers with the new snapshot.
func (s *Store) Publish(level Level, source, message string) {
	ev := Event{
		Level:   level,
		Source:  source,
		Message: message,
		Time:    time.Now().UTC(),
	}

	s.mu.Lock()
	next := make([]Event, 0, len(s.events)+1)
	next = append(next, s.events...)
	next = append(next, ev)
	if len(next) > maxEvents {
		next = next[len(next)-maxEvents:]
	}
	s.events = next

	subs := make([]Subscriber, 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

// Subscribe registers fn and returns an unsubscribe function. fn is invoked
// synchronously on every publish with the current snapshot.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// Snapshot returns a copy of the current event history, newest last.
func (s *Store) Snapshot() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() []Event {
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}
