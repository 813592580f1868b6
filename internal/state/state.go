// Package state is the observable container for transient session state
// (current member, current week, flags). It is deliberately separate from the
// repositories: entity data never flows through it, and repository writes do
// not notify it.
//
// Two mutation paths exist and they notify differently. Set writes a single
// field and fires that field's listeners followed by the whole-state
// listeners; SetState merges a partial map and fires the whole-state
// listeners exactly once, never the per-field ones.
package state

import (
	"reflect"
	"sync"
)

// Listener observes the whole state; it receives the new and previous
// snapshots.
type Listener func(next, prev map[string]any)

// KeyListener observes one field; it only fires on direct Set of that field.
type KeyListener func(value, prev any)

type Store struct {
	mu     sync.Mutex
	state  map[string]any
	nextID int
	global []globalSub
	keyed  map[string][]keySub
}

type globalSub struct {
	id int
	fn Listener
}

type keySub struct {
	id int
	fn KeyListener
}

func New(initial map[string]any) *Store {
	s := &Store{
		state: make(map[string]any, len(initial)),
		keyed: make(map[string][]keySub),
	}
	for k, v := range initial {
		s.state[k] = v
	}
	return s
}

func (s *Store) Get(key string) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state[key]
}

// Snapshot returns a shallow copy; mutating it does not touch the store.
func (s *Store) Snapshot() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyState()
}

// Set writes one field. Writing a value equal to the current one is a no-op
// with no notification. Listeners run synchronously, per-field ones first,
// each group in registration order; a panicking listener propagates.
func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	prev, had := s.state[key]
	if had && equalValues(prev, value) {
		s.mu.Unlock()
		return
	}
	s.state[key] = value
	next := s.copyState()
	prevState := s.copyState()
	prevState[key] = prev
	if !had {
		delete(prevState, key)
	}
	keyListeners := append([]keySub(nil), s.keyed[key]...)
	globalListeners := append([]globalSub(nil), s.global...)
	s.mu.Unlock()

	for _, sub := range keyListeners {
		sub.fn(value, prev)
	}
	for _, sub := range globalListeners {
		sub.fn(next, prevState)
	}
}

// SetState shallow-merges partial into the state and notifies the whole-state
// listeners once, however many fields changed. Per-field listeners never fire
// on this path.
func (s *Store) SetState(partial map[string]any) {
	s.mu.Lock()
	prev := s.copyState()
	for k, v := range partial {
		s.state[k] = v
	}
	next := s.copyState()
	globalListeners := append([]globalSub(nil), s.global...)
	s.mu.Unlock()

	for _, sub := range globalListeners {
		sub.fn(next, prev)
	}
}

// Subscribe registers a whole-state listener and returns its unsubscribe.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.global = append(s.global, globalSub{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.global {
			if sub.id == id {
				s.global = append(s.global[:i], s.global[i+1:]...)
				return
			}
		}
	}
}

// SubscribeToKey registers a listener for direct writes of one field.
func (s *Store) SubscribeToKey(key string, fn KeyListener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.keyed[key] = append(s.keyed[key], keySub{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		subs := s.keyed[key]
		for i, sub := range subs {
			if sub.id == id {
				s.keyed[key] = append(subs[:i], subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) copyState() map[string]any {
	out := make(map[string]any, len(s.state))
	for k, v := range s.state {
		out[k] = v
	}
	return out
}

// equalValues reports equality for comparable values; incomparable kinds
// (slices, maps) are always treated as changed.
func equalValues(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
