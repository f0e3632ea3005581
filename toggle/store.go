package toggle

import "sync"

// Config holds construction-time settings for a Store.
// A nil Config and nil callbacks are valid, everything defaults to off/no-op.
type Config struct {
	// InitialOn is the value the store starts with and the value Reset
	// returns to. It is captured once at construction.
	InitialOn bool
	// OnToggle fires after each Toggle commit with the committed value.
	OnToggle func(on bool)
	// OnReset fires after each Reset commit with the committed value.
	OnReset func(on bool)
}

// Snapshot is a read-only view of the store at one version: the committed
// value plus bound references to the store's two actions. Readers share
// snapshots freely and never mutate state except through the bound actions.
type Snapshot struct {
	On     bool
	Toggle func()
	Reset  func()
}

// Listener receives the fresh snapshot after every commit.
type Listener func(Snapshot)

type subscription struct {
	fn Listener
}

// Store owns a single boolean and is the only thing in this module allowed
// to mutate it. Toggle and Reset are the only mutators, the callbacks in
// Config run strictly after a commit, so they never observe a stale value.
// Re-entrant calls to Toggle from inside OnToggle are legal, each one sees
// the committed result of the one before it.
type Store struct {
	mu       sync.Mutex
	on       bool
	initial  bool
	ver      uint32
	onToggle func(bool)
	onReset  func(bool)
	subs     []*subscription
}

func New(cfg *Config) *Store {
	if cfg == nil {
		cfg = &Config{}
	}
	s := &Store{
		on:       cfg.InitialOn,
		initial:  cfg.InitialOn,
		onToggle: cfg.OnToggle,
		onReset:  cfg.OnReset,
	}
	if s.onToggle == nil {
		s.onToggle = func(bool) {}
	}
	if s.onReset == nil {
		s.onReset = func(bool) {}
	}
	return s
}

// On returns the committed value.
func (s *Store) On() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.on
}

// Version increments on every commit.
func (s *Store) Version() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ver
}

// Snapshot derives the current channel value.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		On:     s.On(),
		Toggle: s.Toggle,
		Reset:  s.Reset,
	}
}

// Toggle commits the negation of the committed value, then notifies
// watchers, then fires OnToggle with the committed value.
func (s *Store) Toggle() {
	next, subs := s.commit(func(cur bool) bool { return !cur })
	s.notify(next, subs)
	s.onToggle(next)
}

// Reset commits the construction-time value, not a hard-coded default, then
// notifies watchers, then fires OnReset with the committed value.
func (s *Store) Reset() {
	next, subs := s.commit(func(bool) bool { return s.initial })
	s.notify(next, subs)
	s.onReset(next)
}

// commit is the single transition point. The transition function is pure,
// the effects (watch notifications, configured callback) run after the lock
// is released so re-entrant actions don't deadlock.
func (s *Store) commit(transition func(cur bool) bool) (next bool, subs []*subscription) {
	s.mu.Lock()
	s.on = transition(s.on)
	s.ver++
	next = s.on
	subs = make([]*subscription, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()
	return next, subs
}

func (s *Store) notify(next bool, subs []*subscription) {
	snap := Snapshot{On: next, Toggle: s.Toggle, Reset: s.Reset}
	for _, sub := range subs {
		sub.fn(snap)
	}
}

// Watch registers fn to run after every commit with the fresh snapshot.
// It returns a stop function that removes the registration.
func (s *Store) Watch(fn Listener) (stop func()) {
	sub := &subscription{fn: fn}
	s.mu.Lock()
	s.subs = append(s.subs, sub)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, candidate := range s.subs {
			if candidate == sub {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}
