package fornance

import (
	"context"
	"errors"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RateProvider supplies currency conversion rates. Given a base currency code
// it returns a mapping from currency code to the multiplicative rate relative
// to that base. It is consulted exactly once per conversion.
type RateProvider interface {
	Rates(ctx context.Context, base string) (map[string]decimal.Decimal, error)
}

// Persister serializes a state snapshot to durable storage. It is invoked
// after every published change, fire-and-forget: a failing save is logged and
// never blocks the next operation.
type Persister interface {
	Save(State) error
}

// ErrConversionInFlight is returned by mutating operations issued while a
// currency conversion is awaiting the rate provider.
var ErrConversionInFlight = errors.New("a currency conversion is in progress")

// Store is the finance state container. It owns the cash balance, the
// expenses, the budget plans and the activity history, and guarantees that
// every mutation is atomically paired with an activity entry.
//
// A Store is constructed explicitly with its collaborators injected, and is
// safe for concurrent use.
type Store struct {
	mu    sync.Mutex
	state State
	subs  []func(State)

	rates     RateProvider
	persister Persister
	newID     func() string
	now       func() time.Time
}

// Option configures a Store at construction.
type Option func(*Store)

// WithRateProvider injects the currency rate provider consumed by
// ConvertCurrency.
func WithRateProvider(r RateProvider) Option { return func(s *Store) { s.rates = r } }

// WithPersister injects the persistence adapter notified on every change.
func WithPersister(p Persister) Option { return func(s *Store) { s.persister = p } }

// WithIDGenerator overrides the id generator, so tests can supply
// deterministic ids.
func WithIDGenerator(f func() string) Option { return func(s *Store) { s.newID = f } }

// WithClock overrides the time source used for dates and timestamps.
func WithClock(f func() time.Time) Option { return func(s *Store) { s.now = f } }

// WithState seeds the store with a rehydrated state, typically the result of
// DecodeState.
func WithState(st State) Option { return func(s *Store) { s.state = st.clone() } }

// NewStore creates a store with an empty USD balance and dark mode on, the
// defaults a fresh client starts from.
func NewStore(opts ...Option) *Store {
	s := &Store{
		state: State{CashBalance: M(0, "USD"), IsDarkMode: true},
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state.IsLoading = false
	return s
}

// State returns a deep-copied snapshot of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe registers a callback invoked with a state snapshot after every
// published change. Callbacks run outside the store lock, so they may call
// back into the store.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// mutate runs fn against a working copy of the state while holding the lock,
// rejects the call when a conversion is in flight, and publishes the result.
func (s *Store) mutate(fn func(*State) error) error {
	s.mu.Lock()
	if s.state.IsLoading {
		s.mu.Unlock()
		return ErrConversionInFlight
	}
	next := s.state.clone()
	if err := fn(&next); err != nil {
		s.mu.Unlock()
		if errors.Is(err, errNoChange) {
			return nil
		}
		return err
	}
	s.state = next
	snap := next.clone()
	subs := slices.Clone(s.subs)
	s.mu.Unlock()

	s.notify(snap, subs)
	return nil
}

// notify delivers the snapshot to the persister and the subscribers.
func (s *Store) notify(snap State, subs []func(State)) {
	if s.persister != nil {
		if err := s.persister.Save(snap); err != nil {
			log.Printf("persist err (ignored): %v", err)
		}
	}
	for _, fn := range subs {
		fn(snap)
	}
}

// newActivity builds a bare activity entry; callers fill the optional fields.
func (s *Store) newActivity(t ActivityType, description string) ActivityItem {
	return ActivityItem{
		ID:          s.newID(),
		Type:        t,
		Description: description,
		Timestamp:   s.now(),
	}
}

// record prepends the activity entry, newest first.
func record(st *State, item ActivityItem) {
	st.ActivityHistory = append([]ActivityItem{item}, st.ActivityHistory...)
}

// ClearHistory empties the activity log. This action itself is not recorded.
func (s *Store) ClearHistory() error {
	return s.mutate(func(st *State) error {
		st.ActivityHistory = []ActivityItem{}
		return nil
	})
}

// ToggleDarkMode flips the theme flag. The flag is persisted with the rest of
// the state; applying it to a display is the caller's concern.
func (s *Store) ToggleDarkMode() error {
	return s.mutate(func(st *State) error {
		st.IsDarkMode = !st.IsDarkMode
		return nil
	})
}
