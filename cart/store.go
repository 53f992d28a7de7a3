package cart

import (
	"context"
	"sync"
)

// Store holds the current cart State and serialises transitions on it.
// Readers always see a complete State: each dispatch computes the next
// State from a snapshot and installs it in one step.
type Store struct {
	mu    sync.RWMutex
	state State
	money Money
}

// NewStore returns an empty cart whose totals are formatted with money.
func NewStore(money Money) *Store {
	return &Store{state: Empty(), money: money}
}

// Dispatch applies cmd to the current state. A rejected command leaves the
// state unchanged.
func (s *Store) Dispatch(cmd Command) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := Apply(s.state, cmd)
	if err != nil {
		return err
	}
	s.state = next
	return nil
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// View derives the display view of the current state.
func (s *Store) View() View {
	return NewView(s.State(), s.money)
}

// Checkout hands the current view to send and empties the cart only if send
// succeeds. An empty cart is refused with ErrCartEmpty and send is not
// called. The write lock is held while send runs, so dispatches and views
// wait for the submitter. The returned View is the one that was sent.
func (s *Store) Checkout(ctx context.Context, send func(context.Context, View) error) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := NewView(s.state, s.money)
	if len(v.Items) == 0 {
		return v, ErrCartEmpty
	}
	if err := send(ctx, v); err != nil {
		return v, err
	}

	last := v.Items[len(v.Items)-1]
	next, err := Apply(s.state, Submit{Item: &last})
	if err != nil {
		return v, err
	}
	s.state = next
	return v, nil
}

// Money is the formatter used for this cart's totals.
func (s *Store) Money() Money { return s.money }
