// Package store owns the single live RestaurantState and serializes every
// transition through one goroutine, so actions apply in dispatch order and
// each transition observes the fully committed result of the previous one.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/iliyamo/restaurant-ops/internal/engine"
	"github.com/iliyamo/restaurant-ops/internal/model"
)

// dispatch envelopes one action so the loop goroutine can apply it and
// reply with the committed snapshot.
type dispatch struct {
	action engine.Action
	now    time.Time
	reply  chan model.RestaurantState
}

// snapshotQuery asks the loop for the current snapshot without mutating it.
type snapshotQuery struct {
	reply chan model.RestaurantState
}

// Store wraps the transition engine behind a goroutine to uphold Go's
// "share memory by communicating" approach; no mutexes guard the state.
type Store struct {
	dispatches chan dispatch
	snapshots  chan snapshotQuery
	quit       chan struct{}
}

// New starts the store loop around the given initial state.
func New(initial model.RestaurantState) *Store {
	s := &Store{
		dispatches: make(chan dispatch),
		snapshots:  make(chan snapshotQuery),
		quit:       make(chan struct{}),
	}
	go s.loop(initial)
	return s
}

// loop applies dispatches sequentially; state lives only on this goroutine's
// stack, which is what makes every transition atomic without locking.
func (s *Store) loop(state model.RestaurantState) {
	for {
		select {
		case d := <-s.dispatches:
			state = engine.Transition(state, d.action, d.now)
			d.reply <- state
		case q := <-s.snapshots:
			q.reply <- state
		case <-s.quit:
			return
		}
	}
}

// Dispatch applies one action and returns the committed snapshot.  Actions
// sent from concurrent handlers are applied in arrival order.
func (s *Store) Dispatch(ctx context.Context, action engine.Action) (model.RestaurantState, error) {
	reply := make(chan model.RestaurantState, 1)
	d := dispatch{action: action, now: time.Now().UTC(), reply: reply}

	select {
	case s.dispatches <- d:
	case <-ctx.Done():
		return model.RestaurantState{}, ctx.Err()
	case <-time.After(2 * time.Second):
		return model.RestaurantState{}, errors.New("store is busy applying other actions")
	}

	select {
	case next := <-reply:
		return next, nil
	case <-ctx.Done():
		return model.RestaurantState{}, ctx.Err()
	case <-time.After(2 * time.Second):
		return model.RestaurantState{}, errors.New("transition took too long")
	}
}

// Snapshot returns the current state for read-only selectors.
func (s *Store) Snapshot(ctx context.Context) (model.RestaurantState, error) {
	reply := make(chan model.RestaurantState, 1)

	select {
	case s.snapshots <- snapshotQuery{reply: reply}:
	case <-ctx.Done():
		return model.RestaurantState{}, ctx.Err()
	case <-time.After(2 * time.Second):
		return model.RestaurantState{}, errors.New("store is busy applying other actions")
	}

	select {
	case snap := <-reply:
		return snap, nil
	case <-ctx.Done():
		return model.RestaurantState{}, ctx.Err()
	}
}

// Close stops the loop; pending dispatches are abandoned.
func (s *Store) Close() {
	close(s.quit)
}
