// Package memory is an in-process implementation of the persistence ports.
// It backs local runs without a database and the concurrency tests.
//
// A unit of work holds the store exclusively from Begin until Commit or
// Rollback, which gives serializable transactions. Rollback restores a copy
// of the state taken at Begin. Repository calls made outside a unit of work
// take the store for the duration of the call only.
package memory

import (
	"context"
	"maps"
	"slices"

	"courierhub/internal/core/domain/model/courier"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/core/domain/model/payout"
	"courierhub/internal/core/domain/model/settings"
)

type state struct {
	couriers map[kernel.UUID]courier.Snapshot
	orders   map[kernel.UUID]order.Snapshot
	weights  []settings.DispatchWeights
	ledger   []*payout.Entry
}

// clone copies the containers. Stored snapshots are replaced and never
// mutated in place, so sharing their contents is safe.
func (s *state) clone() *state {
	return &state{
		couriers: maps.Clone(s.couriers),
		orders:   maps.Clone(s.orders),
		weights:  slices.Clone(s.weights),
		ledger:   slices.Clone(s.ledger),
	}
}

type Store struct {
	sem      chan struct{}
	data     *state
	defaults settings.DispatchWeights
}

// NewStore creates an empty store. defaults become dispatch weights version 1
// on first read.
func NewStore(defaults settings.DispatchWeights) *Store {
	if defaults.Validate() != nil {
		defaults = settings.Default()
	}
	return &Store{
		sem: make(chan struct{}, 1),
		data: &state{
			couriers: make(map[kernel.UUID]courier.Snapshot),
			orders:   make(map[kernel.UUID]order.Snapshot),
		},
		defaults: defaults,
	}
}

func (s *Store) acquire(ctx context.Context) error {
	select {
	case s.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) release() {
	<-s.sem
}
