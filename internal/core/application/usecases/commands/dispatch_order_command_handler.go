package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courierhub/internal/core/domain/model/courier"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/services"
	"courierhub/internal/core/ports"
	"courierhub/internal/pkg/errs"
)

// DispatchResult names the courier an order was bound to.
type DispatchResult struct {
	CourierID   kernel.UUID
	CourierName string
	Score       float64
}

// DispatchOrderCommandHandler binds an order to the best ranked courier.
//
// The order transition and the courier claim share one unit of work. The
// order is written with a status precondition and the claim is refused for
// OFFLINE couriers, so two dispatchers racing for the same order or the same
// courier can never both commit.
type DispatchOrderCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.OrderDispatcher
	effects    Effects
	now        func() time.Time
}

func NewDispatchOrderCommandHandler(
	uowFactory UoWFactory,
	dispatcher services.OrderDispatcher,
	effects Effects,
) *DispatchOrderCommandHandler {
	return &DispatchOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		effects:    effects,
		now:        time.Now,
	}
}

// Handle returns services.ErrNoCandidate when no courier could be claimed. The
// order is left untouched in that case and the caller decides whether to try
// again later.
func (h *DispatchOrderCommandHandler) Handle(ctx context.Context, cmd DispatchOrderCommand) (DispatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return DispatchResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return DispatchResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return DispatchResult{}, err
	}
	expected := o.Status()

	weights, err := uow.SettingsRepository().GetCurrent(ctx)
	if err != nil {
		return DispatchResult{}, err
	}

	courierRepo := uow.CourierRepository()
	onShift, err := courierRepo.GetAllOnShift(ctx)
	if err != nil {
		return DispatchResult{}, err
	}

	ranked, err := h.dispatcher.Rank(o, onShift, weights)
	if err != nil {
		return DispatchResult{}, err
	}

	winner, err := claimFirst(ctx, courierRepo, ranked)
	if err != nil {
		return DispatchResult{}, err
	}

	if err = o.Assign(winner.Courier.ID(), *winner.Courier.Location(), h.now().UTC()); err != nil {
		return DispatchResult{}, err
	}
	if err = uow.OrderRepository().UpdateIfStatus(ctx, o, expected); err != nil {
		return DispatchResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return DispatchResult{}, err
	}

	notes := courierNote(o, fmt.Sprintf("New order %s: pick up at %s", o.ID(), o.Pickup()))
	notes = append(notes, customerNote(o, fmt.Sprintf("Courier %s is on the way", winner.Courier.Name())))
	h.effects.orderChanged(ctx, o, notes...)

	return DispatchResult{
		CourierID:   winner.Courier.ID(),
		CourierName: winner.Courier.Name(),
		Score:       winner.Score,
	}, nil
}

// claimFirst walks the ranking and claims the first courier that is still on
// shift. Couriers that went offline or disappeared since the read are skipped.
func claimFirst(ctx context.Context, repo ports.CourierRepository, ranked []services.Candidate) (services.Candidate, error) {
	for _, candidate := range ranked {
		err := repo.Claim(ctx, candidate.Courier.ID())
		switch {
		case err == nil:
			return candidate, nil
		case errors.Is(err, courier.ErrCourierUnavailable), errors.Is(err, errs.ErrObjectNotFound):
			continue
		default:
			return services.Candidate{}, err
		}
	}
	return services.Candidate{}, services.ErrNoCandidate
}
