package commands

import (
	"context"
	"time"

	"courierhub/internal/core/domain/model/order"
)

// AdvanceOrderCommandHandler applies an AdvanceOrderCommand with a status
// precondition: a concurrent transition makes it fail instead of being
// overwritten.
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	effects    Effects
	now        func() time.Time
}

func NewAdvanceOrderCommandHandler(uowFactory OrderUoWFactory, effects Effects) *AdvanceOrderCommandHandler {
	return &AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		effects:    effects,
		now:        time.Now,
	}
}

func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return order.Unknown, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Unknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return order.Unknown, err
	}
	expected := o.Status()

	switch cmd.Target() { //nolint:exhaustive // guarded by the command constructor
	case order.Pending:
		err = o.MarkPending()
	case order.Processing:
		err = o.StartProcessing()
	case order.Delivering:
		err = o.StartDelivery(*cmd.Point(), h.now().UTC())
	}
	if err != nil {
		return order.Unknown, err
	}

	if err = orderRepo.UpdateIfStatus(ctx, o, expected); err != nil {
		return order.Unknown, err
	}
	if err = uow.Commit(ctx); err != nil {
		return order.Unknown, err
	}

	var notes []notification
	if o.Status() == order.Delivering {
		notes = append(notes, customerNote(o, "Your order is on its way"))
	}
	h.effects.orderChanged(ctx, o, notes...)

	return o.Status(), nil
}
