package commands

import (
	"context"
	"fmt"
	"time"

	"courierhub/internal/core/ports"
)

// CancelOrderCommandHandler cancels a non-terminal order and gives the
// courier's slot back when one was assigned.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	effects    Effects
	now        func() time.Time
}

func NewCancelOrderCommandHandler(uowFactory UoWFactory, effects Effects) *CancelOrderCommandHandler {
	return &CancelOrderCommandHandler{
		uowFactory: uowFactory,
		effects:    effects,
		now:        time.Now,
	}
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	expected := o.Status()

	released, err := o.Cancel(cmd.Reason(), h.now().UTC())
	if err != nil {
		return err
	}
	if err = uow.OrderRepository().UpdateIfStatus(ctx, o, expected); err != nil {
		return err
	}
	if released != nil {
		if err = uow.CourierRepository().Release(ctx, *released, false); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notes := []notification{customerNote(o, "Your order has been cancelled")}
	if released != nil {
		notes = append(notes, notification{
			target:  ports.NotificationTarget{Recipient: ports.RecipientCourier, ID: *released},
			message: fmt.Sprintf("Order %s was cancelled", o.ID()),
		})
	}
	h.effects.orderChanged(ctx, o, notes...)

	return nil
}
