package commands

import (
	"context"
	"fmt"
	"time"

	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/core/domain/model/payout"
	"courierhub/internal/pkg/errs"
)

// CompleteDeliveryCommandHandler closes a DELIVERING order. The order
// transition, the courier release and the delivery credit commit together or
// not at all.
type CompleteDeliveryCommandHandler struct {
	uowFactory UoWFactory
	effects    Effects
	now        func() time.Time
}

func NewCompleteDeliveryCommandHandler(uowFactory UoWFactory, effects Effects) *CompleteDeliveryCommandHandler {
	return &CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		effects:    effects,
		now:        time.Now,
	}
}

func (h *CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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

	now := h.now().UTC()
	if err = o.Complete(cmd.Point(), now); err != nil {
		return err
	}
	if err = completeDelivery(ctx, uow, o, expected, now); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.effects.orderChanged(ctx, o, deliveredNotes(o)...)
	return nil
}

// completeDelivery persists an order that has just moved to COMPLETED, gives
// the courier's slot back and credits the delivery fee. It must run inside
// the caller's unit of work.
func completeDelivery(ctx context.Context, uow UoW, o *order.Order, expected order.Status, at time.Time) error {
	if err := uow.OrderRepository().UpdateIfStatus(ctx, o, expected); err != nil {
		return err
	}

	courierID := o.Courier()
	if courierID == nil {
		return errs.NewValueIsRequiredError("courier")
	}
	if err := uow.CourierRepository().Release(ctx, *courierID, true); err != nil {
		return err
	}

	if o.DeliveryFee() == 0 {
		return nil
	}
	entry, err := payout.NewCredit(*courierID, o.ID(), o.DeliveryFee(), at)
	if err != nil {
		return err
	}
	if err = uow.LedgerRepository().Append(ctx, entry); err != nil {
		return err
	}
	return uow.CourierRepository().AdjustBalance(ctx, *courierID, entry.BalanceDelta())
}

func deliveredNotes(o *order.Order) []notification {
	notes := courierNote(o, fmt.Sprintf("Order %s delivered, %d credited", o.ID(), o.DeliveryFee()))
	return append(notes, customerNote(o, "Your order has been delivered"))
}
