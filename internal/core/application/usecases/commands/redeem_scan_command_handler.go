package commands

import (
	"context"
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/core/domain/services"
)

type RedeemScanResult struct {
	OrderID kernel.UUID
	Status  order.Status
}

// RedeemScanCommandHandler verifies a scan token and advances the order it
// was issued for: ASSIGNED -> PICKED_UP or DELIVERING -> COMPLETED. A scan
// that completes the order runs the same release and credit as
// CompleteDeliveryCommandHandler.
type RedeemScanCommandHandler struct {
	uowFactory UoWFactory
	tokens     *services.ScanTokenService
	effects    Effects
	now        func() time.Time
}

func NewRedeemScanCommandHandler(
	uowFactory UoWFactory,
	tokens *services.ScanTokenService,
	effects Effects,
) *RedeemScanCommandHandler {
	return &RedeemScanCommandHandler{
		uowFactory: uowFactory,
		tokens:     tokens,
		effects:    effects,
		now:        time.Now,
	}
}

func (h *RedeemScanCommandHandler) Handle(ctx context.Context, cmd RedeemScanCommand) (RedeemScanResult, error) {
	if err := cmd.Validate(); err != nil {
		return RedeemScanResult{}, err
	}

	orderID, err := h.tokens.Validate(cmd.Token())
	if err != nil {
		return RedeemScanResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return RedeemScanResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return RedeemScanResult{}, err
	}
	expected := o.Status()

	now := h.now().UTC()
	if err = o.RedeemScanToken(cmd.Token(), cmd.Point(), now); err != nil {
		return RedeemScanResult{}, err
	}

	if o.Status() == order.Completed {
		err = completeDelivery(ctx, uow, o, expected, now)
	} else {
		err = uow.OrderRepository().UpdateIfStatus(ctx, o, expected)
	}
	if err != nil {
		return RedeemScanResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RedeemScanResult{}, err
	}

	var notes []notification
	if o.Status() == order.Completed {
		notes = deliveredNotes(o)
	} else {
		notes = append(notes, customerNote(o, "Your order has been picked up"))
	}
	h.effects.orderChanged(ctx, o, notes...)

	return RedeemScanResult{OrderID: o.ID(), Status: o.Status()}, nil
}
