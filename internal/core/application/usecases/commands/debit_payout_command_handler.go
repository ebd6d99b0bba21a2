package commands

import (
	"context"
	"fmt"
	"time"

	"courierhub/internal/core/domain/model/payout"
	"courierhub/internal/core/ports"
)

// DebitPayoutCommandHandler writes a debit entry and lowers the balance in the
// same unit of work. The balance may go negative.
type DebitPayoutCommandHandler struct {
	uowFactory UoWFactory
	effects    Effects
	now        func() time.Time
}

func NewDebitPayoutCommandHandler(uowFactory UoWFactory, effects Effects) *DebitPayoutCommandHandler {
	return &DebitPayoutCommandHandler{
		uowFactory: uowFactory,
		effects:    effects,
		now:        time.Now,
	}
}

func (h *DebitPayoutCommandHandler) Handle(ctx context.Context, cmd DebitPayoutCommand) (*payout.Entry, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CourierRepository().Get(ctx, cmd.CourierID()); err != nil {
		return nil, err
	}

	entry, err := payout.NewDebit(cmd.CourierID(), cmd.Amount(), h.now().UTC())
	if err != nil {
		return nil, err
	}
	if err = uow.LedgerRepository().Append(ctx, entry); err != nil {
		return nil, err
	}
	if err = uow.CourierRepository().AdjustBalance(ctx, cmd.CourierID(), entry.BalanceDelta()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.effects.notify(ctx, notification{
		target:  ports.NotificationTarget{Recipient: ports.RecipientCourier, ID: cmd.CourierID()},
		message: fmt.Sprintf("Payout of %d sent", cmd.Amount()),
	})
	return entry, nil
}
