package commands

import (
	"context"
	"errors"
	"log/slog"

	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/core/domain/services"
)

// DispatchPendingResult counts the outcomes of one sweep.
type DispatchPendingResult struct {
	Assigned    int
	NoCandidate int
	Failed      int
}

// DispatchPendingOrdersCommandHandler dispatches waiting orders one by one.
// Every order gets its own unit of work so one failure never blocks the rest
// of the batch. Orders without a candidate stay PROCESSING for the next sweep.
type DispatchPendingOrdersCommandHandler struct {
	uowFactory UoWFactory
	dispatch   *DispatchOrderCommandHandler
	logger     *slog.Logger
}

func NewDispatchPendingOrdersCommandHandler(
	uowFactory UoWFactory,
	dispatch *DispatchOrderCommandHandler,
	logger *slog.Logger,
) *DispatchPendingOrdersCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DispatchPendingOrdersCommandHandler{
		uowFactory: uowFactory,
		dispatch:   dispatch,
		logger:     logger.With("component", "dispatch-pending"),
	}
}

func (h *DispatchPendingOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd DispatchPendingOrdersCommand,
) (DispatchPendingResult, error) {
	if err := cmd.Validate(); err != nil {
		return DispatchPendingResult{}, err
	}

	waiting, err := h.waitingOrders(ctx, cmd.Limit())
	if err != nil {
		return DispatchPendingResult{}, err
	}

	var result DispatchPendingResult
	for _, o := range waiting {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		dispatchCmd, err := NewDispatchOrderCommand(o.ID())
		if err != nil {
			return result, err
		}

		assigned, err := h.dispatch.Handle(ctx, dispatchCmd)
		switch {
		case err == nil:
			result.Assigned++
			h.logger.InfoContext(ctx, "order dispatched",
				"order_id", o.ID().String(), "courier_id", assigned.CourierID.String())
		case errors.Is(err, services.ErrNoCandidate):
			result.NoCandidate++
			h.logger.DebugContext(ctx, "no courier for order", "order_id", o.ID().String())
		default:
			result.Failed++
			h.logger.WarnContext(ctx, "order dispatch failed", "order_id", o.ID().String(), "error", err)
		}
	}

	return result, nil
}

func (h *DispatchPendingOrdersCommandHandler) waitingOrders(ctx context.Context, limit int) ([]*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	waiting, err := uow.OrderRepository().GetAllInStatus(ctx, order.Processing, limit)
	if err != nil {
		return nil, err
	}

	return waiting, uow.Commit(ctx)
}
