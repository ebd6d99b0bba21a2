package commands

import (
	"context"
	"log/slog"
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/ports"
)

type MarkStaleCouriersOfflineCommandHandler struct {
	uowFactory CourierUoWFactory
	positions  ports.PositionCache
	logger     *slog.Logger
	now        func() time.Time
}

func NewMarkStaleCouriersOfflineCommandHandler(
	uowFactory CourierUoWFactory,
	positions ports.PositionCache,
	logger *slog.Logger,
) *MarkStaleCouriersOfflineCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &MarkStaleCouriersOfflineCommandHandler{
		uowFactory: uowFactory,
		positions:  positions,
		logger:     logger.With("component", "stale-courier-sweep"),
		now:        time.Now,
	}
}

// Handle returns the couriers that were taken off shift.
func (h *MarkStaleCouriersOfflineCommandHandler) Handle(
	ctx context.Context,
	cmd MarkStaleCouriersOfflineCommand,
) ([]kernel.UUID, error) {
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

	stale, err := uow.CourierRepository().MarkStaleOffline(ctx, h.now().UTC().Add(-cmd.StaleAfter()))
	if err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	for _, id := range stale {
		h.logger.InfoContext(ctx, "courier went silent, marked offline", "courier_id", id.String())
		if h.positions == nil {
			continue
		}
		if err = h.positions.Remove(ctx, id); err != nil {
			h.logger.WarnContext(ctx, "position cache not cleared", "courier_id", id.String(), "error", err)
		}
	}
	return stale, nil
}
