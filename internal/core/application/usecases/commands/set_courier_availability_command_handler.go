package commands

import (
	"context"
	"log/slog"

	"courierhub/internal/core/ports"
)

type SetCourierAvailabilityCommandHandler struct {
	uowFactory CourierUoWFactory
	positions  ports.PositionCache
	logger     *slog.Logger
}

func NewSetCourierAvailabilityCommandHandler(
	uowFactory CourierUoWFactory,
	positions ports.PositionCache,
	logger *slog.Logger,
) *SetCourierAvailabilityCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SetCourierAvailabilityCommandHandler{
		uowFactory: uowFactory,
		positions:  positions,
		logger:     logger.With("component", "courier-availability"),
	}
}

// Handle toggles the shift. Going offline drops the courier from the live
// position cache.
func (h *SetCourierAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetCourierAvailabilityCommand) error {
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

	if err := uow.CourierRepository().SetAvailability(ctx, cmd.CourierID(), cmd.Online()); err != nil {
		return err
	}
	if err := uow.Commit(ctx); err != nil {
		return err
	}

	if !cmd.Online() && h.positions != nil {
		if err := h.positions.Remove(ctx, cmd.CourierID()); err != nil {
			h.logger.WarnContext(ctx, "position cache not cleared", "courier_id", cmd.CourierID().String(), "error", err)
		}
	}
	return nil
}
