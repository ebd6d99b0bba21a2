package commands

import (
	"context"
	"log/slog"

	"courierhub/internal/core/ports"
)

// ReportCourierLocationCommandHandler stores a ping (last write wins) and
// mirrors applied pings into the live position cache. The cache is optional.
type ReportCourierLocationCommandHandler struct {
	uowFactory CourierUoWFactory
	positions  ports.PositionCache
	logger     *slog.Logger
}

func NewReportCourierLocationCommandHandler(
	uowFactory CourierUoWFactory,
	positions ports.PositionCache,
	logger *slog.Logger,
) *ReportCourierLocationCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportCourierLocationCommandHandler{
		uowFactory: uowFactory,
		positions:  positions,
		logger:     logger.With("component", "location-tracker"),
	}
}

// Handle reports whether the ping replaced the stored position. Pings older
// than the stored one are accepted and ignored.
func (h *ReportCourierLocationCommandHandler) Handle(ctx context.Context, cmd ReportCourierLocationCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	applied, err := uow.CourierRepository().UpdateLocation(ctx, cmd.CourierID(), cmd.Point(), cmd.At())
	if err != nil {
		return false, err
	}
	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	if applied && h.positions != nil {
		if err = h.positions.Set(ctx, cmd.CourierID(), cmd.Point()); err != nil {
			h.logger.WarnContext(ctx, "position cache not updated", "courier_id", cmd.CourierID().String(), "error", err)
		}
	}

	return applied, nil
}
