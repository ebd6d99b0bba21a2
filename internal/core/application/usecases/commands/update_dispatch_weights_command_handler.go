package commands

import (
	"context"
	"fmt"

	"courierhub/internal/core/domain/model/settings"
	"courierhub/internal/pkg/errs"
)

// UpdateDispatchWeightsCommandHandler stores the new weights as the next
// version. A rejected update leaves the current version active.
type UpdateDispatchWeightsCommandHandler struct {
	uowFactory SettingsUoWFactory
}

func NewUpdateDispatchWeightsCommandHandler(uowFactory SettingsUoWFactory) *UpdateDispatchWeightsCommandHandler {
	return &UpdateDispatchWeightsCommandHandler{uowFactory: uowFactory}
}

func (h *UpdateDispatchWeightsCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateDispatchWeightsCommand,
) (settings.DispatchWeights, error) {
	if err := cmd.Validate(); err != nil {
		return settings.DispatchWeights{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return settings.DispatchWeights{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.SettingsRepository()
	current, err := repo.GetCurrent(ctx)
	if err != nil {
		return settings.DispatchWeights{}, err
	}
	if v := cmd.ExpectedVersion(); v != 0 && v != current.Version() {
		return settings.DispatchWeights{}, errs.NewVersionIsInvalidErrorWithCause("dispatch weights",
			fmt.Errorf("expected version %d, current is %d", v, current.Version()))
	}

	next, err := current.Next(cmd.Distance(), cmd.Rating(), cmd.Workload(), cmd.Response())
	if err != nil {
		return settings.DispatchWeights{}, err
	}
	if err = repo.Save(ctx, next); err != nil {
		return settings.DispatchWeights{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return settings.DispatchWeights{}, err
	}

	return next, nil
}
