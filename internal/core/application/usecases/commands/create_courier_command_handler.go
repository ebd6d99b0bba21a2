package commands

import (
	"context"

	"courierhub/internal/core/domain/model/courier"
)

// CreateCourierCommandHandler persists a newly registered courier. New couriers
// start OFFLINE without a position.
type CreateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

func NewCreateCourierCommandHandler(uowFactory CourierUoWFactory) *CreateCourierCommandHandler {
	return &CreateCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreateCourierCommandHandler) Handle(ctx context.Context, cmd CreateCourierCommand) error {
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

	courierRepo := uow.CourierRepository()
	courierEntity, err := courier.NewCourier(cmd.CourierID(), cmd.Name(), cmd.Rating(), cmd.AvgResponseSeconds())
	if err != nil {
		return err
	}

	if err = courierRepo.Add(ctx, courierEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
