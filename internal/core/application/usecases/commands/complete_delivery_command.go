package commands

import (
	"errors"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand records the handoff to the customer at point.
type CompleteDeliveryCommand struct {
	orderID kernel.UUID
	point   kernel.GeoPoint

	guard guard.ConstructorGuard
}

func NewCompleteDeliveryCommand(orderID kernel.UUID, point kernel.GeoPoint) (CompleteDeliveryCommand, error) {
	if err := errors.Join(orderID.Validate(), point.Validate()); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return CompleteDeliveryCommand{
		orderID: orderID,
		point:   point,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

func (c CompleteDeliveryCommand) OrderID() kernel.UUID   { return c.orderID }
func (c CompleteDeliveryCommand) Point() kernel.GeoPoint { return c.point }
