package commands

import (
	"errors"
	"fmt"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand moves an order one step along the lifecycle without a
// scan: payment cleared (PENDING), seller preparing (PROCESSING) or courier
// leaving the pickup point (DELIVERING). DELIVERING needs the courier's position.
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status
	point   *kernel.GeoPoint

	guard guard.ConstructorGuard
}

func NewAdvanceOrderCommand(orderID kernel.UUID, target order.Status, point *kernel.GeoPoint) (AdvanceOrderCommand, error) {
	command := AdvanceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		command.setTarget(target, point),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	command.orderID = orderID
	return command, nil
}

func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

func (c AdvanceOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c AdvanceOrderCommand) Target() order.Status { return c.target }

func (c AdvanceOrderCommand) Point() *kernel.GeoPoint {
	if c.point == nil {
		return nil
	}
	p := *c.point
	return &p
}

func (c *AdvanceOrderCommand) setTarget(target order.Status, point *kernel.GeoPoint) error {
	switch target { //nolint:exhaustive // other targets have dedicated commands
	case order.Pending, order.Processing:
	case order.Delivering:
		if point == nil {
			return errs.NewValueIsRequiredError("coordinates")
		}
		if err := point.Validate(); err != nil {
			return err
		}
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s cannot be reached by advancing; use dispatch, scan, complete or cancel", target))
	}

	c.target = target
	if point != nil {
		p := *point
		c.point = &p
	}
	return nil
}
