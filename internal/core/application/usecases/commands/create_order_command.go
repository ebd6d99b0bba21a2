package commands

import (
	"errors"
	"fmt"
	"strings"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrAddressIsRequired = errors.New("address is required")
)

// CreateOrderCommand takes an order placed by the storefront into the delivery
// lifecycle. The order id comes from the storefront.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(orderID, customerID, pickup, destination, "Tverskaya 1", 15000)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	customerID  kernel.UUID
	pickup      kernel.GeoPoint
	destination kernel.GeoPoint
	address     string
	deliveryFee int64

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	pickup kernel.GeoPoint,
	destination kernel.GeoPoint,
	address string,
	deliveryFee int64,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setPickup(pickup),
		orderCommand.setDestination(destination),
		orderCommand.setAddress(address),
		orderCommand.setDeliveryFee(deliveryFee),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID         { return c.orderID }
func (c CreateOrderCommand) CustomerID() kernel.UUID      { return c.customerID }
func (c CreateOrderCommand) Pickup() kernel.GeoPoint      { return c.pickup }
func (c CreateOrderCommand) Destination() kernel.GeoPoint { return c.destination }
func (c CreateOrderCommand) Address() string              { return c.address }

// DeliveryFee is the courier's earning for this order in minor units.
func (c CreateOrderCommand) DeliveryFee() int64 { return c.deliveryFee }

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setPickup(p kernel.GeoPoint) error {
	if err := p.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pickup", err)
	}

	c.pickup = p
	return nil
}

func (c *CreateOrderCommand) setDestination(p kernel.GeoPoint) error {
	if err := p.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("destination", err)
	}

	c.destination = p
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *CreateOrderCommand) setDeliveryFee(fee int64) error {
	if fee < 0 {
		return errs.NewValueIsInvalidErrorWithCause("deliveryFee", fmt.Errorf("%d is negative", fee))
	}

	c.deliveryFee = fee
	return nil
}
