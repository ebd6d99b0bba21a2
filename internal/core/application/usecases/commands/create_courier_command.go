package commands

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"courierhub/internal/core/domain/model/courier"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var (
	ErrCreateCourierCommandIsNotConstructed = errors.New(
		"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
	)
	ErrNameIsRequired = errors.New("name is required")
)

// CreateCourierCommand registers a courier on the roster. The identifier is
// generated by the constructor so the caller can return it before the handler
// runs.
//
// Example:
//
//	cmd, err := NewCreateCourierCommand("Alice", 4.8, 45)
//	if err != nil {
//	    return fmt.Errorf("invalid courier data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
//	fmt.Printf("courier %s registered", cmd.CourierID())
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID          kernel.UUID
	name               string
	rating             float64
	avgResponseSeconds float64

	guard guard.ConstructorGuard
}

func NewCreateCourierCommand(name string, rating float64, avgResponseSeconds float64) (CreateCourierCommand, error) {
	command := CreateCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(kernel.NewUUID()),
		command.setName(name),
		command.setRating(rating),
		command.setAvgResponseSeconds(avgResponseSeconds),
	); err != nil {
		return CreateCourierCommand{}, err
	}

	return command, nil
}

func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

func (c CreateCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c CreateCourierCommand) Name() string {
	return c.name
}

func (c CreateCourierCommand) Rating() float64 {
	return c.rating
}

func (c CreateCourierCommand) AvgResponseSeconds() float64 {
	return c.avgResponseSeconds
}

func (c *CreateCourierCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}

func (c *CreateCourierCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateCourierCommand) setRating(rating float64) error {
	if math.IsNaN(rating) || rating < courier.RatingMin || rating > courier.RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, courier.RatingMin, courier.RatingMax)
	}

	c.rating = rating
	return nil
}

func (c *CreateCourierCommand) setAvgResponseSeconds(seconds float64) error {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return errs.NewValueIsInvalidErrorWithCause("avgResponseSeconds", fmt.Errorf("%v is negative or not finite", seconds))
	}

	c.avgResponseSeconds = seconds
	return nil
}
