package commands

import (
	"errors"
	"fmt"
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/services"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var ErrIssueScanTokenCommandIsNotConstructed = errors.New(
	"IssueScanTokenCommand must be created via NewIssueScanTokenCommand constructor",
)

// IssueScanTokenCommand mints the token a courier presents at the next scan
// of the order.
type IssueScanTokenCommand struct {
	orderID kernel.UUID
	ttl     time.Duration

	guard guard.ConstructorGuard
}

// NewIssueScanTokenCommand uses services.DefaultScanTokenTTL when ttl is zero.
func NewIssueScanTokenCommand(orderID kernel.UUID, ttl time.Duration) (IssueScanTokenCommand, error) {
	if ttl == 0 {
		ttl = services.DefaultScanTokenTTL
	}
	var ttlErr error
	if ttl < 0 {
		ttlErr = errs.NewValueIsInvalidErrorWithCause("ttl", fmt.Errorf("%s is negative", ttl))
	}
	if err := errors.Join(orderID.Validate(), ttlErr); err != nil {
		return IssueScanTokenCommand{}, err
	}

	return IssueScanTokenCommand{
		orderID: orderID,
		ttl:     ttl,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c IssueScanTokenCommand) Validate() error {
	return c.guard.Validate(ErrIssueScanTokenCommandIsNotConstructed)
}

func (c IssueScanTokenCommand) OrderID() kernel.UUID { return c.orderID }
func (c IssueScanTokenCommand) TTL() time.Duration   { return c.ttl }
