package commands

import (
	"errors"
	"strings"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var ErrRedeemScanCommandIsNotConstructed = errors.New(
	"RedeemScanCommand must be created via NewRedeemScanCommand constructor",
)

// RedeemScanCommand is a courier scanning a parcel at pickup or at the
// customer's door.
type RedeemScanCommand struct {
	token string
	point kernel.GeoPoint

	guard guard.ConstructorGuard
}

func NewRedeemScanCommand(token string, point kernel.GeoPoint) (RedeemScanCommand, error) {
	token = strings.TrimSpace(token)
	var tokenErr error
	if token == "" {
		tokenErr = errs.NewValueIsRequiredError("token")
	}
	if err := errors.Join(tokenErr, point.Validate()); err != nil {
		return RedeemScanCommand{}, err
	}

	return RedeemScanCommand{
		token: token,
		point: point,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c RedeemScanCommand) Validate() error {
	return c.guard.Validate(ErrRedeemScanCommandIsNotConstructed)
}

func (c RedeemScanCommand) Token() string          { return c.token }
func (c RedeemScanCommand) Point() kernel.GeoPoint { return c.point }
