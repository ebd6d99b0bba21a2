package queries

import (
	"errors"
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/guard"
)

var ErrGetLiveCouriersQueryIsNotConstructed = errors.New(
	"GetLiveCouriersQuery must be created via NewGetLiveCouriersQuery constructor",
)

// GetLiveCouriersQuery lists idle ONLINE couriers with a known position, the
// set shown on the live dispatch map.
type GetLiveCouriersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetLiveCouriersQuery() GetLiveCouriersQuery {
	return GetLiveCouriersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetLiveCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetLiveCouriersQueryIsNotConstructed)
}

type GetLiveCouriersQueryResponse struct {
	ID         kernel.UUID
	Name       string
	Location   kernel.GeoPoint
	LocationAt time.Time
}
