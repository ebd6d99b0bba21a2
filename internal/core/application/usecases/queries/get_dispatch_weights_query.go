package queries

import (
	"errors"

	"courierhub/internal/pkg/guard"
)

var ErrGetDispatchWeightsQueryIsNotConstructed = errors.New(
	"GetDispatchWeightsQuery must be created via NewGetDispatchWeightsQuery constructor",
)

type GetDispatchWeightsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDispatchWeightsQuery() GetDispatchWeightsQuery {
	return GetDispatchWeightsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetDispatchWeightsQuery) Validate() error {
	return q.guard.Validate(ErrGetDispatchWeightsQueryIsNotConstructed)
}

type GetDispatchWeightsQueryResponse struct {
	Distance float64
	Rating   float64
	Workload float64
	Response float64
	Version  int
}
