// Package queries contains read operations for retrieving system state.
// Queries return flat read models shaped for the HTTP API and never change
// state.
package queries

import (
	"errors"

	"courierhub/internal/core/domain/model/courier"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/guard"
)

var (
	ErrGetAllCouriersQueryIsNotConstructed = errors.New(
		"GetAllCouriersQuery must be created via NewGetAllCouriersQuery constructor",
	)
)

// GetAllCouriersQuery lists the whole roster, ordered by name.
//
// Example:
//
//	query := NewGetAllCouriersQuery()
//	handler := NewGetAllCouriersQueryHandler(courierRepo)
//
//	couriers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve couriers: %w", err)
//	}
type GetAllCouriersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllCouriersQuery() GetAllCouriersQuery {
	return GetAllCouriersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCouriersQueryIsNotConstructed)
}

// GetAllCouriersQueryResponse is one roster line. Location is nil for a
// courier that never reported a position.
type GetAllCouriersQueryResponse struct {
	ID                 kernel.UUID
	Name               string
	Status             courier.Status
	Location           *kernel.GeoPoint
	Workload           int
	Rating             float64
	AvgResponseSeconds float64
	Balance            int64
	DeliveredCount     int
}
