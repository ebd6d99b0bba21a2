package http

import (
	"time"

	"courierhub/internal/core/application/usecases/queries"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/generated/servers"
	"courierhub/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func position(p *kernel.GeoPoint) *servers.Position {
	if p == nil {
		return nil
	}
	return &servers.Position{Lat: p.Lat(), Lng: p.Lng()}
}

func optionalID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	out := id.Bytes()
	return &out
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	out := t.UTC()
	return &out
}

// optionalPoint requires lat and lng together.
func optionalPoint(lat, lng *float64) (*kernel.GeoPoint, error) {
	switch {
	case lat == nil && lng == nil:
		return nil, nil
	case lat == nil:
		return nil, errs.NewValueIsRequiredError("lat")
	case lng == nil:
		return nil, errs.NewValueIsRequiredError("lng")
	}
	p, err := kernel.NewGeoPoint(*lat, *lng)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func orderStatus(id kernel.UUID, status order.Status) servers.OrderStatus {
	return servers.OrderStatus{OrderId: id.Bytes(), Status: status.String()}
}

func ledgerEntry(e queries.LedgerEntryResponse) servers.LedgerEntry {
	return servers.LedgerEntry{
		Id:        e.ID.Bytes(),
		Kind:      servers.LedgerEntryKind(e.Kind),
		Amount:    e.Amount,
		OrderId:   optionalID(e.OrderID),
		CreatedAt: e.CreatedAt.UTC(),
	}
}

func trackingResponse(view queries.GetOrderTrackingQueryResponse) servers.Tracking {
	response := servers.Tracking{
		OrderId:         view.OrderID.Bytes(),
		Status:          view.Status.String(),
		Destination:     servers.Position{Lat: view.Destination.Lat(), Lng: view.Destination.Lng()},
		Address:         view.Address,
		CreatedAt:       view.CreatedAt.UTC(),
		FinishedAt:      utcPtr(view.FinishedAt),
		CancelledAt:     utcPtr(view.CancelledAt),
		CourierLocation: position(view.CourierLocation),
	}
	if view.Trace != nil {
		trace := make([]servers.TrackPoint, len(view.Trace))
		for i, p := range view.Trace {
			trace[i] = servers.TrackPoint{
				Status: p.Status.String(),
				Lat:    p.Point.Lat(),
				Lng:    p.Point.Lng(),
				At:     p.At.UTC(),
			}
		}
		response.Trace = &trace
	}
	return response
}
