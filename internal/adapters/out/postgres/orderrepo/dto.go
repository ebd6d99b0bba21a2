// Package orderrepo maps order aggregates onto the orders table and their GPS
// trace onto the append-only order_track_points table.
package orderrepo

import (
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/order"

	"github.com/google/uuid"
)

type OrderDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Pickup       PointDTO        `gorm:"embedded;embeddedPrefix:pickup_"`
	Destination  PointDTO        `gorm:"embedded;embeddedPrefix:destination_"`
	Address      string          `gorm:"type:text;not null"`
	DeliveryFee  int64           `gorm:"type:bigint;not null"`
	Status       int             `gorm:"type:smallint;not null;index:idx_orders_status_created,priority:1"`
	CourierID    *uuid.UUID      `gorm:"type:uuid;index"`
	ScanToken    *string         `gorm:"type:varchar(128)"`
	CancelReason string          `gorm:"type:text;not null;default:''"`
	CreatedAt    time.Time       `gorm:"type:timestamptz;not null;index:idx_orders_status_created,priority:2"`
	FinishedAt   *time.Time      `gorm:"type:timestamptz"`
	CancelledAt  *time.Time      `gorm:"type:timestamptz"`
	TrackPoints  []TrackPointDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type PointDTO struct {
	Lat float64 `gorm:"type:double precision;not null"`
	Lng float64 `gorm:"type:double precision;not null"`
}

// TrackPointDTO is one GPS trace row. (order_id, seq) is unique, so two
// writers appending the same step cannot both succeed.
type TrackPointDTO struct {
	ID      uint      `gorm:"primaryKey;autoIncrement"`
	OrderID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_track_points_order_seq,priority:1"`
	Seq     int       `gorm:"type:int;not null;uniqueIndex:idx_track_points_order_seq,priority:2"`
	Status  int       `gorm:"type:smallint;not null"`
	Lat     float64   `gorm:"type:double precision;not null"`
	Lng     float64   `gorm:"type:double precision;not null"`
	At      time.Time `gorm:"type:timestamptz;not null"`
}

func (TrackPointDTO) TableName() string {
	return "order_track_points"
}

func fromDomain(o *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := o.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	return OrderDTO{
		ID:           o.ID().Bytes(),
		CustomerID:   o.CustomerID().Bytes(),
		Pickup:       PointDTO{Lat: o.Pickup().Lat(), Lng: o.Pickup().Lng()},
		Destination:  PointDTO{Lat: o.Destination().Lat(), Lng: o.Destination().Lng()},
		Address:      o.Address(),
		DeliveryFee:  o.DeliveryFee(),
		Status:       int(o.Status()),
		CourierID:    courierID,
		ScanToken:    o.ScanToken(),
		CancelReason: o.CancelReason(),
		CreatedAt:    o.CreatedAt(),
		FinishedAt:   o.FinishedAt(),
		CancelledAt:  o.CancelledAt(),
		TrackPoints:  trackPointsFromDomain(o.ID(), 0, o.Trace()),
	}
}

func trackPointsFromDomain(orderID kernel.UUID, firstSeq int, points []order.TrackPoint) []TrackPointDTO {
	dtos := make([]TrackPointDTO, 0, len(points))
	for i, tp := range points {
		dtos = append(dtos, TrackPointDTO{
			OrderID: orderID.Bytes(),
			Seq:     firstSeq + i,
			Status:  int(tp.Status()),
			Lat:     tp.Point().Lat(),
			Lng:     tp.Point().Lng(),
			At:      tp.At(),
		})
	}
	return dtos
}

// stateColumns are the columns a lifecycle transition may change.
func stateColumns(dto OrderDTO) map[string]any {
	return map[string]any{
		"status":        dto.Status,
		"courier_id":    dto.CourierID,
		"scan_token":    dto.ScanToken,
		"cancel_reason": dto.CancelReason,
		"finished_at":   dto.FinishedAt,
		"cancelled_at":  dto.CancelledAt,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	pickup, err := kernel.NewGeoPoint(dto.Pickup.Lat, dto.Pickup.Lng)
	if err != nil {
		return nil, err
	}
	destination, err := kernel.NewGeoPoint(dto.Destination.Lat, dto.Destination.Lng)
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	trace := make([]order.TrackPoint, 0, len(dto.TrackPoints))
	for _, tpDto := range dto.TrackPoints {
		tp, tpErr := trackPointToDomain(tpDto)
		if tpErr != nil {
			return nil, tpErr
		}
		trace = append(trace, tp)
	}

	return order.RestoreOrder(order.Snapshot{
		ID:           id,
		CustomerID:   customerID,
		Pickup:       pickup,
		Destination:  destination,
		Address:      dto.Address,
		DeliveryFee:  dto.DeliveryFee,
		Status:       order.Status(dto.Status),
		CourierID:    courierID,
		Trace:        trace,
		ScanToken:    dto.ScanToken,
		CancelReason: dto.CancelReason,
		CreatedAt:    dto.CreatedAt.UTC(),
		FinishedAt:   utc(dto.FinishedAt),
		CancelledAt:  utc(dto.CancelledAt),
	})
}

func trackPointToDomain(dto TrackPointDTO) (order.TrackPoint, error) {
	point, err := kernel.NewGeoPoint(dto.Lat, dto.Lng)
	if err != nil {
		return order.TrackPoint{}, err
	}
	return order.NewTrackPoint(order.Status(dto.Status), point, dto.At.UTC())
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
