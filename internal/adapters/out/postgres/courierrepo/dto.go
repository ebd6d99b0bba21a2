// Package courierrepo maps courier aggregates onto the couriers table.
package courierrepo

import (
	"time"

	"courierhub/internal/core/domain/model/courier"
	"courierhub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO is one row of the couriers table. Location columns are NULL
// until the first ping.
type CourierDTO struct {
	ID                 uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name               string      `gorm:"type:varchar(255);not null;index"`
	Location           LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	Status             int         `gorm:"type:smallint;not null;index"`
	Workload           int         `gorm:"type:int;not null;default:0"`
	Rating             float64     `gorm:"type:double precision;not null"`
	AvgResponseSeconds float64     `gorm:"type:double precision;not null"`
	Balance            int64       `gorm:"type:bigint;not null;default:0"`
	DeliveredCount     int         `gorm:"type:int;not null;default:0"`
}

func (CourierDTO) TableName() string {
	return "couriers"
}

type LocationDTO struct {
	Lat *float64   `gorm:"type:double precision"`
	Lng *float64   `gorm:"type:double precision"`
	At  *time.Time `gorm:"type:timestamptz"`
}

func fromDomain(c *courier.Courier) CourierDTO {
	dto := CourierDTO{
		ID:                 c.ID().Bytes(),
		Name:               c.Name(),
		Status:             int(c.Status()),
		Workload:           c.Workload(),
		Rating:             c.Rating(),
		AvgResponseSeconds: c.AvgResponseSeconds(),
		Balance:            c.Balance(),
		DeliveredCount:     c.DeliveredCount(),
	}
	if loc := c.Location(); loc != nil {
		lat, lng := loc.Lat(), loc.Lng()
		dto.Location.Lat, dto.Location.Lng = &lat, &lng
	}
	dto.Location.At = c.LocationAt()
	return dto
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	snap := courier.Snapshot{
		ID:                 id,
		Name:               dto.Name,
		Status:             courier.Status(dto.Status),
		Workload:           dto.Workload,
		Rating:             dto.Rating,
		AvgResponseSeconds: dto.AvgResponseSeconds,
		Balance:            dto.Balance,
		DeliveredCount:     dto.DeliveredCount,
	}
	if dto.Location.Lat != nil && dto.Location.Lng != nil {
		loc, locErr := kernel.NewGeoPoint(*dto.Location.Lat, *dto.Location.Lng)
		if locErr != nil {
			return nil, locErr
		}
		snap.Location = &loc
	}
	if dto.Location.At != nil {
		at := dto.Location.At.UTC()
		snap.LocationAt = &at
	}

	return courier.RestoreCourier(snap)
}

func toDomainList(dtos []CourierDTO) ([]*courier.Courier, error) {
	couriers := make([]*courier.Courier, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}
	return couriers, nil
}
