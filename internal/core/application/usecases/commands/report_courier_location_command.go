package commands

import (
	"errors"
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var ErrReportCourierLocationCommandIsNotConstructed = errors.New(
	"ReportCourierLocationCommand must be created via NewReportCourierLocationCommand constructor",
)

// ReportCourierLocationCommand is one GPS ping from a courier's device.
type ReportCourierLocationCommand struct {
	courierID kernel.UUID
	point     kernel.GeoPoint
	at        time.Time

	guard guard.ConstructorGuard
}

func NewReportCourierLocationCommand(
	courierID kernel.UUID,
	point kernel.GeoPoint,
	at time.Time,
) (ReportCourierLocationCommand, error) {
	var atErr error
	if at.IsZero() {
		atErr = errs.NewValueIsRequiredError("timestamp")
	}
	if err := errors.Join(courierID.Validate(), point.Validate(), atErr); err != nil {
		return ReportCourierLocationCommand{}, err
	}

	return ReportCourierLocationCommand{
		courierID: courierID,
		point:     point,
		at:        at.UTC(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ReportCourierLocationCommand) Validate() error {
	return c.guard.Validate(ErrReportCourierLocationCommandIsNotConstructed)
}

func (c ReportCourierLocationCommand) CourierID() kernel.UUID { return c.courierID }
func (c ReportCourierLocationCommand) Point() kernel.GeoPoint { return c.point }
func (c ReportCourierLocationCommand) At() time.Time          { return c.at }
