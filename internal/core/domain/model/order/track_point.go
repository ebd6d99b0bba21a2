package order

import (
	"errors"
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var ErrTrackPointIsNotConstructed = errors.New("TrackPoint must be created via NewTrackPoint constructor")

// TrackPoint is one entry of an order's append-only GPS log: the status the
// order entered and where the courier was at that moment.
type TrackPoint struct {
	status Status
	point  kernel.GeoPoint
	at     time.Time
	guard  guard.ConstructorGuard
}

func NewTrackPoint(status Status, point kernel.GeoPoint, at time.Time) (TrackPoint, error) {
	tp := TrackPoint{status: status, point: point, at: at, guard: guard.NewConstructorGuard()}
	if err := errors.Join(status.Validate(), point.Validate(), validateTime(at)); err != nil {
		return TrackPoint{}, err
	}
	return tp, nil
}

func (t TrackPoint) Validate() error {
	return t.guard.Validate(ErrTrackPointIsNotConstructed)
}

func (t TrackPoint) Status() Status {
	return t.status
}

func (t TrackPoint) Point() kernel.GeoPoint {
	return t.point
}

func (t TrackPoint) At() time.Time {
	return t.at
}

func validateTime(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("timestamp")
	}
	return nil
}
