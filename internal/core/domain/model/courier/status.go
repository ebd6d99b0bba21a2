package courier

import (
	"fmt"
	"strings"

	"courierhub/internal/pkg/errs"
)

// Status is the courier's shift state.
//
// OFFLINE couriers are never dispatched. ONLINE couriers are idle on shift.
// BUSY couriers carry at least one open order but may still receive more.
type Status int

const (
	StatusUnknown Status = iota
	Offline
	Online
	Busy
)

var statusNames = map[Status]string{
	StatusUnknown: "UNKNOWN",
	Offline:       "OFFLINE",
	Online:        "ONLINE",
	Busy:          "BUSY",
}

func ParseStatus(s string) (Status, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for st, name := range statusNames {
		if st != StatusUnknown && name == upper {
			return st, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("courier status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return statusNames[StatusUnknown]
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("courier status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// OnShift reports whether the courier may receive orders.
func (s Status) OnShift() bool {
	return s == Online || s == Busy
}
