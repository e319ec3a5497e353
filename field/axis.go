package field

import (
	"fmt"
	"strings"
)

// Axis is the role a coordinate plays.
type Axis int

const (
	AxisNone Axis = iota
	AxisX
	AxisY
	AxisZ
	AxisT
)

var axisNames = [...]string{
	AxisNone: "",
	AxisX:    "x",
	AxisY:    "y",
	AxisZ:    "z",
	AxisT:    "t",
}

func (a Axis) String() string {
	if a >= 0 && int(a) < len(axisNames) {
		return axisNames[a]
	}

	return fmt.Sprintf("Axis(%d)", int(a))
}

// ParseAxis maps "x", "y", "z", "t" or "" to an Axis.
func ParseAxis(s string) (Axis, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range axisNames {
		if name == s {
			return Axis(i), nil
		}
	}

	return AxisNone, fmt.Errorf("%w: unknown axis %q", ErrInvalidField, s)
}
