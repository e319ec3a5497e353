package halo

import (
	"fmt"
	"strings"
)

// Policy selects how halo cells are filled.
type Policy int

const (
	// PolicyMean fills halo cells with the mean of the nearest interior
	// cells along the padded axis, averaging over at most width cells.
	PolicyMean Policy = iota
	// PolicyEdge repeats the nearest edge cell.
	PolicyEdge
	// PolicyZero fills halo cells with zero.
	PolicyZero
)

var policyNames = map[Policy]string{
	PolicyMean: "mean",
	PolicyEdge: "edge",
	PolicyZero: "zero",
}

// Valid reports whether p is a known policy.
func (p Policy) Valid() bool {
	_, ok := policyNames[p]
	return ok
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}

	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy returns the policy with the given name (case-insensitive).
func ParsePolicy(name string) (Policy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for p, n := range policyNames {
		if n == name {
			return p, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidPolicy, name)
}
