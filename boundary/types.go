// Package boundary defines the boundary Mode enumeration, the Touch
// verdict, and the classifier tolerances.
package boundary

import (
	"errors"
	"fmt"
)

// Sentinel errors for boundary classification.
var (
	// ErrUnknownMode is returned for a Mode outside the enumerated values.
	ErrUnknownMode = errors.New("boundary: unknown boundary mode")
)

// Mode selects which opposing edges or corners of the region a bridge must
// connect. It is fixed for the lifetime of a simulation run.
type Mode int

const (
	// LeftToRight bridges the region's left edge to its right edge.
	LeftToRight Mode = iota
	// TopToBottom bridges the region's top edge to its bottom edge.
	TopToBottom
	// CornerToCorner bridges the top-left corner to the bottom-right corner.
	CornerToCorner
)

// Default tolerances, named so no magic numbers leak into call sites.
const (
	// DefaultEdgeTolerance is the linear band around an edge within which
	// an endpoint counts as touching it. It only needs to absorb
	// floating-point noise from the sampler, hence the tiny value.
	DefaultEdgeTolerance = 1e-9

	// DefaultCornerRadius is the Euclidean radius around a target corner
	// within which an endpoint counts as touching it. A corner is a single
	// point, not an edge, so a band of sampler-noise width would almost
	// never admit a segment; the radius is proportioned to typical canvas
	// scale (hundreds of units) instead.
	DefaultCornerRadius = 15.0
)

// String returns the configuration-facing name of the mode.
func (m Mode) String() string {
	switch m {
	case LeftToRight:
		return "left-to-right"
	case TopToBottom:
		return "top-to-bottom"
	case CornerToCorner:
		return "corner-to-corner"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Valid reports whether m is one of the enumerated modes.
func (m Mode) Valid() bool {
	switch m {
	case LeftToRight, TopToBottom, CornerToCorner:
		return true
	default:
		return false
	}
}

// ParseMode converts a configuration string to a Mode.
// Returns ErrUnknownMode (wrapped with the offending value) otherwise.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "left-to-right":
		return LeftToRight, nil
	case "top-to-bottom":
		return TopToBottom, nil
	case "corner-to-corner":
		return CornerToCorner, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Touch is the classification verdict for one segment: whether it touches
// the start boundary and/or the finish boundary of the region.
type Touch struct {
	Start  bool
	Finish bool
}
