package coil

import (
	"fmt"
	"math"
)

// ShrinkPolicy selects how the running radius decreases as the spiral
// winds inward.
type ShrinkPolicy int

const (
	// ShrinkPerSide takes a fractional deltaR/sides step before every
	// corner, so the taper is spread smoothly over each revolution.
	ShrinkPerSide ShrinkPolicy = iota
	// ShrinkPerTurn holds the radius fixed for all corners of a turn and
	// takes the full deltaR step once after the turn's last corner.
	ShrinkPerTurn
)

func (policy ShrinkPolicy) String() string {
	switch policy {
	case ShrinkPerSide:
		return "per-side"
	case ShrinkPerTurn:
		return "per-turn"
	default:
		return fmt.Sprintf("ShrinkPolicy(%d)", int(policy))
	}
}

// Spec describes a planar polygonal spiral coil. All linear dimensions
// share one unit; the reference use case is millimeters.
type Spec struct {
	// OuterDiameter is the flat-to-flat (inscribed) width of the coil's
	// outermost turn.
	OuterDiameter float64
	// TraceWidth and TraceThickness are the dimensions of the conductive
	// trace's rectangular cross-section.
	TraceWidth     float64
	TraceThickness float64
	// Spacing is the gap between adjacent turns.
	Spacing float64
	// Turns is the number of revolutions of the spiral.
	Turns int
	// Sides is the number of straight segments per revolution. 6 draws
	// hexagonal turns; a large value approximates a circle.
	Sides  int
	Policy ShrinkPolicy
}

// Validate reports the first constraint the specification violates, or
// nil if it describes a generatable coil.
func (spec Spec) Validate() error {
	switch {
	case spec.Sides < 3:
		return invalidSpecf("need at least 3 sides, got %d", spec.Sides)
	case spec.Turns < 1:
		return invalidSpecf("need at least 1 turn, got %d", spec.Turns)
	case spec.OuterDiameter <= 0:
		return invalidSpecf("outer diameter must be positive, got %g", spec.OuterDiameter)
	case spec.TraceWidth <= 0:
		return invalidSpecf("trace width must be positive, got %g", spec.TraceWidth)
	case spec.TraceThickness <= 0:
		return invalidSpecf("trace thickness must be positive, got %g", spec.TraceThickness)
	case spec.Spacing <= 0:
		return invalidSpecf("spacing must be positive, got %g", spec.Spacing)
	}
	return nil
}

// Generate computes the coil's trace centerline as a single continuous
// polyline spiraling inward from the outermost corner. The result has
// exactly spec.Sides*spec.Turns+1 points: each turn emits one point per
// corner in ascending angular order starting at angle 0, and one terminal
// point at angle 0 closes the innermost turn without closing the path.
//
// The running radius is never clamped. A turn count large enough to
// exhaust the outer boundary drives the radius negative and mirrors the
// innermost points through the origin; detecting that condition is left
// to the caller.
func Generate(spec Spec) (Path, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	// A regular polygon's flat-to-flat width is smaller than its
	// corner-to-corner diameter by cos(π/n). All inscribed dimensions
	// convert to circumscribed ones by that factor.
	corner := 1 / math.Cos(math.Pi/float64(spec.Sides))

	outer := spec.OuterDiameter
	if spec.Policy == ShrinkPerSide {
		// The per-side policy sheds a full deltaR inside the first
		// turn; widen the boundary so that turn still fits.
		outer += spec.TraceWidth + spec.Spacing
	}
	outer *= corner

	deltaR := (spec.TraceWidth + spec.Spacing) * corner
	r := (outer - spec.TraceWidth*corner) / 2

	step := 2 * math.Pi / float64(spec.Sides)
	path := make(Path, 0, spec.Sides*spec.Turns+1)
	for turn := 0; turn < spec.Turns; turn++ {
		for i := 0; i < spec.Sides; i++ {
			if spec.Policy == ShrinkPerSide {
				r -= deltaR / float64(spec.Sides)
			}
			path = append(path, pointOnSpiral(r, step*float64(i)))
		}
		if spec.Policy == ShrinkPerTurn {
			r -= deltaR
		}
	}
	// The terminal point overlaps the innermost turn's first corner
	// angle. Under the per-side policy it continues the taper by one more
	// fractional step; under the per-turn policy the final in-loop step
	// already brought the radius in.
	if spec.Policy == ShrinkPerSide {
		r -= deltaR / float64(spec.Sides)
	}
	path = append(path, pointOnSpiral(r, 0))
	return path, nil
}

func pointOnSpiral(radius, angle float64) Point {
	return Point(VecFromAngle(angle).Mul(radius))
}
