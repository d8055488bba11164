package coil

// CopperResistivity is the resistivity of copper in Ω·m, the default
// material for PCB traces.
const CopperResistivity = 1.70e-8

// Resistance estimates the DC resistance in ohms of a trace that follows
// path p. The path's coordinates, the trace width, and the trace
// thickness are in millimeters; resistivity is in Ω·m.
//
// The estimate is ρ·L/A for the path's total arc length L and the
// rectangular cross-section A = width·thickness. Skin effect and other
// frequency-dependent behavior are not modeled.
func Resistance(p Path, traceWidth, traceThickness, resistivity float64) (float64, error) {
	if len(p) < 2 {
		return 0, invalidSpecf("path needs at least 2 points to measure, got %d", len(p))
	}
	if traceWidth <= 0 {
		return 0, invalidSpecf("trace width must be positive, got %g", traceWidth)
	}
	if traceThickness <= 0 {
		return 0, invalidSpecf("trace thickness must be positive, got %g", traceThickness)
	}

	const mmToM = 1e-3
	area := (traceWidth * mmToM) * (traceThickness * mmToM)
	length := p.Arclen() * mmToM
	return resistivity * length / area, nil
}
