package coil

// Path is a coil's trace centerline: an ordered open polyline. Points
// appear in emission order and consecutive points are connected by
// straight segments; the path is never closed, smoothed, or reordered.
type Path []Point

// Start returns the first point of the path, which for a generated coil
// is the outermost corner at angle 0.
func (p Path) Start() Point {
	if len(p) == 0 {
		return Point{}
	}
	return p[0]
}

// End returns the last point of the path.
func (p Path) End() Point {
	if len(p) == 0 {
		return Point{}
	}
	return p[len(p)-1]
}

// Arclen returns the total length of the polyline, the sum of the
// euclidean lengths of its segments. The path is open: no closing
// segment from the last point back to the first is counted.
func (p Path) Arclen() float64 {
	var length float64
	for i := 1; i < len(p); i++ {
		length += p[i-1].Distance(p[i])
	}
	return length
}

// Translate returns a copy of the path moved by v.
func (p Path) Translate(v Vec2) Path {
	out := make(Path, len(p))
	for i, pt := range p {
		out[i] = pt.Translate(v)
	}
	return out
}

// Scale returns a copy of the path with all coordinates multiplied by f.
func (p Path) Scale(f float64) Path {
	out := make(Path, len(p))
	for i, pt := range p {
		out[i] = Pt(pt.X*f, pt.Y*f)
	}
	return out
}

// IsInf reports whether any point of the path has an infinite coordinate.
func (p Path) IsInf() bool {
	for _, pt := range p {
		if pt.IsInf() {
			return true
		}
	}
	return false
}

// IsNaN reports whether any point of the path has a NaN coordinate.
func (p Path) IsNaN() bool {
	for _, pt := range p {
		if pt.IsNaN() {
			return true
		}
	}
	return false
}
