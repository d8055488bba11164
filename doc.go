// Package coil computes the planar trace geometry of polygonal spiral
// inductors, such as NFC and RFID antenna coils, and estimates their DC
// resistance.
//
// A coil is described by a [Spec]: an outer flat-to-flat diameter, the
// copper trace's width and thickness, the gap between adjacent turns, a
// turn count, a polygon side count, and a [ShrinkPolicy] that selects how
// the radius decreases as the spiral winds inward. [Generate] turns a Spec
// into a [Path], a single continuous open polyline tracing the coil from
// the outermost corner to the innermost point. [Resistance] estimates the
// DC resistance of a trace following that path from its total length and
// rectangular cross-section, using the standard ρ·L/A formula.
//
// All geometry is expressed in one linear unit; the reference use case is
// millimeters, which is also what [Resistance] assumes when converting to
// meters. Paths are piecewise linear: a side count of 6 draws hexagonal
// turns, while a large side count approximates a circular spiral.
//
// Both operations are pure functions over value types. They are
// deterministic, allocate only their result, and are safe to call
// concurrently for independent specifications.
//
// File export and rendering live in the coil/dxf and coil/svgplot
// packages.
package coil
