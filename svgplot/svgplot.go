// Package svgplot renders coil paths as SVG documents for visual
// inspection.
//
// Each path is drawn as a connected polyline with a dot at every vertex,
// mirroring the marker-point plots used when reviewing coil layouts. All
// paths share a single viewBox grown to contain every point, and since a
// viewBox scales both axes uniformly, the rendering keeps an equal
// aspect ratio at any display size.
package svgplot

import (
	"fmt"
	"io"

	"github.com/jbeda/geom"

	"coil"
)

const (
	traceStyle  = "fill: none; stroke: black; stroke-width: 0.1"
	markerStyle = "fill: green; stroke: none"

	markerRadius = 0.15
	margin       = 1.0
)

// svg emits SVG fragments to a writer, remembering the first error.
type svg struct {
	w   io.Writer
	err error
}

func (s *svg) printf(format string, a ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, a...)
}

// Render draws the given paths into a single SVG document. Rendering an
// empty set of paths produces an empty document around the origin.
func Render(w io.Writer, paths ...coil.Path) error {
	s := &svg{w: w}
	box := bounds(paths)
	s.printf(`<?xml version="1.0"?>
<svg version="1.1"
     viewBox="%f %f %f %f"
     xmlns="http://www.w3.org/2000/svg">
`, box.Min.X, box.Min.Y, box.Width(), box.Height())
	for _, p := range paths {
		polyline(s, p)
	}
	s.printf("</svg>\n")
	return s.err
}

func polyline(s *svg, p coil.Path) {
	if len(p) == 0 {
		return
	}
	s.printf("<polyline style='%s' points='", traceStyle)
	for i, pt := range p {
		if i > 0 {
			s.printf(" ")
		}
		s.printf("%f,%f", pt.X, pt.Y)
	}
	s.printf("'/>\n")
	for _, pt := range p {
		s.printf("<circle cx='%f' cy='%f' r='%f' style='%s'/>\n",
			pt.X, pt.Y, markerRadius, markerStyle)
	}
}

// bounds accumulates the viewBox of all paths, padded by a fixed margin
// so markers on the outermost corners aren't clipped. The box is seeded
// from the first point, not the origin, so off-center coils don't
// inflate it.
func bounds(paths []coil.Path) geom.Rect {
	var box geom.Rect
	seeded := false
	for _, p := range paths {
		for _, pt := range p {
			c := geom.Coord{X: pt.X, Y: pt.Y}
			if !seeded {
				box = geom.Rect{Min: c, Max: c}
				seeded = true
				continue
			}
			box.ExpandToContainCoord(c)
		}
	}
	box.Min.X -= margin
	box.Min.Y -= margin
	box.Max.X += margin
	box.Max.Y += margin
	return box
}
