// Package dxf writes coil paths as minimal DXF drawings.
//
// The output declares its drawing units as millimeters and carries the
// path as a single open lightweight polyline, which is what PCB and CAD
// tools expect for an antenna trace centerline.
package dxf

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"coil"
)

// millimeters is the $INSUNITS encoding for millimeter drawing units.
const millimeters = 4

// Write emits p as a single open LWPOLYLINE in a minimal DXF document.
// The path is written as-is: it is not closed, validated, or reordered.
func Write(w io.Writer, p coil.Path) error {
	var err error
	tag := func(code int, value string) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "%d\n%s\n", code, value)
	}
	coord := func(code int, v float64) {
		tag(code, strconv.FormatFloat(v, 'f', -1, 64))
	}

	tag(0, "SECTION")
	tag(2, "HEADER")
	tag(9, "$ACADVER")
	tag(1, "AC1027")
	tag(9, "$INSUNITS")
	tag(70, strconv.Itoa(millimeters))
	tag(0, "ENDSEC")

	tag(0, "SECTION")
	tag(2, "ENTITIES")
	tag(0, "LWPOLYLINE")
	tag(8, "0") // layer
	tag(90, strconv.Itoa(len(p)))
	tag(70, "0") // open polyline
	for _, pt := range p {
		coord(10, pt.X)
		coord(20, pt.Y)
	}
	tag(0, "ENDSEC")

	tag(0, "EOF")
	return err
}

// WriteFile writes the path to the named DXF file, creating or
// truncating it.
func WriteFile(name string, p coil.Path) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := Write(f, p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
