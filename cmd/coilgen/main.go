// Command coilgen generates the trace layout of a planar polygonal
// spiral coil. It writes the trace as a DXF drawing (and optionally an
// SVG preview) named after its parameters, and reports the total trace
// length and estimated DC resistance.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lmittmann/tint"

	"coil"
	"coil/dxf"
	"coil/svgplot"
)

var (
	outerDiameter  = flag.Float64("outer-diameter", 31.5, "outer flat-to-flat diameter of the coil, in mm")
	traceWidth     = flag.Float64("trace-width", 0.3, "width of the copper trace, in mm")
	traceThickness = flag.Float64("trace-thickness", 0.035, "thickness of the copper trace, in mm")
	spacing        = flag.Float64("spacing", 0.3, "gap between adjacent turns, in mm")
	turns          = flag.Int("turns", 7, "number of turns")
	sides          = flag.Int("sides", 6, "polygon sides per turn (6 = hexagon, 100 ≈ circle)")
	policy         = flag.String("policy", "per-turn", "shrink policy: per-turn or per-side")
	resistivity    = flag.Float64("resistivity", coil.CopperResistivity, "trace resistivity, in ohm-meters")
	outDir         = flag.String("out", ".", "output directory")
	svg            = flag.Bool("svg", false, "also write an SVG preview")
)

func main() {
	flag.Parse()
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))

	spec := coil.Spec{
		OuterDiameter:  *outerDiameter,
		TraceWidth:     *traceWidth,
		TraceThickness: *traceThickness,
		Spacing:        *spacing,
		Turns:          *turns,
		Sides:          *sides,
	}
	switch *policy {
	case "per-turn":
		spec.Policy = coil.ShrinkPerTurn
	case "per-side":
		spec.Policy = coil.ShrinkPerSide
	default:
		fmt.Fprintf(os.Stderr, "unknown policy %q, want per-turn or per-side\n", *policy)
		os.Exit(2)
	}

	path, err := coil.Generate(spec)
	if err != nil {
		slog.Error("generating coil", "err", err)
		os.Exit(1)
	}
	resistance, err := coil.Resistance(path, spec.TraceWidth, spec.TraceThickness, *resistivity)
	if err != nil {
		slog.Error("estimating resistance", "err", err)
		os.Exit(1)
	}

	base := fmt.Sprintf("coil_OD%g_TW%g_SP%g_NT%d_NS%d_%s",
		spec.OuterDiameter, spec.TraceWidth, spec.Spacing, spec.Turns, spec.Sides, spec.Policy)

	dxfName := filepath.Join(*outDir, base+".dxf")
	if err := dxf.WriteFile(dxfName, path); err != nil {
		slog.Error("writing DXF", "err", err)
		os.Exit(1)
	}
	slog.Info("wrote DXF", "file", dxfName)

	if *svg {
		svgName := filepath.Join(*outDir, base+".svg")
		if err := writeSVG(svgName, path); err != nil {
			slog.Error("writing SVG", "err", err)
			os.Exit(1)
		}
		slog.Info("wrote SVG", "file", svgName)
	}

	slog.Info("coil trace",
		"points", len(path),
		"length_mm", path.Arclen(),
		"resistance_ohm", resistance)
}

func writeSVG(name string, p coil.Path) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := svgplot.Render(f, p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
