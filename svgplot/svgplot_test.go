package svgplot

import (
	"errors"
	"strings"
	"testing"

	"coil"
)

func TestRender(t *testing.T) {
	p1 := coil.Path{coil.Pt(4, 0), coil.Pt(0, 4), coil.Pt(-4, 0)}
	p2 := coil.Path{coil.Pt(2, 0), coil.Pt(0, 2)}

	sb := &strings.Builder{}
	if err := Render(sb, p1, p2); err != nil {
		t.Fatal(err)
	}
	out := sb.String()

	if got := strings.Count(out, "<polyline"); got != 2 {
		t.Errorf("got %d polylines, want 2", got)
	}
	if got, want := strings.Count(out, "<circle"), len(p1)+len(p2); got != want {
		t.Errorf("got %d vertex markers, want %d", got, want)
	}
	if !strings.Contains(out, `viewBox="-5.000000 -1.000000 10.000000 6.000000"`) {
		t.Errorf("viewBox does not cover all points with margin:\n%s", out)
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Errorf("output does not end the svg element:\n%s", out)
	}
}

func TestRenderOffCenter(t *testing.T) {
	// A path translated away from the origin gets a viewBox around its
	// own bounds, not one stretched to include the origin.
	p := coil.Path{coil.Pt(10, 10), coil.Pt(12, 10), coil.Pt(12, 12)}
	sb := &strings.Builder{}
	if err := Render(sb, p); err != nil {
		t.Fatal(err)
	}
	if out := sb.String(); !strings.Contains(out, `viewBox="9.000000 9.000000 4.000000 4.000000"`) {
		t.Errorf("viewBox is not tight around the path:\n%s", out)
	}
}

func TestRenderEmpty(t *testing.T) {
	sb := &strings.Builder{}
	if err := Render(sb); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Errorf("empty render is not a well-formed document:\n%s", out)
	}
	if strings.Contains(out, "<polyline") {
		t.Errorf("empty render contains a polyline:\n%s", out)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("sink closed")
}

func TestRenderError(t *testing.T) {
	if err := Render(failingWriter{}, coil.Path{coil.Pt(0, 0)}); err == nil {
		t.Error("got nil error from failing writer")
	}
}
