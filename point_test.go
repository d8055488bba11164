package coil

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPointDistanceSquared(t *testing.T) {
	if d := Pt(0, 10).DistanceSquared(Pt(0, 5)); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
	if d := Pt(-11, 1).DistanceSquared(Pt(-7, -2)); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestPointFinite(t *testing.T) {
	if Pt(1, 2).IsInf() || Pt(1, 2).IsNaN() {
		t.Error("got non-finite report for finite point")
	}
	if !Pt(math.Inf(-1), 0).IsInf() {
		t.Error("got IsInf false for infinite point")
	}
	if !Pt(0, math.NaN()).IsNaN() {
		t.Error("got IsNaN false for NaN point")
	}
}

func TestPointMidpoint(t *testing.T) {
	diff(t, Pt(0, 0).Midpoint(Pt(4, -2)), Pt(2, -1))
	diff(t, Pt(1, 1).Lerp(Pt(3, 5), 0.5), Pt(2, 3))
}
