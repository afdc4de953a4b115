package sim

import (
	"math"
	"testing"
)

func TestGeneratePathShape(t *testing.T) {
	for _, name := range CurveNames() {
		curve, err := ParseCurve(name)
		if err != nil {
			t.Fatalf("ParseCurve(%q): %v", name, err)
		}
		p := GeneratePath(curve, 80, 24, 256)
		if len(p.Points) != 257 {
			t.Errorf("%s: got %d points, want 257", name, len(p.Points))
		}
		if p.TotalLength <= 0 {
			t.Errorf("%s: non-positive total length %f", name, p.TotalLength)
		}
	}
}

func TestGeneratePathEquidistant(t *testing.T) {
	// Chord lengths only approximate arc lengths, so check smooth curves;
	// roses and the figure-eight turn sharply through the center.
	for _, curve := range []CurveType{CurveCircle, CurveEllipse, CurveSine, CurveSpiral} {
		p := GeneratePath(curve, 80, 24, 256)
		mean := p.TotalLength / 256
		for i := 1; i < len(p.Points); i++ {
			seg := p.Points[i].Sub(p.Points[i-1]).Len()
			if math.Abs(seg-mean)/mean > 0.05 {
				t.Errorf("%s: segment %d length %f deviates from mean %f", curve, i, seg, mean)
			}
		}
	}
}

func TestGeneratePathStaysInBounds(t *testing.T) {
	// Landscape and portrait viewports; the portrait case exercises the
	// rotation branch.
	for _, dims := range [][2]float64{{80, 24}, {24, 80}} {
		w, h := dims[0], dims[1]
		for _, name := range CurveNames() {
			p := GeneratePath(CurveType(name), w, h, 128)
			for i, pt := range p.Points {
				if pt.X < -0.001 || pt.X > w+0.001 || pt.Y < -0.001 || pt.Y > h+0.001 {
					t.Errorf("%s %gx%g: point %d (%f, %f) out of bounds", name, w, h, i, pt.X, pt.Y)
					break
				}
			}
		}
	}
}

func TestPointAtClamps(t *testing.T) {
	p := GeneratePath(CurveSine, 80, 24, 64)

	first := p.Points[0]
	last := p.Points[len(p.Points)-1]

	if got := p.PointAt(-5); got != first {
		t.Errorf("negative offset: got %v, want first point %v", got, first)
	}
	if got := p.PointAt(0); got != first {
		t.Errorf("zero offset: got %v, want first point %v", got, first)
	}
	if got := p.PointAt(p.TotalLength + 100); got != last {
		t.Errorf("overshoot offset: got %v, want last point %v", got, last)
	}
	if got := p.PointAt(p.TotalLength); got != last {
		t.Errorf("exact end offset: got %v, want last point %v", got, last)
	}
}

func TestPointAtInterpolates(t *testing.T) {
	p := GeneratePath(CurveCircle, 80, 24, 128)

	// Walking the path in small increments should never jump more than
	// the increment plus interpolation slack.
	step := p.TotalLength / 1000
	prev := p.PointAt(0)
	for off := step; off <= p.TotalLength; off += step {
		pt := p.PointAt(off)
		if d := pt.Sub(prev).Len(); d > step*1.5 {
			t.Fatalf("discontinuity at offset %f: jump %f > %f", off, d, step*1.5)
		}
		prev = pt
	}
}

func TestDegeneratePath(t *testing.T) {
	p := GeneratePath(CurveCircle, 0, 0, 128)
	if p.TotalLength != 0 {
		t.Errorf("degenerate path has length %f, want 0", p.TotalLength)
	}
	if len(p.Points) != 2 {
		t.Errorf("degenerate path has %d points, want 2", len(p.Points))
	}
	if got := p.PointAt(10); got != p.Points[0] {
		t.Errorf("degenerate PointAt: got %v, want %v", got, p.Points[0])
	}
}

func TestParseCurveRejectsUnknown(t *testing.T) {
	if _, err := ParseCurve("klein-bottle"); err == nil {
		t.Error("expected error for unknown curve name")
	}
	if c, err := ParseCurve(" Circle "); err != nil || c != CurveCircle {
		t.Errorf("ParseCurve(\" Circle \") = %q, %v; want circle, nil", c, err)
	}
}

func TestResizeRescalesOffsets(t *testing.T) {
	s := newTestSim(DefaultParams(), 0)
	placeMarbles(s, []float64{30, 20, 10}, []Color{0, 1, 2})

	oldLen := s.Path().TotalLength
	s.Resize(160, 48)
	newLen := s.Path().TotalLength
	if newLen <= oldLen {
		t.Fatalf("doubled viewport should lengthen the path: %f -> %f", oldLen, newLen)
	}

	scale := newLen / oldLen
	want := []float64{30 * scale, 20 * scale, 10 * scale}
	for i, m := range s.Marbles() {
		if math.Abs(m.Offset-want[i]) > 1e-9 {
			t.Errorf("marble %d offset %f, want %f", i, m.Offset, want[i])
		}
	}
}
