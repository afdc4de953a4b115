package sim

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/arcadekit/marblestorm/internal/core"
)

// CurveType names one of the built-in parametric track shapes.
type CurveType string

const (
	CurveCircle  CurveType = "circle"
	CurveEllipse CurveType = "ellipse"
	CurveFigure8 CurveType = "figure8"
	CurveSpiral  CurveType = "spiral"
	CurveSine    CurveType = "sine"
	CurveSerpent CurveType = "serpent"
	CurveRose3   CurveType = "rose3"
	CurveRose4   CurveType = "rose4"
)

// CurveNames returns the known curve names in stable order.
func CurveNames() []string {
	names := []string{
		string(CurveCircle), string(CurveEllipse), string(CurveFigure8),
		string(CurveSpiral), string(CurveSine), string(CurveSerpent),
		string(CurveRose3), string(CurveRose4),
	}
	sort.Strings(names)
	return names
}

// ParseCurve validates a curve name from config or CLI flags.
func ParseCurve(name string) (CurveType, error) {
	c := CurveType(strings.ToLower(strings.TrimSpace(name)))
	switch c {
	case CurveCircle, CurveEllipse, CurveFigure8, CurveSpiral,
		CurveSine, CurveSerpent, CurveRose3, CurveRose4:
		return c, nil
	}
	return "", fmt.Errorf("sim: unknown curve %q (valid: %s)", name, strings.Join(CurveNames(), ", "))
}

// rawSamples is the number of parametric samples taken before arclength
// resampling. Dense enough that segment lengths approximate the true curve.
const rawSamples = 2000

// Path is a polyline of equidistant points along a track curve. Marble
// offsets are arclength distances from Points[0] (the spawn end); the last
// point is the core.
type Path struct {
	Curve       CurveType
	Points      []core.Vec2
	TotalLength float64
}

// GeneratePath builds a path for the given curve inside a w x h viewport,
// resampled to steps+1 equidistant points. Horizontal layouts are rotated
// into portrait viewports so the track fills the screen either way.
func GeneratePath(curve CurveType, w, h float64, steps int) Path {
	if steps < 2 {
		steps = 2
	}

	gw, gh := w, h
	portrait := h > w && !curveUpright(curve)
	if portrait {
		gw, gh = h, w
	}

	raw := make([]core.Vec2, rawSamples)
	for i := range raw {
		t := float64(i) / float64(rawSamples-1)
		raw[i] = evalCurve(curve, t, gw, gh)
	}
	if portrait {
		for i := range raw {
			raw[i] = raw[i].Swap()
		}
	}

	// Cumulative arclength over the raw polyline.
	cum := make([]float64, rawSamples)
	for i := 1; i < rawSamples; i++ {
		cum[i] = cum[i-1] + raw[i].Sub(raw[i-1]).Len()
	}
	total := cum[rawSamples-1]
	if total <= 0 {
		// Degenerate curve; keep a valid two-point path at the origin sample.
		return Path{Curve: curve, Points: []core.Vec2{raw[0], raw[0]}, TotalLength: 0}
	}

	// Resample to equidistant points by walking the cumulative table.
	points := make([]core.Vec2, steps+1)
	points[0] = raw[0]
	j := 1
	for i := 1; i <= steps; i++ {
		target := total * float64(i) / float64(steps)
		for j < rawSamples-1 && cum[j] < target {
			j++
		}
		seg := cum[j] - cum[j-1]
		t := 0.0
		if seg > 0 {
			t = (target - cum[j-1]) / seg
		}
		points[i] = raw[j-1].Lerp(raw[j], t)
	}

	return Path{Curve: curve, Points: points, TotalLength: total}
}

// PointAt maps an arclength offset to a screen position in O(1), relying
// on the points being equidistant. Offsets outside [0, TotalLength] clamp
// to the path endpoints.
func (p Path) PointAt(offset float64) core.Vec2 {
	n := len(p.Points)
	if n == 0 {
		return core.Vec2{}
	}
	if n == 1 || p.TotalLength <= 0 || offset <= 0 {
		return p.Points[0]
	}
	if offset >= p.TotalLength {
		return p.Points[n-1]
	}
	f := offset / p.TotalLength * float64(n-1)
	i := int(f)
	if i >= n-1 {
		return p.Points[n-1]
	}
	return p.Points[i].Lerp(p.Points[i+1], f-float64(i))
}

// curveUpright reports whether the curve is already laid out for tall
// viewports and must not be rotated.
func curveUpright(c CurveType) bool {
	return c == CurveSerpent
}

// evalCurve evaluates the unit-parameter curve at t inside a gw x gh box,
// leaving a margin so marbles never clip the border.
func evalCurve(c CurveType, t, gw, gh float64) core.Vec2 {
	margin := 0.08 * math.Min(gw, gh)
	cx, cy := gw/2, gh/2
	rx := gw/2 - margin
	ry := gh/2 - margin

	switch c {
	case CurveCircle:
		r := math.Min(rx, ry)
		a := -math.Pi/2 + t*1.85*math.Pi
		return core.V(cx+r*math.Cos(a), cy+r*math.Sin(a))
	case CurveEllipse:
		a := -math.Pi/2 + t*1.85*math.Pi
		return core.V(cx+rx*math.Cos(a), cy+ry*math.Sin(a))
	case CurveFigure8:
		a := t * 2 * math.Pi
		return core.V(cx+rx*math.Sin(a), cy+ry*math.Sin(2*a)*0.9)
	case CurveSpiral:
		// Two turns winding inward; the core sits near the center.
		a := t * 4 * math.Pi
		r := 1 - 0.8*t
		return core.V(cx+rx*r*math.Cos(a), cy+ry*r*math.Sin(a))
	case CurveSine:
		x := margin + t*(gw-2*margin)
		y := cy + ry*0.8*math.Sin(t*3*2*math.Pi)
		return core.V(x, y)
	case CurveSerpent:
		x := cx + rx*0.8*math.Sin(t*4*math.Pi)
		y := margin + t*(gh-2*margin)
		return core.V(x, y)
	case CurveRose3:
		return rosePoint(t, 3, cx, cy, rx, ry)
	case CurveRose4:
		return rosePoint(t, 2, cx, cy, rx, ry)
	default:
		r := math.Min(rx, ry)
		a := -math.Pi/2 + t*1.85*math.Pi
		return core.V(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
}

// rosePoint evaluates a rose curve r = cos(k*theta). Odd k yields k petals,
// even k yields 2k petals.
func rosePoint(t, k, cx, cy, rx, ry float64) core.Vec2 {
	span := math.Pi
	if int(k)%2 == 0 {
		span = 2 * math.Pi
	}
	a := t * span
	r := math.Cos(k * a)
	return core.V(cx+rx*r*math.Cos(a), cy+ry*r*math.Sin(a))
}
