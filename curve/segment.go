package curve

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/stemplow"
)

// tracer writes to trace with key 'stemplow.curve'
func tracer() tracing.Trace {
	return tracing.Select("stemplow.curve")
}

var (
	// ErrArity indicates a point count not matching the segment kind.
	ErrArity = errors.New("wrong number of points for segment kind")
	// ErrUnknownKind indicates a segment type the package does not know about.
	ErrUnknownKind = errors.New("unknown segment kind")
)

// Kind discriminates the segment variants.
type Kind int8

const (
	// LineKind is a straight line between two on-curve points.
	LineKind Kind = iota
	// CubicKind is a standard cubic Bézier curve.
	CubicKind
	// PairedQuadKind is a pair of quadratic arcs sharing an implicit midpoint
	// between their handles, stored as (P1, H1, H2, P2).
	PairedQuadKind
)

func (k Kind) String() string {
	switch k {
	case LineKind:
		return "line"
	case CubicKind:
		return "curve"
	case PairedQuadKind:
		return "qcurve"
	}
	return fmt.Sprintf("Kind(%d)", int8(k))
}

// Arity is the number of control points a segment of kind k carries.
func (k Kind) Arity() int {
	if k == LineKind {
		return 2
	}
	return 4
}

// ParseKind maps a host editor segment type to a Kind.
func ParseKind(segType string) (Kind, error) {
	switch segType {
	case "line":
		return LineKind, nil
	case "curve":
		return CubicKind, nil
	case "qcurve":
		return PairedQuadKind, nil
	}
	return LineKind, fmt.Errorf("%w: %q", ErrUnknownKind, segType)
}

// Segment is one drawable piece of a contour. Segments are immutable values;
// the zero value is a degenerate line at the origin.
type Segment struct {
	kind Kind
	pts  [4]stemplow.Point
}

// New creates a segment of kind k from its control points. The number of
// points has to match the kind: 2 for lines, 4 for cubics and paired
// quadratics.
func New(kind Kind, pts ...stemplow.Point) (Segment, error) {
	if kind < LineKind || kind > PairedQuadKind {
		return Segment{}, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
	if len(pts) != kind.Arity() {
		tracer().Errorf("cannot create %s segment from %d points", kind, len(pts))
		return Segment{}, fmt.Errorf("%w: %s needs %d points, got %d",
			ErrArity, kind, kind.Arity(), len(pts))
	}
	seg := Segment{kind: kind}
	copy(seg.pts[:], pts)
	return seg, nil
}

// Line creates a straight segment from a to b.
func Line(a, b stemplow.Point) Segment {
	return Segment{kind: LineKind, pts: [4]stemplow.Point{a, b}}
}

// Cubic creates a cubic Bézier segment.
func Cubic(p1, p2, p3, p4 stemplow.Point) Segment {
	return Segment{kind: CubicKind, pts: [4]stemplow.Point{p1, p2, p3, p4}}
}

// PairedQuad creates a paired quadratic segment from on-curve point p1,
// handles h1 and h2, and on-curve point p2.
func PairedQuad(p1, h1, h2, p2 stemplow.Point) Segment {
	return Segment{kind: PairedQuadKind, pts: [4]stemplow.Point{p1, h1, h2, p2}}
}

// RaiseQuad converts a single quadratic arc into the equivalent cubic.
func RaiseQuad(q0, q1, q2 stemplow.Point) Segment {
	return Cubic(
		q0,
		q0.Add(q1.Sub(q0).Scaled(2.0/3.0)),
		q2.Add(q1.Sub(q2).Scaled(2.0/3.0)),
		q2,
	)
}

// Kind returns the segment's kind.
func (s Segment) Kind() Kind {
	return s.kind
}

// Points returns a copy of the control points.
func (s Segment) Points() []stemplow.Point {
	n := s.kind.Arity()
	pts := make([]stemplow.Point, n)
	copy(pts, s.pts[:n])
	return pts
}

// Start is the first on-curve point.
func (s Segment) Start() stemplow.Point {
	return s.pts[0]
}

// End is the last on-curve point.
func (s Segment) End() stemplow.Point {
	return s.pts[s.kind.Arity()-1]
}

func (s Segment) String() string {
	return fmt.Sprintf("%s%v", s.kind, s.Points())
}

// Eval returns the point at parameter t.
func (s Segment) Eval(t float64) stemplow.Point {
	p := s.pts
	switch s.kind {
	case CubicKind:
		return EvalCubic(t, p[0], p[1], p[2], p[3])
	case PairedQuadKind:
		return EvalPairedQuad(t, p[0], p[1], p[2], p[3])
	}
	return EvalLine(t, p[0], p[1])
}

// Derivative returns the tangent vector at parameter t. For lines this is
// the constant vector from start to end.
func (s Segment) Derivative(t float64) stemplow.Point {
	p := s.pts
	switch s.kind {
	case CubicKind:
		return DerivativeCubic(t, p[0], p[1], p[2], p[3])
	case PairedQuadKind:
		return DerivativePairedQuad(t, p[0], p[1], p[2], p[3])
	}
	return p[1].Sub(p[0])
}

// Split divides the segment at t into two segments of the same kind.
func (s Segment) Split(t float64) (Segment, Segment) {
	p := s.pts
	switch s.kind {
	case CubicKind:
		return SplitCubic(p[0], p[1], p[2], p[3], t)
	case PairedQuadKind:
		return SplitPairedQuad(p[0], p[1], p[2], p[3], t)
	}
	return SplitLine(p[0], p[1], t)
}

// LUT returns a lookup table of n+1 points, evaluated at i/n for i = 0…n.
func (s Segment) LUT(n int) []stemplow.Point {
	if n < 1 {
		n = 1
	}
	lut := make([]stemplow.Point, n+1)
	for i := 0; i <= n; i++ {
		lut[i] = s.Eval(float64(i) / float64(n))
	}
	return lut
}

// Polyline flattens the segment into steps straight pieces, following the
// drawn path from start to end. For paired quadratics the drawn path runs
// along arc A to the shared midpoint and from there along arc B back to P2,
// which is not the order of the t parameter.
func (s Segment) Polyline(steps int) []stemplow.Point {
	if s.kind == LineKind || steps < 2 {
		return []stemplow.Point{s.Start(), s.End()}
	}
	if s.kind == CubicKind {
		return s.LUT(steps)
	}
	half := (steps + 1) / 2
	p := s.pts
	c := stemplow.LerpPoint(p[1], p[2], 0.5)
	pl := make([]stemplow.Point, 0, 2*half+1)
	for i := 0; i <= half; i++ {
		pl = append(pl, EvalQuad(float64(i)/float64(half), p[0], p[1], c))
	}
	for i := half - 1; i >= 0; i-- {
		pl = append(pl, EvalQuad(float64(i)/float64(half), p[3], p[2], c))
	}
	return pl
}
