package curve

import "github.com/npillmayer/stemplow"

// EvalLine returns the point at t on the line from a to b.
func EvalLine(t float64, a, b stemplow.Point) stemplow.Point {
	return stemplow.LerpPoint(a, b, t)
}

// EvalQuad evaluates the quadratic Bézier curve (p1, p2, p3) at t.
func EvalQuad(t float64, p1, p2, p3 stemplow.Point) stemplow.Point {
	mt := 1 - t
	return stemplow.Point{
		X: mt*mt*p1.X + 2*mt*t*p2.X + t*t*p3.X,
		Y: mt*mt*p1.Y + 2*mt*t*p2.Y + t*t*p3.Y,
	}
}

// DerivativeQuad is the analytic derivative of a quadratic Bézier curve at t.
func DerivativeQuad(t float64, p1, p2, p3 stemplow.Point) stemplow.Point {
	return stemplow.Point{
		X: 2*(1-t)*(p2.X-p1.X) + 2*t*(p3.X-p2.X),
		Y: 2*(1-t)*(p2.Y-p1.Y) + 2*t*(p3.Y-p2.Y),
	}
}

// EvalCubic evaluates the cubic Bézier curve (p1, p2, p3, p4) at t.
func EvalCubic(t float64, p1, p2, p3, p4 stemplow.Point) stemplow.Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * t * mt * mt
	c := 3 * t * t * mt
	d := t * t * t
	return stemplow.Point{
		X: p1.X*a + p2.X*b + p3.X*c + p4.X*d,
		Y: p1.Y*a + p2.Y*b + p3.Y*c + p4.Y*d,
	}
}

// DerivativeCubic is the analytic derivative of a cubic Bézier curve at t.
// It is used for the tangent direction only; the magnitude carries no meaning
// for callers.
func DerivativeCubic(t float64, p1, p2, p3, p4 stemplow.Point) stemplow.Point {
	mt := 1 - t
	a := -3 * mt * mt
	b := 3*mt*mt - 6*mt*t
	c := 6*mt*t - 3*t*t
	d := 3 * t * t
	return stemplow.Point{
		X: p1.X*a + p2.X*b + p3.X*c + p4.X*d,
		Y: p1.Y*a + p2.Y*b + p3.Y*c + p4.Y*d,
	}
}

// halves maps a paired quadratic and global t to the arc in charge and
// its local parameter. t ≤ 0.5 selects arc A = (p1, h1, c) at 2t, otherwise
// arc B = (p2, h2, c) at 2(t−0.5).
func halves(t float64, p1, h1, h2, p2 stemplow.Point) (float64, [3]stemplow.Point) {
	c := stemplow.LerpPoint(h1, h2, 0.5)
	if t <= 0.5 {
		return t * 2, [3]stemplow.Point{p1, h1, c}
	}
	return (t - 0.5) * 2, [3]stemplow.Point{p2, h2, c}
}

// EvalPairedQuad evaluates a paired quadratic (p1, h1, h2, p2) at t.
func EvalPairedQuad(t float64, p1, h1, h2, p2 stemplow.Point) stemplow.Point {
	u, q := halves(t, p1, h1, h2, p2)
	return EvalQuad(u, q[0], q[1], q[2])
}

// DerivativePairedQuad returns the derivative of the arc in charge of t,
// evaluated at its local parameter.
func DerivativePairedQuad(t float64, p1, h1, h2, p2 stemplow.Point) stemplow.Point {
	u, q := halves(t, p1, h1, h2, p2)
	return DerivativeQuad(u, q[0], q[1], q[2])
}
