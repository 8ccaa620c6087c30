package curve

import "github.com/npillmayer/stemplow"

// SplitLine splits the line a–b at t. A degenerate line (a = b) is passed
// through unchanged as both halves.
func SplitLine(a, b stemplow.Point, t float64) (Segment, Segment) {
	if a == b {
		return Line(a, b), Line(a, b)
	}
	m := EvalLine(t, a, b)
	return Line(a, m), Line(m, b)
}

// SplitCubic subdivides a cubic Bézier curve at t, using de Casteljau.
func SplitCubic(p1, p2, p3, p4 stemplow.Point, t float64) (Segment, Segment) {
	p12 := stemplow.LerpPoint(p1, p2, t)
	p23 := stemplow.LerpPoint(p2, p3, t)
	p34 := stemplow.LerpPoint(p3, p4, t)
	p123 := stemplow.LerpPoint(p12, p23, t)
	p234 := stemplow.LerpPoint(p23, p34, t)
	m := stemplow.LerpPoint(p123, p234, t)
	return Cubic(p1, p12, p123, m), Cubic(m, p234, p34, p4)
}

// splitQuad subdivides a quadratic Bézier curve at t, using de Casteljau.
func splitQuad(p1, p2, p3 stemplow.Point, t float64) ([3]stemplow.Point, [3]stemplow.Point) {
	p12 := stemplow.LerpPoint(p1, p2, t)
	p23 := stemplow.LerpPoint(p2, p3, t)
	m := stemplow.LerpPoint(p12, p23, t)
	return [3]stemplow.Point{p1, p12, m}, [3]stemplow.Point{m, p23, p3}
}

// SplitPairedQuad splits a paired quadratic. Both constituent arcs,
// A = (p1, h1, c) and B = (p2, h2, c), are subdivided at t, and each arc's
// halves are reassembled into one paired quadratic: the first result covers
// arc A, the second covers arc B with its points in reversed order, so that
// it starts at the shared midpoint c.
func SplitPairedQuad(p1, h1, h2, p2 stemplow.Point, t float64) (Segment, Segment) {
	c := stemplow.LerpPoint(h1, h2, 0.5)
	al, ar := splitQuad(p1, h1, c, t)
	bl, br := splitQuad(p2, h2, c, t)
	first := PairedQuad(al[0], al[1], ar[1], ar[2])
	second := PairedQuad(br[2], br[1], bl[1], bl[0])
	return first, second
}
