package outline

import (
	"github.com/npillmayer/stemplow"
	"github.com/npillmayer/stemplow/polygon"
)

// DefaultSteps is the number of straight pieces a curve is flattened into.
const DefaultSteps = 64

// maxComponentDepth limits nesting of components, guarding against cycles.
const maxComponentDepth = 16

// sidebearingReach is the vertical extent of the synthetic side-bearing lines.
const sidebearingReach = 100000.0

// Options select what a ruler measures against, in addition to the glyph's
// own contours.
type Options struct {
	IncludeComponents   bool // decomposed components
	IncludeSidebearings bool // vertical lines at x = 0 and x = advance width
	RemoveOverlap       bool // merge components with the outline before measuring
}

// Decompose returns the contours of g's components, transformed into g's
// coordinate space. Nested components are resolved recursively.
func (g *Glyph) Decompose() []Contour {
	return g.decompose(stemplow.Identity(), 0)
}

func (g *Glyph) decompose(m stemplow.AT, depth int) []Contour {
	if depth >= maxComponentDepth {
		tracer().Errorf("glyph %q: components nested too deep", g.Name)
		return nil
	}
	var contours []Contour
	for _, comp := range g.Components {
		if comp.Base == nil {
			continue
		}
		t := m
		if comp.Transform != nil {
			t = comp.Transform.Combine(m)
		}
		for _, c := range comp.Base.Contours {
			contours = append(contours, c.Transformed(t))
		}
		contours = append(contours, comp.Base.decompose(t, depth+1)...)
	}
	return contours
}

// flatten returns the drawn path of c as a polyline. Malformed segments are
// left out.
func (c Contour) flatten(ci, steps int) []stemplow.Point {
	var pl []stemplow.Point
	for _, ref := range c.Segments(ci) {
		pts := ref.Segment.Polyline(steps)
		if len(pl) > 0 && pl[len(pl)-1] == pts[0] {
			pts = pts[1:]
		}
		pl = append(pl, pts...)
	}
	return pl
}

// Polygon flattens closed contours into a polygon. Open contours are
// returned separately as polylines.
func Polygon(contours []Contour, steps int) (*polygon.Polygon, [][]stemplow.Point) {
	pg := polygon.NullPolygon()
	var open [][]stemplow.Point
	for ci, c := range contours {
		pl := c.flatten(ci, steps)
		if c.IsOpen() {
			open = append(open, pl)
			continue
		}
		pg.Knots(pl).Cycle()
	}
	return pg, open
}

// LineIntersector intersects straight lines with flattened glyph outlines.
// It serves as the reference for the intersection capability font editors
// provide natively.
type LineIntersector struct {
	Steps int // flattening steps per curve, DefaultSteps if 0
}

// IntersectLine returns all points where the line segment a–b crosses the
// outline of g. Points are returned in outline order, without duplicates.
func (li LineIntersector) IntersectLine(g *Glyph, a, b stemplow.Point, opts Options) []stemplow.Point {
	if g == nil {
		return nil
	}
	steps := li.Steps
	if steps <= 0 {
		steps = DefaultSteps
	}
	pg, open := Polygon(g.Contours, steps)
	if opts.IncludeComponents {
		cpg, copen := Polygon(g.Decompose(), steps)
		open = append(open, copen...)
		if opts.RemoveOverlap {
			pg = pg.Union(cpg)
		} else {
			for p, q := range cpg.Edges() {
				open = append(open, []stemplow.Point{p, q})
			}
		}
	}
	var hits []stemplow.Point
	add := func(p, q stemplow.Point) {
		if x, ok := crossing(a, b, p, q); ok {
			for _, h := range hits {
				if h.Equal(x) {
					return
				}
			}
			hits = append(hits, x)
		}
	}
	for p, q := range pg.Edges() {
		add(p, q)
	}
	for _, pl := range open {
		for i := 1; i < len(pl); i++ {
			add(pl[i-1], pl[i])
		}
	}
	if opts.IncludeSidebearings {
		for _, x := range []float64{0, g.Width} {
			add(stemplow.Pt(x, -sidebearingReach), stemplow.Pt(x, sidebearingReach))
		}
	}
	tracer().Debugf("line %v–%v crosses glyph %q %d times", a, b, g.Name, len(hits))
	return hits
}

// crossing intersects line segments a–b and p–q. Parallel segments do not
// cross.
func crossing(a, b, p, q stemplow.Point) (stemplow.Point, bool) {
	da, dp := b.Sub(a), q.Sub(p)
	div := da.Cross(dp)
	if stemplow.Is0(div) {
		return stemplow.Point{}, false
	}
	ta := p.Sub(a).Cross(dp) / div
	tp := p.Sub(a).Cross(da) / div
	if !inUnit(ta) || !inUnit(tp) {
		return stemplow.Point{}, false
	}
	return stemplow.LerpPoint(p, q, tp), true
}

func inUnit(t float64) bool {
	const slack = 1e-9
	return t >= -slack && t <= 1+slack
}
