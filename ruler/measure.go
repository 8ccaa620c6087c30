package ruler

import (
	"math"
	"sort"

	"github.com/npillmayer/stemplow"
	"github.com/npillmayer/stemplow/guide"
	"github.com/npillmayer/stemplow/outline"
)

// Side is the measurement along one of the two guidelines.
type Side struct {
	Guide     guide.Guideline
	Edge      stemplow.Point // nearest plausible outline edge, or the start point if none was hit
	Thickness float64        // distance from the start point to Edge
	Label     stemplow.Point // halfway between the start point and Edge
	Found     bool           // did the guideline hit the outline at all?
	Names     []string       // named measurements matching Thickness
}

// Visible is a predicate: is the side worth displaying? Thicknesses which
// round to 0 are artifacts of a guideline hitting its own start point.
func (sd Side) Visible() bool {
	return sd.Found && math.RoundToEven(sd.Thickness) != 0
}

// Measurement is the result of measuring a glyph along a pair of guidelines.
type Measurement struct {
	Point stemplow.Point // point on the outline
	Sides [2]Side
}

// Measure intersects both guidelines with g and picks the nearest plausible
// edge along each of them.
func (s *Session) Measure(g *outline.Glyph, guides Guides) Measurement {
	m := Measurement{Point: guides.Point}
	opts := s.Options()
	isect := s.intersector()
	for i, gl := range [2]guide.Guideline{guides.G1, guides.G2} {
		hits := isect.IntersectLine(g, gl.A, gl.B, opts)
		m.Sides[i] = s.side(guides.Point, gl, hits)
	}
	tracer().Debugf("measured %.2f | %.2f at %v", m.Sides[0].Thickness, m.Sides[1].Thickness, m.Point)
	return m
}

// side picks the edge nearest to p from hits. A hit closer to p than the
// self-hit epsilon is the guideline crossing its own start point; it is
// replaced by the next nearest hit, if there is one.
func (s *Session) side(p stemplow.Point, gl guide.Guideline, hits []stemplow.Point) Side {
	sd := Side{Guide: gl, Edge: p, Label: p}
	if len(hits) == 0 {
		return sd
	}
	sorted := append([]stemplow.Point(nil), hits...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return stemplow.Distance(p, sorted[i]) < stemplow.Distance(p, sorted[j])
	})
	edge := sorted[0]
	if stemplow.Distance(p, edge) < s.Settings.SelfHitEpsilon && len(sorted) > 1 {
		edge = sorted[1]
	}
	sd.Edge = edge
	sd.Found = true
	sd.Thickness = stemplow.Distance(p, edge)
	sd.Label = stemplow.LerpPoint(p, edge, 0.5)
	if s.Catalog != nil {
		sd.Names = s.Catalog.Names(sd.Thickness)
	}
	return sd
}

// MeasureAt is a shortcut for Measure with the guides s.Guides returns.
func (s *Session) MeasureAt(cursor stemplow.Point, g *outline.Glyph, a *Anchor) (Measurement, bool) {
	guides, ok := s.Guides(cursor, g, a)
	if !ok {
		return Measurement{}, false
	}
	return s.Measure(g, guides), true
}
