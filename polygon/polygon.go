// Package polygon holds flattened glyph outlines as closed polygons.
//
// Polygons are built knot by knot, in the same builder style as paths:
//
//	pg := NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()
//
// Every call to Cycle() closes the contour under construction; further knots
// start a new contour. Storage and boolean operations are delegated to
// polyclip-go.
package polygon

import (
	"fmt"
	"iter"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/stemplow"
)

// L traces to the polygon tracer.
func L() tracing.Trace {
	return tracing.Select("stemplow.polygon")
}

// Polygon is a set of closed contours.
type Polygon struct {
	contours polyclip.Polygon
	open     polyclip.Contour // contour under construction
}

// NullPolygon creates an empty polygon, to be extended by subsequent builder
// calls.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot appends a point to the contour under construction.
// Part of builder functionality.
func (pg *Polygon) Knot(p stemplow.Point) *Polygon {
	pg.open.Add(polyclip.Point{X: p.X, Y: p.Y})
	return pg
}

// Knots appends a sequence of points, dropping a point if it repeats its
// predecessor. Part of builder functionality.
func (pg *Polygon) Knots(pts []stemplow.Point) *Polygon {
	for _, p := range pts {
		if n := len(pg.open); n > 0 && pg.open[n-1] == (polyclip.Point{X: p.X, Y: p.Y}) {
			continue
		}
		pg.Knot(p)
	}
	return pg
}

// Cycle closes the contour under construction. Contours with less than
// three distinct knots enclose nothing and are dropped.
// Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	c := pg.open
	pg.open = nil
	if n := len(c); n > 1 && c[0] == c[n-1] {
		c = c[:n-1]
	}
	if len(c) < 3 {
		L().Debugf("dropping degenerate contour of %d knots", len(c))
		return pg
	}
	pg.contours.Add(c)
	return pg
}

// Box creates a rectangle from two opposite corners.
func Box(a, b stemplow.Point) *Polygon {
	return NullPolygon().
		Knot(a).
		Knot(stemplow.Pt(b.X, a.Y)).
		Knot(b).
		Knot(stemplow.Pt(a.X, b.Y)).
		Cycle()
}

// N returns the number of knots of all closed contours.
func (pg *Polygon) N() int {
	n := 0
	for _, c := range pg.contours {
		n += len(c)
	}
	return n
}

// Contours returns the number of closed contours.
func (pg *Polygon) Contours() int {
	return len(pg.contours)
}

// IsEmpty is a predicate: does this polygon have no closed contours?
func (pg *Polygon) IsEmpty() bool {
	return len(pg.contours) == 0
}

// Union returns a new polygon covering the area of pg and other.
// Overlapping contours are merged.
func (pg *Polygon) Union(other *Polygon) *Polygon {
	if other == nil || other.IsEmpty() {
		return &Polygon{contours: clone(pg.contours)}
	}
	if pg.IsEmpty() {
		return &Polygon{contours: clone(other.contours)}
	}
	u := pg.contours.Construct(polyclip.UNION, other.contours)
	L().Debugf("union of %d and %d contours yields %d", pg.Contours(), other.Contours(), len(u))
	return &Polygon{contours: u}
}

func clone(p polyclip.Polygon) polyclip.Polygon {
	c := make(polyclip.Polygon, len(p))
	for i, contour := range p {
		c[i] = append(polyclip.Contour(nil), contour...)
	}
	return c
}

// BoundingBox returns the lower left and upper right corner of the
// polygon's bounding box.
func (pg *Polygon) BoundingBox() (stemplow.Point, stemplow.Point) {
	if pg.IsEmpty() {
		return stemplow.Origin, stemplow.Origin
	}
	r := pg.contours.BoundingBox()
	return stemplow.Pt(r.Min.X, r.Min.Y), stemplow.Pt(r.Max.X, r.Max.Y)
}

// Edges iterates over the edges of all closed contours, including the
// closing edge of each contour.
func (pg *Polygon) Edges() iter.Seq2[stemplow.Point, stemplow.Point] {
	return func(yield func(stemplow.Point, stemplow.Point) bool) {
		for _, c := range pg.contours {
			for i := range c {
				a, b := c[i], c[(i+1)%len(c)]
				if !yield(stemplow.Pt(a.X, a.Y), stemplow.Pt(b.X, b.Y)) {
					return
				}
			}
		}
	}
}

// AsString returns a polygon as a (debugging) string, one contour per line.
func AsString(pg *Polygon) string {
	var sb strings.Builder
	for i, c := range pg.contours {
		if i > 0 {
			sb.WriteString("\n")
		}
		for _, p := range c {
			fmt.Fprintf(&sb, "(%.4g,%.4g) -- ", p.X, p.Y)
		}
		sb.WriteString("cycle")
	}
	return sb.String()
}
