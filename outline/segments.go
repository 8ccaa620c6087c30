package outline

import (
	"errors"
	"fmt"

	"github.com/npillmayer/stemplow"
	"github.com/npillmayer/stemplow/curve"
)

// SegmentRef is a segment together with its position in the glyph.
type SegmentRef struct {
	Contour int
	Index   int
	Segment curve.Segment
}

// onCurve returns the indices of the on-curve points of c.
func (c Contour) onCurve() []int {
	var on []int
	for i, p := range c.Points {
		if p.Type != OffCurve {
			on = append(on, i)
		}
	}
	return on
}

// SegmentCount returns the number of segments of c, including the gap of an
// open contour. Segment i ends at the i-th on-curve point.
func (c Contour) SegmentCount() int {
	return len(c.onCurve())
}

// segment assembles segment i from the previous on-curve point, the
// handles in between, and the i-th on-curve point.
func (c Contour) segment(on []int, i int) (curve.Segment, error) {
	if i < 0 || i >= len(on) {
		return curve.Segment{}, fmt.Errorf("%w: index %d of %d", ErrNoSuchSegment, i, len(on))
	}
	end := c.Points[on[i]]
	if end.Type == Move {
		return curve.Segment{}, ErrOpenGap
	}
	prev := on[(i+len(on)-1)%len(on)]
	n := len(c.Points)
	var handles []stemplow.Point
	for k := (prev + 1) % n; k != on[i]; k = (k + 1) % n {
		handles = append(handles, c.Points[k].Point)
	}
	start := c.Points[prev].Point
	switch end.Type {
	case LineTo:
		if len(handles) == 0 {
			return curve.Line(start, end.Point), nil
		}
	case CurveTo:
		if len(handles) == 2 {
			return curve.Cubic(start, handles[0], handles[1], end.Point), nil
		}
	case QCurveTo:
		switch len(handles) {
		case 1:
			return curve.RaiseQuad(start, handles[0], end.Point), nil
		case 2:
			return curve.PairedQuad(start, handles[0], handles[1], end.Point), nil
		}
	}
	return curve.Segment{}, fmt.Errorf("%w: %s segment with %d handles", ErrMalformedSegment, end.Type, len(handles))
}

// Segments returns the drawable segments of c, tagged with contour index ci.
// The gap of an open contour is skipped, but counts for the indices.
// Malformed segments are skipped as well.
func (c Contour) Segments(ci int) []SegmentRef {
	on := c.onCurve()
	refs := make([]SegmentRef, 0, len(on))
	for i := range on {
		seg, err := c.segment(on, i)
		if errors.Is(err, ErrOpenGap) {
			continue
		} else if err != nil {
			tracer().Errorf("skipping segment %d of contour %d: %v", i, ci, err)
			continue
		}
		refs = append(refs, SegmentRef{Contour: ci, Index: i, Segment: seg})
	}
	return refs
}

// Segments returns the drawable segments of all contours of g, in outline
// order. Components are not included.
func (g *Glyph) Segments() []SegmentRef {
	if g == nil {
		return nil
	}
	var refs []SegmentRef
	for ci, c := range g.Contours {
		refs = append(refs, c.Segments(ci)...)
	}
	return refs
}

// Segment looks up a single segment by contour and segment index, as stored
// in an anchor.
func (g *Glyph) Segment(contour, index int) (curve.Segment, error) {
	if g == nil || contour < 0 || contour >= len(g.Contours) {
		return curve.Segment{}, fmt.Errorf("%w: contour %d", ErrNoSuchSegment, contour)
	}
	c := g.Contours[contour]
	return c.segment(c.onCurve(), index)
}
