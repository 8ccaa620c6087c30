/*
Package ruler measures stem thickness on glyph outlines.

A Session ties the geometry packages to a glyph: it finds the outline point
closest to the cursor (or re-resolves a persisted anchor), constructs the
perpendicular guidelines there, intersects them with the outline and reports
the distance to the nearest plausible edge on either side.

	s := ruler.NewSession(settings.Default(), nil)
	if guides, ok := s.CursorGuides(cursor, glyph); ok {
		m := s.Measure(glyph, guides)
		...
	}

A session carries configuration only. Everything that changes while the
user moves the cursor is passed in and returned explicitly, so a session
may be shared between goroutines once set up.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package ruler

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/stemplow"
	"github.com/npillmayer/stemplow/curve"
	"github.com/npillmayer/stemplow/guide"
	"github.com/npillmayer/stemplow/nearest"
	"github.com/npillmayer/stemplow/outline"
	"github.com/npillmayer/stemplow/settings"
)

// tracer writes to trace with key 'stemplow.ruler'
func tracer() tracing.Trace {
	return tracing.Select("stemplow.ruler")
}

// ErrNoAnchor is returned if an anchor cannot be placed or resolved.
var ErrNoAnchor = errors.New("no anchor")

// Anchor is the persisted record fixing a measurement point on the outline.
type Anchor = nearest.Location

// Intersector finds all points where the line from a to b crosses the
// outline of a glyph. Font editors usually provide this natively;
// outline.LineIntersector is a portable implementation.
type Intersector interface {
	IntersectLine(g *outline.Glyph, a, b stemplow.Point, opts outline.Options) []stemplow.Point
}

// Session measures glyphs according to a set of settings. Without an
// Intersector, outlines are intersected by an outline.LineIntersector.
type Session struct {
	Settings    settings.Settings
	Intersector Intersector
	Catalog     *Catalog // named measurements, may be nil
}

// NewSession creates a measurement session. If isect is nil, outlines are
// intersected by an outline.LineIntersector.
func NewSession(s settings.Settings, isect Intersector) *Session {
	if isect == nil {
		isect = outline.LineIntersector{Steps: s.FlattenSteps}
	}
	return &Session{Settings: s, Intersector: isect}
}

func (s *Session) intersector() Intersector {
	if s.Intersector == nil {
		return outline.LineIntersector{Steps: s.Settings.FlattenSteps}
	}
	return s.Intersector
}

// Options derives the intersection options from the session's settings.
func (s *Session) Options() outline.Options {
	return outline.Options{
		IncludeComponents:   s.Settings.MeasureAgainstComponents,
		IncludeSidebearings: s.Settings.MeasureAgainstSidebearings,
		RemoveOverlap:       s.Settings.RemoveOverlap,
	}
}

// Guides is a pair of guidelines through a point on the outline.
type Guides struct {
	Point  stemplow.Point // point on the outline, where both guidelines start
	G1, G2 guide.Guideline
}

// Hit is the outline point closest to some cursor position.
type Hit struct {
	Anchor   Anchor
	Point    stemplow.Point
	Distance float64
	Segment  curve.Segment // the segment holding Point
}

// forEachSegment calls f for every drawable segment of g, in outline order.
func forEachSegment(g *outline.Glyph, f func(seg curve.Segment, contour, index int)) {
	for _, ref := range g.Segments() {
		f(ref.Segment, ref.Contour, ref.Index)
	}
}

// Closest finds the outline point of g closest to cursor, together with its
// anchor. Of equally distant points the first one in outline order wins.
// If g has no drawable segments, Closest returns false.
func (s *Session) Closest(cursor stemplow.Point, g *outline.Glyph) (Hit, bool) {
	var hit Hit
	found := false
	if g == nil {
		return hit, false
	}
	forEachSegment(g, func(seg curve.Segment, contour, index int) {
		sub, loc := nearest.NarrowAt(cursor, seg, contour, index)
		p := sub.Eval(0.5)
		if d := stemplow.Distance(cursor, p); !found || d < hit.Distance {
			hit = Hit{Anchor: loc, Point: p, Distance: d, Segment: seg}
			found = true
		}
	})
	if found {
		tracer().Debugf("closest point to %v is %v at %+v", cursor, hit.Point, hit.Anchor)
	}
	return hit, found
}

// CursorGuides constructs the guidelines at the outline point of g closest
// to cursor. If g has no drawable segments, CursorGuides returns false.
func (s *Session) CursorGuides(cursor stemplow.Point, g *outline.Glyph) (Guides, bool) {
	var guides Guides
	if g == nil {
		return guides, false
	}
	best, found := 0.0, false
	forEachSegment(g, func(seg curve.Segment, _, _ int) {
		g1, g2 := guide.NearCursor(cursor, seg)
		if d := stemplow.Distance(cursor, g1.A); !found || d < best {
			guides = Guides{Point: g1.A, G1: g1, G2: g2}
			best, found = d, true
		}
	})
	return guides, found
}

// DefaultAnchor is the anchor placed on a glyph without any cursor
// position: the start of the first drawable segment. The gap of an open
// contour is not drawable.
func DefaultAnchor(g *outline.Glyph) (Anchor, error) {
	refs := g.Segments()
	if len(refs) == 0 {
		return Anchor{}, ErrNoAnchor
	}
	return Anchor{Contour: refs[0].Contour, Segment: refs[0].Index, T: 0}, nil
}

// AnchoredGuides re-resolves an anchor against the current state of g and
// constructs the guidelines there. The anchor follows edits of the outline
// as long as the anchored segment keeps its index.
func (s *Session) AnchoredGuides(g *outline.Glyph, a Anchor) (Guides, error) {
	seg, err := g.Segment(a.Contour, a.Segment)
	if err != nil {
		return Guides{}, fmt.Errorf("%w: %w", ErrNoAnchor, err)
	}
	g1, g2 := guide.AtT(seg, a.T)
	return Guides{Point: g1.A, G1: g1, G2: g2}, nil
}

// Guides returns cursor guides or anchored guides, depending on the
// anchoring setting. Without an anchor, an anchored session falls back to
// the default anchor.
func (s *Session) Guides(cursor stemplow.Point, g *outline.Glyph, a *Anchor) (Guides, bool) {
	if !s.Settings.Anchoring {
		return s.CursorGuides(cursor, g)
	}
	var anchor Anchor
	if a != nil {
		anchor = *a
	} else {
		var err error
		if anchor, err = DefaultAnchor(g); err != nil {
			return Guides{}, false
		}
	}
	guides, err := s.AnchoredGuides(g, anchor)
	if err != nil {
		tracer().Infof("anchor %+v cannot be resolved: %v", anchor, err)
		return Guides{}, false
	}
	return guides, true
}

// HostGuide returns the position and angle (in degrees) of a persistent
// guideline an editor may add to g, running through the outline point
// closest to cursor perpendicular to the outline.
func (s *Session) HostGuide(cursor stemplow.Point, g *outline.Glyph) (stemplow.Point, float64, bool) {
	if g.IsEmpty() {
		return stemplow.Origin, 0, false
	}
	guides, ok := s.CursorGuides(cursor, g)
	if !ok {
		return stemplow.Origin, 0, false
	}
	return guides.Point, guides.G1.Angle(), true
}
