/*
Package outline models glyph outlines the way font editors store them:
contours of on-curve and off-curve points, components referencing other
glyphs through an affine transform, and an advance width.

It enumerates the drawable segments of an outline for the geometry packages,
re-resolves anchored segments by index, and carries a reference
implementation of the line intersection a ruler needs to find stem edges.

Contours are usually built with a builder:

	c := Closed(P(0,0)).Line(P(0,500)).Line(P(100,500)).Line(P(100,0)).Close()

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package outline

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/stemplow"
)

// tracer writes to trace with key 'stemplow.outline'
func tracer() tracing.Trace {
	return tracing.Select("stemplow.outline")
}

var (
	// ErrMalformedSegment indicates handles not matching the segment type.
	ErrMalformedSegment = errors.New("malformed segment")
	// ErrNoSuchSegment indicates a contour or segment index out of range.
	ErrNoSuchSegment = errors.New("no such segment")
	// ErrOpenGap indicates the implicit gap of an open contour, which is not drawn.
	ErrOpenGap = errors.New("segment is the gap of an open contour")
)

// PointType tells on-curve points apart from off-curve handles. For on-curve
// points it names the kind of segment ending at the point.
type PointType int8

const (
	// OffCurve is a Bézier handle.
	OffCurve PointType = iota
	// Move starts an open contour.
	Move
	// LineTo ends a straight segment.
	LineTo
	// CurveTo ends a cubic segment.
	CurveTo
	// QCurveTo ends a quadratic segment.
	QCurveTo
)

func (pt PointType) String() string {
	switch pt {
	case OffCurve:
		return "offcurve"
	case Move:
		return "move"
	case LineTo:
		return "line"
	case CurveTo:
		return "curve"
	case QCurveTo:
		return "qcurve"
	}
	return fmt.Sprintf("PointType(%d)", int8(pt))
}

// ContourPoint is a point of a contour together with its type.
type ContourPoint struct {
	stemplow.Point
	Type PointType
}

// Contour is a closed or open sequence of points. Open contours start with
// a Move point.
type Contour struct {
	Points []ContourPoint
}

// IsOpen is a predicate: is this an open contour?
func (c Contour) IsOpen() bool {
	return len(c.Points) > 0 && c.Points[0].Type == Move
}

// Transformed returns a copy of c with every point transformed by m.
func (c Contour) Transformed(m stemplow.AT) Contour {
	pts := make([]ContourPoint, len(c.Points))
	for i, p := range c.Points {
		pts[i] = ContourPoint{Point: m.Transform(p.Point), Type: p.Type}
	}
	return Contour{Points: pts}
}

// Component places another glyph's outline into a glyph.
type Component struct {
	Base      *Glyph
	Transform stemplow.AT
}

// Glyph is the outline of a single glyph.
type Glyph struct {
	Name       string
	Width      float64 // advance width
	Contours   []Contour
	Components []Component
}

// IsEmpty is a predicate: has the glyph neither contours nor components?
func (g *Glyph) IsEmpty() bool {
	return g == nil || len(g.Contours)+len(g.Components) == 0
}

// --- Builder ---------------------------------------------------------------

// ContourBuilder builds contours point by point.
type ContourBuilder struct {
	c Contour
}

// Closed starts a closed contour at on-curve point start.
func Closed(start stemplow.Point) *ContourBuilder {
	b := &ContourBuilder{}
	b.c.Points = append(b.c.Points, ContourPoint{Point: start, Type: LineTo})
	return b
}

// Open starts an open contour at start.
func Open(start stemplow.Point) *ContourBuilder {
	b := &ContourBuilder{}
	b.c.Points = append(b.c.Points, ContourPoint{Point: start, Type: Move})
	return b
}

func (b *ContourBuilder) add(t PointType, pts ...stemplow.Point) *ContourBuilder {
	for _, p := range pts {
		b.c.Points = append(b.c.Points, ContourPoint{Point: p, Type: OffCurve})
	}
	b.c.Points[len(b.c.Points)-1].Type = t
	return b
}

// Line adds a straight segment ending at p.
// Part of builder functionality.
func (b *ContourBuilder) Line(p stemplow.Point) *ContourBuilder {
	return b.add(LineTo, p)
}

// Curve adds a cubic segment with handles h1, h2, ending at p.
// Part of builder functionality.
func (b *ContourBuilder) Curve(h1, h2, p stemplow.Point) *ContourBuilder {
	return b.add(CurveTo, h1, h2, p)
}

// QCurve adds a quadratic segment with the given handles, ending at the last
// argument. Part of builder functionality.
func (b *ContourBuilder) QCurve(pts ...stemplow.Point) *ContourBuilder {
	if len(pts) == 0 {
		panic("qcurve needs an end point")
	}
	return b.add(QCurveTo, pts...)
}

// End finishes an open contour.
func (b *ContourBuilder) End() Contour {
	return b.c
}

// Close finishes a closed contour with a straight segment back to the start.
func (b *ContourBuilder) Close() Contour {
	return b.c
}

// CloseCurve finishes a closed contour with a cubic segment back to the start.
func (b *ContourBuilder) CloseCurve(h1, h2 stemplow.Point) Contour {
	b.c.Points = append(b.c.Points,
		ContourPoint{Point: h1, Type: OffCurve},
		ContourPoint{Point: h2, Type: OffCurve})
	b.c.Points[0].Type = CurveTo
	return b.c
}

// CloseQCurve finishes a closed contour with a quadratic segment back to the
// start.
func (b *ContourBuilder) CloseQCurve(handles ...stemplow.Point) Contour {
	for _, h := range handles {
		b.c.Points = append(b.c.Points, ContourPoint{Point: h, Type: OffCurve})
	}
	b.c.Points[0].Type = QCurveTo
	return b.c
}
