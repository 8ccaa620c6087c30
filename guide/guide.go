/*
Package guide constructs measurement guidelines perpendicular to a segment.

A guideline pair is one straight line through a point on the curve,
perpendicular to the curve's tangent there, represented as two rays
starting at the curve point and running in opposite directions. Each ray
can then be intersected with the outline on its own to find the stem edge
on that side.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package guide

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/stemplow"
	"github.com/npillmayer/stemplow/curve"
	"github.com/npillmayer/stemplow/nearest"
)

// tracer writes to trace with key 'stemplow.guide'
func tracer() tracing.Trace {
	return tracing.Select("stemplow.guide")
}

// RayLength is the length of a guideline ray, in glyph units.
const RayLength = 1000.0

// tangentNudge replaces t = 0 for curves, where the derivative of a curve
// with coincident start and first handle vanishes.
const tangentNudge = 0.001

// Guideline is a ray from anchor point A to far end B.
type Guideline struct {
	A stemplow.Point
	B stemplow.Point
}

func (g Guideline) String() string {
	return fmt.Sprintf("%v→%v", g.A, g.B)
}

// Direction is the vector from A to B.
func (g Guideline) Direction() stemplow.Point {
	return g.B.Sub(g.A)
}

// Angle is the angle of the guideline against the x-axis, in degrees.
func (g Guideline) Angle() float64 {
	return stemplow.AngleOfLine(g.A, g.B)
}

// Translated returns the guideline moved by v.
func (g Guideline) Translated(v stemplow.Point) Guideline {
	return Guideline{A: g.A.Add(v), B: g.B.Add(v)}
}

// TangentAngle returns the angle of seg's tangent at t, in degrees.
// For lines this is the angle of the line itself; for curves it is the
// angle of the derivative vector, with t = 0 nudged away from the start.
func TangentAngle(seg curve.Segment, t float64) float64 {
	if seg.Kind() == curve.LineKind {
		return stemplow.AngleOfLine(seg.Start(), seg.End())
	}
	if t == 0 {
		t = tangentNudge
	}
	return stemplow.AngleOfLine(stemplow.Origin, seg.Derivative(t))
}

// Perpendiculars returns the two guidelines perpendicular to seg's tangent
// at t, both anchored at the origin. The first one is the vector (0, RayLength)
// rotated by the tangent angle, the second one points the opposite way.
func Perpendiculars(seg curve.Segment, t float64) (Guideline, Guideline) {
	angle := TangentAngle(seg, t)
	up := stemplow.Pt(0, RayLength)
	g1 := Guideline{A: stemplow.Origin, B: stemplow.Rotate(up, angle, stemplow.Origin)}
	g2 := Guideline{A: stemplow.Origin, B: stemplow.Rotate(up, angle-180, stemplow.Origin)}
	return g1, g2
}

// AtT returns the guidelines perpendicular to seg at t, anchored at the
// curve point seg.Eval(t).
func AtT(seg curve.Segment, t float64) (Guideline, Guideline) {
	p := seg.Eval(t)
	g1, g2 := Perpendiculars(seg, t)
	return g1.Translated(p), g2.Translated(p)
}

// NearCursor returns the guidelines perpendicular to seg at the point of seg
// closest to cursor.
func NearCursor(cursor stemplow.Point, seg curve.Segment) (Guideline, Guideline) {
	sliver := nearest.Narrow(cursor, seg)
	g1, g2 := AtT(sliver, 0.5)
	tracer().Debugf("guidelines near %v: %v, %v", cursor, g1, g2)
	return g1, g2
}
