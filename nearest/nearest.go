/*
Package nearest finds the point of a segment closest to an arbitrary point,
typically a cursor position.

Cubic curves and paired quadratics have no closed-form nearest-point
projection, so the segment is narrowed down by repeated bisection: in every
round a lookup table of Resolution+1 points is scanned for the entry nearest
to the target, and the half of the working sub-segment holding that entry is
kept. Bisection always happens at the sub-segment's own midpoint, never at
the best table entry. This keeps the parameter bookkeeping a plain interval
halving and makes results reproducible, which anchored measurements depend
on. There is no early exit; a fixed number of rounds is always run and the
midpoint of the final sliver stands in for the closest point.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package nearest

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/stemplow"
	"github.com/npillmayer/stemplow/curve"
)

// tracer writes to trace with key 'stemplow.nearest'
func tracer() tracing.Trace {
	return tracing.Select("stemplow.nearest")
}

const (
	// Resolution is the number of intervals of the lookup table scanned per round.
	Resolution = 18
	// Rounds is the number of bisections for cursor-driven narrowing.
	Rounds = 10
	// LocatedRounds is the number of bisections when a location is requested.
	LocatedRounds = 12
)

// Location identifies a fixed point on a glyph's outline, independent of
// later cursor movement. It is the record hosts persist to anchor a ruler.
type Location struct {
	Contour int     `yaml:"contour_index" json:"contour_index"`
	Segment int     `yaml:"segment_index" json:"segment_index"`
	T       float64 `yaml:"anchor_t" json:"anchor_t"`
}

// Narrow returns a small sub-segment of seg around the point closest to pt.
// Evaluating the result at t = 0.5 yields the closest point.
func Narrow(pt stemplow.Point, seg curve.Segment) curve.Segment {
	sub, _ := narrow(pt, seg, Rounds, nil)
	return sub
}

// NarrowAt is like Narrow, but runs LocatedRounds bisections and additionally
// returns the location of the closest point: the given contour and segment
// index, together with the parameter t on seg.
func NarrowAt(pt stemplow.Point, seg curve.Segment, contour, index int) (curve.Segment, Location) {
	sub, t := narrow(pt, seg, LocatedRounds, nil)
	return sub, Location{Contour: contour, Segment: index, T: t}
}

// ClosestPoint is a convenience function returning the point of seg closest
// to pt, i.e. the midpoint of Narrow's result.
func ClosestPoint(pt stemplow.Point, seg curve.Segment) stemplow.Point {
	return Narrow(pt, seg).Eval(0.5)
}

// narrow runs the bisection for a fixed number of rounds. It tracks the
// interval [left, right] of seg's parameter covered by the working
// sub-segment and returns the sub-segment together with the interval's
// midpoint. If observe is non-nil, it is called after each round's table
// scan with the smallest distance found.
func narrow(pt stemplow.Point, seg curve.Segment, rounds int, observe func(round int, dist float64)) (curve.Segment, float64) {
	left, mid, right := 0.0, 0.5, 1.0
	for round := 0; round < rounds; round++ {
		tBest, dist := scan(pt, seg)
		if observe != nil {
			observe(round, dist)
		}
		lower, upper := seg.Split(0.5)
		if tBest >= 0.5 {
			seg = upper
			left, mid = mid, mid+(right-mid)*0.5
		} else {
			seg = lower
			right = mid
			mid = stemplow.Lerp(right, left, 0.5)
		}
	}
	tracer().Debugf("narrowed to %v, t = %.6f", seg, mid)
	return seg, mid
}

// scan finds the lookup table entry of seg nearest to pt and returns its
// parameter and distance. On ties the entry with the smaller parameter wins.
func scan(pt stemplow.Point, seg curve.Segment) (float64, float64) {
	tBest, minDist := 0.0, -1.0
	for i, p := range seg.LUT(Resolution) {
		d := stemplow.Distance(pt, p)
		if minDist < 0 || d < minDist {
			minDist = d
			tBest = float64(i) / Resolution
		}
	}
	return tBest, minDist
}
