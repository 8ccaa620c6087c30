/*
Package stemplow implements the geometry primitives of a stem-thickness
ruler for glyph outlines: points, distances, interpolation, rotation,
line angles and affine transformations.

Sub-packages build on these: package curve evaluates and splits path
segments, package nearest finds the point of a segment closest to a cursor,
package guide constructs perpendicular guidelines, and package ruler ties
it all together for a host editor.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package stemplow

import (
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'stemplow'
func tracer() tracing.Trace {
	return tracing.Select("stemplow")
}

// === Numeric Data Type =====================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
const Deg2Rad float64 = math.Pi / 180

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Lerp is one-dimensional linear interpolation between v1 and v2.
func Lerp(v1, v2, t float64) float64 {
	return v1*(1-t) + v2*t
}

// === Point Data Type =======================================================

// Point is a position or a vector in glyph space.
type Point struct {
	X float64
	Y float64
}

// Origin represents the frequently used constant (0,0).
var Origin = Point{}

// Pt is a quick notation for constructing a point from floats.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Pretty Stringer for points.
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p − q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scaled returns a new point scaled by factor a.
func (p Point) Scaled(a float64) Point {
	return Point{X: p.X * a, Y: p.Y * a}
}

// Dot is the scalar product of p and q, both taken as vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross is the z-component of the cross product of p and q.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Zap rounds x-part and y-part to Epsilon.
func (p Point) Zap() Point {
	return Point{X: Zap(p.X), Y: Zap(p.Y)}
}

// Equal compares two points, tolerating differences up to Epsilon.
func (p Point) Equal(q Point) bool {
	return Is0(p.X-q.X) && Is0(p.Y-q.Y)
}

// Distance returns the euclidean distance between two points.
// Coincident points have distance 0.
func Distance(a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	sq := dx*dx + dy*dy
	if sq > 0 {
		return math.Sqrt(sq)
	}
	return 0
}

// LerpPoint interpolates component-wise between a and b.
func LerpPoint(a, b Point, t float64) Point {
	return Point{X: Lerp(a.X, b.X, t), Y: Lerp(a.Y, b.Y, t)}
}

// Rotate returns p rotated around origin by angle (in degrees, counterclockwise).
func Rotate(p Point, angle float64, origin Point) Point {
	T := Translation(origin.Scaled(-1)).Combine(Rotation(angle * Deg2Rad)).Combine(Translation(origin))
	return T.Transform(p).Zap()
}

// AngleOfLine returns the angle in degrees between line AB and the x-axis.
// Horizontal lines (including the degenerate case A = B) yield 0, vertical
// lines yield 90, everything else is atan2(Δy, Δx).
func AngleOfLine(a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	if dy == 0 {
		return 0
	}
	if dx == 0 {
		return 90
	}
	return math.Atan2(dy, dx) / Deg2Rad
}

// === Affine Transformations ================================================

// AT is an affine transform, a matrix type used for transforming vectors.
type AT []float64 // a 3x3 matrix, flattened by rows

// Internal constructor. Clients implicitely use this as a starting point for
// transform combinations.
func newAT() AT {
	m := make([]float64, 9)
	return m
}

func (m AT) set(row, col int, value float64) {
	m[row*3+col] = value
}

func (m AT) row(row int) []float64 {
	return m[row*3 : (row+1)*3]
}

func (m AT) col(col int) []float64 {
	return []float64{m[col], m[3+col], m[6+col]}
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	m := newAT()
	m.set(0, 0, 1.0)
	m.set(1, 1, 1.0)
	m.set(2, 2, 1.0)
	return m
}

// Translation transform. Translate a point by (dx,dy).
func Translation(p Point) AT {
	m := Identity()
	m.set(0, 2, p.X)
	m.set(1, 2, p.Y)
	return m
}

// Rotation transform. Rotate a point counter-clockwise around the origin.
// Argument is in radians.
func Rotation(theta float64) AT {
	m := newAT()
	sin := math.Sin(theta)
	cos := math.Cos(theta)
	m.set(0, 0, cos)
	m.set(0, 1, -sin)
	m.set(1, 0, sin)
	m.set(1, 1, cos)
	m.set(2, 2, 1.0)
	return m
}

// Scaling transform, as used by scaled components.
func Scaling(sx, sy float64) AT {
	m := Identity()
	m.set(0, 0, sx)
	m.set(1, 1, sy)
	return m
}

// Matrix creates a transform from the six coefficients of a font-style
// transformation (xx, xy, yx, yy, dx, dy).
func Matrix(xx, xy, yx, yy, dx, dy float64) AT {
	m := Identity()
	m.set(0, 0, xx)
	m.set(0, 1, yx)
	m.set(1, 0, xy)
	m.set(1, 1, yy)
	m.set(0, 2, dx)
	m.set(1, 2, dy)
	return m
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	if len(m) != 9 {
		return "[identity]"
	}
	return fmt.Sprintf("[%g,%g,%g|%g,%g,%g|%g,%g,%g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

// v1 × v2, v.n = [a,b,c]
func dotProd(vec1, vec2 []float64) float64 {
	return vec1[0]*vec2[0] + vec1[1]*vec2[1] + vec1[2]*vec2[2]
}

// Combine 2 affine transformation to a new one: first m, then n.
// Returns a new transformation without changing the argument(s).
func (m AT) Combine(n AT) AT {
	o := newAT()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			o.set(row, col, dotProd(n.row(row), m.col(col)))
		}
	}
	return o
}

// Transform a 2D-point. The argument is unchanged and a new point is returned.
// A nil transform is treated as identity.
func (m AT) Transform(p Point) Point {
	if len(m) != 9 {
		if m != nil {
			tracer().Errorf("affine transform of size %d treated as identity", len(m))
		}
		return p
	}
	v := []float64{p.X, p.Y, 1.0}
	return Point{X: dotProd(m.row(0), v), Y: dotProd(m.row(1), v)}
}
