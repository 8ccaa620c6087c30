/*
Package curve implements the segments a glyph outline is drawn from:
straight lines, cubic Bézier curves, and paired quadratics.

A paired quadratic is the way font editors store two adjacent quadratic arcs
with an implied on-curve point halfway between their handles: P1, H1, H2, P2
stand for arc A (P1, H1, C) and arc B (C, H2, P2) with C = (H1+H2)/2. Its
parameter t covers arc A for t ≤ 0.5 and arc B for t > 0.5.

Segments are values of a fixed size. They are built either by the
infallible constructors Line, Cubic and PairedQuad, or from host data by
New, which checks the number of points against the segment kind.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package curve
