package ruler

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/stemplow"
	"github.com/npillmayer/stemplow/outline"
	"github.com/npillmayer/stemplow/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var P = stemplow.Pt

func rectangle(x0, y0, x1, y1 float64) outline.Contour {
	return outline.Closed(P(x0, y0)).Line(P(x0, y1)).Line(P(x1, y1)).Line(P(x1, y0)).Close()
}

func stem() *outline.Glyph {
	return &outline.Glyph{Name: "I", Width: 200, Contours: []outline.Contour{rectangle(0, 0, 100, 500)}}
}

// edges is an intersector reporting the same points for every line.
type edges struct {
	points []stemplow.Point
	opts   []outline.Options
}

func (e *edges) IntersectLine(g *outline.Glyph, a, b stemplow.Point, opts outline.Options) []stemplow.Point {
	e.opts = append(e.opts, opts)
	return e.points
}

func TestEmptyGlyph(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := NewSession(settings.Default(), nil)
	empty := &outline.Glyph{Name: "space", Width: 250}
	_, ok := s.Closest(P(10, 10), empty)
	assert.False(t, ok)
	_, ok = s.Closest(P(10, 10), nil)
	assert.False(t, ok)
	_, ok = s.CursorGuides(P(10, 10), empty)
	assert.False(t, ok)
	_, _, ok = s.HostGuide(P(10, 10), empty)
	assert.False(t, ok)
	_, err := DefaultAnchor(empty)
	assert.True(t, errors.Is(err, ErrNoAnchor))
	_, ok = s.MeasureAt(P(10, 10), empty, nil)
	assert.False(t, ok)
}

func TestStraightStemScenario(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	isect := &edges{points: []stemplow.Point{P(0, 250), P(100, 250)}}
	s := NewSession(settings.Default(), isect)
	g := stem()
	guides, ok := s.CursorGuides(P(50, 250), g)
	require.True(t, ok)
	// both vertical edges are equally close; either one will do
	assert.True(t, guides.Point.X == 0 || guides.Point.X == 100, "point %v", guides.Point)
	assert.InDelta(t, 250.0, guides.Point.Y, 0.5)
	for _, gl := range [2]stemplow.Point{guides.G1.Direction(), guides.G2.Direction()} {
		assert.Equal(t, 0.0, gl.Y, "guidelines are horizontal")
		assert.Equal(t, 1000.0, math.Abs(gl.X))
	}
	assert.Equal(t, -guides.G1.Direction().X, guides.G2.Direction().X)
	m := s.Measure(g, guides)
	for _, sd := range m.Sides {
		assert.True(t, sd.Found)
		assert.True(t, sd.Visible())
		assert.InDelta(t, 100.0, sd.Thickness, 0.01)
		assert.InDelta(t, 50.0, sd.Label.X, 1e-9)
	}
	require.Len(t, isect.opts, 2)
	assert.Equal(t, outline.Options{IncludeComponents: true, IncludeSidebearings: true}, isect.opts[0])
}

func TestStraightStemReference(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := NewSession(settings.Default(), nil)
	g := stem()
	guides, ok := s.CursorGuides(P(40, 250), g)
	require.True(t, ok)
	assert.Equal(t, 0.0, guides.Point.X, "left edge")
	assert.InDelta(t, 250.0, guides.Point.Y, 0.5)
	assert.Equal(t, P(-1000, guides.Point.Y), guides.G1.B)
	assert.Equal(t, P(1000, guides.Point.Y), guides.G2.B)
	m := s.Measure(g, guides)
	assert.True(t, m.Sides[0].Found, "left guideline crosses its own start point")
	assert.False(t, m.Sides[0].Visible())
	assert.True(t, m.Sides[1].Visible())
	assert.InDelta(t, 100.0, m.Sides[1].Thickness, 1e-9)
	assert.InDelta(t, 100.0, m.Sides[1].Edge.X, 1e-9)
	assert.InDelta(t, 50.0, m.Sides[1].Label.X, 1e-9)
}

func TestClosestAndAnchor(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := NewSession(settings.Default(), nil)
	g := stem()
	hit, ok := s.Closest(P(40, 250), g)
	require.True(t, ok)
	assert.Equal(t, 0, hit.Anchor.Contour)
	assert.Equal(t, 1, hit.Anchor.Segment)
	assert.InDelta(t, 0.5, hit.Anchor.T, 0.001)
	assert.InDelta(t, 40.0, hit.Distance, 0.01)
	g1, err := s.AnchoredGuides(g, hit.Anchor)
	require.NoError(t, err)
	assert.InDelta(t, hit.Point.X, g1.Point.X, 1e-9)
	assert.InDelta(t, hit.Point.Y, g1.Point.Y, 1e-9)
	g2, err := s.AnchoredGuides(g, hit.Anchor)
	require.NoError(t, err)
	assert.Equal(t, g1, g2, "anchored guides are reproducible")
	m := s.Measure(g, g1)
	assert.InDelta(t, 100.0, m.Sides[1].Thickness, 1e-9)
}

func TestClosestTieBreak(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := NewSession(settings.Default(), nil)
	g := &outline.Glyph{Contours: []outline.Contour{rectangle(0, 0, 100, 500), rectangle(0, 0, 100, 500)}}
	hit, ok := s.Closest(P(40, 250), g)
	require.True(t, ok)
	assert.Equal(t, 0, hit.Anchor.Contour, "first of equally close points")
}

func TestAnchorFollowsEdits(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := NewSession(settings.Default(), nil)
	hit, ok := s.Closest(P(40, 250), stem())
	require.True(t, ok)
	edited := &outline.Glyph{Name: "I", Width: 200, Contours: []outline.Contour{rectangle(10, 0, 100, 500)}}
	guides, err := s.AnchoredGuides(edited, hit.Anchor)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, guides.Point.X, 1e-9)
	m := s.Measure(edited, guides)
	assert.InDelta(t, 90.0, m.Sides[1].Thickness, 1e-9)
}

func TestAnchorErrors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := NewSession(settings.Default(), nil)
	g := stem()
	_, err := s.AnchoredGuides(g, Anchor{Contour: 3})
	assert.True(t, errors.Is(err, ErrNoAnchor))
	assert.True(t, errors.Is(err, outline.ErrNoSuchSegment))
	a, err := DefaultAnchor(g)
	require.NoError(t, err)
	assert.Equal(t, Anchor{}, a)
}

func TestAnchoredSession(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	st := settings.Default()
	st.Anchoring = true
	s := NewSession(st, nil)
	g := stem()
	// without an anchor, the start of the first segment is used
	guides, ok := s.Guides(P(40, 250), g, nil)
	require.True(t, ok)
	assert.Equal(t, P(100, 0), guides.Point)
	assert.Equal(t, P(100, 1000), guides.G1.B)
	a := Anchor{Contour: 0, Segment: 1, T: 0.5}
	guides, ok = s.Guides(P(999, 999), g, &a)
	require.True(t, ok)
	assert.Equal(t, P(0, 250), guides.Point, "cursor is ignored")
	m, ok := s.MeasureAt(P(999, 999), g, &a)
	require.True(t, ok)
	assert.Equal(t, 100.0, m.Sides[1].Thickness)
	_, ok = s.Guides(P(0, 0), g, &Anchor{Contour: 0, Segment: 9})
	assert.False(t, ok)
}

func TestDefaultAnchorSkipsGap(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	st := settings.Default()
	st.Anchoring = true
	s := NewSession(st, nil)
	g := &outline.Glyph{Name: "L", Width: 200, Contours: []outline.Contour{
		outline.Open(P(0, 0)).Line(P(0, 100)).Line(P(100, 100)).End(),
		rectangle(150, 0, 200, 100),
	}}
	a, err := DefaultAnchor(g)
	require.NoError(t, err)
	assert.Equal(t, Anchor{Contour: 0, Segment: 1, T: 0}, a)
	guides, ok := s.Guides(P(999, 999), g, nil)
	require.True(t, ok)
	assert.Equal(t, P(0, 0), guides.Point)
	// an empty first contour is passed over
	g = &outline.Glyph{Name: "I", Width: 200, Contours: []outline.Contour{{}, rectangle(0, 0, 100, 500)}}
	a, err = DefaultAnchor(g)
	require.NoError(t, err)
	assert.Equal(t, Anchor{Contour: 1, Segment: 0, T: 0}, a)
	guides, ok = s.Guides(P(999, 999), g, nil)
	require.True(t, ok)
	assert.Equal(t, P(100, 0), guides.Point)
}

func TestMalformedContourSkipped(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := NewSession(settings.Default(), nil)
	g := &outline.Glyph{Name: "bad", Width: 200, Contours: []outline.Contour{
		outline.Closed(P(500, 0)).QCurve(P(500, 10), P(510, 10), P(520, 10), P(520, 0)).Close(),
		rectangle(0, 0, 100, 500),
	}}
	hit, ok := s.Closest(P(40, 250), g)
	require.True(t, ok)
	assert.Equal(t, 1, hit.Anchor.Contour)
	assert.Equal(t, 1, hit.Anchor.Segment)
	a, err := DefaultAnchor(g)
	require.NoError(t, err)
	assert.Equal(t, Anchor{Contour: 0, Segment: 0, T: 0}, a)
}

func TestSessionWithoutIntersector(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := &Session{Settings: settings.Default()}
	guides, ok := s.CursorGuides(P(40, 250), stem())
	require.True(t, ok)
	var m Measurement
	require.NotPanics(t, func() { m = s.Measure(stem(), guides) })
	assert.True(t, m.Sides[1].Found)
	assert.InDelta(t, 100.0, m.Sides[1].Thickness, 1e-6)
}

func TestCurvedStem(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	st := settings.Default()
	st.MeasureAgainstSidebearings = false
	s := NewSession(st, nil)
	g := &outline.Glyph{Name: "arch", Width: 100, Contours: []outline.Contour{
		outline.Closed(P(0, 0)).Curve(P(0, 100), P(100, 100), P(100, 0)).Close(),
	}}
	m, ok := s.MeasureAt(P(50, 90), g, nil)
	require.True(t, ok)
	assert.InDelta(t, 50.0, m.Point.X, 0.5)
	assert.InDelta(t, 75.0, m.Point.Y, 0.5)
	assert.True(t, m.Sides[1].Found, "downward guideline hits the baseline")
	assert.InDelta(t, 0.0, m.Sides[1].Edge.Y, 1e-9)
	assert.InDelta(t, 75.0, m.Sides[1].Thickness, 0.5)
}

func TestHostGuide(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := NewSession(settings.Default(), nil)
	pt, angle, ok := s.HostGuide(P(40, 250), stem())
	require.True(t, ok)
	assert.Equal(t, 0.0, pt.X)
	assert.Equal(t, 0.0, angle, "horizontal guide across a vertical stem")
}

func TestCatalog(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := NewCatalog()
	c.AddWidth("stem", 84)
	c.AddWidth("hair", 84.4)
	c.AddHeight("xheight", 84)
	assert.Equal(t, []string{"W: hair", "W: stem", "H: xheight"}, c.Names(84.2))
	assert.Equal(t, []string{"W: hair", "W: stem", "H: xheight"}, c.Names(84.5), "halves round to even")
	assert.Nil(t, c.Names(85))
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, "84: W: hair, W: stem\n84: H: xheight\n", c.String())
	var none *Catalog
	assert.Nil(t, none.Names(84))
	assert.Equal(t, "W: hair\nW: stem", FormatNames(c.Names(84)[:2]))
}

func TestLoadCatalog(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c, err := LoadCatalog(strings.NewReader("stem: {width: 100}\nbar: {height: 100}\nnone: {}\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"W: stem", "H: bar"}, c.Names(100))
	assert.Equal(t, 2, c.Len())
	c, err = LoadCatalog(strings.NewReader(`{"stem": {"width": 84}}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"W: stem"}, c.Names(84))
	c, err = LoadCatalog(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	_, err = LoadCatalog(strings.NewReader("stem: [\n"))
	assert.Error(t, err)
}

func TestMeasuredNames(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := NewSession(settings.Default(), nil)
	s.Catalog = NewCatalog()
	s.Catalog.AddWidth("stem", 100)
	m, ok := s.MeasureAt(P(40, 250), stem(), nil)
	require.True(t, ok)
	assert.Equal(t, []string{"W: stem"}, m.Sides[1].Names)
	assert.Nil(t, m.Sides[0].Names)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, 0, Precision(1))
	assert.Equal(t, 1, Precision(3))
	assert.Equal(t, 2, Precision(5.5))
	assert.Equal(t, 3, Precision(8))
	assert.Equal(t, "100", Format(99.96, 1))
	assert.Equal(t, "100", Format(99.96, 4))
	assert.Equal(t, "12.2", Format(12.25, 4))
	assert.Equal(t, "12.346", Format(12.3456, 8))
	assert.Equal(t, "7", Format(7, 8))
	assert.False(t, Side{Found: true, Thickness: 0.4}.Visible())
	assert.True(t, Side{Found: true, Thickness: 0.6}.Visible())
	assert.False(t, Side{Thickness: 12}.Visible())
}
