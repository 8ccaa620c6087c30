package ruler

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"gopkg.in/yaml.v3"
)

// NamedMeasurement is a width or a height a font designer has given a name,
// e.g. the thickness of a standard stem. Exactly one of the fields is set.
type NamedMeasurement struct {
	Width  *float64 `yaml:"width,omitempty" json:"width,omitempty"`
	Height *float64 `yaml:"height,omitempty" json:"height,omitempty"`
}

// Catalog looks up named measurements by value. Values are compared after
// rounding to whole units.
//
// We store names in two TreeMaps (sorted maps), one for widths and one for
// heights, keyed by the rounded value. Map values are sorted []string.
type Catalog struct {
	widths  *treemap.Map
	heights *treemap.Map
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		widths:  treemap.NewWithIntComparator(),
		heights: treemap.NewWithIntComparator(),
	}
}

// LoadCatalog reads named measurements from YAML or JSON, a mapping from
// names to measurements:
//
//	stem: { width: 84 }
//	xheight: { height: 500 }
//
// Entries with neither a width nor a height are ignored.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var stored map[string]NamedMeasurement
	if err := yaml.NewDecoder(r).Decode(&stored); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("named measurements: %w", err)
	}
	c := NewCatalog()
	for name, m := range stored {
		c.Add(name, m)
	}
	tracer().Debugf("loaded %d named measurements", c.Len())
	return c, nil
}

func key(value float64) int {
	return int(math.RoundToEven(value))
}

func insert(m *treemap.Map, k int, name string) {
	var names []string
	if v, found := m.Get(k); found {
		names = v.([]string)
	}
	i := sort.SearchStrings(names, name)
	names = append(names, "")
	copy(names[i+1:], names[i:])
	names[i] = name
	m.Put(k, names)
}

// Add enters a named measurement. A width takes precedence over a height.
// Names are displayed with a prefix, "W: " for widths and "H: " for heights.
func (c *Catalog) Add(name string, m NamedMeasurement) {
	switch {
	case m.Width != nil:
		insert(c.widths, key(*m.Width), "W: "+name)
	case m.Height != nil:
		insert(c.heights, key(*m.Height), "H: "+name)
	}
}

// AddWidth is a shortcut for adding a named width.
func (c *Catalog) AddWidth(name string, w float64) {
	c.Add(name, NamedMeasurement{Width: &w})
}

// AddHeight is a shortcut for adding a named height.
func (c *Catalog) AddHeight(name string, h float64) {
	c.Add(name, NamedMeasurement{Height: &h})
}

// Names returns the names of all measurements matching value, widths first.
// It returns nil if there are none.
func (c *Catalog) Names(value float64) []string {
	if c == nil {
		return nil
	}
	var names []string
	k := key(value)
	for _, m := range []*treemap.Map{c.widths, c.heights} {
		if v, found := m.Get(k); found {
			names = append(names, v.([]string)...)
		}
	}
	return names
}

// Len returns the number of distinct (value, kind) entries.
func (c *Catalog) Len() int {
	return c.widths.Size() + c.heights.Size()
}

// String lists the catalog ordered by value.
func (c *Catalog) String() string {
	var sb strings.Builder
	for _, m := range []*treemap.Map{c.widths, c.heights} {
		it := m.Iterator()
		for it.Next() {
			fmt.Fprintf(&sb, "%d: %s\n", it.Key().(int), strings.Join(it.Value().([]string), ", "))
		}
	}
	return sb.String()
}

// FormatNames joins names for display, one per line.
func FormatNames(names []string) string {
	return strings.Join(names, "\n")
}
