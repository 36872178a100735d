package wheel

import (
	"math"
	"strconv"
	"strings"

	"github.com/lixenwraith/name-wheel/vmath"
)

// FallbackSegments is the segment count used when there are no labels
const FallbackSegments = 6

// DefaultLabelRatio places label anchors at this fraction of the radius
const DefaultLabelRatio = 1.0 / 3.0

// Segment is one equal slice of the wheel, derived from its list position and the total count
type Segment struct {
	Index      int
	Label      string
	Color      string
	StartAngle float64
	EndAngle   float64
	Geometry   Geometry
}

// Span returns the angular width in degrees
func (s Segment) Span() float64 { return s.EndAngle - s.StartAngle }

// MidAngle returns the bisector angle in degrees
func (s Segment) MidAngle() float64 { return s.StartAngle + s.Span()/2 }

// Contains reports whether wheel angle deg (normalized) falls inside [Start, End)
func (s Segment) Contains(deg float64) bool {
	deg = vmath.NormalizeDeg(deg)
	return deg >= s.StartAngle && deg < s.EndAngle
}

// Geometry is the drawable description of a sector in wheel units, origin at top-left
type Geometry struct {
	Center        vmath.Point
	Radius        float64
	Start         vmath.Point // circumference point at StartAngle
	End           vmath.Point // circumference point at EndAngle
	LabelAnchor   vmath.Point
	LabelRotation float64 // degrees, aligns text radially
	PathData      string  // SVG path: center, line to Start, arc to End, close
}

type layoutOptions struct {
	labelRatio float64
}

// Option tunes Layout
type Option func(*layoutOptions)

// WithLabelRatio sets label anchor distance as a fraction of the radius, ignored outside (0,1]
func WithLabelRatio(ratio float64) Option {
	return func(o *layoutOptions) {
		if ratio > 0 && ratio <= 1 {
			o.labelRatio = ratio
		}
	}
}

// SegmentCount returns the effective number of segments for n labels
func SegmentCount(n int) int {
	if n <= 0 {
		return FallbackSegments
	}
	return n
}

// SegmentAngle returns the span of one segment for n labels
func SegmentAngle(n int) float64 {
	return vmath.FullTurn / float64(SegmentCount(n))
}

// Labels returns the labels the wheel displays: the input, or placeholders when empty
func Labels(labels []string) []string {
	count := SegmentCount(len(labels))
	out := make([]string, count)
	for i := range out {
		if i < len(labels) {
			out[i] = labels[i]
		} else {
			out[i] = PlaceholderLabel(i)
		}
	}
	return out
}

// Layout computes the ordered segments for labels on a wheel of the given diameter
// Always returns at least one segment; an empty list yields FallbackSegments placeholders
func Layout(labels []string, diameter float64, opts ...Option) []Segment {
	o := layoutOptions{labelRatio: DefaultLabelRatio}
	for _, opt := range opts {
		opt(&o)
	}

	shown := Labels(labels)
	count := len(shown)
	radius := diameter / 2
	center := vmath.Point{X: radius, Y: radius}

	segments := make([]Segment, count)
	for i, label := range shown {
		// Computed from the index, not accumulated, so end(i) == start(i+1) exactly
		start := float64(i) * vmath.FullTurn / float64(count)
		end := float64(i+1) * vmath.FullTurn / float64(count)
		mid := start + (end-start)/2

		geo := Geometry{
			Center:        center,
			Radius:        radius,
			Start:         vmath.Polar(center, radius, start),
			End:           vmath.Polar(center, radius, end),
			LabelAnchor:   vmath.Polar(center, radius*o.labelRatio, mid),
			LabelRotation: mid,
		}
		geo.PathData = sectorPath(geo, start, end, count)

		segments[i] = Segment{
			Index:      i,
			Label:      label,
			Color:      ColorFor(i),
			StartAngle: start,
			EndAngle:   end,
			Geometry:   geo,
		}
	}
	return segments
}

// sectorPath builds the pie-slice path; a lone segment is a full disc drawn as two half arcs
func sectorPath(g Geometry, start, end float64, count int) string {
	var b strings.Builder
	r := num(g.Radius)

	b.WriteString("M " + num(g.Center.X) + " " + num(g.Center.Y))
	b.WriteString(" L " + num(g.Start.X) + " " + num(g.Start.Y))
	if count == 1 {
		half := vmath.Polar(g.Center, g.Radius, start+(end-start)/2)
		b.WriteString(" A " + r + " " + r + " 0 0 1 " + num(half.X) + " " + num(half.Y))
	}
	b.WriteString(" A " + r + " " + r + " 0 0 1 " + num(g.End.X) + " " + num(g.End.Y))
	b.WriteString(" Z")
	return b.String()
}

func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
