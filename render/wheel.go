package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/name-wheel/vmath"
	"github.com/lixenwraith/name-wheel/wheel"
)

// CellAspect is how many columns span the height of one row
const CellAspect = 2.0

// WheelView places a wheel on the screen, in cells
type WheelView struct {
	CenterX, CenterY int
	Radius           int // in rows; the wheel is CellAspect*Radius columns wide on each side
	Rotation         float64
	PointerOffset    float64
	LabelRatio       float64
}

// SegmentAt returns the segment index drawn at cell (x, y) for n labels, -1 outside the wheel
// Uses the same angle convention as wheel.ResolveIndex
func (v WheelView) SegmentAt(x, y, n int) int {
	dx := float64(x-v.CenterX) / CellAspect
	dy := float64(y - v.CenterY)
	if math.Hypot(dx, dy) > float64(v.Radius)+0.5 {
		return -1
	}
	count := wheel.SegmentCount(n)
	local := vmath.NormalizeDeg(vmath.AngleOf(dx, dy) - v.Rotation)
	return int(local/wheel.SegmentAngle(n)) % count
}

// screenPoint converts a wheel-local polar position to a cell
func (v WheelView) screenPoint(r, localDeg float64) (int, int) {
	p := vmath.Polar(vmath.Point{}, r, localDeg+v.Rotation)
	return v.CenterX + int(math.Round(p.X*CellAspect)), v.CenterY + int(math.Round(p.Y))
}

// PointerCell returns the cell just outside the rim in the pointer direction
func (v WheelView) PointerCell() (int, int) {
	p := vmath.Polar(vmath.Point{}, float64(v.Radius)+1, v.PointerOffset)
	return v.CenterX + int(math.Round(p.X*CellAspect)), v.CenterY + int(math.Round(p.Y))
}

// pointerGlyph picks an arrow aimed at the hub
func pointerGlyph(deg float64) rune {
	switch d := vmath.NormalizeDeg(deg); {
	case d >= 225 && d < 315:
		return '▼'
	case d >= 45 && d < 135:
		return '▲'
	case d >= 135 && d < 225:
		return '▶'
	default:
		return '◀'
	}
}

// DrawWheel rasterises the wheel, its labels and the pointer
// labels are the displayed labels (placeholders already applied)
func DrawWheel(s tcell.Screen, v WheelView, labels []string) {
	w, h := s.Size()
	n := len(labels)
	bg := tcell.StyleDefault.Background(RgbBackground)

	r := v.Radius
	span := int(float64(r) * CellAspect)
	for y := v.CenterY - r; y <= v.CenterY+r; y++ {
		for x := v.CenterX - span; x <= v.CenterX+span; x++ {
			if x < 0 || y < 0 || x >= w || y >= h {
				continue
			}
			if idx := v.SegmentAt(x, y, n); idx >= 0 {
				s.SetContent(x, y, ' ', nil, bg.Background(SegmentColor(idx)))
			}
		}
	}

	ratio := v.LabelRatio
	if ratio <= 0 || ratio > 1 {
		ratio = wheel.DefaultLabelRatio
	}
	seg := wheel.SegmentAngle(n)
	for i, label := range labels {
		mid := (float64(i) + 0.5) * seg
		ax, ay := v.screenPoint(float64(r)*ratio, mid)
		drawLabel(s, v, ax, ay, label, n)
	}

	px, py := v.PointerCell()
	if px >= 0 && py >= 0 && px < w && py < h {
		s.SetContent(px, py, pointerGlyph(v.PointerOffset), nil, bg.Foreground(RgbPointer).Bold(true))
	}
}

// drawLabel centres text on the anchor, keeping each cell on its own segment's fill
// Terminal text cannot rotate, so labels stay horizontal and are cut at the rim
func drawLabel(s tcell.Screen, v WheelView, ax, ay int, label string, n int) {
	runes := []rune(label)
	maxLen := int(float64(v.Radius) * CellAspect * 0.6)
	if maxLen < 1 {
		return
	}
	if len(runes) > maxLen {
		runes = append(runes[:maxLen-1], '…')
	}

	x := ax - len(runes)/2
	for _, ch := range runes {
		if idx := v.SegmentAt(x, ay, n); idx >= 0 {
			style := tcell.StyleDefault.Foreground(InkColor()).Background(SegmentColor(idx))
			s.SetContent(x, ay, ch, nil, style)
		}
		x++
	}
}
