package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/name-wheel/wheel"
)

// UI colors
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbText       = tcell.NewRGBColor(192, 202, 245) // Soft white
	RgbDim        = tcell.NewRGBColor(120, 124, 153) // Muted gray for hints
	RgbPointer    = tcell.NewRGBColor(255, 255, 255) // Bright white
	RgbSelection  = tcell.NewRGBColor(65, 72, 104)   // Selected list row
	RgbWinner     = tcell.NewRGBColor(255, 183, 3)   // Same as last palette entry
	RgbError      = tcell.NewRGBColor(255, 80, 80)   // Error Red

	// Status bar backgrounds
	RgbModeNormalBg = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbModeInsertBg = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbModeSpinBg   = tcell.NewRGBColor(255, 165, 0)   // Orange while spinning
	RgbStatusText   = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
)

var segmentColors [len(wheel.Palette)]tcell.Color

func init() {
	for i, hex := range wheel.Palette {
		segmentColors[i] = tcell.GetColor(hex)
	}
}

// SegmentColor returns the terminal color of segment i
func SegmentColor(i int) tcell.Color {
	if i < 0 {
		i = -i
	}
	return segmentColors[i%len(segmentColors)]
}

// InkColor is the label color drawn over any segment
func InkColor() tcell.Color {
	return tcell.GetColor(wheel.LabelInk)
}
