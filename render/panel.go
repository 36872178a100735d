package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Mode indicator text
const (
	ModeTextNormal = " NORMAL "
	ModeTextInsert = " INSERT "
	ModeTextSpin   = " SPIN "
)

// drawText writes s from (x, y), clipped to maxWidth cells; returns the next x
func drawText(scr tcell.Screen, x, y, maxWidth int, s string, style tcell.Style) int {
	end := x + maxWidth
	for _, ch := range s {
		if x >= end {
			break
		}
		scr.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

// fillRow paints a full row
func fillRow(scr tcell.Screen, y, width int, style tcell.Style) {
	for x := 0; x < width; x++ {
		scr.SetContent(x, y, ' ', nil, style)
	}
}

// DrawList renders the name list in a column starting at (x, y)
// The selection is scrolled into view; the last winner is marked with a star
func DrawList(scr tcell.Screen, x, y, width, height int, names []string, selected int, winner string) {
	if width <= 0 || height <= 0 {
		return
	}
	base := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	title := fmt.Sprintf("Names (%d)", len(names))
	drawText(scr, x, y, width, title, base.Bold(true))

	rows := height - 1
	if rows <= 0 {
		return
	}
	if len(names) == 0 {
		drawText(scr, x, y+1, width, "press i to add names", base.Foreground(RgbDim))
		return
	}

	first := 0
	if selected >= rows {
		first = selected - rows + 1
	}
	for row := 0; row < rows && first+row < len(names); row++ {
		i := first + row
		style := base
		if i == selected {
			style = style.Background(RgbSelection)
		}
		marker := "  "
		if names[i] == winner && winner != "" {
			marker = "★ "
			style = style.Foreground(RgbWinner)
		}
		line := fmt.Sprintf("%s%d. %s", marker, i+1, names[i])
		for cx := x; cx < x+width; cx++ {
			scr.SetContent(cx, y+1+row, ' ', nil, style)
		}
		drawText(scr, x, y+1+row, width, line, style)
	}
}

// DrawStatus renders the mode indicator and a message on row y
func DrawStatus(scr tcell.Screen, y, width int, mode, message string, isError bool) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	fillRow(scr, y, width, defaultStyle)

	modeBg := RgbModeNormalBg
	switch mode {
	case ModeTextInsert:
		modeBg = RgbModeInsertBg
	case ModeTextSpin:
		modeBg = RgbModeSpinBg
	}
	x := drawText(scr, 0, y, width, mode, defaultStyle.Foreground(RgbStatusText).Background(modeBg))

	msgStyle := defaultStyle.Foreground(RgbText)
	if isError {
		msgStyle = defaultStyle.Foreground(RgbError)
	}
	if x < width {
		drawText(scr, x+1, y, width-x-1, message, msgStyle)
	}
}

// DrawInput renders the insert-mode prompt with a block cursor
func DrawInput(scr tcell.Screen, y, width int, input string) {
	style := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	fillRow(scr, y, width, style)
	x := drawText(scr, 0, y, width, "> ", style.Foreground(RgbDim))

	// keep the tail visible when the text overflows
	runes := []rune(input)
	room := width - x - 1
	if room < 0 {
		room = 0
	}
	if len(runes) > room {
		runes = runes[len(runes)-room:]
	}
	x = drawText(scr, x, y, room, string(runes), style)
	if x < width {
		scr.SetContent(x, y, ' ', nil, style.Reverse(true))
	}
}
