package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/name-wheel/wheel"
)

// Layout constants
const (
	ListWidth     = 28 // name column, hidden below MinListScreen columns
	MinListScreen = 60
	footerRows    = 2 // status and input lines
)

// Frame is everything one redraw needs; the renderer holds no app state
type Frame struct {
	Names         []string
	Selected      int
	Winner        string
	Rotation      float64
	PointerOffset float64
	Mode          string
	Input         string
	Message       string
	IsError       bool
}

// Renderer draws frames onto a tcell screen
type Renderer struct {
	screen     tcell.Screen
	labelRatio float64
}

// NewRenderer creates a renderer; labelRatio places labels as a fraction of the radius
func NewRenderer(screen tcell.Screen, labelRatio float64) *Renderer {
	return &Renderer{screen: screen, labelRatio: labelRatio}
}

// Screen returns the underlying screen
func (r *Renderer) Screen() tcell.Screen { return r.screen }

// View computes where the wheel sits for the current screen size
// ok is false when the terminal is too small to draw a wheel
func (r *Renderer) View(rotation, pointerOffset float64) (v WheelView, listX int, ok bool) {
	w, h := r.screen.Size()
	wheelW := w
	listX = -1
	if w >= MinListScreen {
		wheelW = w - ListWidth
		listX = wheelW
	}

	// one row above and below the rim for the pointer
	radius := min((h-footerRows-3)/2, int(float64(wheelW-3)/(2*CellAspect)))
	if radius < 2 {
		return WheelView{}, listX, false
	}
	return WheelView{
		CenterX:       wheelW / 2,
		CenterY:       1 + radius,
		Radius:        radius,
		Rotation:      rotation,
		PointerOffset: pointerOffset,
		LabelRatio:    r.labelRatio,
	}, listX, true
}

// Draw renders a full frame and shows it
func (r *Renderer) Draw(f Frame) {
	s := r.screen
	w, h := s.Size()
	s.SetStyle(tcell.StyleDefault.Background(RgbBackground))
	s.Clear()

	v, listX, ok := r.View(f.Rotation, f.PointerOffset)
	if ok {
		DrawWheel(s, v, wheel.Labels(f.Names))
	} else {
		drawText(s, 0, 0, w, "terminal too small", tcell.StyleDefault.Background(RgbBackground).Foreground(RgbError))
	}
	if listX >= 0 {
		DrawList(s, listX+1, 0, ListWidth-1, h-footerRows, f.Names, f.Selected, f.Winner)
	}

	if h >= footerRows {
		DrawStatus(s, h-2, w, f.Mode, f.Message, f.IsError)
		if f.Mode == ModeTextInsert {
			DrawInput(s, h-1, w, f.Input)
		} else {
			drawText(s, 0, h-1, w, "space spin  i add  j/k move  x delete  D clear  q quit",
				tcell.StyleDefault.Background(RgbBackground).Foreground(RgbDim))
		}
	}

	s.Show()
}
