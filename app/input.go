package app

import (
	"fmt"
	"log"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/name-wheel/roster"
)

// HandleEvent applies one terminal event; returns false to quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventPaste:
		if ev.Start() {
			a.pasting = true
			a.pasteBuf = a.pasteBuf[:0]
		} else if ev.End() {
			a.pasting = false
			a.handlePaste(string(a.pasteBuf))
		}
		return true

	case *tcell.EventKey:
		if a.pasting {
			a.bufferPasteKey(ev)
			return true
		}
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if a.mode == ModeInsert {
			a.handleInsertKey(ev)
			return true
		}
		return a.handleNormalKey(ev)

	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) handleNormalKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		return false
	case tcell.KeyEnter:
		a.RequestSpin()
		return true
	case tcell.KeyDown:
		a.moveSelection(1)
		return true
	case tcell.KeyUp:
		a.moveSelection(-1)
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case ' ':
		a.RequestSpin()
	case 'i', 'a':
		a.mode = ModeInsert
		a.setMessage("type a name, Enter adds, Esc returns", false)
	case 'j':
		a.moveSelection(1)
	case 'k':
		a.moveSelection(-1)
	case 'x', 'd':
		a.deleteSelected()
	case 'D':
		a.clearAll()
	}
	return true
}

func (a *App) handleInsertKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		a.mode = ModeNormal
		a.input = a.input[:0]
		a.setMessage("", false)
	case tcell.KeyEnter:
		a.commitInput()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(a.input) > 0 {
			a.input = a.input[:len(a.input)-1]
		}
	case tcell.KeyCtrlU:
		a.input = a.input[:0]
	case tcell.KeyRune:
		a.input = append(a.input, ev.Rune())
	}
}

// bufferPasteKey collects keys between the paste markers; Enter is a line break
func (a *App) bufferPasteKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEnter, tcell.KeyCtrlJ:
		a.pasteBuf = append(a.pasteBuf, '\n')
	case tcell.KeyTab:
		a.pasteBuf = append(a.pasteBuf, '\t')
	case tcell.KeyRune:
		a.pasteBuf = append(a.pasteBuf, ev.Rune())
	}
}

// handlePaste adds multi-line or comma-separated pastes directly, otherwise it joins the input line
func (a *App) handlePaste(text string) {
	if a.mode != ModeInsert {
		a.mode = ModeInsert
	}
	if !roster.IsSplittable(text) {
		a.input = append(a.input, []rune(text)...)
		return
	}
	a.addNames(string(a.input) + text)
	a.input = a.input[:0]
}

func (a *App) commitInput() {
	text := strings.TrimSpace(string(a.input))
	a.input = a.input[:0]
	if text == "" {
		return
	}
	a.addNames(text)
}

func (a *App) addNames(text string) {
	added := 0
	if roster.IsSplittable(text) {
		added = a.roster.AddPasted(text)
	} else if a.roster.Add(text) {
		added = 1
	}
	if added == 0 {
		return
	}
	a.persist()
	a.selected = a.roster.Len() - 1
	if added == 1 {
		a.setMessage(fmt.Sprintf("added %s", a.roster.At(a.selected)), false)
	} else {
		a.setMessage(fmt.Sprintf("added %d names", added), false)
	}
	log.Printf("Added %d names, %d total", added, a.roster.Len())
}

func (a *App) moveSelection(delta int) {
	a.selected += delta
	a.clampSelection()
}

func (a *App) deleteSelected() {
	name, err := a.roster.Delete(a.selected)
	if err != nil {
		a.setMessage("nothing to delete", true)
		return
	}
	a.clampSelection()
	a.persist()
	a.setMessage(fmt.Sprintf("removed %s", name), false)
}

func (a *App) clearAll() {
	if a.roster.Len() == 0 {
		return
	}
	n := a.roster.Len()
	a.roster.Clear()
	a.selected = 0
	a.persist()
	a.setMessage(fmt.Sprintf("removed all %d names", n), false)
	log.Printf("Cleared %d names", n)
}
