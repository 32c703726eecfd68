//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package screen draws tabpad on a termbox terminal and converts termbox
// events into tabpad events.
package screen

import (
	"github.com/nsf/termbox-go"

	"github.com/timburks/tabpad/commander"
	tabpad "github.com/timburks/tabpad/types"
)

// The Screen is a termbox terminal.
type Screen struct {
	size tabpad.Size // screen size
}

// NewScreen opens the terminal with mouse reporting and Alt-prefixed keys enabled.
func NewScreen() (*Screen, error) {
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputAlt | termbox.InputMouse)
	termbox.SetOutputMode(termbox.Output256)
	s := &Screen{}
	s.size.Cols, s.size.Rows = termbox.Size()
	return s, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

// Render draws the window and flushes it to the terminal.
func (s *Screen) Render(c *commander.Commander) {
	s.Clear()
	Draw(s, c)
	s.Flush()
}

func (s *Screen) Size() tabpad.Size {
	s.size.Cols, s.size.Rows = termbox.Size()
	return s.size
}

func (s *Screen) Clear() {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
}

func (s *Screen) Flush() {
	termbox.Flush()
}

func (s *Screen) SetCell(col, row int, c rune, style tabpad.Style) {
	fg := termbox.Attribute(style.Fg)
	bg := termbox.Attribute(style.Bg)
	if style.Bold {
		fg |= termbox.AttrBold
	}
	if style.Reverse {
		fg |= termbox.AttrReverse
	}
	termbox.SetCell(col, row, c, fg, bg)
}

func (s *Screen) SetCursor(p tabpad.Point) {
	termbox.SetCursor(p.Col, p.Row)
}

func (s *Screen) HideCursor() {
	termbox.HideCursor()
}

func (s *Screen) GetNextEvent() *tabpad.Event {
	ev := termbox.PollEvent()
	if ev.Type == termbox.EventResize {
		termbox.Flush()
	}
	return event(ev)
}

// event converts a termbox event into a tabpad event.
func event(ev termbox.Event) *tabpad.Event {
	switch ev.Type {
	case termbox.EventResize:
		return &tabpad.Event{Type: tabpad.EventResize}
	case termbox.EventMouse:
		e := &tabpad.Event{Type: tabpad.EventMouse, Key: key(ev.Key), X: ev.MouseX, Y: ev.MouseY}
		if ev.Mod&termbox.ModMotion != 0 {
			e.Mod |= tabpad.ModMotion
		}
		return e
	case termbox.EventInterrupt:
		return &tabpad.Event{Type: tabpad.EventInterrupt}
	case termbox.EventKey:
		e := &tabpad.Event{Type: tabpad.EventKey, Ch: ev.Ch}
		// termbox.KeyCtrlSpace is zero, the Key of every printable key
		if ev.Ch == 0 {
			e.Key = key(ev.Key)
		}
		if ev.Mod&termbox.ModAlt != 0 {
			e.Mod |= tabpad.ModAlt
		}
		return e
	default:
		// errors and raw events are dropped
		return &tabpad.Event{Type: tabpad.EventInterrupt}
	}
}

func key(k termbox.Key) tabpad.Key {
	switch k {
	case termbox.KeyArrowDown:
		return tabpad.KeyArrowDown
	case termbox.KeyArrowLeft:
		return tabpad.KeyArrowLeft
	case termbox.KeyArrowRight:
		return tabpad.KeyArrowRight
	case termbox.KeyArrowUp:
		return tabpad.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return tabpad.KeyBackspace
	case termbox.KeyDelete:
		return tabpad.KeyDelete
	case termbox.KeyInsert:
		return tabpad.KeyInsert
	case termbox.KeyF1:
		return tabpad.KeyF1
	case termbox.KeyF2:
		return tabpad.KeyF2
	case termbox.KeyF3:
		return tabpad.KeyF3
	case termbox.KeyF4:
		return tabpad.KeyF4
	case termbox.KeyF5:
		return tabpad.KeyF5
	case termbox.KeyF6:
		return tabpad.KeyF6
	case termbox.KeyF7:
		return tabpad.KeyF7
	case termbox.KeyF8:
		return tabpad.KeyF8
	case termbox.KeyF9:
		return tabpad.KeyF9
	case termbox.KeyF10:
		return tabpad.KeyF10
	case termbox.KeyF11:
		return tabpad.KeyF11
	case termbox.KeyF12:
		return tabpad.KeyF12
	case termbox.KeyCtrlSpace:
		return tabpad.KeyCtrlSpace
	case termbox.KeyCtrlA:
		return tabpad.KeyCtrlA
	case termbox.KeyCtrlB:
		return tabpad.KeyCtrlB
	case termbox.KeyCtrlC:
		return tabpad.KeyCtrlC
	case termbox.KeyCtrlD:
		return tabpad.KeyCtrlD
	case termbox.KeyCtrlE:
		return tabpad.KeyCtrlE
	case termbox.KeyCtrlF:
		return tabpad.KeyCtrlF
	case termbox.KeyCtrlG:
		return tabpad.KeyCtrlG
	//case termbox.KeyCtrlH: same code as backspace
	//case termbox.KeyCtrlI: same code as tab
	//case termbox.KeyCtrlJ:
	case termbox.KeyCtrlK:
		return tabpad.KeyCtrlK
	case termbox.KeyCtrlL:
		return tabpad.KeyCtrlL
	//case termbox.KeyCtrlM: same code as enter
	case termbox.KeyCtrlN:
		return tabpad.KeyCtrlN
	case termbox.KeyCtrlO:
		return tabpad.KeyCtrlO
	case termbox.KeyCtrlP:
		return tabpad.KeyCtrlP
	case termbox.KeyCtrlQ:
		return tabpad.KeyCtrlQ
	case termbox.KeyCtrlR:
		return tabpad.KeyCtrlR
	case termbox.KeyCtrlS:
		return tabpad.KeyCtrlS
	case termbox.KeyCtrlT:
		return tabpad.KeyCtrlT
	case termbox.KeyCtrlU:
		return tabpad.KeyCtrlU
	case termbox.KeyCtrlV:
		return tabpad.KeyCtrlV
	case termbox.KeyCtrlW:
		return tabpad.KeyCtrlW
	case termbox.KeyCtrlX:
		return tabpad.KeyCtrlX
	case termbox.KeyCtrlY:
		return tabpad.KeyCtrlY
	case termbox.KeyCtrlZ:
		return tabpad.KeyCtrlZ
	case termbox.KeyEnd:
		return tabpad.KeyEnd
	case termbox.KeyEnter:
		return tabpad.KeyEnter
	case termbox.KeyEsc:
		return tabpad.KeyEsc
	case termbox.KeyHome:
		return tabpad.KeyHome
	case termbox.KeyPgdn:
		return tabpad.KeyPgdn
	case termbox.KeyPgup:
		return tabpad.KeyPgup
	case termbox.KeySpace:
		return tabpad.KeySpace
	case termbox.KeyTab:
		return tabpad.KeyTab
	case termbox.MouseLeft:
		return tabpad.MouseLeft
	case termbox.MouseMiddle:
		return tabpad.MouseMiddle
	case termbox.MouseRight:
		return tabpad.MouseRight
	case termbox.MouseRelease:
		return tabpad.MouseRelease
	case termbox.MouseWheelUp:
		return tabpad.MouseWheelUp
	case termbox.MouseWheelDown:
		return tabpad.MouseWheelDown
	default:
		return tabpad.KeyUnsupported
	}
}
