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
package screen

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/timburks/tabpad/commander"
	tabpad "github.com/timburks/tabpad/types"
)

var (
	DefaultStyle  = tabpad.Style{}
	BarStyle      = tabpad.Style{Fg: tabpad.ColorBlack, Bg: tabpad.ColorWhite}
	SelectedStyle = tabpad.Style{Reverse: true}
	ActiveStyle   = tabpad.Style{Bold: true, Reverse: true}
	HintStyle     = tabpad.Style{Fg: tabpad.ColorCyan}
)

// DrawText draws text on one row starting at col, clipped to width cells.
// It returns the number of cells drawn.
func DrawText(d tabpad.Display, col, row int, text string, style tabpad.Style, width int) int {
	x := 0
	for _, c := range text {
		w := runewidth.RuneWidth(c)
		if w == 0 {
			continue
		}
		if x+w > width {
			break
		}
		d.SetCell(col+x, row, c, style)
		x += w
	}
	return x
}

// Fill sets width cells of a row to spaces.
func Fill(d tabpad.Display, col, row, width int, style tabpad.Style) {
	for x := 0; x < width; x++ {
		d.SetCell(col+x, row, ' ', style)
	}
}

// DrawBox draws a border around r and clears its inside.
func DrawBox(d tabpad.Display, r tabpad.Rect, style tabpad.Style) {
	if r.Size.Rows < 2 || r.Size.Cols < 2 {
		return
	}
	top, left := r.Origin.Row, r.Origin.Col
	bottom, right := top+r.Size.Rows-1, left+r.Size.Cols-1
	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			c := ' '
			switch {
			case row == top && col == left:
				c = '┌'
			case row == top && col == right:
				c = '┐'
			case row == bottom && col == left:
				c = '└'
			case row == bottom && col == right:
				c = '┘'
			case row == top || row == bottom:
				c = '─'
			case col == left || col == right:
				c = '│'
			}
			d.SetCell(col, row, c, style)
		}
	}
}

// Draw draws the window: the menu bar, the tab strip, the active text area,
// the info bar, the message bar and any open menu.
func Draw(d tabpad.Display, c *commander.Commander) {
	size := d.Size()
	c.SetSize(size)
	if size.Rows < 4 || size.Cols < 1 {
		d.HideCursor()
		return
	}
	drawMenuBar(d, c, size)
	drawTabStrip(d, c, size)
	drawTextArea(d, c)
	drawInfoBar(d, c, size)
	drawMessageBar(d, c, size)
	if _, _, open := c.OpenMenu(); open {
		drawDropdown(d, c)
		d.HideCursor()
	}
}

func drawMenuBar(d tabpad.Display, c *commander.Commander, size tabpad.Size) {
	Fill(d, 0, commander.MenuBarRow, size.Cols, BarStyle)
	menu, _, open := c.OpenMenu()
	for _, s := range c.MenuSpans() {
		style := BarStyle
		if open && s.Index == menu {
			style = DefaultStyle
		}
		if s.Start < size.Cols {
			DrawText(d, s.Start, commander.MenuBarRow, s.Label, style, size.Cols-s.Start)
		}
	}
}

func drawTabStrip(d tabpad.Display, c *commander.Commander, size tabpad.Size) {
	active := c.Manager().ActiveIndex()
	for _, s := range c.TabSpans() {
		style := DefaultStyle
		if s.Index == active {
			style = ActiveStyle
		}
		DrawText(d, s.Start, commander.TabStripRow, s.Label, style, size.Cols-s.Start)
		if s.End < size.Cols {
			d.SetCell(s.End, commander.TabStripRow, '│', DefaultStyle)
		}
	}
}

func drawTextArea(d tabpad.Display, c *commander.Commander) {
	r := c.TextRect()
	a := c.Manager().CurrentTextArea()
	if a == nil {
		d.HideCursor()
		hint := fmt.Sprintf("No open documents. Press %s to create one.", c.Keymap().Label(commander.ActionNewTab))
		if r.Size.Rows > 0 {
			DrawText(d, r.Origin.Col+1, r.Origin.Row, hint, HintStyle, r.Size.Cols-1)
		}
		return
	}
	a.Render(d, r)
}

func drawInfoBar(d tabpad.Display, c *commander.Commander, size tabpad.Size) {
	row := c.InfoBarRow()
	Fill(d, 0, row, size.Cols, BarStyle)
	m := c.Manager()
	t := m.Current()
	if t == nil {
		DrawText(d, 0, row, " tabpad ", BarStyle, size.Cols)
		return
	}
	cursor := t.TextArea().GetCursor()
	final := fmt.Sprintf(" Ln %d, Col %d ", cursor.Row+1, cursor.Col+1)
	text := " " + t.Title()
	if path, _ := m.Path(t.ID()); path != "" {
		text += " - " + path
	}
	text += " "
	finalWidth := runewidth.StringWidth(final)
	DrawText(d, 0, row, text, BarStyle, size.Cols-finalWidth)
	if finalWidth <= size.Cols {
		DrawText(d, size.Cols-finalWidth, row, final, BarStyle, finalWidth)
	}
}

func drawMessageBar(d tabpad.Display, c *commander.Commander, size tabpad.Size) {
	DrawText(d, 0, c.MessageBarRow(), c.GetMessage(), DefaultStyle, size.Cols)
}

func drawDropdown(d tabpad.Display, c *commander.Commander) {
	box := c.DropdownRect()
	DrawBox(d, box, DefaultStyle)
	menu, item, _ := c.OpenMenu()
	inner := box.Size.Cols - 2
	for i, it := range c.Menus()[menu].Items {
		row := box.Origin.Row + 1 + i
		col := box.Origin.Col + 1
		if it.IsSeparator() {
			d.SetCell(box.Origin.Col, row, '├', DefaultStyle)
			for x := 0; x < inner; x++ {
				d.SetCell(col+x, row, '─', DefaultStyle)
			}
			d.SetCell(col+inner, row, '┤', DefaultStyle)
			continue
		}
		style := DefaultStyle
		if i == item {
			style = SelectedStyle
		}
		Fill(d, col, row, inner, style)
		DrawText(d, col+1, row, it.Label, style, inner-1)
		w := runewidth.StringWidth(it.Shortcut)
		DrawText(d, col+inner-1-w, row, it.Shortcut, style, w)
	}
}
