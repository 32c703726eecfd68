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
	"strings"
	"testing"

	"github.com/timburks/tabpad/commander"
	"github.com/timburks/tabpad/tabs"
	tabpad "github.com/timburks/tabpad/types"
)

type grid struct {
	cells  map[tabpad.Point]rune
	styles map[tabpad.Point]tabpad.Style
	cursor tabpad.Point
	hidden bool
	size   tabpad.Size
}

func newGrid(rows, cols int) *grid {
	return &grid{
		cells:  map[tabpad.Point]rune{},
		styles: map[tabpad.Point]tabpad.Style{},
		size:   tabpad.Size{Rows: rows, Cols: cols},
	}
}

func (g *grid) SetCell(col, row int, c rune, style tabpad.Style) {
	if col < 0 || row < 0 || col >= g.size.Cols || row >= g.size.Rows {
		panic("cell outside the display")
	}
	g.cells[tabpad.Point{Row: row, Col: col}] = c
	g.styles[tabpad.Point{Row: row, Col: col}] = style
}

func (g *grid) SetCursor(p tabpad.Point) {
	g.cursor = p
	g.hidden = false
}

func (g *grid) HideCursor()       { g.hidden = true }
func (g *grid) Size() tabpad.Size { return g.size }

func (g *grid) line(row int) string {
	s := make([]rune, g.size.Cols)
	for i := range s {
		if c, ok := g.cells[tabpad.Point{Row: row, Col: i}]; ok {
			s[i] = c
		} else {
			s[i] = ' '
		}
	}
	return string(s)
}

type nopPicker struct{}

func (nopPicker) OpenPath(tabpad.OpenOptions) (string, bool) { return "", false }
func (nopPicker) SavePath(tabpad.SaveOptions) (string, bool) { return "", false }

type nopAlerter struct{}

func (nopAlerter) Error(title, message string) {}

type nopClipboard struct{}

func (nopClipboard) ReadAll() (string, error) { return "", nil }
func (nopClipboard) WriteAll(string) error    { return nil }

func setup() *commander.Commander {
	m := tabs.NewManager(nopPicker{}, nopAlerter{}, nopClipboard{}, tabs.DefaultOptions())
	return commander.NewCommander(m, nil)
}

func TestDrawEmptyWindow(t *testing.T) {
	c := setup()
	g := newGrid(10, 60)
	Draw(g, c)
	if got := g.line(0); !strings.HasPrefix(got, "  File  Edit  Tabs ") {
		t.Errorf("Unexpected menu bar %q", got)
	}
	if got := g.line(2); !strings.Contains(got, "Press Ctrl+N to create one.") {
		t.Errorf("Expected a hint, got %q", got)
	}
	if !g.hidden {
		t.Errorf("The cursor should be hidden without a tab")
	}
	if got := g.line(9); !strings.HasPrefix(got, "F10 menu") {
		t.Errorf("Unexpected message bar %q", got)
	}
}

func TestDrawTabs(t *testing.T) {
	c := setup()
	m := c.Manager()
	m.NewTab()
	m.NewTab()
	m.CurrentTextArea().ReplaceSelection("hello\nworld")
	g := newGrid(10, 60)
	Draw(g, c)
	if got := g.line(1); !strings.HasPrefix(got, " Untitled 1 │ Untitled 2 │") {
		t.Errorf("Unexpected tab strip %q", got)
	}
	if !g.styles[tabpad.Point{Row: 1, Col: 14}].Bold {
		t.Errorf("The active tab should be highlighted")
	}
	if got := g.line(2); !strings.HasPrefix(got, "hello ") {
		t.Errorf("Unexpected first text row %q", got)
	}
	if got := g.line(8); !strings.HasPrefix(got, " Untitled 2 ") || !strings.HasSuffix(got, " Ln 2, Col 6 ") {
		t.Errorf("Unexpected info bar %q", got)
	}
	if g.hidden || g.cursor != (tabpad.Point{Row: 3, Col: 5}) {
		t.Errorf("Unexpected cursor %+v", g.cursor)
	}
}

func TestDrawDropdown(t *testing.T) {
	c := setup()
	c.Manager().NewTab()
	c.OpenMenuAt(0)
	g := newGrid(20, 60)
	Draw(g, c)
	box := c.DropdownRect()
	if got := g.line(box.Origin.Row); !strings.HasPrefix(got[box.Origin.Col:], "┌─") {
		t.Errorf("Expected the top of a box, got %q", got)
	}
	saveAs := g.line(box.Origin.Row + 4)
	if !strings.Contains(saveAs, "Save As…") || !strings.Contains(saveAs, "Ctrl+Shift+S") {
		t.Errorf("Unexpected save as item %q", saveAs)
	}
	if got := g.line(box.Origin.Row + 5); !strings.Contains(got, "├───") {
		t.Errorf("Expected a separator, got %q", got)
	}
	if !g.styles[tabpad.Point{Row: box.Origin.Row + 1, Col: box.Origin.Col + 2}].Reverse {
		t.Errorf("The first item should be highlighted")
	}
	if !g.hidden {
		t.Errorf("The cursor should be hidden while a menu is open")
	}
}

func TestDrawSmallScreen(t *testing.T) {
	c := setup()
	c.Manager().NewTab()
	Draw(newGrid(3, 5), c)
	Draw(newGrid(5, 3), c)
}
