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
package commander

import (
	"github.com/mattn/go-runewidth"

	tabpad "github.com/timburks/tabpad/types"
)

// A MenuItem runs an action. An item without an action is a separator.
type MenuItem struct {
	Label    string
	Action   string
	Shortcut string // label of the item's shortcut
}

func (i MenuItem) IsSeparator() bool {
	return i.Action == ""
}

type Menu struct {
	Title string
	Items []MenuItem
}

func newMenus(k *Keymap) []Menu {
	item := func(label, action string) MenuItem {
		return MenuItem{Label: label, Action: action, Shortcut: k.Label(action)}
	}
	separator := MenuItem{}
	return []Menu{
		{Title: "File", Items: []MenuItem{
			item("New", ActionNewTab),
			item("Open…", ActionOpenFile),
			item("Save", ActionSaveFile),
			item("Save As…", ActionSaveAsFile),
			separator,
			item("Close Tab", ActionCloseTab),
			separator,
			item("Exit", ActionExit),
		}},
		{Title: "Edit", Items: []MenuItem{
			item("Undo", ActionUndo),
			item("Redo", ActionRedo),
			separator,
			item("Cut", ActionCut),
			item("Copy", ActionCopy),
			item("Paste", ActionPaste),
			separator,
			item("Select All", ActionSelectAll),
		}},
		{Title: "Tabs", Items: []MenuItem{
			item("Previous Tab", ActionPreviousTab),
			item("Next Tab", ActionNextTab),
		}},
	}
}

// A Span is a labelled range of columns [Start, End) on one screen row.
type Span struct {
	Index int
	Label string
	Start int
	End   int
}

func (s Span) Contains(col int) bool {
	return col >= s.Start && col < s.End
}

// Rows of the window layout
const (
	MenuBarRow  = 0
	TabStripRow = 1
	TextAreaRow = 2
)

// MenuSpans returns the positions of the menu titles in the menu bar.
func (c *Commander) MenuSpans() []Span {
	spans := make([]Span, 0, len(c.menus))
	x := 1
	for i, m := range c.menus {
		label := " " + m.Title + " "
		w := runewidth.StringWidth(label)
		spans = append(spans, Span{Index: i, Label: label, Start: x, End: x + w})
		x += w
	}
	return spans
}

// TabSpans returns the positions of the visible tabs in the tab strip.
// Tabs to the left are scrolled out of view until the active tab fits.
func (c *Commander) TabSpans() []Span {
	tabs := c.manager.Tabs()
	labels := make([]string, len(tabs))
	widths := make([]int, len(tabs))
	for i, t := range tabs {
		labels[i] = " " + t.Title() + " "
		widths[i] = runewidth.StringWidth(labels[i]) + 1 // separator
	}
	first := 0
	active := c.manager.ActiveIndex()
	for first < active {
		used := 0
		for i := first; i <= active; i++ {
			used += widths[i]
		}
		if used <= c.size.Cols {
			break
		}
		first++
	}
	spans := make([]Span, 0, len(tabs))
	x := 0
	for i := first; i < len(tabs) && x < c.size.Cols; i++ {
		w := widths[i] - 1
		spans = append(spans, Span{Index: i, Label: labels[i], Start: x, End: x + w})
		x += widths[i]
	}
	return spans
}

// TextRect returns the area of the screen used by the active text area.
func (c *Commander) TextRect() tabpad.Rect {
	rows := c.size.Rows - TextAreaRow - 2 // info bar and message bar
	if rows < 0 {
		rows = 0
	}
	return tabpad.Rect{
		Origin: tabpad.Point{Row: TextAreaRow, Col: 0},
		Size:   tabpad.Size{Rows: rows, Cols: c.size.Cols},
	}
}

func (c *Commander) InfoBarRow() int {
	return c.size.Rows - 2
}

func (c *Commander) MessageBarRow() int {
	return c.size.Rows - 1
}

// DropdownRect returns the box of the open menu, including its border.
func (c *Commander) DropdownRect() tabpad.Rect {
	if !c.menuOpen {
		return tabpad.Rect{}
	}
	m := c.menus[c.menu]
	labels, shortcuts := 0, 0
	for _, item := range m.Items {
		labels = max(labels, runewidth.StringWidth(item.Label))
		shortcuts = max(shortcuts, runewidth.StringWidth(item.Shortcut))
	}
	return tabpad.Rect{
		Origin: tabpad.Point{Row: MenuBarRow + 1, Col: c.MenuSpans()[c.menu].Start},
		Size:   tabpad.Size{Rows: len(m.Items) + 2, Cols: labels + shortcuts + 6},
	}
}
