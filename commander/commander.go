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
	"fmt"
	"log"

	"github.com/timburks/tabpad/editor"
	"github.com/timburks/tabpad/tabs"
	tabpad "github.com/timburks/tabpad/types"
)

const wheelRows = 3

// The Commander converts user input into actions on the tab manager.
type Commander struct {
	manager  *tabs.Manager
	keymap   *Keymap
	actions  map[string]func() // action name -> handler
	menus    []Menu
	menuOpen bool        // true while a menu is pulled down
	menu     int         // index of the open menu
	item     int         // index of the highlighted item in the open menu
	size     tabpad.Size // screen size
	message  string      // status message
	running  bool
	debug    bool // debug mode displays information about events (key codes, etc)
}

func NewCommander(m *tabs.Manager, k *Keymap) *Commander {
	if k == nil {
		k = NewKeymap(nil)
	}
	c := &Commander{manager: m, keymap: k, running: true}
	c.actions = map[string]func(){
		ActionNewTab:      func() { m.NewTab() },
		ActionOpenFile:    m.OpenFile,
		ActionSaveFile:    m.SaveFile,
		ActionSaveAsFile:  m.SaveAsFile,
		ActionCloseTab:    m.CloseCurrentTab,
		ActionExit:        c.Quit,
		ActionUndo:        m.Undo,
		ActionRedo:        m.Redo,
		ActionCut:         m.Cut,
		ActionCopy:        m.Copy,
		ActionPaste:       m.Paste,
		ActionSelectAll:   m.SelectAll,
		ActionPreviousTab: m.PreviousTab,
		ActionNextTab:     m.NextTab,
		ActionMenu:        c.ToggleMenu,
	}
	c.menus = newMenus(k)
	return c
}

func (c *Commander) Manager() *tabs.Manager {
	return c.manager
}

func (c *Commander) Keymap() *Keymap {
	return c.keymap
}

func (c *Commander) Menus() []Menu {
	return c.menus
}

// OpenMenu returns the open menu and its highlighted item.
func (c *Commander) OpenMenu() (menu, item int, open bool) {
	return c.menu, c.item, c.menuOpen
}

func (c *Commander) IsRunning() bool {
	return c.running
}

func (c *Commander) Quit() {
	c.running = false
}

func (c *Commander) SetSize(size tabpad.Size) {
	c.size = size
}

func (c *Commander) SetDebug(debug bool) {
	c.debug = debug
}

func (c *Commander) GetMessage() string {
	if c.message != "" {
		return c.message
	}
	return fmt.Sprintf("%s menu  %s new  %s open  %s save  %s exit",
		c.keymap.Label(ActionMenu),
		c.keymap.Label(ActionNewTab),
		c.keymap.Label(ActionOpenFile),
		c.keymap.Label(ActionSaveFile),
		c.keymap.Label(ActionExit))
}

// Perform runs the named action. It returns false for unknown actions.
func (c *Commander) Perform(action string) bool {
	f, ok := c.actions[action]
	if !ok {
		log.Printf("unknown action %q", action)
		return false
	}
	f()
	return true
}

func (c *Commander) ProcessEvent(event *tabpad.Event) error {
	if event == nil {
		return nil
	}
	if c.debug {
		c.message = fmt.Sprintf("event=%+v", event)
	} else {
		c.message = ""
	}
	switch event.Type {
	case tabpad.EventKey:
		return c.ProcessKey(event)
	case tabpad.EventMouse:
		return c.ProcessMouse(event)
	case tabpad.EventResize:
		return c.ProcessResize(event)
	default:
		return nil
	}
}

func (c *Commander) ProcessResize(event *tabpad.Event) error {
	return nil
}

func (c *Commander) ProcessKey(event *tabpad.Event) error {
	if c.menuOpen {
		return c.ProcessKeyMenuMode(event)
	}
	if action, ok := c.keymap.Action(ShortcutName(event)); ok {
		c.Perform(action)
		return nil
	}
	return c.ProcessKeyEditMode(event)
}

// ProcessKeyEditMode sends editing keys to the active text area.
func (c *Commander) ProcessKeyEditMode(event *tabpad.Event) error {
	a := c.manager.CurrentTextArea()
	if a == nil {
		return nil
	}
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case tabpad.KeyEsc:
			a.ClearSelection()
		case tabpad.KeyCtrlSpace:
			a.SetMark()
		case tabpad.KeyPgup:
			a.PageUp()
		case tabpad.KeyPgdn:
			a.PageDown()
		case tabpad.KeyHome:
			a.MoveToBeginningOfLine()
		case tabpad.KeyEnd:
			a.MoveToEndOfLine()
		case tabpad.KeyArrowUp:
			a.MoveCursor(editor.MoveUp)
		case tabpad.KeyArrowDown:
			a.MoveCursor(editor.MoveDown)
		case tabpad.KeyArrowLeft:
			a.MoveCursor(editor.MoveLeft)
		case tabpad.KeyArrowRight:
			a.MoveCursor(editor.MoveRight)
		case tabpad.KeyBackspace:
			a.BackspaceChar()
		case tabpad.KeyDelete:
			a.DeleteChar()
		case tabpad.KeyEnter:
			a.InsertChar('\n')
		case tabpad.KeyTab:
			a.InsertChar('\t')
		case tabpad.KeySpace:
			a.InsertChar(' ')
		}
	}
	if ch != 0 && event.Mod&tabpad.ModAlt == 0 {
		a.InsertChar(ch)
	}
	return nil
}

// menus

func (c *Commander) ToggleMenu() {
	if c.menuOpen {
		c.CloseMenu()
	} else {
		c.OpenMenuAt(0)
	}
}

func (c *Commander) OpenMenuAt(i int) {
	if i < 0 || i >= len(c.menus) {
		return
	}
	c.menuOpen = true
	c.menu = i
	c.item = c.nextItem(-1, 1)
}

func (c *Commander) CloseMenu() {
	c.menuOpen = false
}

// nextItem returns the next item that isn't a separator, searching from i in direction step.
func (c *Commander) nextItem(i, step int) int {
	items := c.menus[c.menu].Items
	for n := 0; n < len(items); n++ {
		i = (i + step + len(items)) % len(items)
		if !items[i].IsSeparator() {
			return i
		}
	}
	return 0
}

func (c *Commander) choose(item int) {
	action := c.menus[c.menu].Items[item].Action
	c.CloseMenu()
	if action != "" {
		c.Perform(action)
	}
}

func (c *Commander) ProcessKeyMenuMode(event *tabpad.Event) error {
	switch event.Key {
	case tabpad.KeyEsc:
		c.CloseMenu()
	case tabpad.KeyArrowLeft:
		c.OpenMenuAt((c.menu + len(c.menus) - 1) % len(c.menus))
	case tabpad.KeyArrowRight:
		c.OpenMenuAt((c.menu + 1) % len(c.menus))
	case tabpad.KeyArrowUp:
		c.item = c.nextItem(c.item, -1)
	case tabpad.KeyArrowDown:
		c.item = c.nextItem(c.item, 1)
	case tabpad.KeyEnter:
		c.choose(c.item)
	default:
		// shortcuts still work while a menu is open
		if action, ok := c.keymap.Action(ShortcutName(event)); ok {
			c.CloseMenu()
			if action != ActionMenu {
				c.Perform(action)
			}
		}
	}
	return nil
}

// mouse

func (c *Commander) ProcessMouse(event *tabpad.Event) error {
	if event.Mod&tabpad.ModMotion != 0 {
		return nil
	}
	switch event.Key {
	case tabpad.MouseLeft:
		c.click(event.X, event.Y)
	case tabpad.MouseWheelUp:
		c.scroll(editor.MoveUp)
	case tabpad.MouseWheelDown:
		c.scroll(editor.MoveDown)
	}
	return nil
}

func (c *Commander) scroll(direction int) {
	if a := c.manager.CurrentTextArea(); a != nil {
		for i := 0; i < wheelRows; i++ {
			a.MoveCursor(direction)
		}
	}
}

func (c *Commander) click(x, y int) {
	if c.menuOpen {
		box := c.DropdownRect()
		if box.Contains(x, y) {
			item := y - box.Origin.Row - 1
			items := c.menus[c.menu].Items
			if item >= 0 && item < len(items) && !items[item].IsSeparator() {
				c.choose(item)
			}
			return
		}
		if y != MenuBarRow {
			c.CloseMenu()
			return
		}
	}
	switch {
	case y == MenuBarRow:
		for _, s := range c.MenuSpans() {
			if s.Contains(x) {
				if c.menuOpen && c.menu == s.Index {
					c.CloseMenu()
				} else {
					c.OpenMenuAt(s.Index)
				}
				return
			}
		}
		c.CloseMenu()
	case y == TabStripRow:
		for _, s := range c.TabSpans() {
			if s.Contains(x) {
				c.manager.SelectTab(s.Index)
				return
			}
		}
	default:
		r := c.TextRect()
		if a := c.manager.CurrentTextArea(); a != nil && r.Contains(x, y) {
			a.MoveCursorToView(x-r.Origin.Col, y-r.Origin.Row)
		}
	}
}
