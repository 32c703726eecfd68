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
	"log"
	"sort"
	"strings"

	tabpad "github.com/timburks/tabpad/types"
)

// Action names
const (
	ActionNewTab      = "new-tab"
	ActionOpenFile    = "open-file"
	ActionSaveFile    = "save-file"
	ActionSaveAsFile  = "save-as-file"
	ActionCloseTab    = "close-tab"
	ActionExit        = "exit"
	ActionUndo        = "undo"
	ActionRedo        = "redo"
	ActionCut         = "cut"
	ActionCopy        = "copy"
	ActionPaste       = "paste"
	ActionSelectAll   = "select-all"
	ActionPreviousTab = "previous-tab"
	ActionNextTab     = "next-tab"
	ActionMenu        = "menu"
)

// DefaultBindings maps each action to its shortcuts. The first shortcut is
// the one shown in menus.
func DefaultBindings() map[string][]string {
	return map[string][]string{
		ActionNewTab:      {"ctrl+n"},
		ActionOpenFile:    {"ctrl+o"},
		ActionSaveFile:    {"ctrl+s"},
		ActionSaveAsFile:  {"ctrl+shift+s", "f12"},
		ActionCloseTab:    {"ctrl+w"},
		ActionExit:        {"ctrl+q"},
		ActionUndo:        {"ctrl+z"},
		ActionRedo:        {"ctrl+y"},
		ActionCut:         {"ctrl+x"},
		ActionCopy:        {"ctrl+c"},
		ActionPaste:       {"ctrl+v"},
		ActionSelectAll:   {"ctrl+a"},
		ActionPreviousTab: {"f5"},
		ActionNextTab:     {"f6"},
		ActionMenu:        {"f10"},
	}
}

// A Keymap resolves shortcut names like "ctrl+s" to action names.
type Keymap struct {
	bindings  map[string][]string // action -> shortcuts
	shortcuts map[string]string   // shortcut -> action
}

// NewKeymap builds a keymap from the default bindings. Each entry of
// overrides replaces all shortcuts of one action.
func NewKeymap(overrides map[string][]string) *Keymap {
	bindings := DefaultBindings()
	for action, shortcuts := range overrides {
		if _, ok := bindings[action]; !ok {
			log.Printf("ignoring shortcuts for unknown action %q", action)
			continue
		}
		normalized := make([]string, 0, len(shortcuts))
		for _, s := range shortcuts {
			if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
				normalized = append(normalized, s)
			}
		}
		bindings[action] = normalized
	}
	k := &Keymap{bindings: bindings, shortcuts: make(map[string]string)}
	// sorted so that a shortcut claimed by two actions always resolves the same way
	actions := make([]string, 0, len(bindings))
	for action := range bindings {
		actions = append(actions, action)
	}
	sort.Strings(actions)
	for _, action := range actions {
		for _, s := range bindings[action] {
			if previous, ok := k.shortcuts[s]; ok {
				log.Printf("shortcut %q is bound to %q and %q", s, previous, action)
				continue
			}
			k.shortcuts[s] = action
		}
	}
	return k
}

// Action returns the action bound to a shortcut.
func (k *Keymap) Action(shortcut string) (string, bool) {
	action, ok := k.shortcuts[shortcut]
	return action, ok
}

// Shortcuts returns the shortcuts bound to an action.
func (k *Keymap) Shortcuts(action string) []string {
	return k.bindings[action]
}

// Label returns the menu label of an action's first shortcut, such as "Ctrl+Shift+S".
func (k *Keymap) Label(action string) string {
	shortcuts := k.bindings[action]
	if len(shortcuts) == 0 {
		return ""
	}
	parts := strings.Split(shortcuts[0], "+")
	for i, part := range parts {
		if len(part) > 0 {
			parts[i] = strings.ToUpper(part[0:1]) + part[1:]
		}
	}
	return strings.Join(parts, "+")
}

var keyNames = map[tabpad.Key]string{
	tabpad.KeyF1:        "f1",
	tabpad.KeyF2:        "f2",
	tabpad.KeyF3:        "f3",
	tabpad.KeyF4:        "f4",
	tabpad.KeyF5:        "f5",
	tabpad.KeyF6:        "f6",
	tabpad.KeyF7:        "f7",
	tabpad.KeyF8:        "f8",
	tabpad.KeyF9:        "f9",
	tabpad.KeyF10:       "f10",
	tabpad.KeyF11:       "f11",
	tabpad.KeyF12:       "f12",
	tabpad.KeyInsert:    "insert",
	tabpad.KeyCtrlSpace: "ctrl+space",
	tabpad.KeyCtrlA:     "ctrl+a",
	tabpad.KeyCtrlB:     "ctrl+b",
	tabpad.KeyCtrlC:     "ctrl+c",
	tabpad.KeyCtrlD:     "ctrl+d",
	tabpad.KeyCtrlE:     "ctrl+e",
	tabpad.KeyCtrlF:     "ctrl+f",
	tabpad.KeyCtrlG:     "ctrl+g",
	tabpad.KeyCtrlK:     "ctrl+k",
	tabpad.KeyCtrlL:     "ctrl+l",
	tabpad.KeyCtrlN:     "ctrl+n",
	tabpad.KeyCtrlO:     "ctrl+o",
	tabpad.KeyCtrlP:     "ctrl+p",
	tabpad.KeyCtrlQ:     "ctrl+q",
	tabpad.KeyCtrlR:     "ctrl+r",
	tabpad.KeyCtrlS:     "ctrl+s",
	tabpad.KeyCtrlT:     "ctrl+t",
	tabpad.KeyCtrlU:     "ctrl+u",
	tabpad.KeyCtrlV:     "ctrl+v",
	tabpad.KeyCtrlW:     "ctrl+w",
	tabpad.KeyCtrlX:     "ctrl+x",
	tabpad.KeyCtrlY:     "ctrl+y",
	tabpad.KeyCtrlZ:     "ctrl+z",
}

// ShortcutName names the shortcut of a key event, or returns "" for keys
// that only edit text.
func ShortcutName(event *tabpad.Event) string {
	name := ""
	if event.Key != 0 {
		name = keyNames[event.Key]
	} else if event.Ch != 0 && event.Mod&tabpad.ModAlt != 0 {
		name = string(event.Ch)
	}
	if name == "" {
		return ""
	}
	if event.Mod&tabpad.ModAlt != 0 {
		name = "alt+" + name
	}
	return name
}
