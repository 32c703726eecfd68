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
package tabs

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/timburks/tabpad/editor"
	tabpad "github.com/timburks/tabpad/types"
)

// ErrNotText is returned when a file does not hold UTF-8 text.
var ErrNotText = errors.New("not a UTF-8 text file")

// Options configure new tabs.
type Options struct {
	UntitledPrefix string // titles of new tabs are UntitledPrefix + " " + N
	DefaultExt     string // appended to saved names that have no extension
	TabWidth       int
}

func DefaultOptions() Options {
	return Options{UntitledPrefix: "Untitled", DefaultExt: ".txt", TabWidth: editor.DefaultTabWidth}
}

var fileFilters = []tabpad.FileFilter{tabpad.TextFilter, tabpad.AllFilter}

// The Manager owns the open tabs and the registry of their file paths.
type Manager struct {
	picker    tabpad.Picker
	alerter   tabpad.Alerter
	clipboard tabpad.Clipboard
	options   Options
	tabs      []*Tab
	active    int              // index of the active tab, -1 when there are no tabs
	paths     map[TabID]string // file path of each tab, "" if it has never been saved
	untitled  int              // number of tabs created so far
}

func NewManager(picker tabpad.Picker, alerter tabpad.Alerter, clipboard tabpad.Clipboard, options Options) *Manager {
	defaults := DefaultOptions()
	if options.UntitledPrefix == "" {
		options.UntitledPrefix = defaults.UntitledPrefix
	}
	if options.DefaultExt == "" {
		options.DefaultExt = defaults.DefaultExt
	}
	if options.TabWidth < 1 {
		options.TabWidth = defaults.TabWidth
	}
	return &Manager{
		picker:    picker,
		alerter:   alerter,
		clipboard: clipboard,
		options:   options,
		active:    -1,
		paths:     make(map[TabID]string),
	}
}

// tab list

func (m *Manager) Len() int {
	return len(m.tabs)
}

// Tabs returns the open tabs in display order.
func (m *Manager) Tabs() []*Tab {
	tabs := make([]*Tab, len(m.tabs))
	copy(tabs, m.tabs)
	return tabs
}

// Current returns the active tab or nil if there are no tabs.
func (m *Manager) Current() *Tab {
	if m.active < 0 || m.active >= len(m.tabs) {
		return nil
	}
	return m.tabs[m.active]
}

func (m *Manager) ActiveIndex() int {
	return m.active
}

// CurrentTextArea returns the text area of the active tab or nil if there are no tabs.
func (m *Manager) CurrentTextArea() *editor.TextArea {
	if t := m.Current(); t != nil {
		return t.area
	}
	return nil
}

// Path returns the registered file path of a tab. The path is "" for a tab
// that has never been saved; ok is false for an unknown tab.
func (m *Manager) Path(id TabID) (path string, ok bool) {
	path, ok = m.paths[id]
	return path, ok
}

func (m *Manager) SelectTab(i int) bool {
	if i < 0 || i >= len(m.tabs) {
		return false
	}
	m.active = i
	return true
}

func (m *Manager) NextTab() {
	if len(m.tabs) > 0 {
		m.active = (m.active + 1) % len(m.tabs)
	}
}

func (m *Manager) PreviousTab() {
	if len(m.tabs) > 0 {
		m.active = (m.active + len(m.tabs) - 1) % len(m.tabs)
	}
}

func (m *Manager) addTab(path string) *Tab {
	m.untitled++
	t := &Tab{
		id:    newTabID(),
		title: fmt.Sprintf("%s %d", m.options.UntitledPrefix, m.untitled),
		area:  editor.NewTextArea(m.options.TabWidth),
	}
	if path != "" {
		t.title = filepath.Base(path)
	}
	m.tabs = append(m.tabs, t)
	m.paths[t.id] = path
	m.active = len(m.tabs) - 1
	return t
}

// NewTab creates an empty untitled tab and makes it active.
func (m *Manager) NewTab() *Tab {
	t := m.addTab("")
	log.Printf("new tab %s %q", t.id, t.title)
	return t
}

// CloseCurrentTab closes the active tab without asking to save it.
// The tab that followed it becomes active, or the one before it when
// the closed tab was last.
func (m *Manager) CloseCurrentTab() {
	t := m.Current()
	if t == nil {
		return
	}
	delete(m.paths, t.id)
	m.tabs = append(m.tabs[0:m.active], m.tabs[m.active+1:]...)
	if m.active >= len(m.tabs) {
		m.active = len(m.tabs) - 1
	}
	log.Printf("closed tab %s %q", t.id, t.title)
}

// files

// OpenFile asks for a file and opens it in a new tab.
func (m *Manager) OpenFile() {
	path, ok := m.picker.OpenPath(tabpad.OpenOptions{Title: "Open", Filters: fileFilters})
	if !ok {
		return
	}
	m.OpenPath(path)
}

// OpenPath opens a file in a new tab. If the file can't be read, an error
// is shown, no tab is created and OpenPath returns nil.
func (m *Manager) OpenPath(path string) *Tab {
	path, b, err := readFile(path)
	if err != nil {
		log.Printf("%+v", err)
		m.alerter.Error("Error", fmt.Sprintf("Could not open file:\n%s", err))
		return nil
	}
	t := m.addTab(path)
	t.area.LoadBytes(b)
	log.Printf("opened %s in tab %s", path, t.id)
	return t
}

// SaveFile writes the active tab to its file. A tab without a file, or
// whose file has been removed, is saved with SaveAsFile.
func (m *Manager) SaveFile() {
	t := m.Current()
	if t == nil {
		return
	}
	path := m.paths[t.id]
	if path == "" {
		m.SaveAsFile()
		return
	}
	if _, err := os.Stat(path); err != nil {
		m.SaveAsFile()
		return
	}
	m.save(t, path)
}

// SaveAsFile asks for a file name and writes the active tab to it.
func (m *Manager) SaveAsFile() {
	t := m.Current()
	if t == nil {
		return
	}
	initial := t.title
	if filepath.Ext(initial) == "" {
		initial += m.options.DefaultExt
	}
	path, ok := m.picker.SavePath(tabpad.SaveOptions{
		Title:       "Save As",
		DefaultExt:  m.options.DefaultExt,
		InitialName: initial,
		Filters:     fileFilters,
	})
	if !ok || path == "" {
		return
	}
	if filepath.Ext(path) == "" {
		path += m.options.DefaultExt
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	if m.save(t, path) {
		m.paths[t.id] = path
		t.title = filepath.Base(path)
	}
}

func (m *Manager) save(t *Tab, path string) bool {
	if err := writeFile(path, t.area.Bytes()); err != nil {
		log.Printf("%+v", err)
		m.alerter.Error("Error", fmt.Sprintf("Could not save file:\n%s", err))
		return false
	}
	log.Printf("saved tab %s to %s", t.id, path)
	return true
}

// readFile reads a text file and returns its absolute path and contents.
func readFile(path string) (string, []byte, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil, fmt.Errorf("%s: %w", path, err)
	}
	b, err := os.ReadFile(abs)
	if err != nil {
		return abs, nil, fmt.Errorf("reading %s: %w", abs, err)
	}
	if !utf8.Valid(b) {
		return abs, nil, fmt.Errorf("%s: %w", abs, ErrNotText)
	}
	return abs, b, nil
}

func writeFile(path string, b []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if _, err := f.Write(b); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// editing

func (m *Manager) Undo() {
	if a := m.CurrentTextArea(); a != nil && a.CanUndo() {
		a.Undo()
	}
}

func (m *Manager) Redo() {
	if a := m.CurrentTextArea(); a != nil && a.CanRedo() {
		a.Redo()
	}
}

// Cut moves the selection to the clipboard.
func (m *Manager) Cut() {
	a := m.CurrentTextArea()
	if a == nil || !a.HasSelection() {
		return
	}
	if !m.copySelection(a) {
		return
	}
	a.DeleteSelection()
}

// Copy puts the selection on the clipboard.
func (m *Manager) Copy() {
	a := m.CurrentTextArea()
	if a == nil || !a.HasSelection() {
		return
	}
	m.copySelection(a)
}

func (m *Manager) copySelection(a *editor.TextArea) bool {
	if err := m.clipboard.WriteAll(a.SelectedText()); err != nil {
		log.Printf("clipboard write failed: %+v", err)
		m.alerter.Error("Error", fmt.Sprintf("Could not use the clipboard:\n%s", err))
		return false
	}
	return true
}

// Paste replaces the selection with the clipboard text.
func (m *Manager) Paste() {
	a := m.CurrentTextArea()
	if a == nil {
		return
	}
	text, err := m.clipboard.ReadAll()
	if err != nil {
		log.Printf("clipboard read failed: %+v", err)
		return
	}
	if text == "" {
		return
	}
	a.ReplaceSelection(text)
}

// SelectAll selects all text in the active tab.
func (m *Manager) SelectAll() {
	if a := m.CurrentTextArea(); a != nil {
		a.SelectAll()
	}
}
