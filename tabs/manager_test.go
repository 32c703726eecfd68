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
	"os"
	"path/filepath"
	"testing"

	"github.com/timburks/tabpad/editor"
	tabpad "github.com/timburks/tabpad/types"
)

type fakePicker struct {
	open     string
	save     string
	cancel   bool
	requests []tabpad.SaveOptions
}

func (p *fakePicker) OpenPath(options tabpad.OpenOptions) (string, bool) {
	return p.open, !p.cancel
}

func (p *fakePicker) SavePath(options tabpad.SaveOptions) (string, bool) {
	p.requests = append(p.requests, options)
	return p.save, !p.cancel
}

type fakeAlerter struct {
	messages []string
}

func (a *fakeAlerter) Error(title, message string) {
	a.messages = append(a.messages, message)
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) ReadAll() (string, error) { return c.text, c.err }

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

func setup() (*Manager, *fakePicker, *fakeAlerter, *fakeClipboard) {
	p := &fakePicker{}
	a := &fakeAlerter{}
	c := &fakeClipboard{}
	return NewManager(p, a, c, DefaultOptions()), p, a, c
}

func writeTestFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Write failed: %+v", err)
	}
	return path
}

func readTestFile(t *testing.T, path string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Read failed: %+v", err)
	}
	return string(b)
}

func TestNewTabs(t *testing.T) {
	m, _, _, _ := setup()
	ids := map[TabID]bool{}
	for i := 1; i <= 3; i++ {
		tab := m.NewTab()
		if want := "Untitled " + string(rune('0'+i)); tab.Title() != want {
			t.Errorf("Expected title %q, got %q", want, tab.Title())
		}
		if m.Current() != tab {
			t.Errorf("A new tab should be active")
		}
		ids[tab.ID()] = true
	}
	if len(ids) != 3 || len(m.paths) != 3 {
		t.Fatalf("Expected 3 distinct registry entries, got %d ids and %d entries", len(ids), len(m.paths))
	}
	for id := range ids {
		if path, ok := m.Path(id); !ok || path != "" {
			t.Errorf("New tab %s should be registered without a path, got %q %v", id, path, ok)
		}
	}
}

func TestOpenPath(t *testing.T) {
	m, p, a, _ := setup()
	p.open = writeTestFile(t, "report.txt", "hello")
	m.OpenFile()
	if len(a.messages) != 0 {
		t.Fatalf("Unexpected error: %v", a.messages)
	}
	tab := m.Current()
	if tab == nil || m.Len() != 1 {
		t.Fatalf("Opening a file should create a tab")
	}
	if tab.Title() != "report.txt" {
		t.Errorf("Unexpected title %q", tab.Title())
	}
	if got := m.CurrentTextArea().Text(); got != "hello" {
		t.Errorf("Unexpected content %q", got)
	}
	if path, _ := m.Path(tab.ID()); path != p.open || !filepath.IsAbs(path) {
		t.Errorf("Registry should hold the absolute path, got %q", path)
	}
	if m.CurrentTextArea().CanUndo() {
		t.Errorf("Opening a file should not be undoable")
	}
	if next := m.NewTab(); next.Title() != "Untitled 2" {
		t.Errorf("Opening a file should advance the untitled counter, got %q", next.Title())
	}
}

func TestOpenFailures(t *testing.T) {
	m, p, a, _ := setup()
	m.NewTab()
	p.open = filepath.Join(t.TempDir(), "missing.txt")
	m.OpenFile()
	if m.Len() != 1 {
		t.Errorf("A failed open should not create a tab")
	}
	if len(a.messages) != 1 {
		t.Errorf("A failed open should show one error, got %d", len(a.messages))
	}

	binary := writeTestFile(t, "image.txt", "\xff\xfe\x00")
	if m.OpenPath(binary) != nil {
		t.Errorf("Opening a binary file should fail")
	}
	if _, _, err := readFile(binary); !errors.Is(err, ErrNotText) {
		t.Errorf("Expected ErrNotText, got %v", err)
	}
	if m.Len() != 1 || len(a.messages) != 2 {
		t.Errorf("Binary open: %d tabs, %d errors", m.Len(), len(a.messages))
	}

	p.cancel = true
	m.OpenFile()
	if m.Len() != 1 || len(a.messages) != 2 {
		t.Errorf("A cancelled open should do nothing")
	}
}

func TestSaveWithoutPathSavesAs(t *testing.T) {
	m, p, a, _ := setup()
	tab := m.NewTab()
	m.CurrentTextArea().ReplaceSelection("line one\nline two\n")
	p.save = filepath.Join(t.TempDir(), "notes.txt")
	m.SaveFile()
	if len(p.requests) != 1 {
		t.Fatalf("Saving an untitled tab should ask for a path")
	}
	if p.requests[0].InitialName != "Untitled 1.txt" || p.requests[0].DefaultExt != ".txt" {
		t.Errorf("Unexpected save options %+v", p.requests[0])
	}
	if path, _ := m.Path(tab.ID()); path != p.save {
		t.Errorf("Registry should record the saved path, got %q", path)
	}
	if got := readTestFile(t, p.save); got != "line one\nline two\n" {
		t.Errorf("Unexpected file content %q", got)
	}
	if tab.Title() != "notes.txt" {
		t.Errorf("Title should follow the saved file, got %q", tab.Title())
	}

	// a second save goes straight to the file
	m.CurrentTextArea().ReplaceSelection("more\n")
	m.SaveFile()
	if len(p.requests) != 1 {
		t.Errorf("Saving a tab with a path should not ask again")
	}
	if got := readTestFile(t, p.save); got != "line one\nline two\nmore\n" {
		t.Errorf("Unexpected file content after second save %q", got)
	}
	if len(a.messages) != 0 {
		t.Errorf("Unexpected errors %v", a.messages)
	}
}

func TestSaveThenOpenRoundTrip(t *testing.T) {
	m, p, _, _ := setup()
	content := "tabs\tand\r\nunicode 日本語 without a final newline"
	m.NewTab()
	m.CurrentTextArea().LoadBytes([]byte(content))
	p.save = filepath.Join(t.TempDir(), "round.txt")
	m.SaveAsFile()
	tab := m.OpenPath(p.save)
	if tab == nil {
		t.Fatalf("Open failed")
	}
	if got := tab.TextArea().Text(); got != content {
		t.Errorf("Round trip changed the content: %q", got)
	}
}

func TestSaveAsAddsExtension(t *testing.T) {
	m, p, _, _ := setup()
	m.NewTab()
	m.CurrentTextArea().ReplaceSelection("x")
	p.save = filepath.Join(t.TempDir(), "draft")
	m.SaveAsFile()
	if got := readTestFile(t, p.save+".txt"); got != "x" {
		t.Errorf("Unexpected content %q", got)
	}
	if path, _ := m.Path(m.Current().ID()); path != p.save+".txt" {
		t.Errorf("Unexpected registry path %q", path)
	}
}

func TestSaveAfterFileRemoved(t *testing.T) {
	m, p, _, _ := setup()
	path := writeTestFile(t, "gone.txt", "old")
	m.OpenPath(path)
	os.Remove(path)
	p.save = filepath.Join(filepath.Dir(path), "new.txt")
	m.SaveFile()
	if len(p.requests) != 1 {
		t.Errorf("Saving over a removed file should ask for a path")
	}
	if got := readTestFile(t, p.save); got != "old" {
		t.Errorf("Unexpected content %q", got)
	}
}

func TestSaveFailure(t *testing.T) {
	m, p, a, _ := setup()
	tab := m.NewTab()
	m.CurrentTextArea().ReplaceSelection("keep")
	p.save = filepath.Join(t.TempDir(), "missing", "dir", "file.txt")
	m.SaveAsFile()
	if len(a.messages) != 1 {
		t.Errorf("A failed save should show an error")
	}
	if path, _ := m.Path(tab.ID()); path != "" {
		t.Errorf("A failed save should not record a path, got %q", path)
	}
	if tab.Title() != "Untitled 1" {
		t.Errorf("A failed save should keep the title, got %q", tab.Title())
	}
	if got := m.CurrentTextArea().Text(); got != "keep" {
		t.Errorf("A failed save should not change the buffer, got %q", got)
	}
}

func TestCloseTabs(t *testing.T) {
	m, _, _, _ := setup()
	first := m.NewTab()
	second := m.NewTab()
	third := m.NewTab()
	m.SelectTab(1)
	m.CloseCurrentTab()
	if _, ok := m.Path(second.ID()); ok {
		t.Errorf("Closing a tab should remove its registry entry")
	}
	if m.Current() != third || m.ActiveIndex() != 1 {
		t.Errorf("Closing a tab should activate the tab that followed it")
	}
	m.CloseCurrentTab()
	if m.Current() != first {
		t.Errorf("Closing the last tab should activate the tab before it")
	}
	m.CloseCurrentTab()
	if m.Len() != 0 || len(m.paths) != 0 || m.Current() != nil || m.CurrentTextArea() != nil {
		t.Fatalf("Closing every tab should leave nothing behind")
	}

	// with no tabs, actions do nothing
	m.CloseCurrentTab()
	m.SaveFile()
	m.SaveAsFile()
	m.Undo()
	m.Redo()
	m.Cut()
	m.Copy()
	m.Paste()
	m.SelectAll()
	m.NextTab()
	m.PreviousTab()
	if m.Len() != 0 {
		t.Errorf("Actions with no tabs should be no-ops")
	}
}

func TestCloseMiddleTab(t *testing.T) {
	m, _, _, _ := setup()
	m.NewTab()
	m.NewTab()
	m.NewTab()
	m.SelectTab(1)
	m.CloseCurrentTab()
	if m.Len() != 2 {
		t.Fatalf("Unexpected tab count: %d", m.Len())
	}
	if title := m.Current().Title(); title != "Untitled 3" {
		t.Errorf("Expected Untitled 3 to be active, got %q", title)
	}
	m.SelectTab(0)
	m.CloseCurrentTab()
	if title := m.Current().Title(); title != "Untitled 3" {
		t.Errorf("Closing the first tab should activate the new first tab, got %q", title)
	}
}

func TestUndoRedo(t *testing.T) {
	m, _, _, _ := setup()
	m.NewTab()
	m.Undo()
	m.Redo()
	a := m.CurrentTextArea()
	if a.Text() != "" {
		t.Errorf("Undo on a fresh tab should change nothing")
	}
	for _, c := range "abc" {
		a.InsertChar(c)
	}
	m.Undo()
	if a.Text() != "" {
		t.Errorf("Undo should remove the typed run, got %q", a.Text())
	}
	m.Redo()
	if a.Text() != "abc" {
		t.Errorf("Redo should restore the typed run, got %q", a.Text())
	}
}

func TestClipboard(t *testing.T) {
	m, _, _, c := setup()
	m.NewTab()
	a := m.CurrentTextArea()
	a.LoadBytes([]byte("hello world"))

	c.text = "unchanged"
	m.Copy()
	m.Cut()
	if c.text != "unchanged" || a.Text() != "hello world" {
		t.Errorf("Cut and copy without a selection should do nothing")
	}

	a.SetMark()
	for i := 0; i < 5; i++ {
		a.MoveCursor(editor.MoveRight)
	}
	m.Copy()
	if c.text != "hello" {
		t.Errorf("Copy should put the selection on the clipboard, got %q", c.text)
	}
	m.Cut()
	if a.Text() != " world" {
		t.Errorf("Cut should remove the selection, got %q", a.Text())
	}
	a.SetCursor(a.GetBuffer().End())
	m.Paste()
	if a.Text() != " worldhello" {
		t.Errorf("Paste should insert the clipboard text, got %q", a.Text())
	}

	c.text = ""
	m.Paste()
	if a.Text() != " worldhello" {
		t.Errorf("Pasting an empty clipboard should do nothing")
	}

	m.SelectAll()
	c.text = "replaced"
	m.Paste()
	if a.Text() != "replaced" {
		t.Errorf("Paste should replace the selection, got %q", a.Text())
	}
	m.Undo()
	if a.Text() != " worldhello" {
		t.Errorf("Paste should undo as one step, got %q", a.Text())
	}
}

func TestClipboardFailure(t *testing.T) {
	m, _, alerts, c := setup()
	m.NewTab()
	a := m.CurrentTextArea()
	a.LoadBytes([]byte("text"))
	a.SelectAll()
	c.err = errors.New("no clipboard")
	m.Cut()
	if a.Text() != "text" {
		t.Errorf("A failed cut should keep the text, got %q", a.Text())
	}
	if len(alerts.messages) != 1 {
		t.Errorf("A failed cut should show an error")
	}
}

func TestSelectAllEmpty(t *testing.T) {
	m, _, _, _ := setup()
	m.NewTab()
	m.SelectAll()
	if m.CurrentTextArea().HasSelection() {
		t.Errorf("Select all on an empty tab should do nothing")
	}
}

func TestTabNavigation(t *testing.T) {
	m, _, _, _ := setup()
	first := m.NewTab()
	m.NewTab()
	third := m.NewTab()
	m.NextTab()
	if m.Current() != first {
		t.Errorf("Next tab should wrap to the first tab")
	}
	m.PreviousTab()
	if m.Current() != third {
		t.Errorf("Previous tab should wrap to the last tab")
	}
	if m.SelectTab(3) || m.ActiveIndex() != 2 {
		t.Errorf("Selecting a missing tab should fail")
	}
}
