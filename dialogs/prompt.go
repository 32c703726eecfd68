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
package dialogs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/timburks/tabpad/screen"
	tabpad "github.com/timburks/tabpad/types"
)

const maxDialogWidth = 72

var (
	titleStyle = tabpad.Style{Bold: true}
	fieldStyle = tabpad.Style{Fg: tabpad.ColorBlack, Bg: tabpad.ColorWhite}
	noteStyle  = tabpad.Style{Fg: tabpad.ColorCyan}
)

// Prompt shows modal dialogs on a terminal. Each dialog runs its own event
// loop and returns when it is answered.
type Prompt struct {
	terminal   tabpad.Terminal
	background func(d tabpad.Display) // draws the window behind the dialogs
}

func NewPrompt(t tabpad.Terminal) *Prompt {
	return &Prompt{terminal: t}
}

// SetBackground sets the function that draws the window behind the dialogs.
func (p *Prompt) SetBackground(draw func(d tabpad.Display)) {
	p.background = draw
}

func (p *Prompt) redraw(draw func(d tabpad.Display)) {
	p.terminal.Clear()
	if p.background != nil {
		p.background(p.terminal)
	}
	draw(p.terminal)
	p.terminal.Flush()
}

// dialogRect centers a box of the given height on the terminal.
func (p *Prompt) dialogRect(width, height int) tabpad.Rect {
	size := p.terminal.Size()
	width = min(width, size.Cols-2)
	height = min(height, size.Rows)
	return tabpad.Rect{
		Origin: tabpad.Point{Row: max(0, (size.Rows-height)/2), Col: max(0, (size.Cols-width)/2)},
		Size:   tabpad.Size{Rows: height, Cols: width},
	}
}

func (p *Prompt) OpenPath(options tabpad.OpenOptions) (string, bool) {
	return p.askPath(options.Title, "", options.Filters)
}

func (p *Prompt) SavePath(options tabpad.SaveOptions) (string, bool) {
	return p.askPath(options.Title, options.InitialName, options.Filters)
}

func (p *Prompt) askPath(title, initial string, filters []tabpad.FileFilter) (string, bool) {
	if len(filters) == 0 {
		filters = []tabpad.FileFilter{tabpad.AllFilter}
	}
	f := &fileDialog{title: title, filters: filters}
	f.field.set(initial)
	for {
		p.redraw(func(d tabpad.Display) { f.render(d, p.dialogRect(maxDialogWidth, 8)) })
		event := p.terminal.GetNextEvent()
		if event == nil {
			return "", false
		}
		if event.Type != tabpad.EventKey {
			continue
		}
		f.message = ""
		switch event.Key {
		case tabpad.KeyEsc:
			return "", false
		case tabpad.KeyEnter:
			path := ExpandHome(strings.TrimSpace(f.field.String()))
			if path == "" {
				f.message = "Enter a file name."
				continue
			}
			return path, true
		case tabpad.KeyTab:
			f.complete()
		case tabpad.KeyF2:
			f.filter = (f.filter + 1) % len(f.filters)
		default:
			f.field.edit(event)
		}
	}
}

// Error shows a message until it is dismissed with Enter, Esc, Space or a click.
func (p *Prompt) Error(title, message string) {
	lines := strings.Split(message, "\n")
	width := runewidth.StringWidth(title)
	for _, line := range lines {
		width = max(width, runewidth.StringWidth(line))
	}
	for {
		p.redraw(func(d tabpad.Display) {
			r := p.dialogRect(width+6, len(lines)+5)
			screen.DrawBox(d, r, tabpad.Style{})
			inner := r.Size.Cols - 4
			screen.DrawText(d, r.Origin.Col+2, r.Origin.Row+1, title, titleStyle, inner)
			for i, line := range lines {
				screen.DrawText(d, r.Origin.Col+2, r.Origin.Row+2+i, line, tabpad.Style{}, inner)
			}
			screen.DrawText(d, r.Origin.Col+2, r.Origin.Row+r.Size.Rows-2, "Press Enter", noteStyle, inner)
			d.HideCursor()
		})
		event := p.terminal.GetNextEvent()
		if event == nil {
			return
		}
		switch event.Type {
		case tabpad.EventKey:
			switch event.Key {
			case tabpad.KeyEnter, tabpad.KeyEsc, tabpad.KeySpace:
				return
			}
		case tabpad.EventMouse:
			if event.Key == tabpad.MouseLeft {
				return
			}
		}
	}
}

type fileDialog struct {
	title   string
	field   field
	filters []tabpad.FileFilter
	filter  int    // index of the selected filter
	message string // completions or a warning
}

func (f *fileDialog) complete() {
	completed, names := Complete(f.field.String(), f.filters[f.filter])
	f.field.set(completed)
	switch len(names) {
	case 0:
		f.message = "No matching files."
	case 1:
	default:
		f.message = strings.Join(names, "  ")
	}
}

func (f *fileDialog) render(d tabpad.Display, r tabpad.Rect) {
	screen.DrawBox(d, r, tabpad.Style{})
	left := r.Origin.Col + 2
	inner := r.Size.Cols - 4
	row := r.Origin.Row + 1
	screen.DrawText(d, left, row, f.title, titleStyle, inner)

	label := "File: "
	w := screen.DrawText(d, left, row+2, label, tabpad.Style{}, inner)
	fieldWidth := inner - w
	if fieldWidth > 0 {
		screen.Fill(d, left+w, row+2, fieldWidth, fieldStyle)
		text, cursor := f.field.visible(fieldWidth)
		screen.DrawText(d, left+w, row+2, text, fieldStyle, fieldWidth)
		d.SetCursor(tabpad.Point{Row: row + 2, Col: left + w + cursor})
	}

	filter := f.filters[f.filter]
	screen.DrawText(d, left, row+3, fmt.Sprintf("Type: %s (%s)", filter.Description, strings.Join(filter.Patterns, ";")), tabpad.Style{}, inner)
	screen.DrawText(d, left, row+4, f.message, noteStyle, inner)
	screen.DrawText(d, left, row+5, "Enter OK  Esc cancel  Tab complete  F2 file type", noteStyle, inner)
}

// A field is a one-line text input.
type field struct {
	text   []rune
	cursor int
}

func (f *field) String() string {
	return string(f.text)
}

func (f *field) set(s string) {
	f.text = []rune(s)
	f.cursor = len(f.text)
}

func (f *field) edit(event *tabpad.Event) {
	switch event.Key {
	case tabpad.KeyBackspace:
		if f.cursor > 0 {
			f.text = append(f.text[0:f.cursor-1], f.text[f.cursor:]...)
			f.cursor--
		}
	case tabpad.KeyDelete:
		if f.cursor < len(f.text) {
			f.text = append(f.text[0:f.cursor], f.text[f.cursor+1:]...)
		}
	case tabpad.KeyArrowLeft:
		if f.cursor > 0 {
			f.cursor--
		}
	case tabpad.KeyArrowRight:
		if f.cursor < len(f.text) {
			f.cursor++
		}
	case tabpad.KeyHome, tabpad.KeyCtrlA:
		f.cursor = 0
	case tabpad.KeyEnd, tabpad.KeyCtrlE:
		f.cursor = len(f.text)
	case tabpad.KeyCtrlU:
		f.text = f.text[f.cursor:]
		f.cursor = 0
	case tabpad.KeySpace:
		f.insert(' ')
	}
	if event.Key == 0 && event.Ch != 0 && event.Mod&tabpad.ModAlt == 0 {
		f.insert(event.Ch)
	}
}

func (f *field) insert(c rune) {
	text := make([]rune, 0, len(f.text)+1)
	text = append(text, f.text[0:f.cursor]...)
	text = append(text, c)
	text = append(text, f.text[f.cursor:]...)
	f.text = text
	f.cursor++
}

// visible returns the part of the text that fits in width cells with the
// cursor in view, and the cursor's cell offset in it.
func (f *field) visible(width int) (string, int) {
	start := 0
	for start < f.cursor && runewidth.StringWidth(string(f.text[start:f.cursor])) >= width {
		start++
	}
	return string(f.text[start:]), runewidth.StringWidth(string(f.text[start:f.cursor]))
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return home + path[1:]
}

// Complete extends a partial path to the longest prefix shared by the
// directories and filter-matching files that start with it. It returns the
// extended path and the matching names; names of directories end with a
// separator.
func Complete(input string, filter tabpad.FileFilter) (string, []string) {
	path := ExpandHome(input)
	dir, base := filepath.Split(path)
	searched := dir
	if searched == "" {
		searched = "."
	}
	entries, err := os.ReadDir(searched)
	if err != nil {
		return path, nil
	}
	var names []string
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, base) {
			continue
		}
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(base, ".") {
			continue
		}
		if e.IsDir() {
			names = append(names, name+string(filepath.Separator))
		} else if Matches(filter, name) {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return path, nil
	}
	prefix := []rune(names[0])
	for _, name := range names[1:] {
		r := []rune(name)
		n := 0
		for n < len(prefix) && n < len(r) && prefix[n] == r[n] {
			n++
		}
		prefix = prefix[0:n]
	}
	return dir + string(prefix), names
}

// Matches reports whether a file name matches one of a filter's patterns.
func Matches(filter tabpad.FileFilter, name string) bool {
	if len(filter.Patterns) == 0 {
		return true
	}
	for _, pattern := range filter.Patterns {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	return false
}
