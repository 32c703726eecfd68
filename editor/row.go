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
package editor

import (
	"github.com/mattn/go-runewidth"
)

// A row of text in the editor.
// Tabs and carriage returns are kept as they were read; they only change
// how the row is displayed.
type Row struct {
	Text []rune
}

func NewRow(text string) *Row {
	return &Row{Text: []rune(text)}
}

func (r *Row) String() string {
	return string(r.Text)
}

func (r *Row) Length() int {
	return len(r.Text)
}

func (r *Row) clamp(col int) int {
	if col < 0 {
		return 0
	}
	if col > len(r.Text) {
		return len(r.Text)
	}
	return col
}

// inserts text at col
func (r *Row) InsertText(col int, text []rune) {
	col = r.clamp(col)
	line := make([]rune, 0, len(r.Text)+len(text))
	line = append(line, r.Text[0:col]...)
	line = append(line, text...)
	line = append(line, r.Text[col:]...)
	r.Text = line
}

// deletes the characters in [from, to) and returns them
func (r *Row) DeleteRange(from, to int) string {
	from, to = r.clamp(from), r.clamp(to)
	if from >= to {
		return ""
	}
	deleted := string(r.Text[from:to])
	r.Text = append(r.Text[0:from:from], r.Text[to:]...)
	return deleted
}

// splits row at col, return a new row containing the remaining text.
func (r *Row) Split(col int) *Row {
	col = r.clamp(col)
	after := NewRow(string(r.Text[col:]))
	r.Text = r.Text[0:col:col]
	return after
}

// joins rows by appending the passed-in row to the current row
func (r *Row) Join(other *Row) {
	r.Text = append(r.Text, other.Text...)
}

// returns the text after a specified column
func (r *Row) TextAfter(col int) string {
	if col < len(r.Text) && col >= 0 {
		return string(r.Text[col:])
	}
	return ""
}

// DisplayColumn returns the screen column where the character at col starts.
func (r *Row) DisplayColumn(col int, tabWidth int) int {
	col = r.clamp(col)
	x := 0
	for _, c := range r.Text[0:col] {
		x += cellWidth(c, x, tabWidth)
	}
	return x
}

// ColumnForDisplay returns the character index that covers screen column x.
func (r *Row) ColumnForDisplay(x int, tabWidth int) int {
	rx := 0
	for i, c := range r.Text {
		w := cellWidth(c, rx, tabWidth)
		if x < rx+w {
			return i
		}
		rx += w
	}
	return len(r.Text)
}

// number of screen cells used by c when it starts at screen column x
func cellWidth(c rune, x int, tabWidth int) int {
	if c == '\t' {
		if tabWidth < 1 {
			tabWidth = 1
		}
		return tabWidth - x%tabWidth
	}
	if w := runewidth.RuneWidth(c); w > 0 {
		return w
	}
	// control characters are shown as a single placeholder cell
	return 1
}
