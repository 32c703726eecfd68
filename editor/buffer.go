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
	"strings"

	tabpad "github.com/timburks/tabpad/types"
)

// A Buffer holds the text of a document as rows split on '\n'.
// A buffer always has at least one row, so Bytes(LoadBytes(b)) == b.
type Buffer struct {
	rows []*Row
}

func NewBuffer() *Buffer {
	return &Buffer{rows: []*Row{NewRow("")}}
}

func (b *Buffer) LoadBytes(bytes []byte) {
	lines := strings.Split(string(bytes), "\n")
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(line))
	}
}

func (b *Buffer) Bytes() []byte {
	var s strings.Builder
	for i, row := range b.rows {
		if i > 0 {
			s.WriteByte('\n')
		}
		s.WriteString(string(row.Text))
	}
	return []byte(s.String())
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

func (b *Buffer) GetRow(i int) *Row {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i]
	}
	return nil
}

func (b *Buffer) GetRowLength(i int) int {
	if row := b.GetRow(i); row != nil {
		return row.Length()
	}
	return 0
}

func (b *Buffer) IsEmpty() bool {
	return len(b.rows) == 1 && b.rows[0].Length() == 0
}

func (b *Buffer) TextAfter(row, col int) string {
	if r := b.GetRow(row); r != nil {
		return r.TextAfter(col)
	}
	return ""
}

// End returns the point just after the last character.
func (b *Buffer) End() tabpad.Point {
	last := len(b.rows) - 1
	return tabpad.Point{Row: last, Col: b.rows[last].Length()}
}

// Clamp moves p onto the nearest valid position in the buffer.
func (b *Buffer) Clamp(p tabpad.Point) tabpad.Point {
	if p.Row < 0 {
		return tabpad.Point{}
	}
	if p.Row >= len(b.rows) {
		return b.End()
	}
	p.Col = b.rows[p.Row].clamp(p.Col)
	return p
}

// InsertText inserts text at a point and returns the point following it.
func (b *Buffer) InsertText(at tabpad.Point, text string) tabpad.Point {
	at = b.Clamp(at)
	parts := strings.Split(text, "\n")
	row := b.rows[at.Row]
	if len(parts) == 1 {
		inserted := []rune(parts[0])
		row.InsertText(at.Col, inserted)
		return tabpad.Point{Row: at.Row, Col: at.Col + len(inserted)}
	}
	tail := row.Split(at.Col)
	row.InsertText(at.Col, []rune(parts[0]))
	added := make([]*Row, 0, len(parts)-1)
	for _, part := range parts[1:] {
		added = append(added, NewRow(part))
	}
	last := added[len(added)-1]
	end := tabpad.Point{Row: at.Row + len(added), Col: last.Length()}
	last.Join(tail)

	rows := make([]*Row, 0, len(b.rows)+len(added))
	rows = append(rows, b.rows[0:at.Row+1]...)
	rows = append(rows, added...)
	rows = append(rows, b.rows[at.Row+1:]...)
	b.rows = rows
	return end
}

// Text returns the text between two points.
func (b *Buffer) Text(from, to tabpad.Point) string {
	from, to = b.order(from, to)
	if from.Row == to.Row {
		return string(b.rows[from.Row].Text[from.Col:to.Col])
	}
	var s strings.Builder
	s.WriteString(string(b.rows[from.Row].Text[from.Col:]))
	for i := from.Row + 1; i < to.Row; i++ {
		s.WriteByte('\n')
		s.WriteString(string(b.rows[i].Text))
	}
	s.WriteByte('\n')
	s.WriteString(string(b.rows[to.Row].Text[0:to.Col]))
	return s.String()
}

// DeleteText removes the text between two points and returns it.
func (b *Buffer) DeleteText(from, to tabpad.Point) string {
	from, to = b.order(from, to)
	deleted := b.Text(from, to)
	if from.Row == to.Row {
		b.rows[from.Row].DeleteRange(from.Col, to.Col)
		return deleted
	}
	first := b.rows[from.Row]
	first.DeleteRange(from.Col, first.Length())
	first.Join(NewRow(b.rows[to.Row].TextAfter(to.Col)))
	b.rows = append(b.rows[0:from.Row+1], b.rows[to.Row+1:]...)
	return deleted
}

func (b *Buffer) order(from, to tabpad.Point) (tabpad.Point, tabpad.Point) {
	from, to = b.Clamp(from), b.Clamp(to)
	if to.Before(from) {
		return to, from
	}
	return from, to
}
