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
	"github.com/timburks/tabpad/operations"
	tabpad "github.com/timburks/tabpad/types"
)

const DefaultTabWidth = 8

// Move directions
const (
	MoveUp = iota
	MoveDown
	MoveRight
	MoveLeft
)

// A TextArea is the editing surface of one tab.
// It pairs a buffer with a cursor, a selection and an undo history.
type TextArea struct {
	buffer   *Buffer
	cursor   tabpad.Point       // cursor position
	anchor   tabpad.Point       // other end of the selection
	selected bool               // true if anchor is set
	marking  bool               // true if cursor movement extends the selection
	offset   tabpad.Size        // display offset
	size     tabpad.Size        // size of the last rendered area
	tabWidth int                // columns between tab stops
	undo     []tabpad.Operation // stack of operations to undo
	redo     []tabpad.Operation // stack of undone operations to redo
	typing   *operations.Delete // inverse of the run of characters being typed
}

func NewTextArea(tabWidth int) *TextArea {
	if tabWidth < 1 {
		tabWidth = DefaultTabWidth
	}
	return &TextArea{buffer: NewBuffer(), tabWidth: tabWidth}
}

func (t *TextArea) GetBuffer() *Buffer {
	return t.buffer
}

// LoadBytes replaces the contents of the text area. Loading is not an
// undoable edit: the history is cleared and the cursor moves to the start.
func (t *TextArea) LoadBytes(b []byte) {
	t.buffer.LoadBytes(b)
	t.cursor = tabpad.Point{}
	t.offset = tabpad.Size{}
	t.ClearSelection()
	t.undo = nil
	t.redo = nil
	t.typing = nil
}

func (t *TextArea) Bytes() []byte {
	return t.buffer.Bytes()
}

func (t *TextArea) Text() string {
	return string(t.buffer.Bytes())
}

// editable

func (t *TextArea) GetCursor() tabpad.Point {
	return t.cursor
}

func (t *TextArea) SetCursor(cursor tabpad.Point) {
	t.cursor = t.buffer.Clamp(cursor)
}

func (t *TextArea) InsertText(at tabpad.Point, text string) tabpad.Point {
	return t.buffer.InsertText(at, text)
}

func (t *TextArea) DeleteText(from, to tabpad.Point) string {
	return t.buffer.DeleteText(from, to)
}

// history

// Perform performs an operation and saves its inverse for undo.
func (t *TextArea) Perform(op tabpad.Operation) {
	t.typing = nil
	t.ClearSelection()
	inverse := op.Perform(t)
	if inverse != nil {
		t.undo = append(t.undo, inverse)
		t.redo = nil
	}
}

func (t *TextArea) CanUndo() bool {
	return len(t.undo) > 0
}

func (t *TextArea) CanRedo() bool {
	return len(t.redo) > 0
}

// Undo reverts the last change. It returns false if there was nothing to undo.
func (t *TextArea) Undo() bool {
	if !t.CanUndo() {
		return false
	}
	t.typing = nil
	t.ClearSelection()
	last := len(t.undo) - 1
	op := t.undo[last]
	t.undo = t.undo[0:last]
	if inverse := op.Perform(t); inverse != nil {
		t.redo = append(t.redo, inverse)
	}
	return true
}

// Redo reapplies the last undone change. It returns false if there was nothing to redo.
func (t *TextArea) Redo() bool {
	if !t.CanRedo() {
		return false
	}
	t.typing = nil
	t.ClearSelection()
	last := len(t.redo) - 1
	op := t.redo[last]
	t.redo = t.redo[0:last]
	if inverse := op.Perform(t); inverse != nil {
		t.undo = append(t.undo, inverse)
	}
	return true
}

// typing

// InsertChar inserts a typed character, replacing the selection if there is one.
// Consecutive characters on one line are undone together.
func (t *TextArea) InsertChar(c rune) {
	if t.HasSelection() {
		t.ReplaceSelection(string(c))
		return
	}
	if t.typing != nil && t.typing.To == t.cursor && c != '\n' {
		t.cursor = t.buffer.InsertText(t.cursor, string(c))
		t.typing.To = t.cursor
		t.redo = nil
		return
	}
	t.Perform(&operations.Insert{At: t.cursor, Text: string(c)})
	if c != '\n' {
		t.typing, _ = t.undo[len(t.undo)-1].(*operations.Delete)
	}
}

// BackspaceChar deletes the selection or the character before the cursor.
func (t *TextArea) BackspaceChar() {
	if t.DeleteSelection() {
		return
	}
	from := t.pointBefore(t.cursor)
	if from == t.cursor {
		return
	}
	t.Perform(&operations.Delete{From: from, To: t.cursor})
}

// DeleteChar deletes the selection or the character under the cursor.
func (t *TextArea) DeleteChar() {
	if t.DeleteSelection() {
		return
	}
	to := t.pointAfter(t.cursor)
	if to == t.cursor {
		return
	}
	t.Perform(&operations.Delete{From: t.cursor, To: to})
}

// selection

// SetMark starts a selection at the cursor; later cursor movement extends it.
func (t *TextArea) SetMark() {
	t.typing = nil
	t.anchor = t.cursor
	t.selected = true
	t.marking = true
}

func (t *TextArea) ClearSelection() {
	t.selected = false
	t.marking = false
}

func (t *TextArea) HasSelection() bool {
	return t.selected && t.anchor != t.cursor
}

// Selection returns the ordered ends of the selection.
func (t *TextArea) Selection() (tabpad.Point, tabpad.Point) {
	if !t.HasSelection() {
		return t.cursor, t.cursor
	}
	if t.anchor.Before(t.cursor) {
		return t.anchor, t.cursor
	}
	return t.cursor, t.anchor
}

func (t *TextArea) SelectedText() string {
	from, to := t.Selection()
	return t.buffer.Text(from, to)
}

// SelectAll selects the whole buffer and moves the cursor to the start.
// It returns false and changes nothing when the buffer is empty.
func (t *TextArea) SelectAll() bool {
	if t.buffer.IsEmpty() {
		return false
	}
	t.typing = nil
	t.anchor = t.buffer.End()
	t.cursor = tabpad.Point{}
	t.selected = true
	t.marking = false
	return true
}

// DeleteSelection deletes the selected text. It returns false if nothing was selected.
func (t *TextArea) DeleteSelection() bool {
	if !t.HasSelection() {
		return false
	}
	from, to := t.Selection()
	t.Perform(&operations.Delete{From: from, To: to})
	return true
}

// ReplaceSelection replaces the selection (or inserts at the cursor) as one undoable step.
func (t *TextArea) ReplaceSelection(text string) {
	if !t.HasSelection() {
		t.Perform(&operations.Insert{At: t.cursor, Text: text})
		return
	}
	from, to := t.Selection()
	t.Perform(&operations.Batch{Steps: []tabpad.Operation{
		&operations.Delete{From: from, To: to},
		&operations.Insert{At: from, Text: text},
	}})
}

// movement

func (t *TextArea) move(p tabpad.Point) {
	t.typing = nil
	if t.selected && !t.marking {
		t.ClearSelection()
	}
	t.cursor = t.buffer.Clamp(p)
}

func (t *TextArea) MoveCursor(direction int) {
	c := t.cursor
	switch direction {
	case MoveUp:
		if c.Row > 0 {
			c.Row--
		}
	case MoveDown:
		if c.Row < t.buffer.GetRowCount()-1 {
			c.Row++
		}
	case MoveLeft:
		c = t.pointBefore(c)
	case MoveRight:
		c = t.pointAfter(c)
	}
	t.move(c)
}

func (t *TextArea) MoveToBeginningOfLine() {
	t.move(tabpad.Point{Row: t.cursor.Row, Col: 0})
}

func (t *TextArea) MoveToEndOfLine() {
	t.move(tabpad.Point{Row: t.cursor.Row, Col: t.buffer.GetRowLength(t.cursor.Row)})
}

func (t *TextArea) PageUp() {
	t.move(tabpad.Point{Row: t.cursor.Row - t.pageRows(), Col: t.cursor.Col})
}

func (t *TextArea) PageDown() {
	t.move(tabpad.Point{Row: t.cursor.Row + t.pageRows(), Col: t.cursor.Col})
}

// MoveCursorToView moves the cursor to the character shown at a cell of the
// last rendered area, given relative to the area's origin.
func (t *TextArea) MoveCursorToView(col, row int) {
	r := t.offset.Rows + row
	if r >= t.buffer.GetRowCount() {
		t.move(t.buffer.End())
		return
	}
	x := t.buffer.GetRow(r).ColumnForDisplay(t.offset.Cols+col, t.tabWidth)
	t.move(tabpad.Point{Row: r, Col: x})
}

func (t *TextArea) pageRows() int {
	if t.size.Rows > 1 {
		return t.size.Rows - 1
	}
	return 1
}

func (t *TextArea) pointBefore(p tabpad.Point) tabpad.Point {
	if p.Col > 0 {
		p.Col--
	} else if p.Row > 0 {
		p.Row--
		p.Col = t.buffer.GetRowLength(p.Row)
	}
	return p
}

func (t *TextArea) pointAfter(p tabpad.Point) tabpad.Point {
	if p.Col < t.buffer.GetRowLength(p.Row) {
		p.Col++
	} else if p.Row < t.buffer.GetRowCount()-1 {
		p.Row++
		p.Col = 0
	}
	return p
}

// display

// DisplayCursor returns the cursor position in screen cells, relative to the buffer origin.
func (t *TextArea) DisplayCursor() tabpad.Point {
	return tabpad.Point{
		Row: t.cursor.Row,
		Col: t.buffer.GetRow(t.cursor.Row).DisplayColumn(t.cursor.Col, t.tabWidth),
	}
}

// Recompute the display offset to keep the cursor onscreen.
func (t *TextArea) adjustDisplayOffsetForScrolling() {
	cursor := t.DisplayCursor()
	if cursor.Row < t.offset.Rows {
		// scroll up
		t.offset.Rows = cursor.Row
	}
	if cursor.Row-t.offset.Rows >= t.size.Rows {
		// scroll down
		t.offset.Rows = cursor.Row - t.size.Rows + 1
	}
	if cursor.Col < t.offset.Cols {
		// scroll left
		t.offset.Cols = cursor.Col
	}
	if cursor.Col-t.offset.Cols >= t.size.Cols {
		// scroll right
		t.offset.Cols = cursor.Col - t.size.Cols + 1
	}
}

var (
	textStyle     = tabpad.Style{Fg: tabpad.ColorDefault, Bg: tabpad.ColorDefault}
	selectedStyle = tabpad.Style{Fg: tabpad.ColorDefault, Bg: tabpad.ColorDefault, Reverse: true}
)

// Render draws the visible part of the buffer into an area of the display
// and places the display cursor.
func (t *TextArea) Render(d tabpad.Display, area tabpad.Rect) {
	t.size = area.Size
	if t.size.Rows <= 0 || t.size.Cols <= 0 {
		return
	}
	t.adjustDisplayOffsetForScrolling()
	from, to := t.Selection()

	for i := 0; i < t.size.Rows; i++ {
		r := i + t.offset.Rows
		row := t.buffer.GetRow(r)
		if row == nil {
			break
		}
		x := 0
		for j, c := range row.Text {
			w := cellWidth(c, x, t.tabWidth)
			style := textStyle
			p := tabpad.Point{Row: r, Col: j}
			if !p.Before(from) && p.Before(to) {
				style = selectedStyle
			}
			shown := c
			if c == '\t' {
				shown = ' '
			} else if c < ' ' || c == 0x7f {
				shown = '?'
			}
			for k := 0; k < w; k++ {
				col := x + k - t.offset.Cols
				if col >= 0 && col < t.size.Cols {
					ch := shown
					if k > 0 {
						if c != '\t' {
							// second cell of a wide character
							break
						}
						ch = ' '
					}
					d.SetCell(area.Origin.Col+col, area.Origin.Row+i, ch, style)
				}
			}
			x += w
			if x-t.offset.Cols >= t.size.Cols {
				break
			}
		}
	}
	cursor := t.DisplayCursor()
	d.SetCursor(tabpad.Point{
		Col: cursor.Col - t.offset.Cols + area.Origin.Col,
		Row: cursor.Row - t.offset.Rows + area.Origin.Row,
	})
}
