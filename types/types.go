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

// Package types holds the values and interfaces shared by the tabpad
// packages, so that none of them needs to import another's internals.
package types

type Point struct {
	Row int
	Col int
}

// Before reports whether p comes strictly before q in reading order.
func (p Point) Before(q Point) bool {
	return p.Row < q.Row || (p.Row == q.Row && p.Col < q.Col)
}

type Size struct {
	Rows int
	Cols int
}

type Rect struct {
	Origin Point
	Size   Size
}

// Contains reports whether the screen cell at (col, row) is inside r.
func (r Rect) Contains(col, row int) bool {
	return row >= r.Origin.Row && row < r.Origin.Row+r.Size.Rows &&
		col >= r.Origin.Col && col < r.Origin.Col+r.Size.Cols
}

// Color values follow the termbox color ordering.
type Color int

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

type Style struct {
	Fg      Color
	Bg      Color
	Bold    bool
	Reverse bool
}

// A Display is a grid of character cells.
type Display interface {
	SetCell(col, row int, c rune, style Style)
	SetCursor(p Point)
	HideCursor()
	Size() Size
}

// A Terminal is a Display that can be flushed and polled for input.
// Modal dialogs run their own event loop on it.
type Terminal interface {
	Display
	Clear()
	Flush()
	GetNextEvent() *Event
}
