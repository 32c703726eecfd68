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
package types

// A FileFilter restricts a file picker to names matching Patterns.
type FileFilter struct {
	Description string
	Patterns    []string // glob patterns such as "*.txt"
}

var (
	TextFilter = FileFilter{Description: "Text documents", Patterns: []string{"*.txt"}}
	AllFilter  = FileFilter{Description: "All files", Patterns: []string{"*"}}
)

type OpenOptions struct {
	Title   string
	Filters []FileFilter // the first filter is the default
}

type SaveOptions struct {
	Title       string
	DefaultExt  string // appended when the chosen name has no extension
	InitialName string
	Filters     []FileFilter
}

// A Picker asks the user for a file path. The boolean result is false when
// the user cancelled.
type Picker interface {
	OpenPath(options OpenOptions) (string, bool)
	SavePath(options SaveOptions) (string, bool)
}

// An Alerter shows a blocking error dialog.
type Alerter interface {
	Error(title, message string)
}

type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// Editable is the set of text services that operations are built from.
type Editable interface {
	GetCursor() Point
	SetCursor(p Point)
	InsertText(at Point, text string) Point // returns the point after the inserted text
	DeleteText(from, to Point) string       // returns the deleted text
}

// An Operation is an undoable unit of editing.
type Operation interface {
	Perform(e Editable) Operation // performs the operation and returns its inverse
}
