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
package operations_test

import (
	"testing"

	"github.com/timburks/tabpad/editor"
	"github.com/timburks/tabpad/operations"
	tabpad "github.com/timburks/tabpad/types"
)

func setup(text string) *editor.TextArea {
	area := editor.NewTextArea(editor.DefaultTabWidth)
	area.LoadBytes([]byte(text))
	return area
}

func TestInsertInverse(t *testing.T) {
	area := setup("hello world")
	inverse := (&operations.Insert{At: tabpad.Point{Row: 0, Col: 5}, Text: ",\nbig"}).Perform(area)
	if got := area.Text(); got != "hello,\nbig world" {
		t.Errorf("Unexpected text after insert: %q", got)
	}
	if cursor := area.GetCursor(); cursor != (tabpad.Point{Row: 1, Col: 3}) {
		t.Errorf("The cursor should follow the inserted text: %+v", cursor)
	}
	again := inverse.Perform(area)
	if got := area.Text(); got != "hello world" {
		t.Errorf("The inverse should remove the insertion: %q", got)
	}
	again.Perform(area)
	if got := area.Text(); got != "hello,\nbig world" {
		t.Errorf("The inverse of the inverse should insert again: %q", got)
	}
}

func TestEmptyOperations(t *testing.T) {
	area := setup("abc")
	if inverse := (&operations.Insert{Text: ""}).Perform(area); inverse != nil {
		t.Errorf("An empty insert should have no inverse")
	}
	p := tabpad.Point{Row: 0, Col: 1}
	if inverse := (&operations.Delete{From: p, To: p}).Perform(area); inverse != nil {
		t.Errorf("An empty delete should have no inverse")
	}
	if inverse := (&operations.Batch{}).Perform(area); inverse != nil {
		t.Errorf("An empty batch should have no inverse")
	}
}

func TestBatchUndoesInReverse(t *testing.T) {
	area := setup("one two three")
	batch := &operations.Batch{Steps: []tabpad.Operation{
		&operations.Delete{From: tabpad.Point{Row: 0, Col: 4}, To: tabpad.Point{Row: 0, Col: 7}},
		&operations.Insert{At: tabpad.Point{Row: 0, Col: 4}, Text: "2"},
		&operations.Insert{At: tabpad.Point{Row: 0, Col: 0}, Text: "> "},
	}}
	inverse := batch.Perform(area)
	if got := area.Text(); got != "> one 2 three" {
		t.Fatalf("Unexpected text after batch: %q", got)
	}
	inverse.Perform(area)
	if got := area.Text(); got != "one two three" {
		t.Errorf("The inverse batch should restore the text: %q", got)
	}
}
