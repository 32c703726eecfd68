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
package operations

import (
	tabpad "github.com/timburks/tabpad/types"
)

// Insert inserts text at a point and leaves the cursor after it.
type Insert struct {
	At   tabpad.Point
	Text string
}

func (op *Insert) Perform(e tabpad.Editable) tabpad.Operation {
	if op.Text == "" {
		return nil
	}
	end := e.InsertText(op.At, op.Text)
	e.SetCursor(end)
	return &Delete{From: op.At, To: end}
}
