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

// Delete removes the text between two points and leaves the cursor at From.
// To may grow after the operation is performed; text areas use this to
// merge consecutive typed characters into a single undo step.
type Delete struct {
	From tabpad.Point
	To   tabpad.Point
}

func (op *Delete) Perform(e tabpad.Editable) tabpad.Operation {
	from, to := op.From, op.To
	if to.Before(from) {
		from, to = to, from
	}
	text := e.DeleteText(from, to)
	e.SetCursor(from)
	if text == "" {
		return nil
	}
	return &Insert{At: from, Text: text}
}
