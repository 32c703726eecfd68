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

// Batch performs a sequence of operations as one undoable unit.
type Batch struct {
	Steps []tabpad.Operation
}

func (op *Batch) Perform(e tabpad.Editable) tabpad.Operation {
	inverses := make([]tabpad.Operation, 0, len(op.Steps))
	for _, step := range op.Steps {
		if inverse := step.Perform(e); inverse != nil {
			inverses = append(inverses, inverse)
		}
	}
	// undo in reverse order
	for i, j := 0, len(inverses)-1; i < j; i, j = i+1, j-1 {
		inverses[i], inverses[j] = inverses[j], inverses[i]
	}
	if len(inverses) == 0 {
		return nil
	}
	return &Batch{Steps: inverses}
}
