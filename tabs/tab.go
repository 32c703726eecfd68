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
package tabs

import (
	"github.com/google/uuid"

	"github.com/timburks/tabpad/editor"
)

// A TabID identifies a tab for as long as the program runs.
type TabID uuid.UUID

func newTabID() TabID {
	return TabID(uuid.New())
}

func (id TabID) String() string {
	return uuid.UUID(id).String()
}

// A Tab is one open document.
type Tab struct {
	id    TabID
	title string
	area  *editor.TextArea
}

func (t *Tab) ID() TabID {
	return t.id
}

func (t *Tab) Title() string {
	return t.title
}

func (t *Tab) TextArea() *editor.TextArea {
	return t.area
}
