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

// Package dialogs implements the file pickers and error dialogs of tabpad.
//
// Prompt draws its dialogs on the terminal and runs a nested event loop
// until the user answers. Native uses the dialogs of the desktop the
// terminal runs on.
package dialogs

import (
	"errors"
	"log"
	"strings"

	"github.com/sqweek/dialog"

	tabpad "github.com/timburks/tabpad/types"
)

// Native shows the platform's own file and message dialogs.
type Native struct{}

func NewNative() *Native {
	return &Native{}
}

func (n *Native) fileBuilder(title string, filters []tabpad.FileFilter) *dialog.FileBuilder {
	b := dialog.File().Title(title)
	for _, f := range filters {
		b = b.Filter(f.Description, extensions(f)...)
	}
	return b
}

func (n *Native) OpenPath(options tabpad.OpenOptions) (string, bool) {
	path, err := n.fileBuilder(options.Title, options.Filters).Load()
	return result(path, err)
}

func (n *Native) SavePath(options tabpad.SaveOptions) (string, bool) {
	b := n.fileBuilder(options.Title, options.Filters)
	if options.InitialName != "" {
		b = b.SetStartFile(options.InitialName)
	}
	path, err := b.Save()
	return result(path, err)
}

func (n *Native) Error(title, message string) {
	dialog.Message("%s", message).Title(title).Error()
}

func result(path string, err error) (string, bool) {
	if err != nil {
		if !errors.Is(err, dialog.ErrCancelled) {
			log.Printf("file dialog failed: %+v", err)
		}
		return "", false
	}
	return path, path != ""
}

// extensions converts glob patterns like "*.txt" to the bare extensions
// that native dialogs expect.
func extensions(f tabpad.FileFilter) []string {
	exts := make([]string, 0, len(f.Patterns))
	for _, p := range f.Patterns {
		if p == "*" || p == "*.*" {
			exts = append(exts, "*")
			continue
		}
		exts = append(exts, strings.TrimPrefix(p, "*."))
	}
	return exts
}
