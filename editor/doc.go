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

// Package editor implements the text editing surface of a tabpad tab.
// A TextArea owns a buffer of rows, a cursor, an optional selection and
// its own undo and redo history. Changes to the text are made through
// operations so that each one can be undone and redone; cursor movement
// is applied directly.
package editor
