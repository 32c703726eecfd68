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

// Package tabs manages the open documents of a tabpad window.
//
// The Manager owns an ordered list of tabs, the index of the active tab
// and a registry that maps each tab's identifier to the path of the file
// it was loaded from or saved to. File dialogs, error dialogs and the
// clipboard are supplied by the caller, so a Manager can be driven
// without a terminal.
package tabs
