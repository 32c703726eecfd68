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

// Event types
const (
	EventKey = iota
	EventResize
	EventMouse
	EventInterrupt
)

// Modifiers
const (
	ModAlt = 1 << iota
	ModMotion
)

type Key int

// Keys that don't carry a character.
const (
	KeyUnsupported Key = iota
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyBackspace
	KeyDelete
	KeyEnd
	KeyEnter
	KeyEsc
	KeyHome
	KeyInsert
	KeyPgdn
	KeyPgup
	KeySpace
	KeyTab
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyCtrlSpace
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlK
	KeyCtrlL
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
	MouseLeft
	MouseMiddle
	MouseRight
	MouseRelease
	MouseWheelUp
	MouseWheelDown
)

// An Event is a key press, mouse action or resize, independent of the
// terminal library that produced it. Ch is set for printable keys and Key
// is zero; otherwise Key is set and Ch is zero.
type Event struct {
	Type int
	Key  Key
	Ch   rune
	Mod  int
	X    int
	Y    int
}
