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

// Package clipboard provides the clipboards that tabpad copies to and
// pastes from.
package clipboard

import (
	"fmt"
	"log"

	"github.com/atotto/clipboard"
)

// Memory is a clipboard that only lives as long as the process.
type Memory struct {
	text string
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) ReadAll() (string, error) {
	return m.text, nil
}

func (m *Memory) WriteAll(text string) error {
	m.text = text
	return nil
}

// System uses the system clipboard. When the system clipboard is not
// available (no xclip, xsel or wl-clipboard on Linux, or a failing
// helper) it keeps text in memory instead.
type System struct {
	fallback  *Memory
	available bool
	read      func() (string, error)
	write     func(string) error
}

func NewSystem() *System {
	s := &System{
		fallback:  NewMemory(),
		available: !clipboard.Unsupported,
		read:      clipboard.ReadAll,
		write:     clipboard.WriteAll,
	}
	if !s.available {
		log.Printf("system clipboard unavailable, using an in-process clipboard")
	}
	return s
}

func (s *System) ReadAll() (string, error) {
	if !s.available {
		return s.fallback.ReadAll()
	}
	text, err := s.read()
	if err != nil {
		log.Printf("clipboard read failed: %+v", err)
		s.available = false
		return s.fallback.ReadAll()
	}
	return text, nil
}

// WriteAll returns the system clipboard's error the first time a write
// fails. The text is still kept in memory, and later calls use memory only.
func (s *System) WriteAll(text string) error {
	// the fallback always holds the last copied text
	s.fallback.WriteAll(text)
	if !s.available {
		return nil
	}
	if err := s.write(text); err != nil {
		s.available = false
		return fmt.Errorf("system clipboard: %w", err)
	}
	return nil
}
