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
package clipboard

import (
	"errors"
	"testing"
)

func TestMemory(t *testing.T) {
	m := NewMemory()
	if text, err := m.ReadAll(); err != nil || text != "" {
		t.Errorf("A new clipboard should be empty, got %q %v", text, err)
	}
	m.WriteAll("one\ntwo")
	if text, _ := m.ReadAll(); text != "one\ntwo" {
		t.Errorf("Unexpected clipboard text %q", text)
	}
}

func TestSystemFallback(t *testing.T) {
	s := &System{fallback: NewMemory()}
	if err := s.WriteAll("kept"); err != nil {
		t.Fatalf("Write failed: %+v", err)
	}
	if text, err := s.ReadAll(); err != nil || text != "kept" {
		t.Errorf("Unavailable system clipboard should use memory, got %q %v", text, err)
	}
}

func TestSystemWriteFailure(t *testing.T) {
	failure := errors.New("no clipboard helper")
	writes := 0
	s := &System{
		fallback:  NewMemory(),
		available: true,
		read:      func() (string, error) { return "", failure },
		write: func(string) error {
			writes++
			return failure
		},
	}
	err := s.WriteAll("first")
	if !errors.Is(err, failure) {
		t.Fatalf("A failed system write should return its error, got %v", err)
	}
	if text, err := s.ReadAll(); err != nil || text != "first" {
		t.Errorf("A failed write should keep the text in memory, got %q %v", text, err)
	}
	if err := s.WriteAll("second"); err != nil {
		t.Errorf("Writes after a failure should use memory, got %v", err)
	}
	if writes != 1 {
		t.Errorf("The system clipboard should not be retried, writes: %d", writes)
	}
	if text, _ := s.ReadAll(); text != "second" {
		t.Errorf("Unexpected clipboard text %q", text)
	}
}

func TestSystemReadFailure(t *testing.T) {
	s := &System{
		fallback:  NewMemory(),
		available: true,
		read:      func() (string, error) { return "", errors.New("no clipboard helper") },
		write:     func(string) error { return nil },
	}
	s.WriteAll("copied")
	if text, err := s.ReadAll(); err != nil || text != "copied" {
		t.Errorf("A failed system read should fall back to memory, got %q %v", text, err)
	}
}
