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
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/timburks/tabpad/clipboard"
	"github.com/timburks/tabpad/commander"
	"github.com/timburks/tabpad/config"
	"github.com/timburks/tabpad/dialogs"
	"github.com/timburks/tabpad/screen"
	"github.com/timburks/tabpad/tabs"
	tabpad "github.com/timburks/tabpad/types"
)

// newScreen opens the terminal.
var newScreen = screen.NewScreen

func main() {
	os.Exit(run(os.Args[1:]))
}

// run edits the named files and returns the process exit status.
func run(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		log.Output(1, err.Error())
		return 1
	}

	// Open a log file.
	if err := os.MkdirAll(filepath.Dir(cfg.Log.Path), 0755); err != nil {
		log.Output(1, err.Error())
		return 1
	}
	f, err := os.OpenFile(cfg.Log.Path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		log.Output(1, err.Error())
		return 1
	}
	defer f.Close()

	// Create a screen to manage display.
	s, err := newScreen()
	if err != nil {
		log.Output(1, err.Error())
		return 1
	}
	defer s.Close()
	log.SetOutput(f)
	log.Printf("tabpad started with config %s", config.Path())

	// Dialogs and the clipboard are chosen by configuration.
	prompt := dialogs.NewPrompt(s)
	var picker tabpad.Picker = prompt
	var alerter tabpad.Alerter = prompt
	if cfg.Dialogs.Backend == config.DialogsNative {
		native := dialogs.NewNative()
		picker, alerter = native, native
	}
	var cb tabpad.Clipboard = clipboard.NewSystem()
	if cfg.Clipboard.Backend == config.ClipboardMemory {
		cb = clipboard.NewMemory()
	}

	// The manager owns the tabs and their files.
	m := tabs.NewManager(picker, alerter, cb, tabs.Options{
		UntitledPrefix: cfg.Editor.UntitledPrefix,
		DefaultExt:     cfg.Editor.DefaultExtension,
		TabWidth:       cfg.Editor.TabWidth,
	})

	// The commander converts user inputs into actions on the manager.
	c := commander.NewCommander(m, commander.NewKeymap(cfg.Keys))
	prompt.SetBackground(func(d tabpad.Display) { screen.Draw(d, c) })

	// Open the files named on the command line, or start with an empty tab.
	for _, filename := range args {
		m.OpenPath(filename)
	}
	if m.Len() == 0 {
		m.NewTab()
	}

	// Run the main event loop.
	for c.IsRunning() {
		s.Render(c)
		if err := c.ProcessEvent(s.GetNextEvent()); err != nil {
			log.Output(1, err.Error())
		}
	}
	log.Printf("tabpad exited")
	return 0
}
