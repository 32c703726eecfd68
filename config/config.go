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

// Package config loads tabpad settings from a TOML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Dialog backends
const (
	DialogsPrompt = "prompt"
	DialogsNative = "native"
)

// Clipboard backends
const (
	ClipboardSystem = "system"
	ClipboardMemory = "memory"
)

// Config holds application configuration.
type Config struct {
	Log       LogConfig
	Editor    EditorConfig
	Dialogs   DialogsConfig
	Clipboard ClipboardConfig
	Keys      map[string][]string // action -> shortcuts, replacing the default shortcuts
}

// LogConfig holds the location of the log file.
type LogConfig struct {
	Path string
}

// EditorConfig holds settings for new tabs.
type EditorConfig struct {
	TabWidth         int    `mapstructure:"tab_width"`
	UntitledPrefix   string `mapstructure:"untitled_prefix"`
	DefaultExtension string `mapstructure:"default_extension"`
}

type DialogsConfig struct {
	Backend string
}

type ClipboardConfig struct {
	Backend string
}

// Path returns the config file location. It can be set with TABPAD_CONFIG.
func Path() string {
	if path := os.Getenv("TABPAD_CONFIG"); path != "" {
		return path
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "tabpad", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix TABPAD_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".tabpadlog"))
	v.SetDefault("editor.tab_width", 8)
	v.SetDefault("editor.untitled_prefix", "Untitled")
	v.SetDefault("editor.default_extension", ".txt")
	v.SetDefault("dialogs.backend", DialogsPrompt)
	v.SetDefault("clipboard.backend", ClipboardSystem)

	v.SetConfigType("toml")
	v.SetConfigFile(Path())

	v.SetEnvPrefix("TABPAD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config %s: %w", Path(), err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.normalize(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) normalize() error {
	if c.Editor.TabWidth < 1 {
		return fmt.Errorf("editor.tab_width must be positive, got %d", c.Editor.TabWidth)
	}
	if ext := c.Editor.DefaultExtension; ext != "" && !strings.HasPrefix(ext, ".") {
		c.Editor.DefaultExtension = "." + ext
	}
	c.Dialogs.Backend = strings.ToLower(c.Dialogs.Backend)
	switch c.Dialogs.Backend {
	case DialogsPrompt, DialogsNative:
	default:
		return fmt.Errorf("dialogs.backend must be %q or %q, got %q", DialogsPrompt, DialogsNative, c.Dialogs.Backend)
	}
	c.Clipboard.Backend = strings.ToLower(c.Clipboard.Backend)
	switch c.Clipboard.Backend {
	case ClipboardSystem, ClipboardMemory:
	default:
		return fmt.Errorf("clipboard.backend must be %q or %q, got %q", ClipboardSystem, ClipboardMemory, c.Clipboard.Backend)
	}
	if strings.HasPrefix(c.Log.Path, "~/") {
		c.Log.Path = filepath.Join(os.Getenv("HOME"), c.Log.Path[2:])
	}
	return nil
}
