// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"gtkwin.org/app"
	"gtkwin.org/io/system"
	"gtkwin.org/unit"
)

// config is the TOML configuration of the example.
type config struct {
	Window windowConfig `toml:"window"`
	Loop   loopConfig   `toml:"loop"`
	Debug  bool         `toml:"debug"`
}

type windowConfig struct {
	Title     string  `toml:"title"`
	Width     float64 `toml:"width"`
	Height    float64 `toml:"height"`
	Decorated bool    `toml:"decorated"`
	Resizable bool    `toml:"resizable"`
	// Transparent windows are cleared before every redraw.
	Transparent bool `toml:"transparent"`
	Maximized   bool `toml:"maximized"`
	// Fullscreen is a monitor index, or -1 for the current monitor.
	Fullscreen *int `toml:"fullscreen"`
	// Theme is "light", "dark" or empty for the toolkit default.
	Theme string `toml:"theme"`
	// Level is "normal", "top" or "bottom".
	Level string `toml:"level"`
	// Class is the X11 window class.
	Class string `toml:"class"`
}

type loopConfig struct {
	// Mode is "poll", "wait" or "wait_until".
	Mode string `toml:"mode"`
	// TickMillis is the wake up interval of the wait_until mode.
	TickMillis int `toml:"tick_millis"`
}

func defaultConfig() config {
	return config{
		Window: windowConfig{
			Title:     "gtkwin",
			Width:     800,
			Height:    600,
			Decorated: true,
			Resizable: true,
			Level:     "normal",
		},
		Loop: loopConfig{
			Mode:       "wait",
			TickMillis: 1000,
		},
	}
}

// loadConfig reads path over the default configuration. An empty path
// returns the defaults.
func loadConfig(path string) (config, error) {
	cnf := defaultConfig()
	if path == "" {
		return cnf, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return config{}, err
	}
	if err := toml.Unmarshal(data, &cnf); err != nil {
		return config{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := cnf.validate(); err != nil {
		return config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cnf, nil
}

func (c config) validate() error {
	switch c.Loop.Mode {
	case "poll", "wait":
	case "wait_until":
		if c.Loop.TickMillis <= 0 {
			return fmt.Errorf("loop.tick_millis must be positive, got %d", c.Loop.TickMillis)
		}
	default:
		return fmt.Errorf("unknown loop.mode %q", c.Loop.Mode)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %vx%v", c.Window.Width, c.Window.Height)
	}
	switch c.Window.Theme {
	case "", "light", "dark":
	default:
		return fmt.Errorf("unknown window.theme %q", c.Window.Theme)
	}
	switch c.Window.Level {
	case "normal", "top", "bottom":
	default:
		return fmt.Errorf("unknown window.level %q", c.Window.Level)
	}
	return nil
}

func (c config) tick() time.Duration {
	return time.Duration(c.Loop.TickMillis) * time.Millisecond
}

func (w windowConfig) options() []app.Option {
	opts := []app.Option{
		app.Title(w.Title),
		app.Size(unit.LogicalSize{Width: w.Width, Height: w.Height}),
		app.Decorated(w.Decorated),
		app.Resizable(w.Resizable),
		app.Transparent(w.Transparent),
		app.Maximized(w.Maximized),
	}
	if w.Fullscreen != nil {
		opts = append(opts, app.FullscreenOn(*w.Fullscreen))
	}
	switch w.Theme {
	case "light":
		opts = append(opts, app.PreferredTheme(system.ThemeLight))
	case "dark":
		opts = append(opts, app.PreferredTheme(system.ThemeDark))
	}
	switch w.Level {
	case "top":
		opts = append(opts, app.WindowLevel(system.LevelAlwaysOnTop))
	case "bottom":
		opts = append(opts, app.WindowLevel(system.LevelAlwaysOnBottom))
	}
	if w.Class != "" {
		opts = append(opts, app.Name(w.Class, w.Class))
	}
	return opts
}
