// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "window.toml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
debug = true

[window]
title = "demo"
width = 320.0
decorated = false
fullscreen = 1
theme = "dark"
level = "top"

[loop]
mode = "wait_until"
tick_millis = 250
`)
	got, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	want := defaultConfig()
	want.Debug = true
	want.Window.Title = "demo"
	want.Window.Width = 320
	want.Window.Decorated = false
	monitor := 1
	want.Window.Fullscreen = &monitor
	want.Window.Theme = "dark"
	want.Window.Level = "top"
	want.Loop = loopConfig{Mode: "wait_until", TickMillis: 250}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if n := len(got.Window.options()); n != 9 {
		t.Errorf("%d window options, want 9", n)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	got, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(defaultConfig(), got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if err := got.validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		data string
		want string
	}{
		{"[loop]\nmode = \"spin\"", "loop.mode"},
		{"[loop]\nmode = \"wait_until\"\ntick_millis = 0", "tick_millis"},
		{"[window]\nwidth = -1.0", "window size"},
		{"[window]\ntheme = \"blue\"", "window.theme"},
		{"[window]\nlevel = \"middle\"", "window.level"},
		{"[window\n", "window.toml"},
	}
	for _, tt := range tests {
		_, err := loadConfig(writeConfig(t, tt.data))
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%q: error %v does not mention %q", tt.data, err, tt.want)
		}
	}
}
