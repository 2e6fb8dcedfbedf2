// Copyright (c) 2026, The Silk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config manages persistent window and loop settings,
// stored in TOML.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/johnkellyoxford/silk/loop"
)

// Settings are the user-editable window and loop settings.
type Settings struct {
	// Title is the window title.
	Title string `toml:"title"`

	// Width and Height are the initial window size in
	// window-manager coordinates.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// UpdatesPerSecond is the target update rate. Zero or negative
	// means uncapped.
	UpdatesPerSecond float64 `toml:"updates-per-second"`

	// FramesPerSecond is the target render rate. Zero or negative
	// means uncapped.
	FramesPerSecond float64 `toml:"frames-per-second"`

	// VSync is the buffer-swap synchronization mode:
	// "off", "on", or "adaptive".
	VSync loop.SyncMode `toml:"vsync"`

	// SlowTolerance is the number of consecutive missed update
	// deadlines tolerated before the loop reports running slowly.
	SlowTolerance int `toml:"slow-tolerance"`

	// SingleThreaded runs updates on the main loop goroutine instead
	// of a worker.
	SingleThreaded bool `toml:"single-threaded"`
}

// Defaults sets the default values for all settings.
func (se *Settings) Defaults() {
	se.Title = "Silk"
	se.Width = 1024
	se.Height = 768
	se.UpdatesPerSecond = 60
	se.FramesPerSecond = 0
	se.VSync = loop.SyncOn
	se.SlowTolerance = 5
	se.SingleThreaded = false
}

// Apply applies the loop-related settings to the given driver.
// Window-related settings are consumed at window creation.
func (se *Settings) Apply(d *loop.Driver) {
	d.SetUpdatesPerSecond(se.UpdatesPerSecond)
	d.SetFramesPerSecond(se.FramesPerSecond)
	d.SetSync(se.VSync)
	d.Pacer.SetTolerance(se.SlowTolerance)
}

// Open reads the settings from the given TOML file.
func Open(se *Settings, filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return toml.Unmarshal(b, se)
}

// Save writes the settings to the given TOML file, creating its
// directory if needed.
func Save(se *Settings, filename string) error {
	b, err := toml.Marshal(se)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0750); err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}

// Load sets the defaults and then opens the settings from the given
// file. A missing file is not an error.
func Load(se *Settings, filename string) error {
	se.Defaults()
	err := Open(se, filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
