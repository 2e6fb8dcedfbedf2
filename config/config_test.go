// Copyright (c) 2026, The Silk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnkellyoxford/silk/loop"
)

func TestSaveOpenRoundTrip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings", "silk.toml")

	se := &Settings{}
	se.Defaults()
	se.Title = "demo"
	se.VSync = loop.SyncAdaptive
	se.FramesPerSecond = 144
	require.NoError(t, Save(se, fn))

	got := &Settings{}
	require.NoError(t, Open(got, fn))
	assert.Equal(t, se, got)
}

func TestVSyncText(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "silk.toml")
	se := &Settings{VSync: loop.SyncAdaptive}
	require.NoError(t, Save(se, fn))

	b, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Contains(t, string(b), "vsync = ")
	assert.Contains(t, string(b), "adaptive")
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "nope.toml")
	se := &Settings{}
	require.NoError(t, Load(se, fn))

	def := &Settings{}
	def.Defaults()
	assert.Equal(t, def, se)
}

func TestLoadOverridesDefaults(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "silk.toml")
	require.NoError(t, os.WriteFile(fn, []byte("title = \"mine\"\nvsync = \"off\"\n"), 0644))

	se := &Settings{}
	require.NoError(t, Load(se, fn))
	assert.Equal(t, "mine", se.Title)
	assert.Equal(t, loop.SyncOff, se.VSync)
	assert.Equal(t, 1024, se.Width) // default kept
}

func TestLoadBadFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "silk.toml")
	require.NoError(t, os.WriteFile(fn, []byte("vsync = \"sometimes\"\n"), 0644))

	se := &Settings{}
	assert.Error(t, Load(se, fn))
}

func TestApply(t *testing.T) {
	se := &Settings{}
	se.Defaults()
	se.UpdatesPerSecond = 30
	se.FramesPerSecond = 60
	se.VSync = loop.SyncOff

	d := &loop.Driver{}
	se.Apply(d)
	assert.InDelta(t, 1.0/30, d.Pacer.UpdatePeriod(), 1e-9)
	assert.InDelta(t, 1.0/60, d.Pacer.RenderPeriod(), 1e-9)
	assert.Equal(t, loop.SyncOff, d.Sync())
}

func TestWatchReload(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "silk.toml")
	se := &Settings{}
	se.Defaults()
	require.NoError(t, Save(se, fn))

	got := make(chan *Settings, 1)
	w, err := Watch(fn, func(se *Settings) {
		select {
		case got <- se:
		default:
		}
	})
	require.NoError(t, err)
	defer w.Close()

	se.Title = "reloaded"
	require.NoError(t, Save(se, fn))

	select {
	case ns := <-got:
		assert.Equal(t, "reloaded", ns.Title)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for settings reload")
	}
}

func TestWatchCloseIdempotent(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "silk.toml")
	w, err := Watch(fn, func(*Settings) {})
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}

func TestWatchCloseConcurrent(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "silk.toml")
	w, err := Watch(fn, func(*Settings) {})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.Close()
		}()
	}
	wg.Wait()
}
