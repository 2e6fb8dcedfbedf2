// Copyright (c) 2026, The Silk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package base provides the data and logic common to all driver
// implementations of the system interfaces.
package base

import (
	"slices"
	"sync"

	"github.com/johnkellyoxford/silk/mainthread"
	"github.com/johnkellyoxford/silk/system"
)

// App contains the data and logic common to all implementations of
// [system.App].
type App struct {
	// Nm is the name of the app.
	Nm string

	// Mu is the main mutex protecting access to the app's shared state.
	Mu sync.Mutex

	// Inv is the main-thread invoker for the app.
	Inv mainthread.Invoker

	// Quitting is whether the app is in the process of quitting.
	Quitting bool
}

func (a *App) Name() string { return a.Nm }

func (a *App) SetName(name string) { a.Nm = name }

func (a *App) Invoker() *mainthread.Invoker { return &a.Inv }

func (a *App) IsQuitting() bool {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	return a.Quitting
}

// AppMulti contains the data and logic common to all implementations
// of [system.App] that support multiple windows. An AppMulti is
// associated with a corresponding type of [system.Window], whose
// type should embed [Window].
type AppMulti[W system.Window] struct {
	App

	// Windows are the windows associated with the app,
	// in order of creation.
	Windows []W

	// Screens are the screens associated with the app.
	Screens []*system.Screen
}

func (a *AppMulti[W]) NScreens() int {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	return len(a.Screens)
}

func (a *AppMulti[W]) Screen(n int) *system.Screen {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	if n >= 0 && n < len(a.Screens) {
		return a.Screens[n]
	}
	if len(a.Screens) > 0 {
		return a.Screens[0]
	}
	return nil
}

func (a *AppMulti[W]) ScreenByName(name string) *system.Screen {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	for _, sc := range a.Screens {
		if sc.Name == name {
			return sc
		}
	}
	return nil
}

func (a *AppMulti[W]) NWindows() int {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	return len(a.Windows)
}

func (a *AppMulti[W]) Window(win int) system.Window {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	if win >= 0 && win < len(a.Windows) {
		return a.Windows[win]
	}
	return nil
}

func (a *AppMulti[W]) WindowByName(name string) system.Window {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	for _, win := range a.Windows {
		if win.Name() == name {
			return win
		}
	}
	return nil
}

// AddWindow adds the given window to the app's list of windows.
func (a *AppMulti[W]) AddWindow(w W) {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	a.Windows = append(a.Windows, w)
}

// RemoveWindow removes the given Window from the app's list of
// windows. It does not actually close it; see [system.Window.Close].
func (a *AppMulti[W]) RemoveWindow(w system.Window) {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	a.Windows = slices.DeleteFunc(a.Windows, func(ew W) bool {
		return system.Window(ew) == w
	})
}
