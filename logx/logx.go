// Copyright (c) 2026, The Silk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides leveled logging on top of [log/slog],
// with a simple UserLevel gate controlling how much is printed.
package logx

import (
	"fmt"
	"log/slog"
)

// UserLevel is the verbosity level that the user has selected for
// the app as a whole. Anything below this level is not logged.
var UserLevel = defaultUserLevel

// logEnabled returns whether the given level is enabled.
func logEnabled(level slog.Level) bool {
	return level >= UserLevel
}

// PrintDebug logs the given message at [slog.LevelDebug].
func PrintDebug(msg string, args ...any) {
	if logEnabled(slog.LevelDebug) {
		slog.Debug(msg, args...)
	}
}

// PrintInfo logs the given message at [slog.LevelInfo].
func PrintInfo(msg string, args ...any) {
	if logEnabled(slog.LevelInfo) {
		slog.Info(msg, args...)
	}
}

// PrintWarn logs the given message at [slog.LevelWarn].
func PrintWarn(msg string, args ...any) {
	if logEnabled(slog.LevelWarn) {
		slog.Warn(msg, args...)
	}
}

// PrintError logs the given message at [slog.LevelError].
func PrintError(msg string, args ...any) {
	if logEnabled(slog.LevelError) {
		slog.Error(msg, args...)
	}
}

// PrintlnDebug is a fmt.Sprintln-style convenience for debug output.
func PrintlnDebug(a ...any) {
	if logEnabled(slog.LevelDebug) {
		slog.Debug(fmt.Sprintln(a...))
	}
}

// PrintfDebug is a fmt.Sprintf-style convenience for debug output.
func PrintfDebug(format string, a ...any) {
	if logEnabled(slog.LevelDebug) {
		slog.Debug(fmt.Sprintf(format, a...))
	}
}
