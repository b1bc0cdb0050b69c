// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default slog configuration of the
// colorimetry packages: a user log level and a text handler whose
// level labels are colored when the terminal supports it.
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through [LevelFromFlags] to the value of the user's global
// verbosity flags, or from the run configuration.
var UserLevel = slog.LevelInfo

// UseColor is whether to use color in log messages. It is on by default,
// and is automatically turned off for outputs without color support.
var UseColor = true

// SetDefaultLogger sets the default logger to be a text handler on
// os.Stderr at [UserLevel], with colored level labels.
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// NewHandler returns a new text handler writing to the given output
// at [UserLevel].
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	color := UseColor && out.EnvColorProfile() != termenv.Ascii
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if !color || a.Key != slog.LevelKey {
				return a
			}
			lvl, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(LevelColor(out, lvl, lvl.String()))
			return a
		},
	})
}

// LevelColor applies the color associated with the given level to the
// given string on the given output.
func LevelColor(out *termenv.Output, level slog.Level, str string) string {
	var clr termenv.Color
	switch {
	case level >= slog.LevelError:
		clr = termenv.ANSIRed
	case level >= slog.LevelWarn:
		clr = termenv.ANSIYellow
	case level >= slog.LevelInfo:
		clr = termenv.ANSICyan
	default:
		clr = termenv.ANSIBrightBlack
	}
	return out.String(str).Foreground(clr).String()
}

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// LevelFromString parses a level name ("debug", "info", "warn", "error").
// An empty string returns [slog.LevelInfo], as does an unknown name
// along with the parse error.
func LevelFromString(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, err
	}
	return l, nil
}
