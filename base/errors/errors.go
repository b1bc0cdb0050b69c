// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides the error taxonomy of the colorimetry
// packages, together with a set of error handling helpers that
// extend the standard library errors package.
//
// Every failure in the numerical core belongs to exactly one [Kind]:
// [ErrConfiguration] for an invalid construction of a color space or
// evaluation, [ErrDomain] for inputs that fall outside the domain of
// a computation, and [ErrData] for malformed or missing documents.
// Use [Is] with the kind to classify an error:
//
//	if errors.Is(err, errors.ErrDomain) { ... }
package errors

import (
	"fmt"
	"log/slog"
	"runtime"
	"strconv"
)

// Kind is the category of an [Error].
type Kind struct {
	name string
}

func (k *Kind) Error() string { return k.name }

var (
	// ErrConfiguration is the kind of errors caused by an invalid
	// scale discriminator or a malformed variant or run configuration.
	ErrConfiguration = &Kind{"configuration error"}

	// ErrDomain is the kind of errors caused by inputs outside the domain
	// of a computation: insufficient spectral coverage, an unsupported
	// color temperature, or a degenerate geometric fit.
	ErrDomain = &Kind{"domain error"}

	// ErrData is the kind of errors caused by malformed or missing
	// tabulated or dataset documents.
	ErrData = &Kind{"data error"}
)

// Error is an error of a specific [Kind].
type Error struct {
	Kind *Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Kind.name + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether the target is the kind of the error.
func (e *Error) Is(target error) bool {
	k, ok := target.(*Kind)
	return ok && k == e.Kind
}

// Configurationf returns a new [ErrConfiguration] error.
func Configurationf(format string, a ...any) error {
	return &Error{Kind: ErrConfiguration, Err: fmt.Errorf(format, a...)}
}

// Domainf returns a new [ErrDomain] error.
func Domainf(format string, a ...any) error {
	return &Error{Kind: ErrDomain, Err: fmt.Errorf(format, a...)}
}

// Dataf returns a new [ErrData] error.
func Dataf(format string, a ...any) error {
	return &Error{Kind: ErrData, Err: fmt.Errorf(format, a...)}
}

// AsData wraps the given error as an [ErrData] error, with the given
// context prefix. It returns nil if the error is nil, and the error
// itself if it already has a kind.
func AsData(err error, context string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if As(err, &e) {
		return err
	}
	return &Error{Kind: ErrData, Err: fmt.Errorf("%s: %w", context, err)}
}

// Log takes the given error and logs it if it is non-nil.
// The intended usage is:
//
//	errors.Log(MyFunc(v))
//	// or
//	return errors.Log(MyFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return err
}

// Log1 takes the given value and error, logs the error if it is
// non-nil, and returns the value. The intended usage is:
//
//	a := errors.Log1(MyFunc(v))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return v
}

// Must takes the given error and panics if it is non-nil.
// The intended usage is:
//
//	errors.Must(MyFunc(v))
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 takes the given value and error and returns the value if
// the error is nil, and panics if the error is non-nil. The intended usage is:
//
//	a := errors.Must1(MyFunc(v))
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// CallerInfo returns string information about the caller
// of the function that called CallerInfo.
func CallerInfo() string {
	pc, file, line, _ := runtime.Caller(2)
	return runtime.FuncForPC(pc).Name() + " " + file + ":" + strconv.Itoa(line)
}
