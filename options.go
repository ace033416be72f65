// SPDX-License-Identifier: Unlicense OR MIT

package glcontext

import "log/slog"

// Option configures a Context.
type Option func(cnf *config)

type config struct {
	reusable    bool
	pixelFormat int
	logger      *slog.Logger
}

// Reusable keeps the native resources alive across Deactivate, so the
// context can be activated again. Reusable contexts are released by
// Release.
func Reusable() Option {
	return func(cnf *config) {
		cnf.reusable = true
	}
}

// PixelFormat selects the pixel format index applied to the device
// context. The default is 1, the first format the driver reports.
func PixelFormat(index int) Option {
	return func(cnf *config) {
		cnf.pixelFormat = index
	}
}

// Logger sets the logger of a single context. Contexts without one use
// the package logger set by SetLogger.
func Logger(l *slog.Logger) Option {
	return func(cnf *config) {
		cnf.logger = l
	}
}
