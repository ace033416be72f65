// SPDX-License-Identifier: Unlicense OR MIT

//go:build !windows
// +build !windows

package main

import (
	"errors"
	"io"
	"os"

	"gioui.org/glcontext"
)

func glInfo(ctx *glcontext.Context) (string, string, error) {
	return "", "", errors.New("OpenGL info is only available on Windows")
}

func logOutput(toDebugger bool) io.Writer {
	return os.Stderr
}
