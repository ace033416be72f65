// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"io"
	"os"
	"unsafe"

	"github.com/go-gl/gl/v2.1/gl"

	"gioui.org/glcontext"
	"gioui.org/glcontext/internal/debugview"
)

// glInfo loads the go-gl bindings through ctx and queries the version and
// renderer strings. ctx must be active.
func glInfo(ctx *glcontext.Context) (version, renderer string, err error) {
	err = gl.InitWithProcAddrFunc(func(name string) unsafe.Pointer {
		addr, _ := ctx.ResolveFunction(name)
		return *(*unsafe.Pointer)(unsafe.Pointer(&addr))
	})
	if err != nil {
		return "", "", err
	}
	return gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)), nil
}

func logOutput(toDebugger bool) io.Writer {
	if toDebugger || debugview.NoStderr() {
		return debugview.Writer{}
	}
	return os.Stderr
}
