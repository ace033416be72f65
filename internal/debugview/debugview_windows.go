// SPDX-License-Identifier: Unlicense OR MIT

// Package debugview writes log output to the Windows debugger through
// OutputDebugStringW, where tools such as DebugView pick it up.
package debugview

import (
	"unsafe"

	syscall "golang.org/x/sys/windows"
)

var (
	kernel32           = syscall.NewLazySystemDLL("kernel32")
	outputDebugStringW = kernel32.NewProc("OutputDebugStringW")
)

// Writer is an io.Writer that sends each write to the debugger.
type Writer struct{}

func (Writer) Write(buf []byte) (int, error) {
	p, err := syscall.UTF16PtrFromString(string(buf))
	if err != nil {
		return 0, err
	}
	outputDebugStringW.Call(uintptr(unsafe.Pointer(p)))
	return len(buf), nil
}

// NoStderr reports whether the process runs without a standard error
// handle, as GUI subsystem binaries do.
func NoStderr() bool {
	return syscall.Stderr == 0
}
