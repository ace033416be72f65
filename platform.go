// SPDX-License-Identifier: Unlicense OR MIT

package glcontext

// platform is the native window system and OpenGL driver a Context is
// built on. Handles are opaque; zero means none.
type platform interface {
	// CreateWindow creates an invisible window and returns it with its
	// device context.
	CreateWindow() (wnd, dc uintptr, err error)
	// SetPixelFormat describes pixel format index of dc and applies it.
	SetPixelFormat(dc uintptr, index int) error
	CreateContext(dc uintptr) (rc uintptr, err error)
	// Current returns the device and rendering context current on the
	// calling thread.
	Current() (dc, rc uintptr)
	// MakeCurrent binds rc to the calling thread. MakeCurrent(0, 0)
	// leaves the thread without a current context.
	MakeCurrent(dc, rc uintptr) error
	// ModuleProc looks name up in the export table of the base OpenGL
	// library.
	ModuleProc(name string) uintptr
	// ExtensionProc resolves name through the driver. It needs a current
	// context.
	ExtensionProc(name string) uintptr
	DeleteContext(rc uintptr) error
	ReleaseDC(wnd, dc uintptr) error
	DestroyWindow(wnd uintptr) error
	// ThreadID identifies the calling OS thread.
	ThreadID() uint32
}

// newPlatform is set by the platform specific files.
var newPlatform func() (platform, error)
