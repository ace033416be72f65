// SPDX-License-Identifier: Unlicense OR MIT

// Package wgl binds the parts of user32, gdi32 and opengl32 needed to
// create an invisible window with an OpenGL rendering context.
package wgl

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	syscall "golang.org/x/sys/windows"
)

type (
	HWND  = syscall.Handle
	HDC   = syscall.Handle
	HGLRC = syscall.Handle
)

// PixelFormatDescriptor mirrors PIXELFORMATDESCRIPTOR.
type PixelFormatDescriptor struct {
	Size           uint16
	Version        uint16
	Flags          uint32
	PixelType      uint8
	ColorBits      uint8
	RedBits        uint8
	RedShift       uint8
	GreenBits      uint8
	GreenShift     uint8
	BlueBits       uint8
	BlueShift      uint8
	AlphaBits      uint8
	AlphaShift     uint8
	AccumBits      uint8
	AccumRedBits   uint8
	AccumGreenBits uint8
	AccumBlueBits  uint8
	AccumAlphaBits uint8
	DepthBits      uint8
	StencilBits    uint8
	AuxBuffers     uint8
	LayerType      uint8
	Reserved       uint8
	LayerMask      uint32
	VisibleMask    uint32
	DamageMask     uint32
}

var (
	gdi32                = syscall.NewLazySystemDLL("gdi32.dll")
	_DescribePixelFormat = gdi32.NewProc("DescribePixelFormat")
	_SetPixelFormat      = gdi32.NewProc("SetPixelFormat")

	opengl32              = syscall.NewLazySystemDLL("opengl32.dll")
	_wglCreateContext     = opengl32.NewProc("wglCreateContext")
	_wglDeleteContext     = opengl32.NewProc("wglDeleteContext")
	_wglGetCurrentContext = opengl32.NewProc("wglGetCurrentContext")
	_wglGetCurrentDC      = opengl32.NewProc("wglGetCurrentDC")
	_wglGetProcAddress    = opengl32.NewProc("wglGetProcAddress")
	_wglMakeCurrent       = opengl32.NewProc("wglMakeCurrent")
)

var (
	loadOnce       sync.Once
	loadErr        error
	opengl32Module syscall.Handle
)

// Load loads opengl32.dll. It is safe to call more than once.
func Load() error {
	loadOnce.Do(func() {
		if err := opengl32.Load(); err != nil {
			loadErr = fmt.Errorf("wgl: failed to load %s: %w", opengl32.Name, err)
			return
		}
		opengl32Module = syscall.Handle(opengl32.Handle())
	})
	return loadErr
}

// DescribePixelFormat fills pfd with the description of pixel format
// index of hdc.
func DescribePixelFormat(hdc HDC, index int, pfd *PixelFormatDescriptor) error {
	r, _, err := _DescribePixelFormat.Call(uintptr(hdc), uintptr(index), unsafe.Sizeof(*pfd), uintptr(unsafe.Pointer(pfd)))
	if r == 0 {
		return fmt.Errorf("DescribePixelFormat failed: %w", err)
	}
	return nil
}

func SetPixelFormat(hdc HDC, index int, pfd *PixelFormatDescriptor) error {
	r, _, err := _SetPixelFormat.Call(uintptr(hdc), uintptr(index), uintptr(unsafe.Pointer(pfd)))
	if r == 0 {
		return fmt.Errorf("SetPixelFormat failed: %w", err)
	}
	return nil
}

func CreateContext(hdc HDC) (HGLRC, error) {
	r, _, err := _wglCreateContext.Call(uintptr(hdc))
	if r == 0 {
		return 0, fmt.Errorf("wglCreateContext failed: %w", err)
	}
	return HGLRC(r), nil
}

func DeleteContext(hglrc HGLRC) error {
	r, _, err := _wglDeleteContext.Call(uintptr(hglrc))
	if r == 0 {
		return fmt.Errorf("wglDeleteContext failed: %w", err)
	}
	return nil
}

// GetCurrent returns the device and rendering context current on the
// calling thread. Both are zero when no context is current.
func GetCurrent() (HDC, HGLRC) {
	dc, _, _ := _wglGetCurrentDC.Call()
	rc, _, _ := _wglGetCurrentContext.Call()
	return HDC(dc), HGLRC(rc)
}

// MakeCurrent makes hglrc current on the calling thread. A zero hglrc
// releases the current context.
func MakeCurrent(hdc HDC, hglrc HGLRC) error {
	r, _, err := _wglMakeCurrent.Call(uintptr(hdc), uintptr(hglrc))
	if r == 0 {
		return fmt.Errorf("wglMakeCurrent failed: %w", err)
	}
	return nil
}

// ModuleProc looks up name in the export table of opengl32.dll. It
// returns 0 if the function is not exported.
func ModuleProc(name string) uintptr {
	if err := Load(); err != nil {
		return 0
	}
	addr, err := syscall.GetProcAddress(opengl32Module, name)
	if err != nil {
		return 0
	}
	return addr
}

// ExtensionProc resolves name through wglGetProcAddress. It requires a
// current context and returns 0 for unknown functions.
func ExtensionProc(name string) uintptr {
	cname, err := syscall.BytePtrFromString(name)
	if err != nil {
		return 0
	}
	r, _, _ := _wglGetProcAddress.Call(uintptr(unsafe.Pointer(cname)))
	runtime.KeepAlive(cname)
	return normalizeProc(r)
}

// normalizeProc maps the failure values some drivers return from
// wglGetProcAddress to 0.
func normalizeProc(addr uintptr) uintptr {
	switch addr {
	case 1, 2, 3, ^uintptr(0):
		return 0
	}
	return addr
}
