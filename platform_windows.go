// SPDX-License-Identifier: Unlicense OR MIT

package glcontext

import (
	syscall "golang.org/x/sys/windows"

	"gioui.org/glcontext/internal/wgl"
)

type wglPlatform struct{}

func init() {
	newPlatform = func() (platform, error) {
		if err := wgl.Load(); err != nil {
			return nil, err
		}
		return wglPlatform{}, nil
	}
}

func (wglPlatform) CreateWindow() (uintptr, uintptr, error) {
	hwnd, hdc, err := wgl.CreateWindow()
	return uintptr(hwnd), uintptr(hdc), err
}

func (wglPlatform) SetPixelFormat(dc uintptr, index int) error {
	// SetPixelFormat wants the descriptor of the format it applies, so
	// describe it first.
	var pfd wgl.PixelFormatDescriptor
	if err := wgl.DescribePixelFormat(wgl.HDC(dc), index, &pfd); err != nil {
		return err
	}
	return wgl.SetPixelFormat(wgl.HDC(dc), index, &pfd)
}

func (wglPlatform) CreateContext(dc uintptr) (uintptr, error) {
	rc, err := wgl.CreateContext(wgl.HDC(dc))
	return uintptr(rc), err
}

func (wglPlatform) Current() (uintptr, uintptr) {
	dc, rc := wgl.GetCurrent()
	return uintptr(dc), uintptr(rc)
}

func (wglPlatform) MakeCurrent(dc, rc uintptr) error {
	return wgl.MakeCurrent(wgl.HDC(dc), wgl.HGLRC(rc))
}

func (wglPlatform) ModuleProc(name string) uintptr {
	return wgl.ModuleProc(name)
}

func (wglPlatform) ExtensionProc(name string) uintptr {
	return wgl.ExtensionProc(name)
}

func (wglPlatform) DeleteContext(rc uintptr) error {
	return wgl.DeleteContext(wgl.HGLRC(rc))
}

func (wglPlatform) ReleaseDC(wnd, dc uintptr) error {
	return wgl.ReleaseDC(wgl.HWND(wnd), wgl.HDC(dc))
}

func (wglPlatform) DestroyWindow(wnd uintptr) error {
	return wgl.DestroyWindow(wgl.HWND(wnd))
}

func (wglPlatform) ThreadID() uint32 {
	return syscall.GetCurrentThreadId()
}
