// SPDX-License-Identifier: Unlicense OR MIT

package wgl

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	syscall "golang.org/x/sys/windows"
)

// ClassName is the window class shared by all invisible windows.
const ClassName = "glcontext"

const _CS_OWNDC = 0x0020

type wndClassEx struct {
	cbSize        uint32
	style         uint32
	lpfnWndProc   uintptr
	cnClsExtra    int32
	cbWndExtra    int32
	hInstance     syscall.Handle
	hIcon         syscall.Handle
	hCursor       syscall.Handle
	hbrBackground syscall.Handle
	lpszMenuName  *uint16
	lpszClassName *uint16
	hIconSm       syscall.Handle
}

var (
	kernel32          = syscall.NewLazySystemDLL("kernel32.dll")
	_GetModuleHandleW = kernel32.NewProc("GetModuleHandleW")

	user32            = syscall.NewLazySystemDLL("user32.dll")
	_CreateWindowEx   = user32.NewProc("CreateWindowExW")
	_DefWindowProc    = user32.NewProc("DefWindowProcW")
	_DestroyWindow    = user32.NewProc("DestroyWindow")
	_GetDC            = user32.NewProc("GetDC")
	_RegisterClassExW = user32.NewProc("RegisterClassExW")
	_ReleaseDC        = user32.NewProc("ReleaseDC")
)

var (
	registerOnce sync.Once
	registerErr  error
	hInstance    syscall.Handle
)

// RegisterClass registers the window class named ClassName. Only the
// first call does any work; later calls return its result.
func RegisterClass() error {
	registerOnce.Do(func() {
		registerErr = registerClass()
	})
	return registerErr
}

func registerClass() error {
	hInst, err := getModuleHandle()
	if err != nil {
		return err
	}
	if err := _DefWindowProc.Find(); err != nil {
		return err
	}
	// The class procedure is DefWindowProcW itself; the window never
	// handles a message.
	wcls := wndClassEx{
		cbSize:        uint32(unsafe.Sizeof(wndClassEx{})),
		style:         _CS_OWNDC,
		lpfnWndProc:   _DefWindowProc.Addr(),
		hInstance:     hInst,
		lpszClassName: syscall.StringToUTF16Ptr(ClassName),
	}
	// Another copy of this package may have registered the class.
	if _, err := registerClassEx(&wcls); err != nil && !errors.Is(err, syscall.ERROR_CLASS_ALREADY_EXISTS) {
		return err
	}
	hInstance = hInst
	return nil
}

// CreateWindow creates an invisible window of size zero and returns it
// together with its device context.
func CreateWindow() (HWND, HDC, error) {
	if err := RegisterClass(); err != nil {
		return 0, 0, err
	}
	hwnd, err := createWindowEx(0, ClassName, 0, 0, 0, 0, 0, hInstance)
	if err != nil {
		return 0, 0, err
	}
	hdc, err := getDC(hwnd)
	if err != nil {
		DestroyWindow(hwnd)
		return 0, 0, err
	}
	return hwnd, hdc, nil
}

func ReleaseDC(hwnd HWND, hdc HDC) error {
	r, _, err := _ReleaseDC.Call(uintptr(hwnd), uintptr(hdc))
	if r == 0 {
		return fmt.Errorf("ReleaseDC failed: %w", err)
	}
	return nil
}

func DestroyWindow(hwnd HWND) error {
	r, _, err := _DestroyWindow.Call(uintptr(hwnd))
	if r == 0 {
		return fmt.Errorf("DestroyWindow failed: %w", err)
	}
	return nil
}

func getModuleHandle() (syscall.Handle, error) {
	h, _, err := _GetModuleHandleW.Call(uintptr(0))
	if h == 0 {
		return 0, fmt.Errorf("GetModuleHandleW failed: %w", err)
	}
	return syscall.Handle(h), nil
}

func registerClassEx(cls *wndClassEx) (uint16, error) {
	a, _, err := _RegisterClassExW.Call(uintptr(unsafe.Pointer(cls)))
	if a == 0 {
		return 0, fmt.Errorf("RegisterClassExW failed: %w", err)
	}
	return uint16(a), nil
}

func createWindowEx(dwExStyle uint32, className string, dwStyle uint32, x, y, w, h int32, hInst syscall.Handle) (HWND, error) {
	hwnd, _, err := _CreateWindowEx.Call(
		uintptr(dwExStyle),
		uintptr(unsafe.Pointer(syscall.StringToUTF16Ptr(className))),
		0,
		uintptr(dwStyle),
		uintptr(x), uintptr(y),
		uintptr(w), uintptr(h),
		0,
		0,
		uintptr(hInst),
		0)
	if hwnd == 0 {
		return 0, fmt.Errorf("CreateWindowEx failed: %w", err)
	}
	return HWND(hwnd), nil
}

func getDC(hwnd HWND) (HDC, error) {
	hdc, _, err := _GetDC.Call(uintptr(hwnd))
	if hdc == 0 {
		return 0, fmt.Errorf("GetDC failed: %w", err)
	}
	return HDC(hdc), nil
}
