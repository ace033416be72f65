// SPDX-License-Identifier: Unlicense OR MIT

package glcontext

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

// Context is an off-screen OpenGL rendering context together with the
// invisible window backing it.
type Context struct {
	plat platform
	log  *slog.Logger

	reusable  bool
	destroyed bool
	enabled   bool

	// Owned native resources, released in the order rc, dc, wnd.
	wnd uintptr
	dc  uintptr
	rc  uintptr

	// The context current before Activate. Zero unless enabled.
	prevDC uintptr
	prevRC uintptr

	// owner is the OS thread that created the window. Activation and
	// release happen on it.
	owner uint32
}

// New creates a context. It is not current until Activate.
//
// The native window belongs to the calling OS thread, so New must be
// called from a goroutine locked with runtime.LockOSThread, and the
// context activated and released from that goroutine.
func New(opts ...Option) (*Context, error) {
	if newPlatform == nil {
		return nil, ErrNotSupported
	}
	p, err := newPlatform()
	if err != nil {
		return nil, &CreationError{Op: "load OpenGL", Err: err}
	}
	return newContext(p, opts...)
}

func newContext(p platform, opts ...Option) (*Context, error) {
	cnf := config{pixelFormat: 1}
	for _, o := range opts {
		o(&cnf)
	}
	log := cnf.logger
	if log == nil {
		log = Log()
	}
	if cnf.pixelFormat < 1 {
		return nil, &CreationError{Op: "set pixel format", Err: fmt.Errorf("invalid index %d", cnf.pixelFormat)}
	}
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	wnd, dc, err := p.CreateWindow()
	if err != nil {
		return nil, &CreationError{Op: "create window", Err: err}
	}
	c := &Context{
		plat:     p,
		log:      log,
		reusable: cnf.reusable,
		wnd:      wnd,
		dc:       dc,
		owner:    p.ThreadID(),
	}
	if err := p.SetPixelFormat(dc, cnf.pixelFormat); err != nil {
		c.destroy()
		return nil, &CreationError{Op: "set pixel format", Err: err}
	}
	rc, err := p.CreateContext(dc)
	if err != nil {
		c.destroy()
		return nil, &CreationError{Op: "create rendering context", Err: err}
	}
	c.rc = rc
	log.Debug("glcontext: created", "wnd", wnd, "dc", dc, "rc", rc, "reusable", cnf.reusable)
	return c, nil
}

// Activate makes c current on the calling OS thread and locks the calling
// goroutine to that thread until Deactivate. The calling thread must be
// the one that created c.
func (c *Context) Activate() error {
	if c.enabled {
		return ErrAlreadyEnabled
	}
	if c.destroyed {
		return ErrDestroyed
	}
	runtime.LockOSThread()
	if c.plat.ThreadID() != c.owner {
		runtime.UnlockOSThread()
		return ErrWrongThread
	}
	prevDC, prevRC := c.plat.Current()
	if err := c.plat.MakeCurrent(c.dc, c.rc); err != nil {
		// A failed wglMakeCurrent leaves no context current.
		if rerr := c.plat.MakeCurrent(prevDC, prevRC); rerr != nil {
			c.log.Warn("glcontext: restore previous context", "err", rerr)
		}
		runtime.UnlockOSThread()
		return fmt.Errorf("glcontext: activate: %w", err)
	}
	c.prevDC, c.prevRC = prevDC, prevRC
	c.enabled = true
	c.log.Debug("glcontext: activated", "rc", c.rc, "thread", c.owner)
	return nil
}

// Deactivate restores the context that was current before Activate. A
// context not created with Reusable is released first and cannot be
// activated again.
//
// The state change is complete even when the previous context cannot be
// made current again; that failure is returned.
func (c *Context) Deactivate() error {
	if !c.enabled {
		return ErrNotEnabled
	}
	if c.plat.ThreadID() != c.owner {
		return ErrWrongThread
	}
	if !c.reusable {
		c.destroy()
	}
	err := c.plat.MakeCurrent(c.prevDC, c.prevRC)
	c.prevDC, c.prevRC = 0, 0
	c.enabled = false
	runtime.UnlockOSThread()
	c.log.Debug("glcontext: deactivated", "destroyed", c.destroyed)
	if err != nil {
		return fmt.Errorf("glcontext: restore previous context: %w", err)
	}
	return nil
}

// ResolveFunction returns the address of the OpenGL function name, or 0
// if neither the OpenGL library nor the driver knows it. The context must
// be active on the calling thread.
func (c *Context) ResolveFunction(name string) (uintptr, error) {
	if !c.enabled {
		return 0, ErrNotEnabled
	}
	if name == "" || strings.IndexByte(name, 0) != -1 {
		return 0, ErrInvalidArgument
	}
	if c.plat.ThreadID() != c.owner {
		return 0, ErrWrongThread
	}
	if addr := c.plat.ModuleProc(name); addr != 0 {
		return addr, nil
	}
	return c.plat.ExtensionProc(name), nil
}

// Do activates c, runs f and deactivates c, even if f panics.
func (c *Context) Do(f func() error) (err error) {
	if err := c.Activate(); err != nil {
		return err
	}
	defer func() {
		if derr := c.Deactivate(); derr != nil {
			err = errors.Join(err, derr)
		}
	}()
	return f()
}

// Release frees the native resources of c. If c is active, the previous
// context is restored first. Release may be called more than once and
// after a single-use context has already released itself in Deactivate.
//
// Release must run on the thread that created c. Called from another
// thread it logs a warning and leaves c untouched, so that a later
// Release from the creating thread still frees everything.
func (c *Context) Release() {
	if c.destroyed && !c.enabled {
		return
	}
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	if c.plat.ThreadID() != c.owner {
		c.log.Warn("glcontext: Release called off the creating thread; resources kept", "owner", c.owner)
		return
	}
	if c.enabled {
		if err := c.plat.MakeCurrent(c.prevDC, c.prevRC); err != nil {
			c.log.Warn("glcontext: restore previous context", "err", err)
		}
		c.prevDC, c.prevRC = 0, 0
		c.enabled = false
		// Balances the lock taken by Activate.
		runtime.UnlockOSThread()
	}
	if !c.destroyed {
		c.destroy()
	}
}

// destroy releases whatever native resources c holds. It runs on the
// owning thread.
func (c *Context) destroy() {
	if c.rc != 0 {
		if err := c.plat.DeleteContext(c.rc); err != nil {
			c.log.Warn("glcontext: delete rendering context", "err", err)
		}
	}
	if c.dc != 0 {
		if err := c.plat.ReleaseDC(c.wnd, c.dc); err != nil {
			c.log.Warn("glcontext: release device context", "err", err)
		}
	}
	if c.wnd != 0 {
		if err := c.plat.DestroyWindow(c.wnd); err != nil {
			c.log.Warn("glcontext: destroy window", "err", err)
		}
	}
	c.wnd, c.dc, c.rc = 0, 0, 0
	c.destroyed = true
	c.log.Debug("glcontext: released")
}

// Enabled reports whether c is active.
func (c *Context) Enabled() bool {
	return c.enabled
}

// Destroyed reports whether the native resources of c are released.
func (c *Context) Destroyed() bool {
	return c.destroyed
}

// Reusable reports whether c survives Deactivate.
func (c *Context) Reusable() bool {
	return c.reusable
}

// Native returns the device and rendering context handles of c, or
// zeros once c is destroyed.
func (c *Context) Native() (dc, rc uintptr) {
	return c.dc, c.rc
}
