// SPDX-License-Identifier: Unlicense OR MIT

package glcontext

import (
	"errors"
	"runtime"
	"testing"

	"gioui.org/glcontext/internal/wgl"
)

func newDriverContext(t *testing.T, opts ...Option) *Context {
	t.Helper()
	c, err := New(opts...)
	if err != nil {
		t.Skipf("no OpenGL driver: %v", err)
	}
	t.Cleanup(c.Release)
	return c
}

func TestDriverResolve(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	c := newDriverContext(t)
	err := c.Do(func() error {
		addr, err := c.ResolveFunction("glClear")
		if err != nil {
			return err
		}
		if addr == 0 {
			t.Error("glClear did not resolve")
		}
		addr, err = c.ResolveFunction("glNoSuchFunctionEXT")
		if err != nil {
			return err
		}
		if addr != 0 {
			t.Errorf("got %#x for an unknown function, expected 0", addr)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if !c.Destroyed() {
		t.Error("single-use context survived deactivation")
	}
	if err := c.Activate(); !errors.Is(err, ErrDestroyed) {
		t.Errorf("got %v, expected %v", err, ErrDestroyed)
	}
}

func TestDriverNesting(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	a := newDriverContext(t, Reusable())
	b := newDriverContext(t, Reusable())
	if err := a.Activate(); err != nil {
		t.Fatal(err)
	}
	defer a.Deactivate()
	if err := b.Activate(); err != nil {
		t.Fatal(err)
	}
	bDC, bRC := b.Native()
	if dc, rc := wgl.GetCurrent(); uintptr(dc) != bDC || uintptr(rc) != bRC {
		t.Fatalf("current context %#x, expected %#x", rc, bRC)
	}
	if err := b.Deactivate(); err != nil {
		t.Fatal(err)
	}
	aDC, aRC := a.Native()
	if dc, rc := wgl.GetCurrent(); uintptr(dc) != aDC || uintptr(rc) != aRC {
		t.Fatalf("current context %#x, expected %#x", rc, aRC)
	}
}

func TestDriverReleaseWhileEnabled(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	c := newDriverContext(t, Reusable())
	beforeDC, beforeRC := wgl.GetCurrent()
	if err := c.Activate(); err != nil {
		t.Fatal(err)
	}
	c.Release()
	if dc, rc := wgl.GetCurrent(); dc != beforeDC || rc != beforeRC {
		t.Errorf("current context %#x after Release, expected %#x", rc, beforeRC)
	}
	if dc, rc := c.Native(); dc != 0 || rc != 0 {
		t.Errorf("handles %#x %#x survived Release", dc, rc)
	}
}
