// SPDX-License-Identifier: Unlicense OR MIT

/*
Package glcontext provides an off-screen OpenGL context on Windows.

A Context owns an invisible window, its device context and a WGL
rendering context. Activate makes the rendering context current on the
calling OS thread and remembers whatever context was current before;
Deactivate puts that context back. While active, ResolveFunction returns
the address of OpenGL entry points:

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	ctx, err := glcontext.New(glcontext.Reusable())
	if err != nil {
		return err
	}
	defer ctx.Release()
	err = ctx.Do(func() error {
		addr, err := ctx.ResolveFunction("glClear")
		...
	})

Contexts are single-use unless created with Reusable: the first
Deactivate of a single-use context releases its native resources.

A Context is not safe for concurrent use. Its window belongs to the OS
thread that called New, so create, activate and release a Context from one
goroutine locked to its thread. Calls from any other thread fail with
ErrWrongThread, and Release from another thread frees nothing.

On systems other than Windows, New returns ErrNotSupported.
*/
package glcontext
