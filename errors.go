// SPDX-License-Identifier: Unlicense OR MIT

package glcontext

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyEnabled  = errors.New("glcontext: context is already enabled")
	ErrNotEnabled      = errors.New("glcontext: context is not enabled")
	ErrDestroyed       = errors.New("glcontext: context is destroyed")
	ErrInvalidArgument = errors.New("glcontext: invalid function name")
	ErrNotSupported    = errors.New("glcontext: no OpenGL platform available")
	ErrContextCreation = errors.New("glcontext: context creation failed")

	// ErrWrongThread is returned when an active context is used from an
	// OS thread other than the one it was activated on.
	ErrWrongThread = errors.New("glcontext: context is active on another thread")
)

// CreationError records the native call that failed during New.
type CreationError struct {
	Op  string
	Err error
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("glcontext: %s: %v", e.Op, e.Err)
}

func (e *CreationError) Unwrap() error {
	return e.Err
}

func (e *CreationError) Is(target error) bool {
	return target == ErrContextCreation
}
