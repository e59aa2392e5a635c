// Package errors provides error handling for the tka-engine.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints and details for operator-facing messages
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrPoolExhausted) {
//	    // truncate instead of failing
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the option resolution engine.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrDataset indicates the pictograph dataset is absent or entirely
	// unparseable. Fatal at load; there is no recovery inside the engine.
	ErrDataset = New("dataset unusable")

	// ErrPoolExhausted indicates no free render slot is available. The
	// caller decides whether to truncate or reconfigure capacity.
	ErrPoolExhausted = New("render slot pool exhausted")

	// ErrStaleHandle indicates a slot handle from a superseded option set
	// was dereferenced after the pool recycled the slot.
	ErrStaleHandle = New("stale slot handle")

	// ErrNotAssigned indicates a slot operation that requires an assigned
	// slot was attempted on a free one.
	ErrNotAssigned = New("slot not assigned")
)

// IsDatasetError checks if an error is or wraps ErrDataset
func IsDatasetError(err error) bool {
	return err != nil && Is(err, ErrDataset)
}

// IsPoolExhausted checks if an error is or wraps ErrPoolExhausted
func IsPoolExhausted(err error) bool {
	return err != nil && Is(err, ErrPoolExhausted)
}

// IsStaleHandle checks if an error is or wraps ErrStaleHandle
func IsStaleHandle(err error) bool {
	return err != nil && Is(err, ErrStaleHandle)
}

// NewDatasetError creates a dataset error with a formatted message
func NewDatasetError(format string, args ...interface{}) error {
	return Wrap(ErrDataset, Newf(format, args...).Error())
}
