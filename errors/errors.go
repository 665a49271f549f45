// Package errors provides error handling for uibind.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints and details
//
// Usage:
//
//	// Wrap with context
//	if err := loadPackage(path); err != nil {
//	    return errors.Wrapf(err, "failed to load %s", path)
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "run 'uibind generate' to refresh the file")
//
// Annotation diagnostics are not built here; see package diag. A *diag.Error
// wrapped with this package still satisfies errors.As.
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
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the generation pipeline.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrNoAggregates indicates a package contained nothing to generate
	ErrNoAggregates = New("no annotated aggregates")

	// ErrPackageLoad indicates the Go package could not be loaded or type-checked
	ErrPackageLoad = New("package load failed")

	// ErrStale indicates a generated file differs from what would be generated now
	ErrStale = New("generated code is out of date")

	// ErrUnknownType indicates a --types entry named no declaration in the package
	ErrUnknownType = New("unknown type")
)

// IsStale checks if an error is or wraps ErrStale
func IsStale(err error) bool {
	return err != nil && Is(err, ErrStale)
}

// IsNoAggregates checks if an error is or wraps ErrNoAggregates
func IsNoAggregates(err error) bool {
	return err != nil && Is(err, ErrNoAggregates)
}

// NewUnknownTypeError creates an unknown-type error for a type name in a package
func NewUnknownTypeError(typeName, pkg string) error {
	return WithHintf(Wrapf(ErrUnknownType, "%s in %s", typeName, pkg),
		"check the --types flag; names are case-sensitive")
}
