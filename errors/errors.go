// Package errors provides error handling for the Chromana build pipeline.
//
// This package re-exports github.com/cockroachdb/errors, providing stack
// traces, error wrapping, and user-facing hints, and defines the sentinel
// errors for the build error taxonomy:
//
//   - ErrConfig    - malformed or incomplete icon-set configuration
//   - ErrAsset     - artwork missing, unparsable, or color-undeclared
//   - ErrAssembly  - the external font-assembly tool reported failure
//   - ErrPackaging - a web-delivery format could not be produced
//
// Config, asset, and assembly errors are fatal to the icon set that raised
// them and to that icon set only; packaging errors degrade to warnings.
//
// Usage:
//
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	if errors.Is(err, errors.ErrAsset) {
//	    // attribute to the offending file, skip the icon set
//	}
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

	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the build error taxonomy. Wrap these with
// errors.Wrap() to add context while preserving the class, and check
// them with errors.Is() or the predicates below.
var (
	// ErrConfig indicates a required configuration field is absent or a
	// field violates the expected structure.
	ErrConfig = New("invalid icon-set configuration")

	// ErrAsset indicates source artwork is missing, unparsable, or
	// references an undeclared color value.
	ErrAsset = New("invalid artwork asset")

	// ErrAssembly indicates the external font-assembly capability failed.
	ErrAssembly = New("font assembly failed")

	// ErrPackaging indicates an output format conversion failed.
	// Non-fatal: the build keeps the formats that did succeed.
	ErrPackaging = New("font packaging failed")

	// ErrNotFound indicates the requested icon set does not exist.
	ErrNotFound = New("icon set not found")
)

// IsConfigError checks if an error is or wraps ErrConfig.
func IsConfigError(err error) bool {
	return err != nil && Is(err, ErrConfig)
}

// IsAssetError checks if an error is or wraps ErrAsset.
func IsAssetError(err error) bool {
	return err != nil && Is(err, ErrAsset)
}

// IsAssemblyError checks if an error is or wraps ErrAssembly.
func IsAssemblyError(err error) bool {
	return err != nil && Is(err, ErrAssembly)
}

// IsPackagingError checks if an error is or wraps ErrPackaging.
func IsPackagingError(err error) bool {
	return err != nil && Is(err, ErrPackaging)
}

// NewConfigError creates a configuration error with a formatted message.
func NewConfigError(format string, args ...interface{}) error {
	return Wrap(ErrConfig, Newf(format, args...).Error())
}

// NewAssetError creates an asset error attributed to a specific file.
func NewAssetError(path string, format string, args ...interface{}) error {
	return WithDetailf(Wrap(ErrAsset, Newf(format, args...).Error()), "file: %s", path)
}
