// Package errors provides error handling for tlgen.
//
// It re-exports github.com/cockroachdb/errors so that every error carries a
// stack trace and can be annotated with user-facing hints:
//
//	if err := parse(); err != nil {
//	    return errors.Wrap(err, "failed to parse schema")
//	}
//
//	return errors.WithHint(err, "terminate the definition with ';'")
//
// The generator's failure kinds are exposed as sentinels and are checked with
// errors.Is after any amount of wrapping.
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

// Sentinel errors for the generator's failure kinds.
// Wrap them with Wrapf to add location context while preserving identity.
var (
	// ErrMalformedSchema indicates schema text that cannot be parsed into
	// constructors: an unterminated definition, a definition without a return
	// type, an unknown section marker or a duplicate constructor name.
	ErrMalformedSchema = New("malformed schema")

	// ErrUnresolvedType indicates a wire type string that is neither a
	// primitive nor a plausible reference to another type.
	ErrUnresolvedType = New("unresolved type")

	// ErrUnknownWireVariant indicates a constructor dispatched by an adapter
	// that does not belong to the group being converted.
	ErrUnknownWireVariant = New("unknown wire variant")
)

// IsMalformedSchema checks if an error is or wraps ErrMalformedSchema
func IsMalformedSchema(err error) bool {
	return err != nil && Is(err, ErrMalformedSchema)
}

// IsUnresolvedType checks if an error is or wraps ErrUnresolvedType
func IsUnresolvedType(err error) bool {
	return err != nil && Is(err, ErrUnresolvedType)
}
