package ngramdex

import "errors"

var (
	// ErrInvalidArity is returned when a shingler is configured with an arity of zero.
	ErrInvalidArity = errors.New("ngramdex: arity must be at least 1")
	// ErrAlreadyFinalized is returned when a corpus builder is used after Finalize.
	ErrAlreadyFinalized = errors.New("ngramdex: corpus builder is already finalized")
	// ErrConfigurationMismatch is returned when a query is shingled with a
	// configuration that differs from the one the corpus was built with.
	ErrConfigurationMismatch = errors.New("ngramdex: shingler configuration differs from corpus configuration")
	// ErrCorruptData is returned when a persisted corpus cannot be decoded.
	ErrCorruptData = errors.New("ngramdex: corrupt corpus data")
	// ErrVersionMismatch is returned when a persisted corpus was written by an
	// incompatible format version.
	ErrVersionMismatch = errors.New("ngramdex: incompatible corpus format version")
)
